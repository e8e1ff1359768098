package menu

type predicate func(Context) bool

type itemRule struct {
	when predicate
	item func(Context) Item
}

type sectionRule struct {
	name  string
	when  predicate
	items []itemRule
}

func always(Context) bool { return true }

func curator(c Context) bool    { return IsCurator(c.Role) }
func notCurator(c Context) bool { return !IsCurator(c.Role) }
func enterprise(c Context) bool { return c.EnableEnterprise }
func cloud(c Context) bool      { return c.EnableCloud }

func and(ps ...predicate) predicate {
	return func(c Context) bool {
		for _, p := range ps {
			if !p(c) {
				return false
			}
		}
		return true
	}
}

func not(p predicate) predicate {
	return func(c Context) bool { return !p(c) }
}

func static(name, icon, link string) func(Context) Item {
	it := Item{Name: name, Icon: icon, Link: link}
	return func(Context) Item { return it }
}

func show(name, icon, link string) itemRule {
	return itemRule{when: always, item: static(name, icon, link)}
}

func showIf(p predicate, name, icon, link string) itemRule {
	return itemRule{when: p, item: static(name, icon, link)}
}

// rules is evaluated top to bottom. Curators stop after their single
// User Management section because every later rule requires notCurator.
var rules = []sectionRule{
	{
		name: "Connectors",
		when: always,
		items: []itemRule{
			show("Existing Connectors", "journal-text", "/admin/indexing/status"),
			show("Add Connector", "cloud-upload", "/admin/add-connector"),
		},
	},
	{
		name: "Document Management",
		when: always,
		items: []itemRule{
			show("Document Sets", "folder", "/admin/documents/sets"),
			show("Explorer", "zoom-in", "/admin/documents/explorer"),
			show("Feedback", "hand-thumbs-up", "/admin/documents/feedback"),
		},
	},
	{
		name: "Custom Assistants",
		when: always,
		items: []itemRule{
			show("Assistants", "octagon", "/admin/assistants"),
			showIf(and(notCurator, func(c Context) bool { return c.IsSuperAdmin }),
				"Slack Bots", "slack", "/admin/bots"),
			show("Actions", "lightning-charge", "/admin/actions"),
			showIf(enterprise, "Standard Answers", "clipboard", "/admin/standard-answer"),
		},
	},
	{
		name: "User Management",
		when: curator,
		items: []itemRule{
			show("Groups", "people", "/admin/groups"),
		},
	},
	{
		name: "Configuration",
		when: notCurator,
		items: []itemRule{
			show("Default Assistant", "stars", "/admin/configuration/default-assistant"),
			show("LLM", "cpu", "/admin/configuration/llm"),
			show("Web Search", "globe", "/admin/configuration/web-search"),
			{
				when: not(cloud),
				item: func(c Context) Item {
					return Item{
						Name:  "Search Settings",
						Icon:  "search",
						Link:  "/admin/configuration/search",
						Error: c.Settings.NeedsReindexing(),
					}
				},
			},
			show("Document Processing", "file-earmark-text", "/admin/configuration/document-processing"),
			showIf(func(c Context) bool { return c.KnowledgeGraphExposed }, "Knowledge Graph", "diagram-3", "/admin/kg"),
		},
	},
	{
		name: "User Management",
		when: notCurator,
		items: []itemRule{
			show("Users", "person", "/admin/users"),
			showIf(enterprise, "Groups", "people", "/admin/groups"),
			show("API Keys", "key", "/admin/api-key"),
			show("Token Rate Limits", "shield", "/admin/token-rate-limits"),
		},
	},
	{
		name: "Performance",
		when: and(notCurator, enterprise),
		items: []itemRule{
			show("Usage Statistics", "activity", "/admin/performance/usage"),
			showIf(func(c Context) bool { return !c.Settings.QueryHistoryDisabled() },
				"Query History", "server", "/admin/performance/query-history"),
			showIf(and(not(cloud), func(c Context) bool { return c.CustomAnalyticsEnabled }),
				"Custom Analytics", "bar-chart", "/admin/performance/custom-analytics"),
		},
	},
	{
		name: "Settings",
		when: notCurator,
		items: []itemRule{
			show("Workspace Settings", "gear", "/admin/settings"),
			showIf(enterprise, "Whitelabeling", "palette", "/admin/whitelabeling"),
			showIf(cloud, "Billing", "credit-card", "/admin/billing"),
		},
	},
}

// Build returns the ordered menu for ctx. It never fails: a rule that does
// not apply simply omits its section or item.
func Build(ctx Context) []Section {
	sections := make([]Section, 0, len(rules))
	for _, sr := range rules {
		if !sr.when(ctx) {
			continue
		}
		section := Section{Name: sr.name, Items: make([]Item, 0, len(sr.items))}
		for _, ir := range sr.items {
			if ir.when(ctx) {
				section.Items = append(section.Items, ir.item(ctx))
			}
		}
		sections = append(sections, section)
	}
	return sections
}

// Catalog returns every item that some context could produce, in rule order
// and deduplicated by link. It is used to register a route per destination.
func Catalog() []Item {
	seen := make(map[string]bool)
	var items []Item
	for _, sr := range rules {
		for _, ir := range sr.items {
			it := ir.item(Context{})
			if seen[it.Link] {
				continue
			}
			seen[it.Link] = true
			items = append(items, it)
		}
	}
	return items
}
