package model

import "time"

// Assistant is a configured persona
type Assistant struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	IsPublic    bool     `json:"is_public"`
	ToolIDs     []int    `json:"tool_ids"`
	DocumentSet []string `json:"document_sets"`
}

// AssistantEditorInfo is everything the assistant editor needs to render
type AssistantEditorInfo struct {
	// Existing is nil when creating a new assistant
	Existing     *Assistant `json:"existing_persona,omitempty"`
	Tools        []Tool     `json:"tools"`
	DocumentSets []string   `json:"document_sets"`
	LLMProviders []string   `json:"llm_providers"`
}

// UsagePoint is one day of usage statistics
type UsagePoint struct {
	Date        time.Time `json:"date"`
	Queries     int       `json:"total_queries"`
	Likes       int       `json:"total_likes"`
	Dislikes    int       `json:"total_dislikes"`
	ActiveUsers int       `json:"unique_users"`
}
