// Package llm lists the models offered by the configured LLM provider for
// the Configuration > LLM page.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/sashabaranov/go-openai"

	"github.com/ghiac/adminshell/auth"
)

// Model is one model offered by a provider
type Model struct {
	ID      string
	OwnedBy string
}

// Provider lists the models a deployment can be configured with
type Provider interface {
	ListModels(ctx context.Context) ([]Model, error)
}

// ProviderFunc adapts a plain function into a Provider
type ProviderFunc func(ctx context.Context) ([]Model, error)

// ListModels implements Provider
func (f ProviderFunc) ListModels(ctx context.Context) ([]Model, error) {
	return f(ctx)
}

// OpenAIProvider talks to any OpenAI-compatible API
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider creates a provider. baseURL may be empty for the public API.
func NewOpenAIProvider(apiKey, baseURL string, httpClient *http.Client) *OpenAIProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = newUserHeaderClient(httpClient)
	return &OpenAIProvider{client: openai.NewClientWithConfig(cfg)}
}

// ListModels returns the provider's models sorted by id
func (p *OpenAIProvider) ListModels(ctx context.Context) ([]Model, error) {
	list, err := p.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	models := make([]Model, 0, len(list.Models))
	for _, m := range list.Models {
		models = append(models, Model{ID: m.ID, OwnedBy: m.OwnedBy})
	}
	sort.Slice(models, func(i, j int) bool { return models[i].ID < models[j].ID })
	return models, nil
}

// userHeaderTransport tags outgoing requests with the signed-in admin
type userHeaderTransport struct {
	next http.RoundTripper
}

func (t *userHeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if u := auth.UserFromContext(req.Context()); u != nil {
		req = req.Clone(req.Context())
		req.Header.Set("X-User-ID", u.UserID)
	}
	return t.next.RoundTrip(req)
}

func newUserHeaderClient(base *http.Client) *http.Client {
	if base == nil {
		base = http.DefaultClient
	}
	next := base.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	return &http.Client{
		Transport:     &userHeaderTransport{next: next},
		Timeout:       base.Timeout,
		CheckRedirect: base.CheckRedirect,
		Jar:           base.Jar,
	}
}
