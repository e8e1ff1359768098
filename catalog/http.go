package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ghiac/adminshell/log"
	"github.com/ghiac/adminshell/model"
)

// HTTPSource reads the catalog from the product's REST API
type HTTPSource struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPSource creates a source for the API rooted at baseURL
func NewHTTPSource(baseURL, apiKey string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// ListTools returns every tool registered with the backend
func (s *HTTPSource) ListTools(ctx context.Context) ([]model.Tool, error) {
	var tools []model.Tool
	if err := s.get(ctx, "Failed to fetch tools", "/tool", &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

// ListMCPServers returns the registered MCP servers
func (s *HTTPSource) ListMCPServers(ctx context.Context) (*model.MCPServersResponse, error) {
	var resp model.MCPServersResponse
	if err := s.get(ctx, "Failed to fetch MCP servers", "/admin/mcp/servers", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AssistantEditorInfo loads the editor payload
func (s *HTTPSource) AssistantEditorInfo(ctx context.Context, id string) (*model.AssistantEditorInfo, error) {
	info := &model.AssistantEditorInfo{}
	if err := s.get(ctx, "Failed to fetch tools", "/tool", &info.Tools); err != nil {
		return nil, err
	}
	if err := s.get(ctx, "Failed to fetch document sets", "/manage/document-set", &info.DocumentSets); err != nil {
		return nil, err
	}
	if err := s.get(ctx, "Failed to fetch LLM providers", "/llm/provider", &info.LLMProviders); err != nil {
		return nil, err
	}
	if id != "" {
		var existing model.Assistant
		if err := s.get(ctx, "Failed to fetch assistant", "/persona/"+url.PathEscape(id), &existing); err != nil {
			return nil, err
		}
		info.Existing = &existing
	}
	return info, nil
}

// UsageStats returns one point per day for the last days days
func (s *HTTPSource) UsageStats(ctx context.Context, days int) ([]model.UsagePoint, error) {
	var points []model.UsagePoint
	path := "/analytics/admin/query?days=" + strconv.Itoa(days)
	if err := s.get(ctx, "Failed to fetch usage statistics", path, &points); err != nil {
		return nil, err
	}
	return points, nil
}

func (s *HTTPSource) get(ctx context.Context, op, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Log.Warnf("[catalog] GET %s returned %d", path, resp.StatusCode)
		return &ResponseError{Op: op, Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w: %v", op, ErrMalformed, err)
	}
	return nil
}
