// Package catalog fetches the backend data admin pages render: tools, MCP
// servers, assistant editor info and usage statistics.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ghiac/adminshell/model"
)

// ErrNotFound is returned when the requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrMalformed is returned when the backend answers with a body that does
// not decode
var ErrMalformed = errors.New("malformed response")

// Source is the backend the admin pages read from
type Source interface {
	ListTools(ctx context.Context) ([]model.Tool, error)
	ListMCPServers(ctx context.Context) (*model.MCPServersResponse, error)
	// AssistantEditorInfo loads editor data; id is empty for a new assistant
	AssistantEditorInfo(ctx context.Context, id string) (*model.AssistantEditorInfo, error)
	UsageStats(ctx context.Context, days int) ([]model.UsagePoint, error)
}

// ResponseError carries the backend's failure text so pages can show it
type ResponseError struct {
	Op     string
	Status int
	Body   string
}

func (e *ResponseError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s - status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s - %s", e.Op, e.Body)
}

// Unwrap lets errors.Is match ErrNotFound on a 404
func (e *ResponseError) Unwrap() error {
	if e.Status == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}
