package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/ghiac/adminshell/model"
)

// MemorySource serves a fixed catalog. Used for local runs and tests.
type MemorySource struct {
	mu         sync.RWMutex
	tools      []model.Tool
	servers    []model.MCPServer
	assistants map[string]model.Assistant
	docSets    []string
	providers  []string
	usage      []model.UsagePoint

	// Fail, when set, makes every call return it
	Fail error
}

// NewMemorySource creates an empty source
func NewMemorySource() *MemorySource {
	return &MemorySource{assistants: make(map[string]model.Assistant)}
}

// AddTool registers a tool
func (s *MemorySource) AddTool(t model.Tool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tools = append(s.tools, t)
}

// AddMCPServer registers an MCP server
func (s *MemorySource) AddMCPServer(srv model.MCPServer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.servers = append(s.servers, srv)
}

// AddAssistant registers an assistant
func (s *MemorySource) AddAssistant(a model.Assistant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assistants[a.ID] = a
}

// SetDocumentSets replaces the document set names
func (s *MemorySource) SetDocumentSets(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docSets = names
}

// SetLLMProviders replaces the LLM provider names
func (s *MemorySource) SetLLMProviders(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.providers = names
}

// SetUsage replaces the usage series
func (s *MemorySource) SetUsage(points []model.UsagePoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usage = points
}

func (s *MemorySource) ListTools(ctx context.Context) ([]model.Tool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Fail != nil {
		return nil, s.Fail
	}
	return append([]model.Tool(nil), s.tools...), nil
}

func (s *MemorySource) ListMCPServers(ctx context.Context) (*model.MCPServersResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Fail != nil {
		return nil, s.Fail
	}
	return &model.MCPServersResponse{MCPServers: append([]model.MCPServer(nil), s.servers...)}, nil
}

func (s *MemorySource) AssistantEditorInfo(ctx context.Context, id string) (*model.AssistantEditorInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Fail != nil {
		return nil, s.Fail
	}
	info := &model.AssistantEditorInfo{
		Tools:        append([]model.Tool(nil), s.tools...),
		DocumentSets: append([]string(nil), s.docSets...),
		LLMProviders: append([]string(nil), s.providers...),
	}
	if id != "" {
		a, ok := s.assistants[id]
		if !ok {
			return nil, fmt.Errorf("assistant %s: %w", id, ErrNotFound)
		}
		info.Existing = &a
	}
	return info, nil
}

func (s *MemorySource) UsageStats(ctx context.Context, days int) ([]model.UsagePoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Fail != nil {
		return nil, s.Fail
	}
	points := s.usage
	if days > 0 && len(points) > days {
		points = points[len(points)-days:]
	}
	return append([]model.UsagePoint(nil), points...), nil
}
