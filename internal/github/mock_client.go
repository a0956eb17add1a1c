package github

import (
	"context"
	"sync"

	gh "github.com/google/go-github/v68/github"
)

// MockClient is a mock implementation of Client for testing
type MockClient struct {
	mu    sync.Mutex
	Calls []MockCall

	ListUserReposFunc func(ctx context.Context, username string, opts *ListOptions) ([]*gh.Repository, error)
}

// MockCall records a method call
type MockCall struct {
	Method string
	Args   []interface{}
}

// NewMockClient creates a new mock client
func NewMockClient() *MockClient {
	return &MockClient{
		Calls: make([]MockCall, 0),
	}
}

// ListUserRepos implements Client.ListUserRepos
func (m *MockClient) ListUserRepos(ctx context.Context, username string, opts *ListOptions) ([]*gh.Repository, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, MockCall{Method: "ListUserRepos", Args: []interface{}{username, opts}})
	m.mu.Unlock()
	if m.ListUserReposFunc != nil {
		return m.ListUserReposFunc(ctx, username, opts)
	}
	return nil, nil
}

// Reset clears all recorded calls
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = make([]MockCall, 0)
}

// CallCount returns the number of times a method was called
func (m *MockClient) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, call := range m.Calls {
		if call.Method == method {
			count++
		}
	}
	return count
}
