// Package github fetches the works feed from the GitHub API
package github

import (
	"context"

	gh "github.com/google/go-github/v68/github"
)

// Client defines the GitHub API operations the works page needs
type Client interface {
	// ListUserRepos returns all repositories for a user
	ListUserRepos(ctx context.Context, username string, opts *ListOptions) ([]*gh.Repository, error)
}

// ListOptions specifies optional parameters for list operations
type ListOptions struct {
	// Type of repositories to list: all, owner, member (default: owner)
	Type string

	// Sort order requested from the API: created, updated, pushed, full_name
	Sort string

	// Include forked repositories
	IncludeForks bool

	// Include archived repositories
	IncludeArchived bool

	// PerPage specifies the number of results per page (max 100)
	PerPage int
}

// DefaultListOptions returns default list options
func DefaultListOptions() *ListOptions {
	return &ListOptions{
		Type:    "owner",
		Sort:    "pushed",
		PerPage: 100,
	}
}
