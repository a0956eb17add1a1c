package github

import (
	"context"
	"errors"
	"fmt"

	gh "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	folioerrors "github.com/Didstopia/folio/internal/errors"
)

// client implements the Client interface
type client struct {
	ghClient *gh.Client
}

// NewClient creates a new GitHub client. An empty token uses the
// unauthenticated API, which is enough for public repositories.
func NewClient(token string) Client {
	if token == "" {
		return &client{ghClient: gh.NewClient(nil)}
	}

	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &client{
		ghClient: gh.NewClient(tc),
	}
}

// ListUserRepos returns the public repositories for a user, following pagination
func (c *client) ListUserRepos(ctx context.Context, username string, opts *ListOptions) ([]*gh.Repository, error) {
	if username == "" {
		return nil, folioerrors.ErrMissingUser
	}
	if opts == nil {
		opts = DefaultListOptions()
	}

	var allRepos []*gh.Repository

	ghOpts := &gh.RepositoryListByUserOptions{
		Type: opts.Type,
		Sort: opts.Sort,
		ListOptions: gh.ListOptions{
			Page:    1,
			PerPage: opts.PerPage,
		},
	}

	for {
		repos, resp, err := c.ghClient.Repositories.ListByUser(ctx, username, ghOpts)
		if err != nil {
			return nil, wrapAPIError(resp, err)
		}

		for _, repo := range repos {
			if repo.GetPrivate() {
				continue
			}
			if !opts.IncludeForks && repo.GetFork() {
				continue
			}
			if !opts.IncludeArchived && repo.GetArchived() {
				continue
			}
			allRepos = append(allRepos, repo)
		}

		if resp.NextPage == 0 {
			break
		}
		ghOpts.Page = resp.NextPage
	}

	return allRepos, nil
}

// wrapAPIError converts a GitHub API response error to our error type.
// Typed go-github rate-limit errors are checked first, then the status code.
// The API message is kept in the returned error.
func wrapAPIError(resp *gh.Response, err error) error {
	if err == nil {
		return nil
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return fmt.Errorf("%w: %s", folioerrors.ErrRateLimited, rateLimitErr.Message)
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return fmt.Errorf("%w: %s", folioerrors.ErrRateLimited, abuseErr.Message)
	}

	apiMessage := ""
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		apiMessage = ghErr.Message
	}

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}

	var sentinel error
	switch statusCode {
	case 401:
		sentinel = folioerrors.ErrUnauthorized
	case 403:
		sentinel = folioerrors.ErrForbidden
	case 404:
		sentinel = folioerrors.ErrNotFound
	case 429:
		sentinel = folioerrors.ErrRateLimited
	default:
		msg := "API request failed"
		if apiMessage != "" {
			msg = apiMessage
		}
		return folioerrors.NewAPIError(statusCode, msg, err)
	}

	if apiMessage != "" {
		return fmt.Errorf("%w: %s", sentinel, apiMessage)
	}
	return sentinel
}
