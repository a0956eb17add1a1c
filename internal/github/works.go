package github

import (
	"context"
	"sort"
	"strings"
	"time"

	gh "github.com/google/go-github/v68/github"

	folioerrors "github.com/Didstopia/folio/internal/errors"
)

// DefaultWorksLimit caps how many repositories the works page lists
const DefaultWorksLimit = 12

// Work is one project listed on the works page
type Work struct {
	Name        string
	FullName    string
	Description string
	URL         string
	Language    string
	Stars       int
	PushedAt    time.Time
}

// WorksFromRepos converts repositories into works, most starred first.
// Ties are broken by the most recent push, then by name.
func WorksFromRepos(repos []*gh.Repository, limit int) []Work {
	works := make([]Work, 0, len(repos))
	for _, repo := range repos {
		if repo == nil {
			continue
		}
		works = append(works, Work{
			Name:        repo.GetName(),
			FullName:    repo.GetFullName(),
			Description: strings.TrimSpace(repo.GetDescription()),
			URL:         repo.GetHTMLURL(),
			Language:    repo.GetLanguage(),
			Stars:       repo.GetStargazersCount(),
			PushedAt:    repo.GetPushedAt().Time,
		})
	}

	sort.SliceStable(works, func(i, j int) bool {
		if works[i].Stars != works[j].Stars {
			return works[i].Stars > works[j].Stars
		}
		if !works[i].PushedAt.Equal(works[j].PushedAt) {
			return works[i].PushedAt.After(works[j].PushedAt)
		}
		return works[i].Name < works[j].Name
	})

	if limit > 0 && len(works) > limit {
		works = works[:limit]
	}
	return works
}

// FetchWorks lists the works of a GitHub user
func FetchWorks(ctx context.Context, c Client, username string, limit int) ([]Work, error) {
	if username == "" {
		return nil, folioerrors.ErrMissingUser
	}

	repos, err := c.ListUserRepos(ctx, username, DefaultListOptions())
	if err != nil {
		return nil, err
	}
	return WorksFromRepos(repos, limit), nil
}
