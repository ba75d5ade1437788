// Package paging loads a user's repositories one page at a time.
package paging

import (
	"context"
	"fmt"
	"strings"

	"github.com/kevinmichaelchen/gh-user-search/internal/github"
	"github.com/kevinmichaelchen/gh-user-search/internal/models"
)

// FirstPage is the key used when a load has no key yet.
const FirstPage = 1

// LoadParams asks a Source for one page. A nil Key means FirstPage.
type LoadParams struct {
	Key      *int
	LoadSize int
}

// LoadResult is either a page of data with its neighbour keys, or Err.
// A nil NextKey means the end of the data; a nil PrevKey means the start.
type LoadResult[T any] struct {
	Data    []T
	PrevKey *int
	NextKey *int
	Err     error
}

// Source loads pages keyed by page number. Load must not panic on upstream
// failure; errors are reported through LoadResult.Err.
type Source[T any] interface {
	Load(ctx context.Context, params LoadParams) LoadResult[T]
}

// RepositorySource pages through GET /users/{username}/repos and filters each
// page client-side. One source serves exactly one (username, query) session.
type RepositorySource struct {
	api      github.API
	username string
	query    string
}

func NewRepositorySource(api github.API, username, query string) *RepositorySource {
	return &RepositorySource{api: api, username: username, query: query}
}

func (s *RepositorySource) Load(ctx context.Context, params LoadParams) LoadResult[models.Repository] {
	page := FirstPage
	if params.Key != nil {
		page = *params.Key
	}

	repos, err := s.api.GetUserRepositories(ctx, s.username, page, params.LoadSize, github.SortUpdated, github.DirectionDesc)
	if err != nil {
		return LoadResult[models.Repository]{Err: fmt.Errorf("loading page %d of %s: %w", page, s.username, err)}
	}

	res := LoadResult[models.Repository]{Data: FilterRepositories(repos, s.query)}
	if page > FirstPage {
		res.PrevKey = intPtr(page - 1)
	}
	// Termination follows the upstream page, not the filtered one.
	if len(repos) > 0 {
		res.NextKey = intPtr(page + 1)
	}
	return res
}

// FilterRepositories keeps repositories whose name, description, or language
// contains query, ignoring case. A blank query keeps everything.
func FilterRepositories(repos []models.Repository, query string) []models.Repository {
	if strings.TrimSpace(query) == "" {
		return repos
	}

	needle := strings.ToLower(query)
	out := make([]models.Repository, 0, len(repos))
	for _, r := range repos {
		if matches(r.Name, needle) ||
			(r.Description != nil && matches(*r.Description, needle)) ||
			(r.Language != nil && matches(*r.Language, needle)) {
			out = append(out, r)
		}
	}
	return out
}

func matches(field, needle string) bool {
	return strings.Contains(strings.ToLower(field), needle)
}

func intPtr(n int) *int { return &n }
