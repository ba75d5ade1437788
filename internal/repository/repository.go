// Package repository is the access layer between the screens and the GitHub
// client. Nothing here returns a bare error: single calls come back as a
// result.Result and repository listings report failures per page.
package repository

import (
	"context"
	"sort"

	"github.com/kevinmichaelchen/gh-user-search/internal/github"
	"github.com/kevinmichaelchen/gh-user-search/internal/models"
	"github.com/kevinmichaelchen/gh-user-search/internal/paging"
	"github.com/kevinmichaelchen/gh-user-search/internal/result"
	"github.com/sirupsen/logrus"
)

const (
	// SimilarUsersPerPage is the per_page sent to the user search endpoint.
	SimilarUsersPerPage = 10
	PopularSampleSize   = 30
	PopularLimit        = 5
	ListPageSize        = paging.DefaultPageSize
)

type Repository struct {
	api github.API
	log *logrus.Entry
}

func New(api github.API) *Repository {
	return &Repository{api: api, log: logrus.WithField("component", "repository")}
}

func (r *Repository) GetUser(ctx context.Context, username string) result.Result[*models.User] {
	res := result.From(r.api.GetUser(ctx, username))
	if err := res.Err(); err != nil {
		r.log.WithError(err).WithField("username", username).Debug("get user failed")
	}
	return res
}

// SearchUsers returns the first page of users matching query.
func (r *Repository) SearchUsers(ctx context.Context, query string) result.Result[[]models.User] {
	resp, err := r.api.SearchUsers(ctx, query, SimilarUsersPerPage)
	if err != nil {
		r.log.WithError(err).WithField("query", query).Debug("search users failed")
		return result.Error[[]models.User](err)
	}
	return result.Success(resp.Items)
}

func (r *Repository) GetRepository(ctx context.Context, owner, repo string) result.Result[*models.Repository] {
	res := result.From(r.api.GetRepository(ctx, owner, repo))
	if err := res.Err(); err != nil {
		r.log.WithError(err).WithFields(logrus.Fields{"owner": owner, "repo": repo}).Debug("get repository failed")
	}
	return res
}

// GetPopularRepositories picks the most starred non-fork repositories among
// the user's most recently updated ones.
func (r *Repository) GetPopularRepositories(ctx context.Context, username string) result.Result[[]models.Repository] {
	repos, err := r.api.GetUserRepositories(ctx, username, paging.FirstPage, PopularSampleSize, github.SortUpdated, github.DirectionDesc)
	if err != nil {
		r.log.WithError(err).WithField("username", username).Debug("get popular repositories failed")
		return result.Error[[]models.Repository](err)
	}
	return result.Success(Popular(repos, PopularLimit))
}

// Popular drops forks, orders by stars descending and keeps at most limit.
// Equal star counts keep their input order.
func Popular(repos []models.Repository, limit int) []models.Repository {
	out := make([]models.Repository, 0, len(repos))
	for _, repo := range repos {
		if !repo.Fork {
			out = append(out, repo)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StargazersCount > out[j].StargazersCount
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// GetUserRepositories starts a new listing session. The returned pager owns
// the session; failures surface through its load state.
func (r *Repository) GetUserRepositories(username, searchQuery string) *paging.Pager[models.Repository] {
	r.log.WithFields(logrus.Fields{"username": username, "query": searchQuery}).Debug("new repository listing session")
	src := paging.NewRepositorySource(r.api, username, searchQuery)
	return paging.NewPager[models.Repository](src, paging.Config{PageSize: ListPageSize})
}
