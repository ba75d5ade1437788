package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/kevinmichaelchen/gh-user-search/internal/failure"
	"github.com/kevinmichaelchen/gh-user-search/internal/github"
	"github.com/kevinmichaelchen/gh-user-search/internal/models"
	"github.com/kevinmichaelchen/gh-user-search/internal/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAPI struct {
	user      *models.User
	search    *models.SearchUsersResponse
	repos     []models.Repository
	repo      *models.Repository
	err       error
	lastQuery string
	lastPer   int
	lastPage  int
	lastSort  string
}

func (m *mockAPI) GetUser(_ context.Context, username string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockAPI) SearchUsers(_ context.Context, query string, perPage int) (*models.SearchUsersResponse, error) {
	m.lastQuery, m.lastPer = query, perPage
	if m.err != nil {
		return nil, m.err
	}
	return m.search, nil
}

func (m *mockAPI) GetUserRepositories(_ context.Context, _ string, page, perPage int, sort, _ string) ([]models.Repository, error) {
	m.lastPage, m.lastPer, m.lastSort = page, perPage, sort
	if m.err != nil {
		return nil, m.err
	}
	return m.repos, nil
}

func (m *mockAPI) GetRepository(context.Context, string, string) (*models.Repository, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.repo, nil
}

func TestGetUser_Success(t *testing.T) {
	want := &models.User{Login: "octocat", ID: 1, Followers: 10}
	r := New(&mockAPI{user: want})

	res := r.GetUser(context.Background(), "octocat")
	got, ok := res.Data()
	require.True(t, ok)
	assert.Same(t, want, got)
}

func TestGetUser_NotFound(t *testing.T) {
	r := New(&mockAPI{err: &github.HTTPError{StatusCode: http.StatusNotFound}})

	res := r.GetUser(context.Background(), "nobody")
	assert.Equal(t, result.KindError, res.Kind())
	assert.Equal(t, failure.MsgNotFound, failure.Message(res.Err()))
}

func TestSearchUsers(t *testing.T) {
	api := &mockAPI{search: &models.SearchUsersResponse{
		TotalCount: 2,
		Items:      []models.User{{Login: "a"}, {Login: "b"}},
	}}
	r := New(api)

	res := r.SearchUsers(context.Background(), "oct")
	users, ok := res.Data()
	require.True(t, ok)
	assert.Len(t, users, 2)
	assert.Equal(t, "oct", api.lastQuery)
	assert.Equal(t, SimilarUsersPerPage, api.lastPer)
}

func TestSearchUsers_Error(t *testing.T) {
	r := New(&mockAPI{err: errors.New("dial tcp: refused")})
	res := r.SearchUsers(context.Background(), "oct")
	assert.Error(t, res.Err())
}

func TestGetRepository(t *testing.T) {
	want := &models.Repository{Name: "Hello-World"}
	r := New(&mockAPI{repo: want})

	got, ok := r.GetRepository(context.Background(), "octocat", "Hello-World").Data()
	require.True(t, ok)
	assert.Equal(t, "Hello-World", got.Name)

	r = New(&mockAPI{err: &github.HTTPError{StatusCode: 500}})
	res := r.GetRepository(context.Background(), "octocat", "Hello-World")
	assert.Equal(t, failure.MsgServer, failure.Message(res.Err()))
}

func TestGetPopularRepositories(t *testing.T) {
	var repos []models.Repository
	for i := 0; i < 30; i++ {
		repos = append(repos, models.Repository{
			Name:            fmt.Sprintf("repo-%d", i),
			Fork:            i%3 == 0, // 10 forks
			StargazersCount: i * 10,
		})
	}
	api := &mockAPI{repos: repos}
	r := New(api)

	got, ok := r.GetPopularRepositories(context.Background(), "octocat").Data()
	require.True(t, ok)
	require.Len(t, got, 5)
	for i, repo := range got {
		assert.False(t, repo.Fork)
		if i > 0 {
			assert.GreaterOrEqual(t, got[i-1].StargazersCount, repo.StargazersCount)
		}
	}
	assert.Equal(t, "repo-29", got[0].Name)
	assert.Equal(t, 1, api.lastPage)
	assert.Equal(t, PopularSampleSize, api.lastPer)
	assert.Equal(t, github.SortUpdated, api.lastSort)
}

func TestPopular_TiesKeepInputOrder(t *testing.T) {
	in := []models.Repository{
		{Name: "first", StargazersCount: 5},
		{Name: "fork", StargazersCount: 100, Fork: true},
		{Name: "second", StargazersCount: 5},
		{Name: "top", StargazersCount: 7},
	}
	got := Popular(in, 5)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"top", "first", "second"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestGetPopularRepositories_Error(t *testing.T) {
	r := New(&mockAPI{err: &github.HTTPError{StatusCode: http.StatusForbidden}})
	res := r.GetPopularRepositories(context.Background(), "octocat")
	assert.Equal(t, failure.MsgRateLimit, failure.Message(res.Err()))
}

func TestGetUserRepositories_NewSessionEachCall(t *testing.T) {
	api := &mockAPI{repos: []models.Repository{{Name: "foo-tools"}, {Name: "bar"}}}
	r := New(api)

	p1 := r.GetUserRepositories("octocat", "foo")
	p2 := r.GetUserRepositories("octocat", "")
	assert.NotSame(t, p1, p2)

	_, err := p1.LoadNext(context.Background())
	require.NoError(t, err)
	require.Len(t, p1.Items(), 1)
	assert.Equal(t, "foo-tools", p1.Items()[0].Name)
	assert.Equal(t, ListPageSize, api.lastPer)
	assert.Empty(t, p2.Items())
}
