package github

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(ts.URL, "test-token", WithHTTPClient(ts.Client()))
}

func TestGetUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{
			"login": "octocat",
			"id": 583231,
			"avatar_url": "https://avatars.githubusercontent.com/u/583231?v=4",
			"html_url": "https://github.com/octocat",
			"name": "The Octocat",
			"company": "@github",
			"blog": null,
			"public_repos": 8,
			"public_gists": 8,
			"followers": 9000,
			"following": 9,
			"created_at": "2011-01-25T18:44:36Z",
			"updated_at": "2024-01-22T12:00:00Z"
		}`))
	})

	client := newTestServer(t, mux)
	user, err := client.GetUser(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, "octocat", user.Login)
	assert.Equal(t, int64(583231), user.ID)
	require.NotNil(t, user.Name)
	assert.Equal(t, "The Octocat", *user.Name)
	assert.Nil(t, user.Blog)
	assert.Equal(t, 9000, user.Followers)
	assert.Equal(t, "2011-01-25T18:44:36Z", user.CreatedAt)
}

func TestGetUser_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/nobody", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})

	client := newTestServer(t, mux)
	_, err := client.GetUser(context.Background(), "nobody")
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, "/users/nobody", httpErr.Path)
}

func TestNoTokenOmitsAuthorization(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"login":"octocat"}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL+"/", "")
	_, err := client.GetUser(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestSearchUsers(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search/users", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "octo cat", r.URL.Query().Get("q"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"total_count":        2,
			"incomplete_results": false,
			"items": []map[string]any{
				{"login": "octocat", "id": 1},
				{"login": "octocats", "id": 2},
			},
		})
	})

	client := newTestServer(t, mux)
	resp, err := client.SearchUsers(context.Background(), "octo cat", 10)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalCount)
	assert.False(t, resp.IncompleteResults)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "octocats", resp.Items[1].Login)
}

func TestGetUserRepositories(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "30", q.Get("per_page"))
		assert.Equal(t, SortUpdated, q.Get("sort"))
		assert.Equal(t, DirectionDesc, q.Get("direction"))
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "hello-world", "fork": false, "stargazers_count": 42,
			 "owner": {"login": "octocat", "type": "User"}, "language": "Go", "size": 108},
			{"id": 2, "name": "linguist", "fork": true, "description": null}
		]`))
	})

	client := newTestServer(t, mux)
	repos, err := client.GetUserRepositories(context.Background(), "octocat", 2, 30, SortUpdated, DirectionDesc)
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "hello-world", repos[0].Name)
	assert.Equal(t, "User", repos[0].Owner.Type)
	require.NotNil(t, repos[0].Language)
	assert.Equal(t, "Go", *repos[0].Language)
	assert.Equal(t, 108, repos[0].Size)
	assert.True(t, repos[1].Fork)
	assert.Nil(t, repos[1].Description)
}

func TestGetUserRepositories_EmptyPage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	client := newTestServer(t, mux)
	repos, err := client.GetUserRepositories(context.Background(), "octocat", 9, 30, SortUpdated, DirectionDesc)
	require.NoError(t, err)
	assert.NotNil(t, repos)
	assert.Empty(t, repos)
}

func TestGetRepository(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octocat/Hello-World", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 1296269, "name": "Hello-World", "full_name": "octocat/Hello-World",
			"watchers_count": 80, "forks_count": 9, "pushed_at": "2011-01-26T19:06:43Z"}`))
	})

	client := newTestServer(t, mux)
	repo, err := client.GetRepository(context.Background(), "octocat", "Hello-World")
	require.NoError(t, err)
	assert.Equal(t, "octocat/Hello-World", repo.FullName)
	assert.Equal(t, 80, repo.WatchersCount)
	assert.Equal(t, 9, repo.ForksCount)
	assert.Equal(t, "2011-01-26T19:06:43Z", repo.PushedAt)
}

func TestRateLimited(t *testing.T) {
	client := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"API rate limit exceeded"}`))
	}))

	_, err := client.GetRepository(context.Background(), "octocat", "x")
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.StatusCode)
	assert.Contains(t, httpErr.Error(), "API rate limit exceeded")
}

func TestMalformedJSON(t *testing.T) {
	client := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"login":`))
	}))

	_, err := client.GetUser(context.Background(), "octocat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing response")
}
