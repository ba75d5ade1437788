package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/kevinmichaelchen/gh-user-search/internal/models"
	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the public GitHub REST endpoint.
const DefaultBaseURL = "https://api.github.com"

// Sort keys and directions accepted by GET /users/{username}/repos.
const (
	SortUpdated   = "updated"
	SortCreated   = "created"
	SortPushed    = "pushed"
	SortFullName  = "full_name"
	DirectionDesc = "desc"
	DirectionAsc  = "asc"
)

// API is the read-only surface the rest of the app depends on.
type API interface {
	GetUser(ctx context.Context, username string) (*models.User, error)
	SearchUsers(ctx context.Context, query string, perPage int) (*models.SearchUsersResponse, error)
	GetUserRepositories(ctx context.Context, username string, page, perPage int, sort, direction string) ([]models.Repository, error)
	GetRepository(ctx context.Context, owner, repo string) (*models.Repository, error)
}

// Client is a thin wrapper around the GitHub REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

var _ API = (*Client)(nil)

type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient returns a client for baseURL. An empty baseURL means the public
// API; an empty token sends unauthenticated requests.
func NewClient(baseURL, token string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HTTPError is returned for any non-2xx response.
type HTTPError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("GitHub API %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

func (c *Client) GetUser(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, "/users/"+url.PathEscape(username), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) SearchUsers(ctx context.Context, query string, perPage int) (*models.SearchUsersResponse, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("per_page", strconv.Itoa(perPage))

	var resp models.SearchUsersResponse
	if err := c.getJSON(ctx, "/search/users", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetUserRepositories returns one page of a user's repositories, sorted
// server-side by sort/direction.
func (c *Client) GetUserRepositories(ctx context.Context, username string, page, perPage int, sort, direction string) ([]models.Repository, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("sort", sort)
	q.Set("direction", direction)

	var repos []models.Repository
	if err := c.getJSON(ctx, "/users/"+url.PathEscape(username)+"/repos", q, &repos); err != nil {
		return nil, err
	}
	if repos == nil {
		repos = []models.Repository{}
	}
	return repos, nil
}

func (c *Client) GetRepository(ctx context.Context, owner, repo string) (*models.Repository, error) {
	var r models.Repository
	path := fmt.Sprintf("/repos/%s/%s", url.PathEscape(owner), url.PathEscape(repo))
	if err := c.getJSON(ctx, path, nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// --- internal ---

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	logrus.WithFields(logrus.Fields{"method": req.Method, "path": path}).Debug("github request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Method:     req.Method,
			Path:       path,
			Body:       string(body),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}
