package models

// Owner is the account summary embedded in a repository payload.
type Owner struct {
	Login     string `json:"login" yaml:"login"`
	ID        int64  `json:"id" yaml:"id"`
	AvatarURL string `json:"avatar_url" yaml:"avatar_url"`
	HTMLURL   string `json:"html_url" yaml:"html_url"`
	Type      string `json:"type" yaml:"type"`
}

type Repository struct {
	ID              int64   `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name"`
	FullName        string  `json:"full_name" yaml:"full_name"`
	HTMLURL         string  `json:"html_url" yaml:"html_url"`
	Owner           Owner   `json:"owner" yaml:"owner"`
	Description     *string `json:"description" yaml:"description,omitempty"`
	Language        *string `json:"language" yaml:"language,omitempty"`
	Fork            bool    `json:"fork" yaml:"fork"`
	StargazersCount int     `json:"stargazers_count" yaml:"stargazers_count"`
	WatchersCount   int     `json:"watchers_count" yaml:"watchers_count"`
	ForksCount      int     `json:"forks_count" yaml:"forks_count"`
	OpenIssuesCount int     `json:"open_issues_count" yaml:"open_issues_count"`
	// Size is reported by GitHub in kilobytes.
	Size      int    `json:"size" yaml:"size"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`
	PushedAt  string `json:"pushed_at" yaml:"pushed_at"`
}

// SummaryResult is the structured answer the LLM returns for a repository.
type SummaryResult struct {
	Summary    string   `json:"summary" yaml:"summary"`
	Categories []string `json:"categories" yaml:"categories"`
}
