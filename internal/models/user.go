package models

type User struct {
	Login           string  `json:"login" yaml:"login"`
	ID              int64   `json:"id" yaml:"id"`
	AvatarURL       string  `json:"avatar_url" yaml:"avatar_url"`
	HTMLURL         string  `json:"html_url" yaml:"html_url"`
	Name            *string `json:"name" yaml:"name,omitempty"`
	Company         *string `json:"company" yaml:"company,omitempty"`
	Blog            *string `json:"blog" yaml:"blog,omitempty"`
	Location        *string `json:"location" yaml:"location,omitempty"`
	Email           *string `json:"email" yaml:"email,omitempty"`
	Bio             *string `json:"bio" yaml:"bio,omitempty"`
	TwitterUsername *string `json:"twitter_username" yaml:"twitter_username,omitempty"`
	PublicRepos     int     `json:"public_repos" yaml:"public_repos"`
	PublicGists     int     `json:"public_gists" yaml:"public_gists"`
	Followers       int     `json:"followers" yaml:"followers"`
	Following       int     `json:"following" yaml:"following"`
	CreatedAt       string  `json:"created_at" yaml:"created_at"`
	UpdatedAt       string  `json:"updated_at" yaml:"updated_at"`
}

// SearchUsersResponse is the envelope returned by GET /search/users.
type SearchUsersResponse struct {
	TotalCount        int    `json:"total_count" yaml:"total_count"`
	IncompleteResults bool   `json:"incomplete_results" yaml:"incomplete_results"`
	Items             []User `json:"items" yaml:"items"`
}
