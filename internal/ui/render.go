package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kevinmichaelchen/gh-user-search/internal/models"
)

// Printer writes the text views of the CLI.
type Printer struct {
	W     io.Writer
	Theme Theme
	// Now is used for relative times; nil means time.Now.
	Now func() time.Time
}

func (p *Printer) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

func (p *Printer) line(format string, args ...any) {
	_, _ = fmt.Fprintf(p.W, format+"\n", args...)
}

// Error prints a user-facing failure message.
func (p *Printer) Error(msg string) {
	p.line("%s", p.Theme.Error.Render(msg))
}

func (p *Printer) User(u *models.User) {
	title := u.Login
	if u.Name != nil && *u.Name != "" {
		title = fmt.Sprintf("%s (%s)", *u.Name, u.Login)
	}
	p.line("%s", p.Theme.Title.Render(title))
	p.line("%s", p.Theme.Accent.Render(u.HTMLURL))
	if u.Bio != nil && *u.Bio != "" {
		p.line("%s", p.Theme.Text.Render(*u.Bio))
	}

	for _, f := range []struct {
		label string
		value *string
	}{
		{"Company", u.Company},
		{"Location", u.Location},
		{"Blog", u.Blog},
		{"Email", u.Email},
		{"Twitter", u.TwitterUsername},
	} {
		if f.value != nil && *f.value != "" {
			p.line("%s %s", p.Theme.Dim.Render(f.label+":"), *f.value)
		}
	}

	p.line("%s followers · %s following · %s repos · %s gists",
		FormatNumber(u.Followers), FormatNumber(u.Following),
		FormatNumber(u.PublicRepos), FormatNumber(u.PublicGists))
	if u.CreatedAt != "" {
		p.line("%s", p.Theme.Dim.Render("Joined "+FormatDate(u.CreatedAt)))
	}
}

// SimilarUsers prints the logins of related accounts.
func (p *Printer) SimilarUsers(users []models.User) {
	p.line("")
	p.line("%s", p.Theme.Title.Render("Similar users"))
	if len(users) == 0 {
		p.line("%s", p.Theme.Dim.Render("  none"))
		return
	}
	for _, u := range users {
		p.line("  %s %s", u.Login, p.Theme.Dim.Render(u.HTMLURL))
	}
}

func (p *Printer) PopularRepositories(repos []models.Repository) {
	p.line("")
	p.line("%s", p.Theme.Title.Render("Popular repositories"))
	if len(repos) == 0 {
		p.line("%s", p.Theme.Dim.Render("  none"))
		return
	}
	for _, r := range repos {
		p.RepositoryLine(r)
	}
}

// RepositoryLine prints the one-line summary used in lists.
func (p *Printer) RepositoryLine(r models.Repository) {
	var meta []string
	if r.Language != nil && *r.Language != "" {
		meta = append(meta, p.Theme.Language(*r.Language))
	}
	meta = append(meta, "★ "+FormatNumber(r.StargazersCount))
	if r.UpdatedAt != "" {
		meta = append(meta, "updated "+FormatRelativeTime(r.UpdatedAt, p.now()))
	}
	p.line("  %s  %s", p.Theme.Accent.Render(r.Name), p.Theme.Dim.Render(strings.Join(meta, " · ")))
	if r.Description != nil && *r.Description != "" {
		p.line("    %s", p.Theme.Text.Render(*r.Description))
	}
}

func (p *Printer) Repository(r *models.Repository) {
	p.line("%s", p.Theme.Title.Render(r.FullName))
	p.line("%s", p.Theme.Accent.Render(r.HTMLURL))
	if r.Description != nil && *r.Description != "" {
		p.line("%s", p.Theme.Text.Render(*r.Description))
	}
	if r.Language != nil && *r.Language != "" {
		p.line("%s %s", p.Theme.Dim.Render("Language:"), p.Theme.Language(*r.Language))
	}
	if r.Fork {
		p.line("%s", p.Theme.Dim.Render("Fork"))
	}
	p.line("★ %s · %s forks · %s watchers · %s open issues",
		FormatNumber(r.StargazersCount), FormatNumber(r.ForksCount),
		FormatNumber(r.WatchersCount), FormatNumber(r.OpenIssuesCount))
	p.line("%s %d KB", p.Theme.Dim.Render("Size:"), r.Size)
	if r.CreatedAt != "" {
		p.line("%s %s", p.Theme.Dim.Render("Created:"), FormatDate(r.CreatedAt))
	}
	if r.PushedAt != "" {
		p.line("%s %s", p.Theme.Dim.Render("Last push:"), FormatRelativeTime(r.PushedAt, p.now()))
	}
}

func (p *Printer) Summary(s *models.SummaryResult) {
	p.line("")
	p.line("%s", p.Theme.Title.Render("Summary"))
	p.line("%s", p.Theme.Text.Render(s.Summary))
	if len(s.Categories) > 0 {
		p.line("%s %s", p.Theme.Dim.Render("Tags:"), strings.Join(s.Categories, ", "))
	}
}

// DarkMode prints the current theme setting.
func (p *Printer) DarkMode(dark bool) {
	if dark {
		p.line("Dark mode: %s", p.Theme.OK.Render("on"))
		return
	}
	p.line("Dark mode: %s", p.Theme.Dim.Render("off"))
}
