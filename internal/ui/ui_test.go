package ui

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/kevinmichaelchen/gh-user-search/internal/models"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{1540, "1.5K"},
		{999_999, "1000.0K"},
		{1_000_000, "1.0M"},
		{2_345_678, "2.3M"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in), "FormatNumber(%d)", tt.in)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Jan 2011", FormatDate("2011-01-15T12:00:00Z"))
	assert.Equal(t, "2011-01", FormatDate("2011-01-25 18:44"))
	assert.Equal(t, "2011", FormatDate("2011"))
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) string { return now.Add(-d).Format(time.RFC3339) }

	tests := []struct {
		in   string
		want string
	}{
		{at(90 * 24 * time.Hour), "3 months ago"},
		{at(31 * 24 * time.Hour), "1 months ago"},
		{at(30 * 24 * time.Hour), "30 days ago"},
		{at(25 * time.Hour), "1 days ago"},
		{at(5 * time.Hour), "5 hours ago"},
		{at(59 * time.Minute), "59 minutes ago"},
		{at(30 * time.Second), "Just now"},
		{at(-time.Hour), "Just now"},
		{"yesterday", "Recently"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRelativeTime(tt.in, now), tt.in)
	}
}

func TestLanguageColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#00ADD8"), LanguageColor("Go"))
	assert.Equal(t, lipgloss.Color("#00599C"), LanguageColor("C++"))
	assert.Equal(t, DefaultLanguageColor, LanguageColor("COBOL"))
	assert.Equal(t, DefaultLanguageColor, LanguageColor(""))
}

func plainPrinter(dark bool) (*Printer, *bytes.Buffer) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	var buf bytes.Buffer
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return &Printer{W: &buf, Theme: NewTheme(r, dark), Now: func() time.Time { return now }}, &buf
}

func TestPrinterUser(t *testing.T) {
	p, buf := plainPrinter(true)
	name, bio := "The Octocat", ""
	p.User(&models.User{
		Login:     "octocat",
		Name:      &name,
		Bio:       &bio,
		HTMLURL:   "https://github.com/octocat",
		Followers: 9000,
		Following: 9,
		CreatedAt: "2011-01-15T12:00:00Z",
	})

	out := buf.String()
	assert.Contains(t, out, "The Octocat (octocat)")
	assert.Contains(t, out, "9.0K followers · 9 following")
	assert.Contains(t, out, "Joined Jan 2011")
	assert.NotContains(t, out, "Company:")
}

func TestPrinterRepositoryLine(t *testing.T) {
	p, buf := plainPrinter(false)
	lang, desc := "Go", "A tool"
	p.RepositoryLine(models.Repository{
		Name:            "tools",
		Language:        &lang,
		Description:     &desc,
		StargazersCount: 1200,
		UpdatedAt:       "2024-05-29T12:00:00Z",
	})

	out := buf.String()
	assert.Contains(t, out, "tools")
	assert.Contains(t, out, "Go · ★ 1.2K · updated 3 days ago")
	assert.Contains(t, out, "A tool")
}

func TestPrinterEmptyLists(t *testing.T) {
	p, buf := plainPrinter(true)
	p.SimilarUsers(nil)
	p.PopularRepositories(nil)
	assert.Equal(t, "\nSimilar users\n  none\n\nPopular repositories\n  none\n", buf.String())
}

func TestPrinterDarkMode(t *testing.T) {
	p, buf := plainPrinter(false)
	p.DarkMode(true)
	p.DarkMode(false)
	assert.Equal(t, "Dark mode: on\nDark mode: off\n", buf.String())
}

func TestNewThemeDefaultsToRenderer(t *testing.T) {
	assert.True(t, NewTheme(nil, true).Dark)
	assert.False(t, NewTheme(nil, false).Dark)
}
