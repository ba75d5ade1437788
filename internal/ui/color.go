package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Renderer is the lipgloss renderer bound to stdout.
var Renderer = newRenderer()

func newRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(os.Stdout)
	if os.Getenv("NO_COLOR") != "" {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// Theme is the set of styles used for CLI output in one color scheme.
type Theme struct {
	Dark bool

	Title  lipgloss.Style
	Accent lipgloss.Style
	Text   lipgloss.Style
	Dim    lipgloss.Style
	Error  lipgloss.Style
	OK     lipgloss.Style

	r *lipgloss.Renderer
}

// NewTheme builds the dark or light palette on r. A nil r means Renderer.
func NewTheme(r *lipgloss.Renderer, dark bool) Theme {
	if r == nil {
		r = Renderer
	}
	if dark {
		return Theme{
			Dark:   true,
			Title:  r.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
			Accent: r.NewStyle().Foreground(lipgloss.Color("14")),
			Text:   r.NewStyle().Foreground(lipgloss.Color("252")),
			Dim:    r.NewStyle().Foreground(lipgloss.Color("245")),
			Error:  r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			OK:     r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
			r:      r,
		}
	}
	return Theme{
		Title:  r.NewStyle().Foreground(lipgloss.Color("0")).Bold(true),
		Accent: r.NewStyle().Foreground(lipgloss.Color("4")),
		Text:   r.NewStyle().Foreground(lipgloss.Color("235")),
		Dim:    r.NewStyle().Foreground(lipgloss.Color("240")),
		Error:  r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		OK:     r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		r:      r,
	}
}

// Language renders name in its language color.
func (t Theme) Language(name string) string {
	return t.r.NewStyle().Foreground(LanguageColor(name)).Render(name)
}

var languageColors = map[string]lipgloss.Color{
	"kotlin":     "#7F52FF",
	"java":       "#ED8B00",
	"javascript": "#F7DF1E",
	"python":     "#3776AB",
	"swift":      "#FA7343",
	"dart":       "#0175C2",
	"go":         "#00ADD8",
	"rust":       "#000000",
	"c++":        "#00599C",
	"c":          "#A8B9CC",
}

// DefaultLanguageColor is used for languages without a known color.
const DefaultLanguageColor = lipgloss.Color("#586069")

// LanguageColor returns the badge color for a language name, ignoring case.
func LanguageColor(language string) lipgloss.Color {
	if c, ok := languageColors[strings.ToLower(language)]; ok {
		return c
	}
	return DefaultLanguageColor
}
