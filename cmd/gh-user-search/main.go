package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/kevinmichaelchen/gh-user-search/internal/config"
	"github.com/kevinmichaelchen/gh-user-search/internal/failure"
	"github.com/kevinmichaelchen/gh-user-search/internal/github"
	"github.com/kevinmichaelchen/gh-user-search/internal/llm"
	"github.com/kevinmichaelchen/gh-user-search/internal/models"
	"github.com/kevinmichaelchen/gh-user-search/internal/paging"
	"github.com/kevinmichaelchen/gh-user-search/internal/prefs"
	"github.com/kevinmichaelchen/gh-user-search/internal/repository"
	"github.com/kevinmichaelchen/gh-user-search/internal/screen"
	"github.com/kevinmichaelchen/gh-user-search/internal/state"
	"github.com/kevinmichaelchen/gh-user-search/internal/ui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	var output string

	root := &cobra.Command{
		Use:          "gh-user-search",
		Short:        "Look up GitHub users and browse their repositories",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return validateOutput(output)
		},
	}
	root.PersistentFlags().StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml")

	root.AddCommand(
		searchCmd(&output),
		profileCmd(&output),
		reposCmd(&output),
		repoCmd(&output),
		themeCmd(&output),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// app is what every subcommand needs: config, the repository layer, the
// theme and a printer styled with it.
type app struct {
	cfg     *config.Config
	repo    *repository.Repository
	theme   *prefs.ThemeManager
	printer *ui.Printer
	output  string
}

func newApp(cmd *cobra.Command, output string) (*app, error) {
	ctx := cmd.Context()
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	a := &app{
		cfg:    cfg,
		repo:   repository.New(github.NewClient(cfg.GitHubAPIURL, cfg.GitHubToken)),
		output: output,
	}

	store, err := prefs.Open(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Warn("opening preferences, using the light theme")
	} else {
		a.theme = prefs.NewThemeManager(store)
		a.theme.Start(ctx)
		select {
		case <-a.theme.Loaded():
		case <-ctx.Done():
			_ = a.theme.Close(context.Background())
			return nil, ctx.Err()
		}
	}

	a.printer = &ui.Printer{W: cmd.OutOrStdout(), Theme: ui.NewTheme(nil, a.darkMode())}
	return a, nil
}

func (a *app) darkMode() bool {
	return a.theme != nil && a.theme.IsDarkMode.Get()
}

func (a *app) Close() {
	if a.theme == nil {
		return
	}
	if err := a.theme.Close(context.Background()); err != nil {
		logrus.WithError(err).Warn("closing preferences")
	}
}

func setupLogging(level string) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithField("level", level).Warn("unknown LOG_LEVEL, using warn")
		lvl = logrus.WarnLevel
	}
	logrus.SetLevel(lvl)
}

// failed prints msg in the error style and returns it as the command error.
func (a *app) failed(msg string) error {
	if a.output == outputText {
		a.printer.Error(msg)
	}
	return errors.New(msg)
}

type searchOutput struct {
	User              *models.User  `json:"user" yaml:"user"`
	SimilarUsers      []models.User `json:"similar_users" yaml:"similar_users"`
	SimilarUsersError string        `json:"similar_users_error,omitempty" yaml:"similar_users_error,omitempty"`
}

func searchCmd(output *string) *cobra.Command {
	return &cobra.Command{
		Use:   "search <username>",
		Short: "Look up a user and list similar accounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, *output)
			if err != nil {
				return err
			}
			defer a.Close()

			s := screen.NewSearch(a.repo, screen.WithContext(cmd.Context()))
			defer s.Close()

			s.SetSearchText(args[0])
			s.Submit()
			s.Wait()

			user := s.User.Get()
			switch user.Kind {
			case state.KindIdle:
				return errors.New("username must not be blank")
			case state.KindError:
				return a.failed(user.Message)
			}

			similar := s.SimilarUsers.Get()
			out := searchOutput{User: user.Data, SimilarUsers: similar.Data}
			if similar.Kind == state.KindError {
				out.SimilarUsersError = similar.Message
			}

			if a.output != outputText {
				return emit(cmd.OutOrStdout(), a.output, out)
			}
			a.printer.User(user.Data)
			if similar.Kind == state.KindError {
				a.printer.Error(similar.Message)
				return nil
			}
			a.printer.SimilarUsers(similar.Data)
			return nil
		},
	}
}

type profileOutput struct {
	User         *models.User        `json:"user" yaml:"user"`
	PopularRepos []models.Repository `json:"popular_repositories" yaml:"popular_repositories"`
	ReposError   string              `json:"popular_repositories_error,omitempty" yaml:"popular_repositories_error,omitempty"`
}

func profileCmd(output *string) *cobra.Command {
	return &cobra.Command{
		Use:   "profile <username>",
		Short: "Show a user and their most starred repositories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, *output)
			if err != nil {
				return err
			}
			defer a.Close()

			p := screen.NewProfile(a.repo, screen.WithContext(cmd.Context()))
			defer p.Close()

			username := strings.TrimSpace(args[0])
			if username == "" {
				return errors.New("username must not be blank")
			}
			p.Load(username)
			p.Wait()

			user := p.User.Get()
			if user.Kind == state.KindError {
				return a.failed(user.Message)
			}

			popular := p.PopularRepos.Get()
			out := profileOutput{User: user.Data, PopularRepos: popular.Data}
			if popular.Kind == state.KindError {
				out.ReposError = popular.Message
			}

			if a.output != outputText {
				return emit(cmd.OutOrStdout(), a.output, out)
			}
			a.printer.User(user.Data)
			if popular.Kind == state.KindError {
				a.printer.Error(popular.Message)
				return nil
			}
			a.printer.PopularRepositories(popular.Data)
			return nil
		},
	}
}

type reposOutput struct {
	Repositories []models.Repository `json:"repositories" yaml:"repositories"`
	EndReached   bool                `json:"end_reached" yaml:"end_reached"`
}

func reposCmd(output *string) *cobra.Command {
	var (
		query string
		pages int
	)

	cmd := &cobra.Command{
		Use:   "repos <username>",
		Short: "List a user's repositories, most recently updated first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pages < 1 {
				return fmt.Errorf("--pages must be at least 1, got %d", pages)
			}
			a, err := newApp(cmd, *output)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := cmd.Context()
			l := screen.NewRepositoryList(a.repo, screen.WithContext(ctx))
			defer l.Close()

			l.SetUsername(strings.TrimSpace(args[0]))
			l.UpdateSearchQuery(query)

			pager, err := awaitPager(ctx, l)
			if err != nil {
				return err
			}
			for i := 0; i < pages && !pager.EndReached(); i++ {
				if _, err := pager.LoadNext(ctx); err != nil {
					return a.failed(failure.Message(err))
				}
			}

			out := reposOutput{Repositories: pager.Items(), EndReached: pager.EndReached()}
			if out.Repositories == nil {
				out.Repositories = []models.Repository{}
			}
			if a.output != outputText {
				return emit(cmd.OutOrStdout(), a.output, out)
			}

			if len(out.Repositories) == 0 {
				fmt.Fprintln(a.printer.W, a.printer.Theme.Dim.Render("No repositories found"))
			}
			for _, r := range out.Repositories {
				a.printer.RepositoryLine(r)
			}
			if !out.EndReached {
				fmt.Fprintln(a.printer.W, a.printer.Theme.Dim.Render(fmt.Sprintf("More available, rerun with --pages %d", pages+1)))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "Only show repositories whose name, description or language contains this")
	cmd.Flags().IntVar(&pages, "pages", 1, "Number of pages to fetch")
	return cmd
}

// awaitPager waits for the list's first pager, which appears once the
// search query has been debounced.
func awaitPager(ctx context.Context, l *screen.RepositoryList) (*paging.Pager[models.Repository], error) {
	ch, cancel := l.Pager.Subscribe()
	defer cancel()
	for {
		select {
		case p := <-ch:
			if p != nil {
				return p, nil
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

type repoOutput struct {
	Repository *models.Repository    `json:"repository" yaml:"repository"`
	Summary    *models.SummaryResult `json:"summary,omitempty" yaml:"summary,omitempty"`
}

func repoCmd(output *string) *cobra.Command {
	var summarize bool

	cmd := &cobra.Command{
		Use:   "repo <owner> <name>",
		Short: "Show one repository",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, *output)
			if err != nil {
				return err
			}
			defer a.Close()

			var summarizer screen.Summarizer
			if summarize {
				if !a.cfg.SummariesEnabled() {
					return errors.New("--summarize needs LLM_API_KEY")
				}
				summarizer = llm.NewClient(a.cfg.LLMBaseURL, a.cfg.LLMAPIKey, a.cfg.LLMModel)
			}

			d := screen.NewRepositoryDetail(a.repo, summarizer, screen.WithContext(cmd.Context()))
			defer d.Close()

			d.Load(args[0], args[1])
			d.Wait()

			repo := d.Repository.Get()
			if repo.Kind == state.KindError {
				return a.failed(repo.Message)
			}

			d.Summarize()
			d.Wait()
			summary := d.Summary.Get()
			if summary.Kind == state.KindError {
				logrus.WithField("repo", repo.Data.FullName).Warn(summary.Message)
			}

			out := repoOutput{Repository: repo.Data, Summary: summary.Data}
			if a.output != outputText {
				return emit(cmd.OutOrStdout(), a.output, out)
			}
			a.printer.Repository(repo.Data)
			switch summary.Kind {
			case state.KindSuccess:
				a.printer.Summary(summary.Data)
			case state.KindError:
				a.printer.Error("Summary unavailable: " + summary.Message)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&summarize, "summarize", false, "Ask the configured LLM for a short summary")
	return cmd
}

type themeOutput struct {
	DarkMode bool `json:"dark_mode" yaml:"dark_mode"`
}

func themeCmd(output *string) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [on|off|toggle]",
		Short:     "Show or change the dark mode preference",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"on", "off", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, *output)
			if err != nil {
				return err
			}
			defer a.Close()
			if a.theme == nil {
				return errors.New("preferences are unavailable, see the log for details")
			}

			m := screen.NewMain(a.theme, a.theme.IsDarkMode, screen.WithContext(cmd.Context()))
			defer m.Close()

			if len(args) == 1 {
				switch args[0] {
				case "on":
					m.SetDarkMode(true)
				case "off":
					m.SetDarkMode(false)
				case "toggle":
					m.ToggleDarkMode()
				}
				m.Wait()
			}

			dark := m.IsDarkMode.Get()
			if a.output != outputText {
				return emit(cmd.OutOrStdout(), a.output, themeOutput{DarkMode: dark})
			}
			a.printer.Theme = ui.NewTheme(nil, dark)
			a.printer.DarkMode(dark)
			return nil
		},
	}
}
