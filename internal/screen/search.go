package screen

import (
	"context"
	"strings"

	"github.com/kevinmichaelchen/gh-user-search/internal/models"
	"github.com/kevinmichaelchen/gh-user-search/internal/repository"
	"github.com/kevinmichaelchen/gh-user-search/internal/state"
	"github.com/sirupsen/logrus"
)

// Search looks up a username and lists similar accounts.
type Search struct {
	repo  *repository.Repository
	clock state.Clock
	scope *state.Scope

	SearchText   *state.Var[string]
	User         *state.Var[state.State[*models.User]]
	SimilarUsers *state.Var[state.State[[]models.User]]
	Refreshing   *state.Var[bool]
}

func NewSearch(repo *repository.Repository, opts ...Option) *Search {
	o := buildOptions(opts)
	return &Search{
		repo:         repo,
		clock:        o.clock,
		scope:        state.NewScope(o.ctx),
		SearchText:   state.NewVar(""),
		User:         state.NewVar(state.Idle[*models.User]()),
		SimilarUsers: state.NewVar(state.Idle[[]models.User]()),
		Refreshing:   state.NewVar(false),
	}
}

func (s *Search) SetSearchText(text string) {
	s.SearchText.Set(text)
}

// Submit looks up the trimmed search text. Blank text is ignored. A newer
// submission does not cancel one already in flight.
func (s *Search) Submit() {
	username := strings.TrimSpace(s.SearchText.Get())
	if username == "" {
		return
	}

	s.scope.Go(func(ctx context.Context) {
		if !publish(ctx, s.User, state.Loading[*models.User]()) {
			return
		}
		s.lookup(ctx, username)
	})
}

// Refresh re-runs the lookup for the shown user, or for the search text when
// no user is shown, after MinRefreshDuration.
func (s *Search) Refresh() {
	username := strings.TrimSpace(s.SearchText.Get())
	if u := s.User.Get(); u.Kind == state.KindSuccess && u.Data != nil {
		username = u.Data.Login
	}
	if username == "" {
		return
	}

	s.scope.Go(func(ctx context.Context) {
		if !publish(ctx, s.Refreshing, true) {
			return
		}
		if err := state.Sleep(ctx, s.clock, MinRefreshDuration); err != nil {
			return
		}
		s.lookup(ctx, username)
		publish(ctx, s.Refreshing, false)
	})
}

// Reset clears the user and similar users.
func (s *Search) Reset() {
	s.User.Set(state.Idle[*models.User]())
	s.SimilarUsers.Set(state.Idle[[]models.User]())
}

// Wait blocks until every submitted action has finished.
func (s *Search) Wait() { s.scope.Wait() }

func (s *Search) Close() { s.scope.Close() }

func (s *Search) lookup(ctx context.Context, username string) {
	st := toState(s.repo.GetUser(ctx, username))
	if !publish(ctx, s.User, st) {
		return
	}
	if st.Kind == state.KindSuccess {
		s.searchSimilar(ctx, username)
	}
}

func (s *Search) searchSimilar(ctx context.Context, query string) {
	st := toState(s.repo.SearchUsers(ctx, query))
	if st.Kind == state.KindSuccess {
		st.Data = SimilarUsers(st.Data, query, SimilarUsersLimit)
	}
	logrus.WithFields(logrus.Fields{"query": query, "state": st.Kind}).Debug("similar users")
	publish(ctx, s.SimilarUsers, st)
}

// SimilarUsers drops the account whose login equals query, ignoring case,
// and keeps at most limit.
func SimilarUsers(users []models.User, query string, limit int) []models.User {
	out := make([]models.User, 0, limit)
	for _, u := range users {
		if strings.EqualFold(u.Login, query) {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, u)
	}
	return out
}
