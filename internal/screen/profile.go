package screen

import (
	"context"

	"github.com/kevinmichaelchen/gh-user-search/internal/models"
	"github.com/kevinmichaelchen/gh-user-search/internal/repository"
	"github.com/kevinmichaelchen/gh-user-search/internal/state"
)

// Profile shows a user and their most starred repositories.
type Profile struct {
	repo  *repository.Repository
	scope *state.Scope

	User         *state.Var[state.State[*models.User]]
	PopularRepos *state.Var[state.State[[]models.Repository]]
}

func NewProfile(repo *repository.Repository, opts ...Option) *Profile {
	o := buildOptions(opts)
	return &Profile{
		repo:         repo,
		scope:        state.NewScope(o.ctx),
		User:         state.NewVar(state.Idle[*models.User]()),
		PopularRepos: state.NewVar(state.Idle[[]models.Repository]()),
	}
}

// Load fetches the user, then their popular repositories.
func (p *Profile) Load(username string) {
	p.scope.Go(func(ctx context.Context) {
		if !publish(ctx, p.User, state.Loading[*models.User]()) {
			return
		}
		st := toState(p.repo.GetUser(ctx, username))
		if !publish(ctx, p.User, st) || st.Kind != state.KindSuccess {
			return
		}

		if !publish(ctx, p.PopularRepos, state.Loading[[]models.Repository]()) {
			return
		}
		publish(ctx, p.PopularRepos, toState(p.repo.GetPopularRepositories(ctx, username)))
	})
}

func (p *Profile) Wait() { p.scope.Wait() }

func (p *Profile) Close() { p.scope.Close() }
