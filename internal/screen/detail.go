package screen

import (
	"context"

	"github.com/kevinmichaelchen/gh-user-search/internal/failure"
	"github.com/kevinmichaelchen/gh-user-search/internal/models"
	"github.com/kevinmichaelchen/gh-user-search/internal/repository"
	"github.com/kevinmichaelchen/gh-user-search/internal/state"
)

// Summarizer writes a short description of a repository.
type Summarizer interface {
	Summarize(ctx context.Context, repo models.Repository) (*models.SummaryResult, error)
}

// RepositoryDetail shows one repository.
type RepositoryDetail struct {
	repo       *repository.Repository
	summarizer Summarizer
	scope      *state.Scope

	Repository *state.Var[state.State[*models.Repository]]
	Summary    *state.Var[state.State[*models.SummaryResult]]
}

func NewRepositoryDetail(repo *repository.Repository, summarizer Summarizer, opts ...Option) *RepositoryDetail {
	o := buildOptions(opts)
	return &RepositoryDetail{
		repo:       repo,
		summarizer: summarizer,
		scope:      state.NewScope(o.ctx),
		Repository: state.NewVar(state.Idle[*models.Repository]()),
		Summary:    state.NewVar(state.Idle[*models.SummaryResult]()),
	}
}

func (d *RepositoryDetail) Load(owner, name string) {
	d.scope.Go(func(ctx context.Context) {
		if !publish(ctx, d.Repository, state.Loading[*models.Repository]()) {
			return
		}
		publish(ctx, d.Repository, toState(d.repo.GetRepository(ctx, owner, name)))
	})
}

// Summarize asks the summarizer about the loaded repository. It does nothing
// without a summarizer or before the repository has loaded.
func (d *RepositoryDetail) Summarize() {
	st := d.Repository.Get()
	if d.summarizer == nil || st.Kind != state.KindSuccess || st.Data == nil {
		return
	}
	repo := *st.Data

	d.scope.Go(func(ctx context.Context) {
		if !publish(ctx, d.Summary, state.Loading[*models.SummaryResult]()) {
			return
		}
		res, err := d.summarizer.Summarize(ctx, repo)
		if err != nil {
			publish(ctx, d.Summary, state.Error[*models.SummaryResult](failure.Message(err)))
			return
		}
		publish(ctx, d.Summary, state.Success(res))
	})
}

func (d *RepositoryDetail) Wait() { d.scope.Wait() }

func (d *RepositoryDetail) Close() { d.scope.Close() }
