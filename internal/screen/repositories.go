package screen

import (
	"strings"
	"sync"

	"github.com/kevinmichaelchen/gh-user-search/internal/models"
	"github.com/kevinmichaelchen/gh-user-search/internal/paging"
	"github.com/kevinmichaelchen/gh-user-search/internal/repository"
	"github.com/kevinmichaelchen/gh-user-search/internal/state"
	"github.com/sirupsen/logrus"
)

// RepositoryList pages through a user's repositories, filtered by a
// debounced search query. Every new (username, query) pair replaces the
// published pager; the previous one is closed.
type RepositoryList struct {
	repo      *repository.Repository
	scope     *state.Scope
	debouncer *state.Debouncer[string]

	// SearchQuery is the raw, undebounced input.
	SearchQuery *state.Var[string]
	// Pager is nil until the first debounced query arrives.
	Pager *state.Var[*paging.Pager[models.Repository]]

	mu         sync.Mutex
	username   string
	query      string
	queryReady bool
	built      bool
	builtFor   [2]string
	current    *paging.Pager[models.Repository]
}

func NewRepositoryList(repo *repository.Repository, opts ...Option) *RepositoryList {
	o := buildOptions(opts)
	l := &RepositoryList{
		repo:        repo,
		scope:       state.NewScope(o.ctx),
		SearchQuery: state.NewVar(""),
		Pager:       state.NewVar[*paging.Pager[models.Repository]](nil),
	}
	l.debouncer = state.NewDebouncer(o.clock, SearchDebounce, l.onQuery)
	l.debouncer.Push("")
	return l
}

func (l *RepositoryList) SetUsername(username string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.username = username
	l.rebuild()
}

func (l *RepositoryList) UpdateSearchQuery(query string) {
	l.SearchQuery.Set(query)
	l.debouncer.Push(query)
}

func (l *RepositoryList) Close() {
	l.debouncer.Stop()
	l.scope.Close()

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current != nil {
		l.current.Close()
	}
}

func (l *RepositoryList) onQuery(query string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.query = query
	l.queryReady = true
	l.rebuild()
}

// rebuild must be called with l.mu held.
func (l *RepositoryList) rebuild() {
	if !l.queryReady || !l.scope.Active() {
		return
	}
	key := [2]string{l.username, l.query}
	if l.built && key == l.builtFor {
		return
	}
	l.built, l.builtFor = true, key

	if l.current != nil {
		l.current.Close()
	}

	var next *paging.Pager[models.Repository]
	if strings.TrimSpace(l.username) == "" {
		next = paging.EmptyPager[models.Repository]()
	} else {
		next = l.repo.GetUserRepositories(l.username, l.query)
	}
	logrus.WithFields(logrus.Fields{"username": l.username, "query": l.query}).Debug("repository list session")

	l.current = next
	l.Pager.Set(next)
}
