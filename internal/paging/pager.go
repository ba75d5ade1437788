package paging

import (
	"context"
	"errors"
	"sync"

	"github.com/kevinmichaelchen/gh-user-search/internal/state"
	"github.com/sirupsen/logrus"
)

// DefaultPageSize matches GitHub's default per_page.
const DefaultPageSize = 30

// ErrClosed is returned by loads on a pager whose session has ended.
var ErrClosed = errors.New("pager closed")

// Status is the load state a view renders below the list.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusError
	StatusEnd
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusEnd:
		return "end"
	default:
		return "unknown"
	}
}

type LoadState struct {
	Status Status
	Err    error
}

// PagingState is a snapshot of the loaded pages plus the position the
// consumer was last looking at.
type PagingState[T any] struct {
	Pages          []LoadResult[T]
	AnchorPosition *int
}

// ClosestPage returns the loaded page that contains the item at anchor,
// clamped to the first or last page.
func (s PagingState[T]) ClosestPage(anchor int) (LoadResult[T], bool) {
	if len(s.Pages) == 0 {
		return LoadResult[T]{}, false
	}
	if anchor < 0 {
		return s.Pages[0], true
	}
	seen := 0
	for _, p := range s.Pages {
		seen += len(p.Data)
		if anchor < seen {
			return p, true
		}
	}
	return s.Pages[len(s.Pages)-1], true
}

// RefreshKey picks the key to reload around the anchor: the closest page's
// prevKey+1, falling back to its nextKey-1. Nil means start over.
func RefreshKey[T any](s PagingState[T]) *int {
	if s.AnchorPosition == nil {
		return nil
	}
	page, ok := s.ClosestPage(*s.AnchorPosition)
	if !ok {
		return nil
	}
	if page.PrevKey != nil {
		return intPtr(*page.PrevKey + 1)
	}
	if page.NextKey != nil {
		return intPtr(*page.NextKey - 1)
	}
	return nil
}

type Config struct {
	PageSize int
}

// Pager accumulates pages from a Source. Pages are append-only for the life
// of the pager; a new session means a new Pager.
type Pager[T any] struct {
	source Source[T]
	cfg    Config

	// State is published on every load transition.
	State *state.Var[LoadState]

	ctx    context.Context
	cancel context.CancelFunc

	loadMu sync.Mutex // serializes loads

	mu      sync.RWMutex
	pages   []LoadResult[T]
	nextKey *int
	prevKey *int
	// initialKey is where the first load starts; nil means FirstPage.
	initialKey *int
	started    bool
	ended      bool
	anchor     *int
}

func NewPager[T any](source Source[T], cfg Config) *Pager[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pager[T]{
		source: source,
		cfg:    cfg,
		State:  state.NewVar(LoadState{Status: StatusIdle}),
		ctx:    ctx,
		cancel: cancel,
	}
}

// EmptyPager returns a pager that has no items and is already at its end.
func EmptyPager[T any]() *Pager[T] {
	p := NewPager[T](nil, Config{})
	p.started = true
	p.ended = true
	p.State.Set(LoadState{Status: StatusEnd})
	return p
}

// LoadNext appends the next page. It returns the number of items added; at
// the end of the data it returns 0 and no error.
func (p *Pager[T]) LoadNext(ctx context.Context) (int, error) {
	p.loadMu.Lock()
	defer p.loadMu.Unlock()
	return p.loadNext(ctx)
}

func (p *Pager[T]) loadNext(ctx context.Context) (int, error) {
	p.mu.RLock()
	ended := p.ended
	key := p.nextKey
	if !p.started {
		key = p.initialKey
	}
	p.mu.RUnlock()
	if ended {
		return 0, nil
	}

	res, err := p.load(ctx, key)
	if err != nil {
		return 0, err
	}

	p.mu.Lock()
	if !p.started {
		p.prevKey = res.PrevKey
	}
	p.started = true
	p.pages = append(p.pages, res)
	p.nextKey = res.NextKey
	p.ended = res.NextKey == nil
	p.mu.Unlock()

	p.publishIdle()
	return len(res.Data), nil
}

// LoadPrevious prepends the page before the first loaded one, if any. It
// only has work to do after a Refresh that started past the first page.
func (p *Pager[T]) LoadPrevious(ctx context.Context) (int, error) {
	p.loadMu.Lock()
	defer p.loadMu.Unlock()

	p.mu.RLock()
	key := p.prevKey
	p.mu.RUnlock()
	if key == nil {
		return 0, nil
	}

	res, err := p.load(ctx, key)
	if err != nil {
		return 0, err
	}

	p.mu.Lock()
	p.pages = append([]LoadResult[T]{res}, p.pages...)
	p.prevKey = res.PrevKey
	p.mu.Unlock()

	p.publishIdle()
	return len(res.Data), nil
}

// Retry re-issues the load that last failed. Keys only advance on success,
// so this is LoadNext under another name.
func (p *Pager[T]) Retry(ctx context.Context) (int, error) {
	return p.LoadNext(ctx)
}

// Refresh drops every loaded page and reloads around the last anchor
// position set with SetAnchor.
func (p *Pager[T]) Refresh(ctx context.Context) (int, error) {
	p.loadMu.Lock()
	defer p.loadMu.Unlock()

	if p.ctx.Err() != nil {
		return 0, ErrClosed
	}

	p.mu.Lock()
	key := RefreshKey(PagingState[T]{Pages: p.pages, AnchorPosition: p.anchor})
	if p.source != nil {
		p.pages = nil
		p.prevKey = nil
		p.nextKey = nil
		p.initialKey = key
		p.started = false
		p.ended = false
		p.anchor = nil
	}
	p.mu.Unlock()

	logrus.WithField("key", derefOr(key, FirstPage)).Debug("refreshing pager")
	return p.loadNext(ctx)
}

// SetAnchor records the index of the item the consumer is looking at.
func (p *Pager[T]) SetAnchor(position int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.anchor = &position
}

// Items returns every loaded item in page order.
func (p *Pager[T]) Items() []T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var out []T
	for _, page := range p.pages {
		out = append(out, page.Data...)
	}
	return out
}

// EndReached reports whether the upstream has no further pages.
func (p *Pager[T]) EndReached() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.ended
}

// Err returns the error of the last load, if it failed.
func (p *Pager[T]) Err() error {
	return p.State.Get().Err
}

// Close ends the session. In-flight loads are cancelled and their results
// discarded.
func (p *Pager[T]) Close() {
	p.cancel()
}

func (p *Pager[T]) load(ctx context.Context, key *int) (LoadResult[T], error) {
	if p.ctx.Err() != nil {
		return LoadResult[T]{}, ErrClosed
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(p.ctx, cancel)
	defer stop()

	p.State.Set(LoadState{Status: StatusLoading})
	res := p.source.Load(ctx, LoadParams{Key: key, LoadSize: p.cfg.PageSize})

	if p.ctx.Err() != nil {
		p.State.Set(LoadState{Status: StatusError, Err: ErrClosed})
		return LoadResult[T]{}, ErrClosed
	}
	if res.Err != nil {
		logrus.WithError(res.Err).WithField("key", derefOr(key, FirstPage)).Warn("page load failed")
		p.State.Set(LoadState{Status: StatusError, Err: res.Err})
		return LoadResult[T]{}, res.Err
	}
	return res, nil
}

func (p *Pager[T]) publishIdle() {
	if p.EndReached() {
		p.State.Set(LoadState{Status: StatusEnd})
		return
	}
	p.State.Set(LoadState{Status: StatusIdle})
}

func derefOr(n *int, fallback int) int {
	if n == nil {
		return fallback
	}
	return *n
}
