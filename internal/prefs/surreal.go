package prefs

import (
	"context"

	"github.com/kevinmichaelchen/gh-user-search/internal/config"
	"github.com/kevinmichaelchen/gh-user-search/internal/surrealdb"
)

// SurrealStore keeps preferences in a SurrealDB table.
type SurrealStore struct {
	db *surrealdb.Client
}

func NewSurrealStore(ctx context.Context, cfg *config.Config) (*SurrealStore, error) {
	db, err := surrealdb.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := db.InitSchema(ctx); err != nil {
		_ = db.Close(ctx)
		return nil, err
	}
	return &SurrealStore{db: db}, nil
}

func (s *SurrealStore) GetBool(ctx context.Context, key string) (bool, bool, error) {
	p, err := s.db.GetPreference(ctx, key)
	if err != nil {
		return false, false, err
	}
	if p == nil {
		return false, false, nil
	}
	return p.Value, true, nil
}

func (s *SurrealStore) SetBool(ctx context.Context, key string, value bool) error {
	return s.db.SetPreference(ctx, key, value)
}

func (s *SurrealStore) Close(ctx context.Context) error {
	return s.db.Close(ctx)
}
