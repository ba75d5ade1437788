package surrealdb

import (
	"context"
	"fmt"
	"time"

	"github.com/kevinmichaelchen/gh-user-search/internal/config"
	sdk "github.com/surrealdb/surrealdb.go"
)

type Client struct {
	db *sdk.DB
}

func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	db, err := sdk.FromEndpointURLString(ctx, cfg.SurrealURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to SurrealDB: %w", err)
	}

	if _, err := db.SignIn(ctx, sdk.Auth{
		Namespace: cfg.SurrealNS,
		Database:  cfg.SurrealDB,
		Username:  cfg.SurrealUser,
		Password:  cfg.SurrealPass,
	}); err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("signing in: %w", err)
	}

	if err := db.Use(ctx, cfg.SurrealNS, cfg.SurrealDB); err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("selecting ns/db: %w", err)
	}

	return &Client{db: db}, nil
}

func (c *Client) Close(ctx context.Context) error {
	return c.db.Close(ctx)
}

func (c *Client) InitSchema(ctx context.Context) error {
	schema := `
DEFINE TABLE IF NOT EXISTS preference SCHEMAFULL;

DEFINE FIELD IF NOT EXISTS key        ON TABLE preference TYPE string;
DEFINE FIELD IF NOT EXISTS value      ON TABLE preference TYPE bool;
DEFINE FIELD IF NOT EXISTS updated_at ON TABLE preference TYPE datetime;

DEFINE INDEX IF NOT EXISTS idx_key ON TABLE preference FIELDS key UNIQUE;
`
	_, err := sdk.Query[any](ctx, c.db, schema, nil)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

// Preference is one stored boolean setting.
type Preference struct {
	Key   string `json:"key"`
	Value bool   `json:"value"`
}

// GetPreference returns nil when key has never been written.
func (c *Client) GetPreference(ctx context.Context, key string) (*Preference, error) {
	results, err := sdk.Query[[]Preference](ctx, c.db,
		`SELECT key, value FROM preference WHERE key = $key LIMIT 1`,
		map[string]any{"key": key})
	if err != nil {
		return nil, fmt.Errorf("querying preference %s: %w", key, err)
	}
	if len(*results) == 0 || len((*results)[0].Result) == 0 {
		return nil, nil
	}
	p := (*results)[0].Result[0]
	return &p, nil
}

func (c *Client) SetPreference(ctx context.Context, key string, value bool) error {
	_, err := sdk.Query[any](ctx, c.db,
		`UPSERT type::thing("preference", $key) MERGE $data`,
		map[string]any{
			"key": key,
			"data": map[string]any{
				"key":        key,
				"value":      value,
				"updated_at": time.Now().UTC(),
			},
		})
	if err != nil {
		return fmt.Errorf("upserting preference %s: %w", key, err)
	}
	return nil
}
