package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// Gateway stores each serialized collection as one jsonb row in the
// collections table, keyed by slot name. Schema lives in migrations.
type Gateway struct {
	pool *pgxpool.Pool
}

func NewGateway(pool *pgxpool.Pool) *Gateway {
	return &Gateway{pool: pool}
}

func (g *Gateway) Load(ctx context.Context, slot string) ([]byte, bool, error) {
	var data []byte
	err := g.pool.QueryRow(ctx, `SELECT data FROM collections WHERE slot=$1`, slot).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load collection %s: %w", slot, err)
	}
	return data, true, nil
}

func (g *Gateway) Save(ctx context.Context, slot string, data []byte) error {
	_, err := g.pool.Exec(ctx, `
		INSERT INTO collections (slot, data, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (slot) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		slot, string(data))
	if err != nil {
		return fmt.Errorf("save collection %s: %w", slot, err)
	}
	return nil
}
