package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// SKU uniqueness is scoped to the owning user.
const schema = `
CREATE TABLE IF NOT EXISTS products (
	id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id       UUID NOT NULL,
	name          TEXT NOT NULL,
	sku           TEXT NOT NULL,
	supplier_code TEXT NOT NULL DEFAULT '',
	internal_code TEXT NOT NULL DEFAULT '',
	ean           TEXT NOT NULL DEFAULT '',
	brand         TEXT NOT NULL DEFAULT '',
	category      TEXT NOT NULL DEFAULT '',
	supplier_id   UUID NULL,
	dimensions    JSONB NOT NULL DEFAULT '{}',
	weight        DOUBLE PRECISION NOT NULL DEFAULT 0,
	cost_item     TEXT NOT NULL DEFAULT '',
	pack_cost     TEXT NOT NULL DEFAULT '',
	tax_percent   TEXT NOT NULL DEFAULT '',
	observations  TEXT NOT NULL DEFAULT '',
	description   TEXT NOT NULL DEFAULT '',
	bullet_points TEXT[] NOT NULL DEFAULT '{}',
	photo         TEXT NULL,
	active        BOOLEAN NOT NULL DEFAULT TRUE,
	channels      JSONB NOT NULL DEFAULT '[]',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (user_id, sku)
);

CREATE INDEX IF NOT EXISTS idx_products_user_created ON products (user_id, created_at);
`

func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}

	return nil
}
