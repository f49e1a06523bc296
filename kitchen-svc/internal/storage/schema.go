package storage

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		metadata JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS kitchens (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		name TEXT NOT NULL,
		owner_name TEXT NOT NULL DEFAULT '',
		story TEXT NOT NULL DEFAULT '',
		cuisine_type TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		address JSONB NOT NULL DEFAULT '{}',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected')),
		opening_time TEXT NOT NULL DEFAULT '',
		closing_time TEXT NOT NULL DEFAULT '',
		rating NUMERIC(2,1) NOT NULL DEFAULT 0,
		review_count INTEGER NOT NULL DEFAULT 0,
		cover_image TEXT NOT NULL DEFAULT '',
		gallery_images TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id UUID PRIMARY KEY,
		kitchen_id UUID NOT NULL REFERENCES kitchens(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price NUMERIC(10,2) NOT NULL,
		category TEXT NOT NULL CHECK (category IN ('breakfast', 'lunch', 'dinner', 'snack', 'beverage')),
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		dietary_info JSONB NOT NULL DEFAULT '{}',
		image_url TEXT NOT NULL DEFAULT '',
		preparation_time INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		reference TEXT NOT NULL,
		user_id UUID NOT NULL REFERENCES users(id),
		kitchen_id UUID NOT NULL REFERENCES kitchens(id),
		status TEXT NOT NULL DEFAULT 'pending',
		total_amount NUMERIC(10,2) NOT NULL,
		delivery_address JSONB,
		scheduled_time TIMESTAMPTZ,
		special_instructions TEXT,
		payment_status TEXT NOT NULL DEFAULT 'pending',
		payment_method TEXT NOT NULL DEFAULT 'cod',
		qr_code BYTEA,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id UUID PRIMARY KEY,
		order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		menu_item_id UUID NOT NULL REFERENCES menu_items(id),
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		price NUMERIC(10,2) NOT NULL,
		special_instructions TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		kitchen_id UUID NOT NULL REFERENCES kitchens(id),
		order_id UUID NOT NULL REFERENCES orders(id),
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment TEXT,
		photos TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, order_id, kitchen_id)
	)`,
	"CREATE INDEX IF NOT EXISTS kitchens_discovery_idx ON kitchens (is_active, status, rating DESC)",
	"CREATE INDEX IF NOT EXISTS orders_user_idx ON orders (user_id, created_at DESC)",
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
