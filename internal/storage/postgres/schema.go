package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE EXTENSION IF NOT EXISTS postgis;

CREATE TABLE IF NOT EXISTS users (
	id           uuid PRIMARY KEY,
	username     text NOT NULL UNIQUE,
	email        text NOT NULL DEFAULT '',
	full_name    text NOT NULL DEFAULT '',
	phone        text NOT NULL DEFAULT '',
	role         text NOT NULL CHECK (role IN ('USER', 'VOLUNTEER', 'ADMIN', 'ORGANIZATION')),
	connected_at timestamptz,
	created_at   timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS volunteer_positions (
	user_id    uuid PRIMARY KEY REFERENCES users (id) ON DELETE CASCADE,
	geo_point  geography(Point, 4326) NOT NULL,
	updated_at timestamptz NOT NULL
);
CREATE INDEX IF NOT EXISTS volunteer_positions_geo_idx ON volunteer_positions USING GIST (geo_point);

CREATE TABLE IF NOT EXISTS location_history (
	id          uuid PRIMARY KEY,
	user_id     uuid NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	geo_point   geography(Point, 4326) NOT NULL,
	recorded_at timestamptz NOT NULL,
	role        text NOT NULL
);
CREATE INDEX IF NOT EXISTS location_history_user_time_idx ON location_history (user_id, recorded_at DESC);
CREATE INDEX IF NOT EXISTS location_history_time_idx ON location_history (recorded_at);

CREATE TABLE IF NOT EXISTS reports (
	id          uuid PRIMARY KEY,
	reporter_id uuid NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	description text NOT NULL,
	photo_path  text NOT NULL DEFAULT '',
	geo_point   geography(Point, 4326) NOT NULL,
	status      text NOT NULL CHECK (status IN ('PENDING', 'ASSIGNED', 'ADMIN_REVIEW', 'COMPLETED')),
	priority    text NOT NULL CHECK (priority IN ('LOW', 'MEDIUM', 'HIGH')),
	assignee_id uuid REFERENCES users (id) ON DELETE SET NULL,
	created_at  timestamptz NOT NULL,
	updated_at  timestamptz NOT NULL
);
CREATE INDEX IF NOT EXISTS reports_created_idx ON reports (created_at DESC);
CREATE INDEX IF NOT EXISTS reports_reporter_idx ON reports (reporter_id, created_at DESC);

CREATE TABLE IF NOT EXISTS tasks (
	id           uuid PRIMARY KEY,
	title        text NOT NULL,
	description  text NOT NULL,
	assignee_id  uuid NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	report_id    uuid UNIQUE REFERENCES reports (id) ON DELETE CASCADE,
	completed    boolean NOT NULL DEFAULT false,
	created_at   timestamptz NOT NULL,
	completed_at timestamptz
);
CREATE INDEX IF NOT EXISTS tasks_assignee_idx ON tasks (assignee_id, completed);
`

// Migrate creates the schema when it does not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
