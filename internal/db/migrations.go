package db

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS sleep_nights (
  date TEXT PRIMARY KEY,

  sleep_start TEXT NOT NULL,
  sleep_end   TEXT NOT NULL,

  sleep_quality    INTEGER NOT NULL CHECK(sleep_quality BETWEEN 1 AND 5),
  awakenings_count INTEGER NOT NULL DEFAULT 0 CHECK(awakenings_count >= 0),

  energy_morning INTEGER NOT NULL CHECK(energy_morning BETWEEN 1 AND 10),
  mood_morning   INTEGER NOT NULL CHECK(mood_morning BETWEEN 1 AND 10),

  screen_last_hour   INTEGER CHECK(screen_last_hour IN (0, 1) OR screen_last_hour IS NULL),
  caffeine_after_17  INTEGER CHECK(caffeine_after_17 IN (0, 1) OR caffeine_after_17 IS NULL),
  bedtime_consistent INTEGER CHECK(bedtime_consistent IN (0, 1) OR bedtime_consistent IS NULL),

  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS sessions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,

  date       TEXT NOT NULL,
  start_time TEXT NOT NULL,
  end_time   TEXT,

  domain               TEXT NOT NULL,
  project_name         TEXT NOT NULL,
  activity_description TEXT NOT NULL,
  work_type            TEXT NOT NULL,
  planned_duration_min INTEGER CHECK(planned_duration_min > 0),

  energy_before     INTEGER NOT NULL CHECK(energy_before BETWEEN 1 AND 10),
  stress_before     INTEGER NOT NULL CHECK(stress_before BETWEEN 1 AND 10),
  resistance_before INTEGER NOT NULL CHECK(resistance_before BETWEEN 1 AND 5),

  completion_status TEXT,
  progress_rating   INTEGER CHECK(progress_rating BETWEEN 1 AND 5),
  quality_rating    INTEGER CHECK(quality_rating BETWEEN 1 AND 5),
  focus_quality     INTEGER CHECK(focus_quality BETWEEN 1 AND 5),
  moves_main_goal   INTEGER CHECK(moves_main_goal IN (0, 1) OR moves_main_goal IS NULL),
  evidence_note     TEXT,

  energy_after INTEGER CHECK(energy_after BETWEEN 1 AND 10),
  stress_after INTEGER CHECK(stress_after BETWEEN 1 AND 10),
  feel_tag     TEXT,

  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(date);
CREATE INDEX IF NOT EXISTS idx_sessions_start_time ON sessions(start_time);
`,
	},
	{
		version: 2,
		name:    "tasks",
		sql: `
CREATE TABLE IF NOT EXISTS tasks (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  domain TEXT NOT NULL,
  project_name TEXT NOT NULL,
  activity_description TEXT NOT NULL,
  work_type TEXT NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
	{
		version: 3,
		name:    "daily_intake",
		sql: `
CREATE TABLE IF NOT EXISTS daily_intake (
  date TEXT PRIMARY KEY,

  water_count INTEGER NOT NULL DEFAULT 0 CHECK(water_count >= 0),

  breakfast_time TEXT,
  lunch_time     TEXT,
  dinner_time    TEXT,

  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
	{
		version: 4,
		name:    "app_config",
		sql: `
CREATE TABLE IF NOT EXISTS app_config (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
}

func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}

	return nil
}
