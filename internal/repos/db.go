package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

// OpenDB opens the users/sessions database, creates the schema and seeds the
// demo accounts. The default DSN is ":memory:" so nothing survives a restart.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	if err := seedUsers(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  location TEXT NOT NULL DEFAULT 'Not specified',
  bio TEXT NOT NULL DEFAULT '',
  rating REAL NOT NULL DEFAULT 5.0,
  total_sales INTEGER NOT NULL DEFAULT 0,
  joined_at TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

// seedUsers ensures the demo accounts exist (idempotent, safe on every start).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Email, Name, Location, Joined, Hash string
		Rating                                  float64
		Sales                                   int
	}
	mk := func(id, email, name, location, joined, raw string, rating float64, sales int) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Email: email, Name: name, Location: location, Joined: joined, Hash: string(h), Rating: rating, Sales: sales}
	}

	users := []u{
		mk("1", "sarah@ecofinds.test", "Sarah Johnson", "San Francisco, CA", "2023-01-15", "Passw0rd!", 4.8, 47),
		mk("2", "mike@ecofinds.test", "Mike Chen", "New York, NY", "2023-04-02", "Passw0rd!", 4.9, 31),
		mk("3", "emma@ecofinds.test", "Emma Davis", "Chicago, IL", "2023-09-20", "Passw0rd!", 4.7, 12),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,email,name,password_hash,location,rating,total_sales,joined_at)
			VALUES(?,?,?,?,?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Email, x.Name, x.Hash, x.Location, x.Rating, x.Sales, x.Joined); err != nil {
			return err
		}
	}

	log.Println("[seed] demo users ready")
	return tx.Commit()
}
