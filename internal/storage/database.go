package storage

import (
	"database/sql"
	"log"

	_ "modernc.org/sqlite"
)

var db *sql.DB

// InitDB opens the sqlite database and creates the schema. The service runs
// it with the ":memory:" DSN: review sessions and decisions only live until
// the process exits, there is no state across restarts.
func InitDB(dsn string) {
	var err error

	db, err = sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatal("InitDB(): Failed to open database: ", err)
	}
	// each sqlite connection gets its own :memory: database; keep a single one
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		log.Fatal("storage.InitDB(): Failed to connect to database: ", err)
	}

	createSessionsTable := `
	CREATE TABLE IF NOT EXISTS sessions (
			"id" TEXT PRIMARY KEY,
			"petition_count" INTEGER NOT NULL,
			"merged_count" INTEGER NOT NULL,
			"created_at" DATETIME NOT NULL
	);`
	createDecisionsTable := `
	CREATE TABLE IF NOT EXISTS decisions (
			"session_id" TEXT NOT NULL,
			"decision_key" TEXT NOT NULL,
			"status" TEXT NOT NULL,
			"justification" TEXT NOT NULL DEFAULT '',
			"updated_at" DATETIME NOT NULL,
			PRIMARY KEY(session_id, decision_key),
			FOREIGN KEY(session_id) REFERENCES sessions(id)
	)`

	if _, err := db.Exec(createSessionsTable); err != nil {
		log.Fatalf("InitDB(): Failed to create sessions table: %v", err)
	}
	if _, err := db.Exec(createDecisionsTable); err != nil {
		log.Fatalf("InitDB(): Failed to create decisions table: %v", err)
	}
	log.Println("InitDB(): Init and create tables successfully!")
}

// CloseDB releases the database. Tests reopen a fresh one per run.
func CloseDB() {
	if db != nil {
		db.Close()
		db = nil
	}
}
