package storage

import (
	"database/sql"
	"time"

	"github.com/jorge-ea-campos/aplicativo-requerimentosII/internal/models"
)

// GetDecision returns the stored decision for a key, or the Pending default
// when the reviewer has not touched the row yet.
func GetDecision(sessionID, key string) (models.DecisionRecord, error) {
	rec := models.DecisionRecord{Key: key, Status: models.StatusPending}

	row := db.QueryRow(
		"SELECT status, justification FROM decisions WHERE session_id = ? AND decision_key = ?",
		sessionID, key)

	var status, justification string
	if err := row.Scan(&status, &justification); err != nil {
		if err == sql.ErrNoRows {
			return rec, nil
		}
		return rec, err
	}
	rec.Status = models.DecisionStatus(status)
	rec.Justification = justification
	return rec, nil
}

// SetDecision writes the reviewer's choice for one petition row. Moving the
// status away from denied/escalated clears the justification.
func SetDecision(sessionID string, rec models.DecisionRecord) error {
	if !rec.Status.RequiresJustification() {
		rec.Justification = ""
	}

	stmt, err := db.Prepare(`
		INSERT INTO decisions(session_id, decision_key, status, justification, updated_at)
		VALUES(?, ?, ?, ?, ?)
		ON CONFLICT(session_id, decision_key)
		DO UPDATE SET status = excluded.status, justification = excluded.justification, updated_at = excluded.updated_at`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(sessionID, rec.Key, string(rec.Status), rec.Justification, time.Now())
	return err
}

// DecisionsBySession returns every explicitly set decision of a session,
// keyed by decision key. Untouched rows are absent; callers default them to
// Pending.
func DecisionsBySession(sessionID string) (map[string]models.DecisionRecord, error) {
	rows, err := db.Query(
		"SELECT decision_key, status, justification FROM decisions WHERE session_id = ?",
		sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	decisions := make(map[string]models.DecisionRecord)
	for rows.Next() {
		var rec models.DecisionRecord
		var status string
		if err := rows.Scan(&rec.Key, &status, &rec.Justification); err != nil {
			return nil, err
		}
		rec.Status = models.DecisionStatus(status)
		decisions[rec.Key] = rec
	}
	return decisions, rows.Err()
}
