package storage

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/jorge-ea-campos/aplicativo-requerimentosII/internal/models"
	"github.com/jorge-ea-campos/aplicativo-requerimentosII/internal/review"
)

// ErrSessionNotFound is returned for unknown or already discarded sessions.
var ErrSessionNotFound = errors.New("review session not found")

// ReviewSession holds everything loaded from one pair of uploads. The parsed
// records stay in process memory; the decisions live in sqlite keyed by the
// session id.
type ReviewSession struct {
	ID        string
	CreatedAt time.Time

	Petitions []models.PetitionRecord
	History   []models.HistoricalRecord
	Merged    []models.MergedRecord
	Summary   review.Summary

	// Warnings collected while loading (dropped rows with invalid NUSP).
	Warnings []string

	// Original headers of both files before normalization, surfaced when the
	// debug toggle is on.
	RawHistoryHeaders  []string
	RawPetitionHeaders []string
}

var (
	sessions   = make(map[string]*ReviewSession)
	sessionsMu sync.RWMutex
)

// CreateSession registers a loaded session and records it in the sessions
// table.
func CreateSession(s *ReviewSession) error {
	stmt, err := db.Prepare("INSERT INTO sessions(id, petition_count, merged_count, created_at) VALUES(?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(s.ID, len(s.Petitions), len(s.Merged), s.CreatedAt); err != nil {
		return err
	}

	sessionsMu.Lock()
	sessions[s.ID] = s
	sessionsMu.Unlock()
	return nil
}

// GetSession looks a session up by id.
func GetSession(id string) (*ReviewSession, error) {
	sessionsMu.RLock()
	s, ok := sessions[id]
	sessionsMu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// DeleteSession discards a session and its decisions.
func DeleteSession(id string) error {
	sessionsMu.Lock()
	_, ok := sessions[id]
	delete(sessions, id)
	sessionsMu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	if _, err := db.Exec("DELETE FROM decisions WHERE session_id = ?", id); err != nil {
		return err
	}
	if _, err := db.Exec("DELETE FROM sessions WHERE id = ?", id); err != nil {
		return err
	}
	log.Printf("DeleteSession(): discarded session %s", id)
	return nil
}

// DecisionKeyExists reports whether a key names a real petition row of the
// session. Decisions may only be set for rows that exist.
func (s *ReviewSession) DecisionKeyExists(key string) bool {
	for _, p := range s.Petitions {
		if models.DecisionKey(p.NUSP, p.Problem, p.RowID) == key {
			return true
		}
	}
	return false
}
