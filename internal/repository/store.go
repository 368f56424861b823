package repository

import (
	"context"
	"errors"
	"strings"

	"tournament-backend/internal/database/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// RosterStore is the gorm-backed RosterStoreInterface
type RosterStore struct {
	db      *gorm.DB
	teams   *TeamRepository
	players *PlayerRepository
}

// NewRosterStore creates a roster store over db
func NewRosterStore(db *gorm.DB) *RosterStore {
	return &RosterStore{
		db:      db,
		teams:   NewTeamRepository(db),
		players: NewPlayerRepository(db),
	}
}

// Teams returns the team repository bound to this store's connection
func (s *RosterStore) Teams() TeamRepositoryInterface {
	return s.teams
}

// Players returns the player repository bound to this store's connection
func (s *RosterStore) Players() PlayerRepositoryInterface {
	return s.players
}

// Transaction runs fn inside a database transaction. Nested calls use savepoints.
func (s *RosterStore) Transaction(ctx context.Context, fn func(store RosterStoreInterface) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRosterStore(tx))
	})
}

// IsUniqueViolation reports whether err was raised by a unique index
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsNotFound reports whether err means the record does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching search keys that contain query
func containsPattern(query string) string {
	return "%" + likeEscaper.Replace(models.SearchKey(query)) + "%"
}
