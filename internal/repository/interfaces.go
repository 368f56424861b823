package repository

import (
	"context"
	"time"

	"tournament-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CategoryCount is the number of active teams in a category
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// PositionCount is the number of active players at a position within a team
type PositionCount struct {
	Position models.Position `json:"position"`
	Count    int64           `json:"count"`
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	Update(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id int64) (*models.Team, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*models.Team, error)
	GetByIDs(ctx context.Context, ids []int64) ([]models.Team, error)
	GetByNameInsensitive(ctx context.Context, name string) (*models.Team, error)
	ExistsByNameInsensitive(ctx context.Context, name string, excludeID int64) (bool, error)
	GetActive(ctx context.Context, limit, offset int) ([]models.Team, int64, error)
	GetActiveByCategory(ctx context.Context, category string, limit, offset int) ([]models.Team, int64, error)
	SearchActiveByName(ctx context.Context, query string) ([]models.Team, error)
	CountActiveByCategory(ctx context.Context, category string) (int64, error)
	CountActiveGroupedByCategory(ctx context.Context) ([]CategoryCount, error)
	SetActive(ctx context.Context, id int64, active bool, updatedAt time.Time) error
}

// PlayerRepositoryInterface defines the interface for player repository operations
type PlayerRepositoryInterface interface {
	Create(ctx context.Context, player *models.Player) error
	Update(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int64) (*models.Player, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*models.Player, error)
	GetActiveByTeam(ctx context.Context, teamID int64) ([]models.Player, error)
	GetActiveByPosition(ctx context.Context, position models.Position) ([]models.Player, error)
	GetActiveByTeamAndPosition(ctx context.Context, teamID int64, position models.Position) ([]models.Player, error)
	ExistsActiveJersey(ctx context.Context, teamID int64, number int, excludeID int64) (bool, error)
	SearchActiveByName(ctx context.Context, query string) ([]models.Player, error)
	CountActiveByTeam(ctx context.Context, teamID int64) (int64, error)
	CountActiveByPosition(ctx context.Context, teamID int64) ([]PositionCount, error)
	GetActiveRoster(ctx context.Context) ([]models.Player, error)
	GetActiveBornBetween(ctx context.Context, bornAfter, bornOnOrBefore time.Time) ([]models.Player, error)
	DeactivateByTeam(ctx context.Context, teamID int64, updatedAt time.Time) (int64, error)
}

// RosterStoreInterface groups the roster repositories behind one transactional boundary
type RosterStoreInterface interface {
	Teams() TeamRepositoryInterface
	Players() PlayerRepositoryInterface
	// Transaction runs fn against a store bound to a single database transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	Transaction(ctx context.Context, fn func(store RosterStoreInterface) error) error
}
