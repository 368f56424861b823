package repository

import (
	"context"
	"time"

	"tournament-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

// PlayerRepository handles database operations for players
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create creates a new player
func (r *PlayerRepository) Create(ctx context.Context, player *models.Player) error {
	return r.db.WithContext(ctx).Create(player).Error
}

// Update writes every mutable column of the player
func (r *PlayerRepository) Update(ctx context.Context, player *models.Player) error {
	return r.db.WithContext(ctx).Save(player).Error
}

// GetByID retrieves a player by ID, active or not
func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (*models.Player, error) {
	var player models.Player
	err := r.db.WithContext(ctx).First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetByIDForUpdate retrieves a player and locks its row until the surrounding transaction ends.
// Callers lock the owning team first.
func (r *PlayerRepository) GetByIDForUpdate(ctx context.Context, id int64) (*models.Player, error) {
	var player models.Player
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetActiveByTeam retrieves the active roster of a team in registration order
func (r *PlayerRepository) GetActiveByTeam(ctx context.Context, teamID int64) ([]models.Player, error) {
	var players []models.Player
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND active = ?", teamID, true).
		Order("id ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// GetActiveByPosition retrieves active players at a position across all teams
func (r *PlayerRepository) GetActiveByPosition(ctx context.Context, position models.Position) ([]models.Player, error) {
	var players []models.Player
	err := r.db.WithContext(ctx).
		Where("position = ? AND active = ?", position, true).
		Order("id ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// GetActiveByTeamAndPosition retrieves active players at a position within one team
func (r *PlayerRepository) GetActiveByTeamAndPosition(ctx context.Context, teamID int64, position models.Position) ([]models.Player, error) {
	var players []models.Player
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND position = ? AND active = ?", teamID, position, true).
		Order("jersey_number ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// ExistsActiveJersey reports whether an active player of the team wears number.
// Pass excludeID 0 to check against every player.
func (r *PlayerRepository) ExistsActiveJersey(ctx context.Context, teamID int64, number int, excludeID int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Player{}).
		Where("team_id = ? AND jersey_number = ? AND active = ?", teamID, number, true)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SearchActiveByName finds active players whose name contains query, ignoring case and accents
func (r *PlayerRepository) SearchActiveByName(ctx context.Context, query string) ([]models.Player, error) {
	var players []models.Player
	err := r.db.WithContext(ctx).
		Where("active = ? AND search_key LIKE ?", true, containsPattern(query)).
		Order("id ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// CountActiveByTeam counts the active roster of a team
func (r *PlayerRepository) CountActiveByTeam(ctx context.Context, teamID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Player{}).
		Where("team_id = ? AND active = ?", teamID, true).
		Count(&count).Error
	return count, err
}

// CountActiveByPosition counts active players of a team per position.
// Positions without players are absent from the result.
func (r *PlayerRepository) CountActiveByPosition(ctx context.Context, teamID int64) ([]PositionCount, error) {
	var counts []PositionCount
	err := r.db.WithContext(ctx).Model(&models.Player{}).
		Select("position, COUNT(*) AS count").
		Where("team_id = ? AND active = ?", teamID, true).
		Group("position").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// GetActiveRoster retrieves every active player ordered by team name, then jersey number
func (r *PlayerRepository) GetActiveRoster(ctx context.Context) ([]models.Player, error) {
	var players []models.Player
	err := r.db.WithContext(ctx).
		Joins("JOIN teams ON teams.id = players.team_id").
		Where("players.active = ?", true).
		Order("teams.name ASC, players.jersey_number ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// GetActiveBornBetween retrieves active players born in (bornAfter, bornOnOrBefore], oldest first
func (r *PlayerRepository) GetActiveBornBetween(ctx context.Context, bornAfter, bornOnOrBefore time.Time) ([]models.Player, error) {
	var players []models.Player
	err := r.db.WithContext(ctx).
		Where("active = ? AND birth_date > ?::date AND birth_date <= ?::date",
			true, bornAfter.Format(dateLayout), bornOnOrBefore.Format(dateLayout)).
		Order("birth_date ASC, id ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// DeactivateByTeam soft-deletes every active player of a team and returns how many changed
func (r *PlayerRepository) DeactivateByTeam(ctx context.Context, teamID int64, updatedAt time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Player{}).
		Where("team_id = ? AND active = ?", teamID, true).
		UpdateColumns(map[string]interface{}{"active": false, "updated_at": updatedAt})
	return result.RowsAffected, result.Error
}
