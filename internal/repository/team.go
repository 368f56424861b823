package repository

import (
	"context"
	"strings"
	"time"

	"tournament-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// Update writes every mutable column of the team
func (r *TeamRepository) Update(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Save(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id int64) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByIDForUpdate retrieves a team and locks its row until the surrounding transaction ends.
// Player writes lock the owning team first, which serializes jersey number claims per team.
func (r *TeamRepository) GetByIDForUpdate(ctx context.Context, id int64) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByIDs retrieves the teams with the given IDs, in no particular order
func (r *TeamRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.Team, error) {
	var teams []models.Team
	if len(ids) == 0 {
		return teams, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// GetByNameInsensitive retrieves a team whose name matches ignoring case, active or not
func (r *TeamRepository) GetByNameInsensitive(ctx context.Context, name string) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "LOWER(name) = LOWER(?)", strings.TrimSpace(name)).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// ExistsByNameInsensitive reports whether another team already uses the name.
// Inactive teams count. Pass excludeID 0 to check against every team.
func (r *TeamRepository) ExistsByNameInsensitive(ctx context.Context, name string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Team{}).Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name))
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetActive retrieves active teams with pagination, ordered by name
func (r *TeamRepository) GetActive(ctx context.Context, limit, offset int) ([]models.Team, int64, error) {
	return r.paginate(r.db.WithContext(ctx).Model(&models.Team{}).Where("active = ?", true), limit, offset)
}

// GetActiveByCategory retrieves active teams of a category (case-insensitive) with pagination
func (r *TeamRepository) GetActiveByCategory(ctx context.Context, category string, limit, offset int) ([]models.Team, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Team{}).
		Where("active = ? AND LOWER(category) = LOWER(?)", true, strings.TrimSpace(category))
	return r.paginate(query, limit, offset)
}

func (r *TeamRepository) paginate(query *gorm.DB, limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// SearchActiveByName finds active teams whose name contains query, ignoring case and accents
func (r *TeamRepository) SearchActiveByName(ctx context.Context, query string) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.WithContext(ctx).
		Where("active = ? AND search_key LIKE ?", true, containsPattern(query)).
		Order("id ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// CountActiveByCategory counts active teams in a category (case-insensitive)
func (r *TeamRepository) CountActiveByCategory(ctx context.Context, category string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Team{}).
		Where("active = ? AND LOWER(category) = LOWER(?)", true, strings.TrimSpace(category)).
		Count(&count).Error
	return count, err
}

// CountActiveGroupedByCategory counts active teams per category
func (r *TeamRepository) CountActiveGroupedByCategory(ctx context.Context) ([]CategoryCount, error) {
	var counts []CategoryCount
	err := r.db.WithContext(ctx).Model(&models.Team{}).
		Select("category, COUNT(*) AS count").
		Where("active = ?", true).
		Group("category").
		Order("category ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// SetActive flips the active flag of a team without touching its players
func (r *TeamRepository) SetActive(ctx context.Context, id int64, active bool, updatedAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.Team{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{"active": active, "updated_at": updatedAt})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
