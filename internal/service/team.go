package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"tournament-backend/internal/database/models"
	apperrors "tournament-backend/internal/errors"
	"tournament-backend/internal/events"
	"tournament-backend/internal/logger"
	"tournament-backend/internal/repository"
	"tournament-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

const maxCrestURLLength = 255

// TeamService handles business logic for teams
type TeamService struct {
	store     repository.RosterStoreInterface
	validator *validator.Validate
	clock     clockwork.Clock
	publisher events.Publisher
	uploader  storage.FileUploader
}

// NewTeamService creates a new team service. uploader may be nil, in which case
// crest uploads fail with a configuration error.
func NewTeamService(store repository.RosterStoreInterface, validator *validator.Validate, clock clockwork.Clock, publisher events.Publisher, uploader storage.FileUploader) *TeamService {
	return &TeamService{
		store:     store,
		validator: validator,
		clock:     clock,
		publisher: publisher,
		uploader:  uploader,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,max=100" example:"Halcones"`
	Category    string `json:"category" validate:"required,max=50" example:"Sub-17"`
	CrestURL    string `json:"crest_url,omitempty" validate:"omitempty,url,max=255"`
	Description string `json:"description,omitempty"`
	FoundedOn   string `json:"founded_on,omitempty" validate:"omitempty,datetime=2006-01-02" example:"1998-03-01"`
}

// UpdateTeamRequest replaces the mutable fields of a team
type UpdateTeamRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Category    string `json:"category" validate:"required,max=50"`
	CrestURL    string `json:"crest_url,omitempty" validate:"omitempty,url,max=255"`
	Description string `json:"description,omitempty"`
	FoundedOn   string `json:"founded_on,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// TeamListResponse represents a paginated list of active teams
type TeamListResponse struct {
	Teams    []TeamSummary `json:"teams"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// RosterDeactivationResponse reports how many players a roster deactivation touched
type RosterDeactivationResponse struct {
	TeamID             int64 `json:"team_id"`
	DeactivatedPlayers int64 `json:"deactivated_players"`
}

// PlayerCountResponse is the size of a team's active roster
type PlayerCountResponse struct {
	TeamID int64 `json:"team_id"`
	Count  int64 `json:"count"`
}

func normalizeTeamFields(name, category, crestURL, description *string) {
	*name = strings.TrimSpace(*name)
	*category = strings.TrimSpace(*category)
	*crestURL = strings.TrimSpace(*crestURL)
	*description = strings.TrimSpace(*description)
}

func teamPayload(t *models.Team) events.TeamPayload {
	return events.TeamPayload{
		TeamID:   t.ID,
		Name:     t.Name,
		Category: t.Category,
		CrestURL: t.CrestURL,
		Active:   t.Active,
	}
}

// CreateTeam registers a new active team. Names are unique ignoring case, inactive teams included.
func (s *TeamService) CreateTeam(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error) {
	normalizeTeamFields(&req.Name, &req.Category, &req.CrestURL, &req.Description)
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	foundedOn, err := parseOptionalDate(req.FoundedOn, now, apperrors.ErrFoundedOnInFuture)
	if err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:        req.Name,
		Category:    req.Category,
		CrestURL:    req.CrestURL,
		Description: req.Description,
		FoundedOn:   foundedOn,
		Active:      true,
	}
	team.Touch(now)

	err = s.store.Transaction(ctx, func(store repository.RosterStoreInterface) error {
		exists, err := store.Teams().ExistsByNameInsensitive(ctx, team.Name, 0)
		if err != nil {
			return fmt.Errorf("failed to check existing team by name: %w", err)
		}
		if exists {
			return apperrors.ErrTeamExists
		}
		if err := store.Teams().Create(ctx, team); err != nil {
			if repository.IsUniqueViolation(err) {
				return apperrors.ErrTeamExists
			}
			return fmt.Errorf("failed to create team: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, logFailure(ctx, "create team", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":  team.ID,
		"category": team.Category,
	}).Info("team created")
	publish(ctx, s.publisher, events.TeamCreated, teamPayload(team), now)

	return ToTeamResponse(team, nil, now), nil
}

// GetTeam retrieves a team, active or not, with its active roster
func (s *TeamService) GetTeam(ctx context.Context, id int64) (*TeamResponse, error) {
	team, err := s.store.Teams().GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, logFailure(ctx, "get team", fmt.Errorf("failed to get team: %w", err))
	}
	return s.withRoster(ctx, team)
}

// GetTeamByName retrieves a team by exact name ignoring case
func (s *TeamService) GetTeamByName(ctx context.Context, name string) (*TeamResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "is required")
	}

	team, err := s.store.Teams().GetByNameInsensitive(ctx, name)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, logFailure(ctx, "get team by name", fmt.Errorf("failed to get team: %w", err))
	}
	return s.withRoster(ctx, team)
}

// ListTeams returns active teams ordered by name, optionally filtered by category
func (s *TeamService) ListTeams(ctx context.Context, category string, page, pageSize int) (*TeamListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var teams []models.Team
	var total int64
	var err error
	if category = strings.TrimSpace(category); category != "" {
		teams, total, err = s.store.Teams().GetActiveByCategory(ctx, category, pageSize, offset)
	} else {
		teams, total, err = s.store.Teams().GetActive(ctx, pageSize, offset)
	}
	if err != nil {
		return nil, logFailure(ctx, "list teams", fmt.Errorf("failed to get teams: %w", err))
	}

	return &TeamListResponse{
		Teams:    toTeamSummaries(teams),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// SearchTeamsByName returns active teams whose name contains query, ignoring case and accents
func (s *TeamService) SearchTeamsByName(ctx context.Context, query string) ([]TeamSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidationError("q", "is required")
	}

	teams, err := s.store.Teams().SearchActiveByName(ctx, query)
	if err != nil {
		return nil, logFailure(ctx, "search teams", fmt.Errorf("failed to search teams: %w", err))
	}
	return toTeamSummaries(teams), nil
}

// UpdateTeam replaces name, category, crest, description and founding date
func (s *TeamService) UpdateTeam(ctx context.Context, id int64, req *UpdateTeamRequest) (*TeamResponse, error) {
	normalizeTeamFields(&req.Name, &req.Category, &req.CrestURL, &req.Description)
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	foundedOn, err := parseOptionalDate(req.FoundedOn, now, apperrors.ErrFoundedOnInFuture)
	if err != nil {
		return nil, err
	}

	var team *models.Team
	err = s.store.Transaction(ctx, func(store repository.RosterStoreInterface) error {
		t, err := store.Teams().GetByIDForUpdate(ctx, id)
		if err != nil {
			if repository.IsNotFound(err) {
				return apperrors.ErrTeamNotFound
			}
			return fmt.Errorf("failed to get team: %w", err)
		}

		exists, err := store.Teams().ExistsByNameInsensitive(ctx, req.Name, t.ID)
		if err != nil {
			return fmt.Errorf("failed to check existing team by name: %w", err)
		}
		if exists {
			return apperrors.ErrTeamExists
		}

		t.Name = req.Name
		t.Category = req.Category
		t.CrestURL = req.CrestURL
		t.Description = req.Description
		t.FoundedOn = foundedOn
		t.Touch(now)

		if err := store.Teams().Update(ctx, t); err != nil {
			if repository.IsUniqueViolation(err) {
				return apperrors.ErrTeamExists
			}
			return fmt.Errorf("failed to update team: %w", err)
		}
		team = t
		return nil
	})
	if err != nil {
		return nil, logFailure(ctx, "update team", err)
	}

	logger.WithContext(ctx).WithField("team_id", team.ID).Info("team updated")
	publish(ctx, s.publisher, events.TeamUpdated, teamPayload(team), now)

	return s.withRoster(ctx, team)
}

// DeactivateTeam marks a team inactive. Its players are left untouched;
// use DeactivateTeamRoster to retire them as well.
func (s *TeamService) DeactivateTeam(ctx context.Context, id int64) error {
	now := s.clock.Now()
	if err := s.store.Teams().SetActive(ctx, id, false, now); err != nil {
		if repository.IsNotFound(err) {
			return apperrors.ErrTeamNotFound
		}
		return logFailure(ctx, "deactivate team", fmt.Errorf("failed to deactivate team: %w", err))
	}

	logger.WithContext(ctx).WithField("team_id", id).Info("team deactivated")
	publish(ctx, s.publisher, events.TeamDeactivated, events.TeamPayload{TeamID: id, Active: false}, now)
	return nil
}

// DeactivateTeamRoster soft-deletes every active player of a team
func (s *TeamService) DeactivateTeamRoster(ctx context.Context, id int64) (*RosterDeactivationResponse, error) {
	now := s.clock.Now()

	var affected int64
	err := s.store.Transaction(ctx, func(store repository.RosterStoreInterface) error {
		if _, err := store.Teams().GetByIDForUpdate(ctx, id); err != nil {
			if repository.IsNotFound(err) {
				return apperrors.ErrTeamNotFound
			}
			return fmt.Errorf("failed to lock team: %w", err)
		}

		n, err := store.Players().DeactivateByTeam(ctx, id, now)
		if err != nil {
			return fmt.Errorf("failed to deactivate players: %w", err)
		}
		affected = n
		return nil
	})
	if err != nil {
		return nil, logFailure(ctx, "deactivate roster", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":             id,
		"deactivated_players": affected,
	}).Info("team roster deactivated")
	publish(ctx, s.publisher, events.TeamRosterDeactivated, events.RosterDeactivatedPayload{TeamID: id, DeactivatedPlayers: affected}, now)

	return &RosterDeactivationResponse{TeamID: id, DeactivatedPlayers: affected}, nil
}

// CountTeamsByCategory counts active teams in a category, ignoring case
func (s *TeamService) CountTeamsByCategory(ctx context.Context, category string) (*repository.CategoryCount, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, apperrors.NewValidationError("category", "is required")
	}

	count, err := s.store.Teams().CountActiveByCategory(ctx, category)
	if err != nil {
		return nil, logFailure(ctx, "count teams", fmt.Errorf("failed to count teams: %w", err))
	}
	return &repository.CategoryCount{Category: category, Count: count}, nil
}

// CategoryCounts counts active teams for every category
func (s *TeamService) CategoryCounts(ctx context.Context) ([]repository.CategoryCount, error) {
	counts, err := s.store.Teams().CountActiveGroupedByCategory(ctx)
	if err != nil {
		return nil, logFailure(ctx, "count teams", fmt.Errorf("failed to count teams: %w", err))
	}
	if counts == nil {
		counts = []repository.CategoryCount{}
	}
	return counts, nil
}

// CountActivePlayers returns the size of a team's active roster
func (s *TeamService) CountActivePlayers(ctx context.Context, teamID int64) (*PlayerCountResponse, error) {
	if _, err := s.store.Teams().GetByID(ctx, teamID); err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, logFailure(ctx, "count players", fmt.Errorf("failed to get team: %w", err))
	}

	count, err := s.store.Players().CountActiveByTeam(ctx, teamID)
	if err != nil {
		return nil, logFailure(ctx, "count players", fmt.Errorf("failed to count players: %w", err))
	}
	return &PlayerCountResponse{TeamID: teamID, Count: count}, nil
}

// UploadCrest stores an image in object storage and points the team's crest at it
func (s *TeamService) UploadCrest(ctx context.Context, id int64, filename, contentType string, body io.Reader) (*TeamResponse, error) {
	if s.uploader == nil {
		return nil, apperrors.ErrStorageNotConfigured
	}
	if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return nil, apperrors.ErrUnsupportedCrestType
	}

	if _, err := s.store.Teams().GetByID(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, logFailure(ctx, "upload crest", fmt.Errorf("failed to get team: %w", err))
	}

	key := fmt.Sprintf("crests/%d/%s%s", id, uuid.NewString(), strings.ToLower(filepath.Ext(filename)))
	result, err := s.uploader.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, logFailure(ctx, "upload crest", fmt.Errorf("failed to upload crest: %w", err))
	}
	if len(result.Location) > maxCrestURLLength {
		s.discardUpload(ctx, key)
		return nil, apperrors.NewValidationError("crest_url", "must be at most 255 characters")
	}

	now := s.clock.Now()
	var team *models.Team
	err = s.store.Transaction(ctx, func(store repository.RosterStoreInterface) error {
		t, err := store.Teams().GetByIDForUpdate(ctx, id)
		if err != nil {
			if repository.IsNotFound(err) {
				return apperrors.ErrTeamNotFound
			}
			return fmt.Errorf("failed to lock team: %w", err)
		}
		t.CrestURL = result.Location
		t.Touch(now)
		if err := store.Teams().Update(ctx, t); err != nil {
			return fmt.Errorf("failed to update team crest: %w", err)
		}
		team = t
		return nil
	})
	if err != nil {
		s.discardUpload(ctx, key)
		return nil, logFailure(ctx, "upload crest", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id": id,
		"key":     key,
	}).Info("team crest updated")
	publish(ctx, s.publisher, events.TeamCrestUpdated, teamPayload(team), now)

	return s.withRoster(ctx, team)
}

func (s *TeamService) discardUpload(ctx context.Context, key string) {
	if err := s.uploader.Delete(ctx, key); err != nil {
		logger.WithContext(ctx).WithField("key", key).Warnf("failed to delete orphaned crest: %v", err)
	}
}

func (s *TeamService) withRoster(ctx context.Context, team *models.Team) (*TeamResponse, error) {
	roster, err := s.store.Players().GetActiveByTeam(ctx, team.ID)
	if err != nil {
		return nil, logFailure(ctx, "load roster", fmt.Errorf("failed to get roster: %w", err))
	}
	return ToTeamResponse(team, roster, s.clock.Now()), nil
}

func toTeamSummaries(teams []models.Team) []TeamSummary {
	summaries := make([]TeamSummary, len(teams))
	for i := range teams {
		summaries[i] = *ToTeamSummary(&teams[i])
	}
	return summaries
}
