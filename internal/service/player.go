package service

import (
	"context"
	"fmt"
	"strings"

	"tournament-backend/internal/database/models"
	apperrors "tournament-backend/internal/errors"
	"tournament-backend/internal/events"
	"tournament-backend/internal/logger"
	"tournament-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
)

// PlayerService handles business logic for players
type PlayerService struct {
	store     repository.RosterStoreInterface
	validator *validator.Validate
	clock     clockwork.Clock
	publisher events.Publisher
}

// NewPlayerService creates a new player service
func NewPlayerService(store repository.RosterStoreInterface, validator *validator.Validate, clock clockwork.Clock, publisher events.Publisher) *PlayerService {
	return &PlayerService{
		store:     store,
		validator: validator,
		clock:     clock,
		publisher: publisher,
	}
}

// RegisterPlayerRequest represents the request to register a player on a team
type RegisterPlayerRequest struct {
	UserID           *int64          `json:"user_id,omitempty" validate:"omitempty,gt=0"`
	TeamID           int64           `json:"team_id" validate:"required,gt=0" example:"1"`
	Name             string          `json:"name" validate:"required,max=100" example:"Juan Pérez"`
	BirthDate        string          `json:"birth_date" validate:"required,datetime=2006-01-02" example:"2008-05-10"`
	Position         models.Position `json:"position" validate:"required,oneof=PORTERO DEFENSA MEDIO DELANTERO" example:"MEDIO"`
	JerseyNumber     int             `json:"jersey_number" validate:"required,min=1,max=99" example:"10"`
	EmergencyContact string          `json:"emergency_contact,omitempty" validate:"max=100"`
}

// UpdatePlayerRequest replaces the mutable fields of a player. The team cannot change.
type UpdatePlayerRequest struct {
	Name             string          `json:"name" validate:"required,max=100"`
	BirthDate        string          `json:"birth_date" validate:"required,datetime=2006-01-02" example:"2008-05-10"`
	Position         models.Position `json:"position" validate:"required,oneof=PORTERO DEFENSA MEDIO DELANTERO" example:"MEDIO"`
	JerseyNumber     int             `json:"jersey_number" validate:"required,min=1,max=99"`
	EmergencyContact string          `json:"emergency_contact,omitempty" validate:"max=100"`
}

// PositionStat is the number of active players at one position
type PositionStat struct {
	Position models.Position `json:"position"`
	Label    string          `json:"label"`
	Count    int64           `json:"count"`
}

// PositionBreakdownResponse is the per-position head count of a team's active roster
type PositionBreakdownResponse struct {
	TeamID    int64          `json:"team_id"`
	Positions []PositionStat `json:"positions"`
	Total     int64          `json:"total"`
}

func (r *RegisterPlayerRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Position = models.Position(strings.ToUpper(strings.TrimSpace(string(r.Position))))
	r.EmergencyContact = strings.TrimSpace(r.EmergencyContact)
}

func (r *UpdatePlayerRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Position = models.Position(strings.ToUpper(strings.TrimSpace(string(r.Position))))
	r.EmergencyContact = strings.TrimSpace(r.EmergencyContact)
}

func playerPayload(p *models.Player) events.PlayerPayload {
	return events.PlayerPayload{
		PlayerID:     p.ID,
		TeamID:       p.TeamID,
		Name:         p.Name,
		Position:     string(p.Position),
		JerseyNumber: p.JerseyNumber,
		Active:       p.Active,
	}
}

// RegisterPlayer validates the request and adds an active player to the team.
// The team row is locked while the jersey number is checked and the player inserted.
func (s *PlayerService) RegisterPlayer(ctx context.Context, req *RegisterPlayerRequest) (*PlayerResponse, error) {
	req.normalize()
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	birthDate, err := parsePastDate(req.BirthDate, now, apperrors.ErrBirthDateNotInPast)
	if err != nil {
		return nil, err
	}

	player := &models.Player{
		UserID:           req.UserID,
		TeamID:           req.TeamID,
		Name:             req.Name,
		BirthDate:        birthDate,
		Position:         req.Position,
		JerseyNumber:     req.JerseyNumber,
		EmergencyContact: req.EmergencyContact,
		Active:           true,
	}
	player.Touch(now)

	var team *models.Team
	err = s.store.Transaction(ctx, func(store repository.RosterStoreInterface) error {
		t, err := store.Teams().GetByIDForUpdate(ctx, req.TeamID)
		if err != nil {
			if repository.IsNotFound(err) {
				return apperrors.ErrTeamNotFound
			}
			return fmt.Errorf("failed to lock team: %w", err)
		}

		taken, err := store.Players().ExistsActiveJersey(ctx, t.ID, req.JerseyNumber, 0)
		if err != nil {
			return fmt.Errorf("failed to check jersey number: %w", err)
		}
		if taken {
			return apperrors.ErrJerseyNumberTaken
		}

		if err := store.Players().Create(ctx, player); err != nil {
			if repository.IsUniqueViolation(err) {
				return apperrors.ErrJerseyNumberTaken
			}
			return fmt.Errorf("failed to create player: %w", err)
		}
		team = t
		return nil
	})
	if err != nil {
		return nil, logFailure(ctx, "register player", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"player_id":     player.ID,
		"team_id":       player.TeamID,
		"jersey_number": player.JerseyNumber,
	}).Info("player registered")
	publish(ctx, s.publisher, events.PlayerRegistered, playerPayload(player), now)

	return ToPlayerResponse(player, team, now), nil
}

// GetPlayer retrieves a player, active or not, with its team summary
func (s *PlayerService) GetPlayer(ctx context.Context, id int64) (*PlayerResponse, error) {
	player, err := s.store.Players().GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, logFailure(ctx, "get player", fmt.Errorf("failed to get player: %w", err))
	}

	team, err := s.store.Teams().GetByID(ctx, player.TeamID)
	if err != nil && !repository.IsNotFound(err) {
		return nil, logFailure(ctx, "get player", fmt.Errorf("failed to get team: %w", err))
	}

	return ToPlayerResponse(player, team, s.clock.Now()), nil
}

// ListPlayersByTeam returns the active roster of a team in registration order.
// An unknown team has an empty roster.
func (s *PlayerService) ListPlayersByTeam(ctx context.Context, teamID int64) ([]PlayerResponse, error) {
	players, err := s.store.Players().GetActiveByTeam(ctx, teamID)
	if err != nil {
		return nil, logFailure(ctx, "list players by team", fmt.Errorf("failed to get players: %w", err))
	}
	return s.mapWithTeams(ctx, players)
}

// UpdatePlayer replaces name, birth date, position, jersey number and emergency contact.
// A changed jersey number is checked against the other active players of the same team.
func (s *PlayerService) UpdatePlayer(ctx context.Context, id int64, req *UpdatePlayerRequest) (*PlayerResponse, error) {
	req.normalize()
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	birthDate, err := parsePastDate(req.BirthDate, now, apperrors.ErrBirthDateNotInPast)
	if err != nil {
		return nil, err
	}

	var player *models.Player
	var team *models.Team
	err = s.store.Transaction(ctx, func(store repository.RosterStoreInterface) error {
		p, t, err := lockPlayer(ctx, store, id)
		if err != nil {
			return err
		}

		if req.JerseyNumber != p.JerseyNumber {
			taken, err := store.Players().ExistsActiveJersey(ctx, p.TeamID, req.JerseyNumber, p.ID)
			if err != nil {
				return fmt.Errorf("failed to check jersey number: %w", err)
			}
			if taken {
				return apperrors.ErrJerseyNumberTaken
			}
		}

		p.Name = req.Name
		p.BirthDate = birthDate
		p.Position = req.Position
		p.JerseyNumber = req.JerseyNumber
		p.EmergencyContact = req.EmergencyContact
		p.Touch(now)

		if err := store.Players().Update(ctx, p); err != nil {
			if repository.IsUniqueViolation(err) {
				return apperrors.ErrJerseyNumberTaken
			}
			return fmt.Errorf("failed to update player: %w", err)
		}
		player, team = p, t
		return nil
	})
	if err != nil {
		return nil, logFailure(ctx, "update player", err)
	}

	logger.WithContext(ctx).WithField("player_id", player.ID).Info("player updated")
	publish(ctx, s.publisher, events.PlayerUpdated, playerPayload(player), now)

	return ToPlayerResponse(player, team, now), nil
}

// SoftDeletePlayer marks a player inactive, freeing its jersey number.
// Deleting an inactive player succeeds without changes.
func (s *PlayerService) SoftDeletePlayer(ctx context.Context, id int64) error {
	now := s.clock.Now()

	var player *models.Player
	err := s.store.Transaction(ctx, func(store repository.RosterStoreInterface) error {
		p, _, err := lockPlayer(ctx, store, id)
		if err != nil {
			return err
		}
		if !p.Active {
			return nil
		}

		p.Active = false
		p.Touch(now)
		if err := store.Players().Update(ctx, p); err != nil {
			return fmt.Errorf("failed to deactivate player: %w", err)
		}
		player = p
		return nil
	})
	if err != nil {
		return logFailure(ctx, "delete player", err)
	}
	if player == nil {
		return nil
	}

	logger.WithContext(ctx).WithField("player_id", player.ID).Info("player deactivated")
	publish(ctx, s.publisher, events.PlayerDeactivated, playerPayload(player), now)
	return nil
}

// lockPlayer locks the player's team and then the player row, and returns the player as
// committed by the last writer. Every player write goes through the team lock.
func lockPlayer(ctx context.Context, store repository.RosterStoreInterface, id int64) (*models.Player, *models.Team, error) {
	current, err := store.Players().GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil, apperrors.ErrPlayerNotFound
		}
		return nil, nil, fmt.Errorf("failed to get player: %w", err)
	}

	team, err := store.Teams().GetByIDForUpdate(ctx, current.TeamID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil, apperrors.ErrTeamNotFound
		}
		return nil, nil, fmt.Errorf("failed to lock team: %w", err)
	}

	player, err := store.Players().GetByIDForUpdate(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil, apperrors.ErrPlayerNotFound
		}
		return nil, nil, fmt.Errorf("failed to lock player: %w", err)
	}
	return player, team, nil
}

// SearchPlayersByName returns active players whose name contains query, ignoring case
// and accents, ordered by id
func (s *PlayerService) SearchPlayersByName(ctx context.Context, query string) ([]PlayerResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidationError("name", "is required")
	}

	players, err := s.store.Players().SearchActiveByName(ctx, query)
	if err != nil {
		return nil, logFailure(ctx, "search players", fmt.Errorf("failed to search players: %w", err))
	}
	return s.mapWithTeams(ctx, players)
}

// ListPlayersByPosition returns active players at a position, optionally within one team
func (s *PlayerService) ListPlayersByPosition(ctx context.Context, position models.Position, teamID *int64) ([]PlayerResponse, error) {
	if !position.IsValid() {
		return nil, apperrors.ErrInvalidPosition
	}

	var players []models.Player
	var err error
	if teamID != nil {
		players, err = s.store.Players().GetActiveByTeamAndPosition(ctx, *teamID, position)
	} else {
		players, err = s.store.Players().GetActiveByPosition(ctx, position)
	}
	if err != nil {
		return nil, logFailure(ctx, "list players by position", fmt.Errorf("failed to get players: %w", err))
	}
	return s.mapWithTeams(ctx, players)
}

// ListRoster returns every active player ordered by team name, then jersey number
func (s *PlayerService) ListRoster(ctx context.Context) ([]PlayerResponse, error) {
	players, err := s.store.Players().GetActiveRoster(ctx)
	if err != nil {
		return nil, logFailure(ctx, "list roster", fmt.Errorf("failed to get roster: %w", err))
	}
	return s.mapWithTeams(ctx, players)
}

// FindPlayersByAgeRange returns active players whose whole-year age is within [minAge, maxAge]
func (s *PlayerService) FindPlayersByAgeRange(ctx context.Context, minAge, maxAge int) ([]PlayerResponse, error) {
	if minAge < 0 || maxAge < minAge {
		return nil, apperrors.ErrInvalidAgeRange
	}
	if minAge > MaxAge {
		return []PlayerResponse{}, nil
	}

	now := s.clock.Now()
	bornAfter, bornOnOrBefore := birthDateBounds(minAge, maxAge, now)

	players, err := s.store.Players().GetActiveBornBetween(ctx, bornAfter, bornOnOrBefore)
	if err != nil {
		return nil, logFailure(ctx, "find players by age", fmt.Errorf("failed to get players: %w", err))
	}

	teams, err := teamIndex(ctx, s.store.Teams(), players)
	if err != nil {
		return nil, logFailure(ctx, "find players by age", err)
	}
	return toPlayerResponses(players, teams, now), nil
}

// GetPositionBreakdown counts a team's active players per position. Every position is listed.
func (s *PlayerService) GetPositionBreakdown(ctx context.Context, teamID int64) (*PositionBreakdownResponse, error) {
	if _, err := s.store.Teams().GetByID(ctx, teamID); err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, logFailure(ctx, "position breakdown", fmt.Errorf("failed to get team: %w", err))
	}

	counts, err := s.store.Players().CountActiveByPosition(ctx, teamID)
	if err != nil {
		return nil, logFailure(ctx, "position breakdown", fmt.Errorf("failed to count players: %w", err))
	}

	byPosition := make(map[models.Position]int64, len(counts))
	for _, c := range counts {
		byPosition[c.Position] = c.Count
	}

	resp := &PositionBreakdownResponse{TeamID: teamID}
	for _, p := range models.Positions() {
		resp.Positions = append(resp.Positions, PositionStat{Position: p, Label: p.Label(), Count: byPosition[p]})
		resp.Total += byPosition[p]
	}
	return resp, nil
}

func (s *PlayerService) mapWithTeams(ctx context.Context, players []models.Player) ([]PlayerResponse, error) {
	teams, err := teamIndex(ctx, s.store.Teams(), players)
	if err != nil {
		return nil, logFailure(ctx, "load teams", err)
	}
	return toPlayerResponses(players, teams, s.clock.Now()), nil
}
