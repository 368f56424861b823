package service

import (
	"context"
	"io"

	"tournament-backend/internal/database/models"
	"tournament-backend/internal/repository"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PlayerServiceInterface defines the interface for player service
type PlayerServiceInterface interface {
	RegisterPlayer(ctx context.Context, req *RegisterPlayerRequest) (*PlayerResponse, error)
	GetPlayer(ctx context.Context, id int64) (*PlayerResponse, error)
	ListPlayersByTeam(ctx context.Context, teamID int64) ([]PlayerResponse, error)
	UpdatePlayer(ctx context.Context, id int64, req *UpdatePlayerRequest) (*PlayerResponse, error)
	SoftDeletePlayer(ctx context.Context, id int64) error
	SearchPlayersByName(ctx context.Context, query string) ([]PlayerResponse, error)
	ListPlayersByPosition(ctx context.Context, position models.Position, teamID *int64) ([]PlayerResponse, error)
	ListRoster(ctx context.Context) ([]PlayerResponse, error)
	FindPlayersByAgeRange(ctx context.Context, minAge, maxAge int) ([]PlayerResponse, error)
	GetPositionBreakdown(ctx context.Context, teamID int64) (*PositionBreakdownResponse, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	CreateTeam(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error)
	GetTeam(ctx context.Context, id int64) (*TeamResponse, error)
	GetTeamByName(ctx context.Context, name string) (*TeamResponse, error)
	ListTeams(ctx context.Context, category string, page, pageSize int) (*TeamListResponse, error)
	SearchTeamsByName(ctx context.Context, query string) ([]TeamSummary, error)
	UpdateTeam(ctx context.Context, id int64, req *UpdateTeamRequest) (*TeamResponse, error)
	DeactivateTeam(ctx context.Context, id int64) error
	DeactivateTeamRoster(ctx context.Context, id int64) (*RosterDeactivationResponse, error)
	CountTeamsByCategory(ctx context.Context, category string) (*repository.CategoryCount, error)
	CategoryCounts(ctx context.Context) ([]repository.CategoryCount, error)
	CountActivePlayers(ctx context.Context, teamID int64) (*PlayerCountResponse, error)
	UploadCrest(ctx context.Context, id int64, filename, contentType string, body io.Reader) (*TeamResponse, error)
}
