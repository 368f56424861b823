package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"tournament-backend/internal/database/models"
)

var sequence atomic.Int64

func nextSeq() int64 {
	return sequence.Add(1)
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates an active test Team with a unique name. ID is left for the database.
func (f *TeamFactory) Create() *models.Team {
	now := time.Now().UTC().Truncate(time.Second)
	founded := time.Date(1998, time.March, 1, 0, 0, 0, 0, time.UTC)
	return &models.Team{
		BaseModel: models.BaseModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        fmt.Sprintf("Equipo %d", nextSeq()),
		Category:    "Sub-17",
		Description: "Equipo de prueba",
		FoundedOn:   &founded,
		Active:      true,
	}
}

// WithName creates a test Team with a custom name
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// WithCategory creates a test Team in a custom category
func (f *TeamFactory) WithCategory(category string) *models.Team {
	team := f.Create()
	team.Category = category
	return team
}

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates an active test midfielder on teamID
func (f *PlayerFactory) Create(teamID int64, jersey int) *models.Player {
	now := time.Now().UTC().Truncate(time.Second)
	return &models.Player{
		BaseModel: models.BaseModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
		TeamID:           teamID,
		Name:             fmt.Sprintf("Jugador %d", nextSeq()),
		BirthDate:        time.Date(2008, time.May, 10, 0, 0, 0, 0, time.UTC),
		Position:         models.PositionMidfielder,
		JerseyNumber:     jersey,
		EmergencyContact: "+34 600 000 000",
		Active:           true,
	}
}

// WithName creates a test Player with a custom name
func (f *PlayerFactory) WithName(teamID int64, jersey int, name string) *models.Player {
	player := f.Create(teamID, jersey)
	player.Name = name
	return player
}

// WithBirthDate creates a test Player born on a given day
func (f *PlayerFactory) WithBirthDate(teamID int64, jersey int, birth time.Time) *models.Player {
	player := f.Create(teamID, jersey)
	player.BirthDate = birth
	return player
}

// FactorySet groups all factories
type FactorySet struct {
	Team   *TeamFactory
	Player *PlayerFactory
}

// NewFactorySet creates a new set of factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:   NewTeamFactory(),
		Player: NewPlayerFactory(),
	}
}
