package service

import (
	"time"

	"tournament-backend/internal/database/models"
)

// Wire formats for dates and audit timestamps
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// TeamSummary is the team as nested inside player responses and team listings
type TeamSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	CrestURL string `json:"crest_url,omitempty"`
}

// PlayerSummary is a roster line inside a team response
type PlayerSummary struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Position      models.Position `json:"position"`
	PositionLabel string          `json:"position_label"`
	JerseyNumber  int             `json:"jersey_number"`
	Age           int             `json:"age"`
}

// PlayerResponse represents the response for player operations
type PlayerResponse struct {
	ID               int64           `json:"id"`
	UserID           *int64          `json:"user_id,omitempty"`
	Name             string          `json:"name"`
	BirthDate        string          `json:"birth_date" example:"2008-05-10"`
	Age              int             `json:"age"`
	Position         models.Position `json:"position" example:"MEDIO"`
	PositionLabel    string          `json:"position_label" example:"Medio"`
	JerseyNumber     int             `json:"jersey_number"`
	EmergencyContact string          `json:"emergency_contact,omitempty"`
	Active           bool            `json:"active"`
	CreatedAt        string          `json:"created_at" example:"2024-05-10 18:30:00"`
	UpdatedAt        string          `json:"updated_at" example:"2024-05-10 18:30:00"`
	Team             *TeamSummary    `json:"team,omitempty"`
}

// TeamResponse represents the response for team operations, with its active roster
type TeamResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	CrestURL    string          `json:"crest_url,omitempty"`
	Description string          `json:"description,omitempty"`
	FoundedOn   string          `json:"founded_on,omitempty" example:"1998-03-01"`
	Active      bool            `json:"active"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
	PlayerCount int             `json:"player_count"`
	Players     []PlayerSummary `json:"players"`
}

// AgeAt returns the whole years elapsed between birth and now
func AgeAt(birth, now time.Time) int {
	birth = birth.UTC()
	now = now.UTC()

	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// ToTeamSummary maps a team to its summary. A nil team maps to nil.
func ToTeamSummary(team *models.Team) *TeamSummary {
	if team == nil {
		return nil
	}
	return &TeamSummary{
		ID:       team.ID,
		Name:     team.Name,
		Category: team.Category,
		CrestURL: team.CrestURL,
	}
}

// ToPlayerSummary maps a player to a roster line with its age at now
func ToPlayerSummary(player *models.Player, now time.Time) PlayerSummary {
	return PlayerSummary{
		ID:            player.ID,
		Name:          player.Name,
		Position:      player.Position,
		PositionLabel: player.Position.Label(),
		JerseyNumber:  player.JerseyNumber,
		Age:           AgeAt(player.BirthDate, now),
	}
}

// ToPlayerResponse maps a player and its team. team may be nil.
func ToPlayerResponse(player *models.Player, team *models.Team, now time.Time) *PlayerResponse {
	return &PlayerResponse{
		ID:               player.ID,
		UserID:           player.UserID,
		Name:             player.Name,
		BirthDate:        formatDate(player.BirthDate),
		Age:              AgeAt(player.BirthDate, now),
		Position:         player.Position,
		PositionLabel:    player.Position.Label(),
		JerseyNumber:     player.JerseyNumber,
		EmergencyContact: player.EmergencyContact,
		Active:           player.Active,
		CreatedAt:        formatDateTime(player.CreatedAt),
		UpdatedAt:        formatDateTime(player.UpdatedAt),
		Team:             ToTeamSummary(team),
	}
}

// ToTeamResponse maps a team and its active roster, keeping roster order
func ToTeamResponse(team *models.Team, roster []models.Player, now time.Time) *TeamResponse {
	players := make([]PlayerSummary, len(roster))
	for i := range roster {
		players[i] = ToPlayerSummary(&roster[i], now)
	}

	resp := &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Category:    team.Category,
		CrestURL:    team.CrestURL,
		Description: team.Description,
		Active:      team.Active,
		CreatedAt:   formatDateTime(team.CreatedAt),
		UpdatedAt:   formatDateTime(team.UpdatedAt),
		PlayerCount: len(players),
		Players:     players,
	}
	if team.FoundedOn != nil {
		resp.FoundedOn = formatDate(*team.FoundedOn)
	}
	return resp
}

// toPlayerResponses maps players using an id-keyed team index
func toPlayerResponses(players []models.Player, teams map[int64]*models.Team, now time.Time) []PlayerResponse {
	responses := make([]PlayerResponse, len(players))
	for i := range players {
		responses[i] = *ToPlayerResponse(&players[i], teams[players[i].TeamID], now)
	}
	return responses
}

func formatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateTimeLayout)
}

// today truncates now to midnight UTC
func today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// yearsBefore returns the same calendar day n years before day.
// Feb 29 falls back to Feb 28 in non-leap years.
func yearsBefore(day time.Time, n int) time.Time {
	y := day.Year() - n
	d := day.Day()
	if day.Month() == time.February && d == 29 && !isLeap(y) {
		d = 28
	}
	return time.Date(y, day.Month(), d, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// MaxAge is the largest age an age range query resolves to a birth date.
const MaxAge = 150

// birthDateBounds converts an inclusive age range into the birth date interval
// (bornAfter, bornOnOrBefore] holding exactly the players with AgeAt in [minAge, maxAge].
// Both bounds are clamped to MaxAge.
func birthDateBounds(minAge, maxAge int, now time.Time) (bornAfter, bornOnOrBefore time.Time) {
	minAge = min(minAge, MaxAge)
	maxAge = min(maxAge, MaxAge)
	day := today(now)
	return yearsBefore(day, maxAge+1), yearsBefore(day, minAge)
}
