package models

import (
	"time"

	"gorm.io/gorm"
)

// Player is a member of exactly one team's roster.
// (TeamID, JerseyNumber) is unique among active players.
type Player struct {
	BaseModel
	UserID           *int64    `json:"user_id,omitempty" gorm:"index"`
	TeamID           int64     `json:"team_id" gorm:"not null;index;uniqueIndex:idx_players_team_jersey_active,where:active = true"`
	Name             string    `json:"name" gorm:"not null;size:100"`
	SearchKey        string    `json:"-" gorm:"type:text;not null;index"`
	BirthDate        time.Time `json:"birth_date" gorm:"type:date;not null"`
	Position         Position  `json:"position" gorm:"type:varchar(20);not null;index"`
	JerseyNumber     int       `json:"jersey_number" gorm:"not null;uniqueIndex:idx_players_team_jersey_active,where:active = true;check:chk_players_jersey_number,jersey_number BETWEEN 1 AND 99"`
	EmergencyContact string    `json:"emergency_contact" gorm:"size:100"`
	Active           bool      `json:"active" gorm:"not null;default:true;index"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}

// BeforeSave keeps the search key in sync with the name
func (p *Player) BeforeSave(tx *gorm.DB) error {
	p.SearchKey = SearchKey(p.Name)
	return nil
}
