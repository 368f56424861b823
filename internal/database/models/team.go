package models

import (
	"time"

	"gorm.io/gorm"
)

// Team is a club registered in the tournament. Players reference it by TeamID;
// the team record itself carries no player list.
type Team struct {
	BaseModel
	Name        string     `json:"name" gorm:"not null;size:100"` // unique on LOWER(name), see database.Initialize
	SearchKey   string     `json:"-" gorm:"type:text;not null;index"`
	Category    string     `json:"category" gorm:"not null;size:50;index"`
	CrestURL    string     `json:"crest_url" gorm:"size:255"`
	Description string     `json:"description" gorm:"type:text"`
	FoundedOn   *time.Time `json:"founded_on,omitempty" gorm:"type:date"`
	Active      bool       `json:"active" gorm:"not null;default:true;index"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// BeforeSave keeps the search key in sync with the name
func (t *Team) BeforeSave(tx *gorm.DB) error {
	t.SearchKey = SearchKey(t.Name)
	return nil
}
