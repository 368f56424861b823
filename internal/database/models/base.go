package models

import (
	"time"
)

// BaseModel provides the identity and audit fields shared by roster records.
// Timestamps are assigned by the service layer from its clock, never by gorm.
type BaseModel struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime:false;<-:create"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;autoUpdateTime:false"`
}

// Touch sets UpdatedAt, and CreatedAt when the record has not been persisted yet
func (base *BaseModel) Touch(now time.Time) {
	if base.ID == 0 && base.CreatedAt.IsZero() {
		base.CreatedAt = now
	}
	base.UpdatedAt = now
}
