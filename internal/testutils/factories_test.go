package testutils

import (
	"testing"

	"tournament-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func TestTeamFactoryNamesAreUnique(t *testing.T) {
	f := NewFactorySet()

	a := f.Team.Create()
	b := f.Team.Create()

	assert.NotEqual(t, a.Name, b.Name)
	assert.Zero(t, a.ID)
	assert.True(t, a.Active)
	assert.Equal(t, "Sub-15", f.Team.WithCategory("Sub-15").Category)
}

func TestPlayerFactory(t *testing.T) {
	f := NewFactorySet()

	p := f.Player.WithName(3, 10, "Juan Pérez")

	assert.Equal(t, int64(3), p.TeamID)
	assert.Equal(t, 10, p.JerseyNumber)
	assert.Equal(t, "Juan Pérez", p.Name)
	assert.Equal(t, models.PositionMidfielder, p.Position)
	assert.True(t, p.Active)
}
