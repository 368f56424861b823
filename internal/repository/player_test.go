//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"tournament-backend/internal/database/models"
	"tournament-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PlayerRepositoryTestSuite tests the PlayerRepository
type PlayerRepositoryTestSuite struct {
	suite.Suite
	ctx           context.Context
	baseTestSuite *testutils.BaseTestSuite
	teams         *TeamRepository
	repo          *PlayerRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *PlayerRepositoryTestSuite) SetupSuite() {
	suite.ctx = context.Background()
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.teams = NewTeamRepository(suite.baseTestSuite.DB)
	suite.repo = NewPlayerRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *PlayerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PlayerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PlayerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *PlayerRepositoryTestSuite) createTeam(name string) *models.Team {
	team := suite.factories.Team.WithName(name)
	suite.Require().NoError(suite.teams.Create(suite.ctx, team))
	return team
}

func (suite *PlayerRepositoryTestSuite) createPlayer(player *models.Player) *models.Player {
	suite.Require().NoError(suite.repo.Create(suite.ctx, player))
	return player
}

func (suite *PlayerRepositoryTestSuite) deactivate(player *models.Player) {
	player.Active = false
	suite.Require().NoError(suite.repo.Update(suite.ctx, player))
}

func (suite *PlayerRepositoryTestSuite) TestCreateAndGet() {
	team := suite.createTeam("Halcones")
	player := suite.createPlayer(suite.factories.Player.WithName(team.ID, 10, "Juan Pérez"))

	found, err := suite.repo.GetByID(suite.ctx, player.ID)
	suite.Require().NoError(err)
	suite.Equal("Juan Pérez", found.Name)
	suite.Equal("juan perez", found.SearchKey)
	suite.Equal(team.ID, found.TeamID)
	suite.Equal("2008-05-10", found.BirthDate.Format("2006-01-02"))
	suite.Equal(models.PositionMidfielder, found.Position)

	_, err = suite.repo.GetByID(suite.ctx, player.ID+100)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *PlayerRepositoryTestSuite) TestGetActiveByTeam() {
	halcones := suite.createTeam("Halcones")
	leones := suite.createTeam("Leones")
	first := suite.createPlayer(suite.factories.Player.Create(halcones.ID, 9))
	second := suite.createPlayer(suite.factories.Player.Create(halcones.ID, 4))
	gone := suite.createPlayer(suite.factories.Player.Create(halcones.ID, 7))
	suite.createPlayer(suite.factories.Player.Create(leones.ID, 1))
	suite.deactivate(gone)

	roster, err := suite.repo.GetActiveByTeam(suite.ctx, halcones.ID)
	suite.Require().NoError(err)
	suite.Require().Len(roster, 2)
	suite.Equal(first.ID, roster[0].ID)
	suite.Equal(second.ID, roster[1].ID)

	count, err := suite.repo.CountActiveByTeam(suite.ctx, halcones.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	roster, err = suite.repo.GetActiveByTeam(suite.ctx, halcones.ID+leones.ID+100)
	suite.Require().NoError(err)
	suite.Empty(roster)
}

func (suite *PlayerRepositoryTestSuite) TestExistsActiveJersey() {
	team := suite.createTeam("Halcones")
	player := suite.createPlayer(suite.factories.Player.Create(team.ID, 10))

	taken, err := suite.repo.ExistsActiveJersey(suite.ctx, team.ID, 10, 0)
	suite.Require().NoError(err)
	suite.True(taken)

	taken, err = suite.repo.ExistsActiveJersey(suite.ctx, team.ID, 10, player.ID)
	suite.Require().NoError(err)
	suite.False(taken, "a player does not conflict with itself")

	suite.deactivate(player)
	taken, err = suite.repo.ExistsActiveJersey(suite.ctx, team.ID, 10, 0)
	suite.Require().NoError(err)
	suite.False(taken, "inactive players release their number")
}

func (suite *PlayerRepositoryTestSuite) TestSearchActiveByName() {
	team := suite.createTeam("Halcones")
	juan := suite.createPlayer(suite.factories.Player.WithName(team.ID, 10, "Juan Pérez"))
	suite.createPlayer(suite.factories.Player.WithName(team.ID, 11, "Luis Gómez"))
	garcia := suite.createPlayer(suite.factories.Player.WithName(team.ID, 12, "Andrés García Pereira"))
	suite.deactivate(garcia)

	players, err := suite.repo.SearchActiveByName(suite.ctx, "ERE")
	suite.Require().NoError(err)
	suite.Require().Len(players, 1)
	suite.Equal(juan.ID, players[0].ID)

	players, err = suite.repo.SearchActiveByName(suite.ctx, "pérez")
	suite.Require().NoError(err)
	suite.Len(players, 1)

	players, err = suite.repo.SearchActiveByName(suite.ctx, "_")
	suite.Require().NoError(err)
	suite.Empty(players)
}

func (suite *PlayerRepositoryTestSuite) TestPositionQueries() {
	team := suite.createTeam("Halcones")
	other := suite.createTeam("Leones")

	keeper := suite.factories.Player.Create(team.ID, 1)
	keeper.Position = models.PositionGoalkeeper
	suite.createPlayer(keeper)
	nine := suite.createPlayer(suite.factories.Player.Create(team.ID, 9))
	five := suite.createPlayer(suite.factories.Player.Create(team.ID, 5))
	suite.createPlayer(suite.factories.Player.Create(other.ID, 8))

	mids, err := suite.repo.GetActiveByTeamAndPosition(suite.ctx, team.ID, models.PositionMidfielder)
	suite.Require().NoError(err)
	suite.Require().Len(mids, 2)
	suite.Equal(five.ID, mids[0].ID)
	suite.Equal(nine.ID, mids[1].ID)

	all, err := suite.repo.GetActiveByPosition(suite.ctx, models.PositionMidfielder)
	suite.Require().NoError(err)
	suite.Len(all, 3)

	counts, err := suite.repo.CountActiveByPosition(suite.ctx, team.ID)
	suite.Require().NoError(err)
	suite.ElementsMatch([]PositionCount{
		{Position: models.PositionGoalkeeper, Count: 1},
		{Position: models.PositionMidfielder, Count: 2},
	}, counts)
}

func (suite *PlayerRepositoryTestSuite) TestGetActiveRosterOrdersByTeamThenJersey() {
	zorros := suite.createTeam("Zorros")
	aguilas := suite.createTeam("Aguilas")
	suite.createPlayer(suite.factories.Player.Create(zorros.ID, 3))
	suite.createPlayer(suite.factories.Player.Create(aguilas.ID, 20))
	suite.createPlayer(suite.factories.Player.Create(aguilas.ID, 2))
	suite.deactivate(suite.createPlayer(suite.factories.Player.Create(zorros.ID, 1)))

	roster, err := suite.repo.GetActiveRoster(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(roster, 3)
	suite.Equal([]int64{aguilas.ID, aguilas.ID, zorros.ID}, []int64{roster[0].TeamID, roster[1].TeamID, roster[2].TeamID})
	suite.Equal([]int{2, 20, 3}, []int{roster[0].JerseyNumber, roster[1].JerseyNumber, roster[2].JerseyNumber})
}

func (suite *PlayerRepositoryTestSuite) TestGetActiveBornBetween() {
	team := suite.createTeam("Halcones")
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	suite.createPlayer(suite.factories.Player.WithBirthDate(team.ID, 1, day(2006, time.June, 15)))
	younger := suite.createPlayer(suite.factories.Player.WithBirthDate(team.ID, 2, day(2009, time.June, 15)))
	older := suite.createPlayer(suite.factories.Player.WithBirthDate(team.ID, 3, day(2006, time.June, 16)))
	suite.createPlayer(suite.factories.Player.WithBirthDate(team.ID, 4, day(2009, time.June, 16)))

	players, err := suite.repo.GetActiveBornBetween(suite.ctx, day(2006, time.June, 15), day(2009, time.June, 15))
	suite.Require().NoError(err)
	suite.Require().Len(players, 2)
	suite.Equal(older.ID, players[0].ID)
	suite.Equal(younger.ID, players[1].ID)
}

func (suite *PlayerRepositoryTestSuite) TestDeactivateByTeam() {
	team := suite.createTeam("Halcones")
	other := suite.createTeam("Leones")
	suite.createPlayer(suite.factories.Player.Create(team.ID, 1))
	suite.createPlayer(suite.factories.Player.Create(team.ID, 2))
	suite.deactivate(suite.createPlayer(suite.factories.Player.Create(team.ID, 3)))
	suite.createPlayer(suite.factories.Player.Create(other.ID, 1))

	changed, err := suite.repo.DeactivateByTeam(suite.ctx, team.ID, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Equal(int64(2), changed)

	count, err := suite.repo.CountActiveByTeam(suite.ctx, team.ID)
	suite.Require().NoError(err)
	suite.Zero(count)

	count, err = suite.repo.CountActiveByTeam(suite.ctx, other.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

// TestPlayerRepositoryTestSuite runs the test suite
func TestPlayerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerRepositoryTestSuite))
}
