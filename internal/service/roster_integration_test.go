//go:build integration
// +build integration

package service_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"tournament-backend/internal/database/models"
	apperrors "tournament-backend/internal/errors"
	"tournament-backend/internal/events"
	"tournament-backend/internal/repository"
	"tournament-backend/internal/service"
	"tournament-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"
)

// RosterIntegrationTestSuite drives the team and player services against Postgres
type RosterIntegrationTestSuite struct {
	suite.Suite
	ctx           context.Context
	baseTestSuite *testutils.BaseTestSuite
	store         *repository.RosterStore
	clock         *clockwork.FakeClock
	teamService   *service.TeamService
	playerService *service.PlayerService
}

// SetupSuite runs before all tests in the suite
func (suite *RosterIntegrationTestSuite) SetupSuite() {
	suite.ctx = context.Background()
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.store = repository.NewRosterStore(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *RosterIntegrationTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *RosterIntegrationTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.clock = clockwork.NewFakeClockAt(fixedNow)
	validate := validator.New()
	publisher := events.NewLogPublisher()
	suite.teamService = service.NewTeamService(suite.store, validate, suite.clock, publisher, nil)
	suite.playerService = service.NewPlayerService(suite.store, validate, suite.clock, publisher)
}

// TearDownTest runs after each test
func (suite *RosterIntegrationTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *RosterIntegrationTestSuite) createTeam(name string) *service.TeamResponse {
	team, err := suite.teamService.CreateTeam(suite.ctx, &service.CreateTeamRequest{Name: name, Category: "Sub-17"})
	suite.Require().NoError(err)
	return team
}

func (suite *RosterIntegrationTestSuite) register(teamID int64, name string, jersey int) (*service.PlayerResponse, error) {
	return suite.playerService.RegisterPlayer(suite.ctx, &service.RegisterPlayerRequest{
		TeamID:       teamID,
		Name:         name,
		BirthDate:    "2008-05-10",
		Position:     models.PositionMidfielder,
		JerseyNumber: jersey,
	})
}

func (suite *RosterIntegrationTestSuite) TestJerseyLifecycle() {
	halcones := suite.createTeam("Halcones")

	juan, err := suite.register(halcones.ID, "Juan Pérez", 10)
	suite.Require().NoError(err)
	suite.Equal(16, juan.Age)
	suite.Equal("Halcones", juan.Team.Name)

	_, err = suite.register(halcones.ID, "Luis Gómez", 10)
	suite.ErrorIs(err, apperrors.ErrJerseyNumberTaken)

	suite.Require().NoError(suite.playerService.SoftDeletePlayer(suite.ctx, juan.ID))

	luis, err := suite.register(halcones.ID, "Luis Gómez", 10)
	suite.Require().NoError(err)

	fetched, err := suite.playerService.GetPlayer(suite.ctx, luis.ID)
	suite.Require().NoError(err)
	suite.Equal(*luis, *fetched)

	gone, err := suite.playerService.GetPlayer(suite.ctx, juan.ID)
	suite.Require().NoError(err)
	suite.False(gone.Active)
	suite.Equal("2008-05-10", gone.BirthDate)
	suite.Equal("2024-06-15 12:00:00", gone.CreatedAt)

	team, err := suite.teamService.GetTeam(suite.ctx, halcones.ID)
	suite.Require().NoError(err)
	suite.Equal(1, team.PlayerCount)
	suite.Equal(luis.ID, team.Players[0].ID)
}

func (suite *RosterIntegrationTestSuite) TestSearchSkipsInactivePlayers() {
	halcones := suite.createTeam("Halcones")
	juan, err := suite.register(halcones.ID, "Juan Pérez", 10)
	suite.Require().NoError(err)
	garcia, err := suite.register(halcones.ID, "Andrés García Pereira", 4)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.playerService.SoftDeletePlayer(suite.ctx, garcia.ID))

	found, err := suite.playerService.SearchPlayersByName(suite.ctx, "ere")

	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(juan.ID, found[0].ID)
	suite.Equal("Halcones", found[0].Team.Name)
}

func (suite *RosterIntegrationTestSuite) TestAgeFollowsTheClock() {
	halcones := suite.createTeam("Halcones")
	player, err := suite.playerService.RegisterPlayer(suite.ctx, &service.RegisterPlayerRequest{
		TeamID:       halcones.ID,
		Name:         "Juan Pérez",
		BirthDate:    "2008-06-16",
		Position:     models.PositionForward,
		JerseyNumber: 9,
	})
	suite.Require().NoError(err)
	suite.Equal(15, player.Age)

	suite.clock.Advance(24 * time.Hour)

	fetched, err := suite.playerService.GetPlayer(suite.ctx, player.ID)
	suite.Require().NoError(err)
	suite.Equal(16, fetched.Age)

	byAge, err := suite.playerService.FindPlayersByAgeRange(suite.ctx, 16, 16)
	suite.Require().NoError(err)
	suite.Len(byAge, 1)

	everyone, err := suite.playerService.FindPlayersByAgeRange(suite.ctx, 0, 1<<62)
	suite.Require().NoError(err)
	suite.Len(everyone, 1)
}

func (suite *RosterIntegrationTestSuite) TestConcurrentRegistrationsClaimOneJersey() {
	halcones := suite.createTeam("Halcones")
	const workers = 8

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = suite.register(halcones.ID, "Jugador", 7)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		suite.ErrorIs(err, apperrors.ErrJerseyNumberTaken)
	}
	suite.Equal(1, succeeded)

	count, err := suite.teamService.CountActivePlayers(suite.ctx, halcones.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count.Count)
}

// An update that waits on the team lock while a soft-delete commits must keep the player inactive.
func (suite *RosterIntegrationTestSuite) TestUpdateWaitingOnTeamLockKeepsSoftDelete() {
	halcones := suite.createTeam("Halcones")
	juan, err := suite.register(halcones.ID, "Juan Pérez", 10)
	suite.Require().NoError(err)

	tx := suite.baseTestSuite.DB.Begin()
	suite.Require().NoError(tx.Error)
	locked := repository.NewRosterStore(tx)
	_, err = locked.Teams().GetByIDForUpdate(suite.ctx, halcones.ID)
	suite.Require().NoError(err)
	row, err := locked.Players().GetByIDForUpdate(suite.ctx, juan.ID)
	suite.Require().NoError(err)
	row.Active = false
	suite.Require().NoError(locked.Players().Update(suite.ctx, row))

	done := make(chan error, 1)
	go func() {
		_, err := suite.playerService.UpdatePlayer(suite.ctx, juan.ID, &service.UpdatePlayerRequest{
			Name:         "Juan Pérez Gil",
			BirthDate:    "2008-05-10",
			Position:     models.PositionMidfielder,
			JerseyNumber: 10,
		})
		done <- err
	}()

	suite.Eventually(func() bool {
		var waiting int64
		suite.baseTestSuite.DB.Raw(
			`SELECT COUNT(*) FROM pg_stat_activity WHERE datname = current_database() AND wait_event_type = 'Lock'`,
		).Scan(&waiting)
		return waiting > 0
	}, 10*time.Second, 20*time.Millisecond)

	suite.Require().NoError(tx.Commit().Error)
	suite.Require().NoError(<-done)

	fetched, err := suite.playerService.GetPlayer(suite.ctx, juan.ID)
	suite.Require().NoError(err)
	suite.False(fetched.Active)
	suite.Equal("Juan Pérez Gil", fetched.Name)

	roster, err := suite.playerService.ListPlayersByTeam(suite.ctx, halcones.ID)
	suite.Require().NoError(err)
	suite.Empty(roster)
}

func (suite *RosterIntegrationTestSuite) TestDeactivatingTeamKeepsRoster() {
	halcones := suite.createTeam("Halcones")
	_, err := suite.register(halcones.ID, "Juan Pérez", 10)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.teamService.DeactivateTeam(suite.ctx, halcones.ID))
	roster, err := suite.playerService.ListPlayersByTeam(suite.ctx, halcones.ID)
	suite.Require().NoError(err)
	suite.Len(roster, 1)

	_, err = suite.teamService.CreateTeam(suite.ctx, &service.CreateTeamRequest{Name: "HALCONES", Category: "Sub-15"})
	suite.ErrorIs(err, apperrors.ErrTeamExists)

	result, err := suite.teamService.DeactivateTeamRoster(suite.ctx, halcones.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), result.DeactivatedPlayers)
}

func (suite *RosterIntegrationTestSuite) TestLongestNameIsStored() {
	team, err := suite.teamService.CreateTeam(suite.ctx, &service.CreateTeamRequest{
		Name:     "İstanbul " + strings.Repeat("İ", 91),
		Category: "Sub-17",
	})
	suite.Require().NoError(err)

	found, err := suite.teamService.SearchTeamsByName(suite.ctx, "istanbul")
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(team.ID, found[0].ID)
}

// TestRosterIntegrationTestSuite runs the test suite
func TestRosterIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RosterIntegrationTestSuite))
}
