//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"tournament-backend/internal/database/models"
	"tournament-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

var errJerseyTaken = errors.New("jersey taken")

// RosterStoreTestSuite tests transactions and schema constraints of the RosterStore
type RosterStoreTestSuite struct {
	suite.Suite
	ctx           context.Context
	baseTestSuite *testutils.BaseTestSuite
	store         *RosterStore
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *RosterStoreTestSuite) SetupSuite() {
	suite.ctx = context.Background()
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.store = NewRosterStore(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *RosterStoreTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *RosterStoreTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *RosterStoreTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *RosterStoreTestSuite) createTeam() *models.Team {
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.store.Teams().Create(suite.ctx, team))
	return team
}

// claimJersey registers a player the way the player service does: lock the team, check, insert
func (suite *RosterStoreTestSuite) claimJersey(teamID int64, number int) error {
	return suite.store.Transaction(suite.ctx, func(tx RosterStoreInterface) error {
		if _, err := tx.Teams().GetByIDForUpdate(suite.ctx, teamID); err != nil {
			return err
		}
		taken, err := tx.Players().ExistsActiveJersey(suite.ctx, teamID, number, 0)
		if err != nil {
			return err
		}
		if taken {
			return errJerseyTaken
		}
		return tx.Players().Create(suite.ctx, suite.factories.Player.Create(teamID, number))
	})
}

func (suite *RosterStoreTestSuite) TestTransactionRollsBack() {
	team := suite.createTeam()
	boom := errors.New("boom")

	err := suite.store.Transaction(suite.ctx, func(tx RosterStoreInterface) error {
		if err := tx.Players().Create(suite.ctx, suite.factories.Player.Create(team.ID, 10)); err != nil {
			return err
		}
		return boom
	})

	suite.ErrorIs(err, boom)
	count, err := suite.store.Players().CountActiveByTeam(suite.ctx, team.ID)
	suite.Require().NoError(err)
	suite.Zero(count)
}

func (suite *RosterStoreTestSuite) TestTransactionCommits() {
	team := suite.createTeam()

	suite.Require().NoError(suite.claimJersey(team.ID, 10))

	count, err := suite.store.Players().CountActiveByTeam(suite.ctx, team.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *RosterStoreTestSuite) TestConcurrentJerseyClaimsOnlyOneWins() {
	team := suite.createTeam()
	const workers = 8

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = suite.claimJersey(team.ID, 7)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		suite.ErrorIs(err, errJerseyTaken)
	}
	suite.Equal(1, succeeded)

	count, err := suite.store.Players().CountActiveByTeam(suite.ctx, team.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *RosterStoreTestSuite) TestActiveJerseyIndex() {
	team := suite.createTeam()
	first := suite.factories.Player.Create(team.ID, 10)
	suite.Require().NoError(suite.store.Players().Create(suite.ctx, first))

	err := suite.store.Players().Create(suite.ctx, suite.factories.Player.Create(team.ID, 10))
	suite.Error(err)
	suite.True(IsUniqueViolation(err))

	first.Active = false
	suite.Require().NoError(suite.store.Players().Update(suite.ctx, first))
	suite.NoError(suite.store.Players().Create(suite.ctx, suite.factories.Player.Create(team.ID, 10)))

	other := suite.createTeam()
	suite.NoError(suite.store.Players().Create(suite.ctx, suite.factories.Player.Create(other.ID, 10)))
}

func (suite *RosterStoreTestSuite) TestJerseyRangeCheck() {
	team := suite.createTeam()

	suite.Error(suite.store.Players().Create(suite.ctx, suite.factories.Player.Create(team.ID, 0)))
	suite.Error(suite.store.Players().Create(suite.ctx, suite.factories.Player.Create(team.ID, 100)))
	suite.NoError(suite.store.Players().Create(suite.ctx, suite.factories.Player.Create(team.ID, 99)))
}

func (suite *RosterStoreTestSuite) TestPlayerRequiresTeam() {
	err := suite.store.Players().Create(suite.ctx, suite.factories.Player.Create(424242, 10))
	suite.Error(err)
	suite.False(IsUniqueViolation(err))
}

func (suite *RosterStoreTestSuite) TestDeletingTeamRemovesPlayers() {
	team := suite.createTeam()
	suite.Require().NoError(suite.claimJersey(team.ID, 1))

	suite.Require().NoError(suite.baseTestSuite.DB.Delete(&models.Team{}, team.ID).Error)

	count, err := suite.store.Players().CountActiveByTeam(suite.ctx, team.ID)
	suite.Require().NoError(err)
	suite.Zero(count)
}

func (suite *RosterStoreTestSuite) TestIsNotFound() {
	_, err := suite.store.Teams().GetByID(suite.ctx, 424242)
	suite.True(IsNotFound(err))
	suite.False(IsNotFound(nil))
}

// TestRosterStoreTestSuite runs the test suite
func TestRosterStoreTestSuite(t *testing.T) {
	suite.Run(t, new(RosterStoreTestSuite))
}
