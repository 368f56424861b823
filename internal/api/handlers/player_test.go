package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"tournament-backend/internal/api/handlers"
	"tournament-backend/internal/database/models"
	apperrors "tournament-backend/internal/errors"
	"tournament-backend/internal/mocks"
	"tournament-backend/internal/service"
	"tournament-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PlayerHandlerTestSuite defines the test suite for PlayerHandler
type PlayerHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockPlayerServiceInterface
	handler     *handlers.PlayerHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *PlayerHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockPlayerServiceInterface(suite.ctrl)
	suite.handler = handlers.NewPlayerHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	players := v1.Group("/players")
	{
		players.GET("", suite.handler.ListRoster)
		players.POST("", suite.handler.RegisterPlayer)
		players.GET("/search", suite.handler.SearchPlayers)
		players.GET("/by-age", suite.handler.ListByAge)
		players.GET("/by-position/:position", suite.handler.ListByPosition)
		players.GET("/:id", suite.handler.GetPlayer)
		players.PUT("/:id", suite.handler.UpdatePlayer)
		players.DELETE("/:id", suite.handler.DeletePlayer)
	}
	v1.GET("/teams/:id/players", suite.handler.ListByTeam)
	v1.GET("/teams/:id/positions", suite.handler.PositionBreakdown)
}

// TearDownTest cleans up after each test
func (suite *PlayerHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PlayerHandlerTestSuite) TestRegisterPlayer() {
	body := map[string]interface{}{
		"team_id":       1,
		"name":          "Juan Pérez",
		"birth_date":    "2008-05-10",
		"position":      "MEDIO",
		"jersey_number": 10,
	}
	expected := &service.RegisterPlayerRequest{
		TeamID:       1,
		Name:         "Juan Pérez",
		BirthDate:    "2008-05-10",
		Position:     models.PositionMidfielder,
		JerseyNumber: 10,
	}

	suite.Run("Success", func() {
		suite.mockService.EXPECT().RegisterPlayer(gomock.Any(), expected).
			Return(&service.PlayerResponse{ID: 7, Name: "Juan Pérez", Age: 16, Position: models.PositionMidfielder, PositionLabel: "Medio", JerseyNumber: 10, Active: true,
				Team: &service.TeamSummary{ID: 1, Name: "Halcones"}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/players", body)

		var resp service.PlayerResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
		suite.Equal(int64(7), resp.ID)
		suite.Equal("Halcones", resp.Team.Name)
		suite.Equal("Medio", resp.PositionLabel)
	})

	suite.Run("Jersey taken", func() {
		suite.mockService.EXPECT().RegisterPlayer(gomock.Any(), expected).Return(nil, apperrors.ErrJerseyNumberTaken)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/players", body)

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "jersey number")
	})

	suite.Run("Unknown team", func() {
		suite.mockService.EXPECT().RegisterPlayer(gomock.Any(), expected).Return(nil, apperrors.ErrTeamNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/players", body)

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team not found")
	})
}

func (suite *PlayerHandlerTestSuite) TestGetAndDelete() {
	suite.mockService.EXPECT().GetPlayer(gomock.Any(), int64(7)).Return(&service.PlayerResponse{ID: 7}, nil)
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/players/7", nil)
	suite.Equal(http.StatusOK, recorder.Code)

	suite.mockService.EXPECT().SoftDeletePlayer(gomock.Any(), int64(7)).Return(nil)
	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/players/7", nil)
	suite.Equal(http.StatusNoContent, recorder.Code)

	suite.mockService.EXPECT().SoftDeletePlayer(gomock.Any(), int64(8)).Return(apperrors.ErrPlayerNotFound)
	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/players/8", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "player not found")

	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/players/0", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid player ID")
}

func (suite *PlayerHandlerTestSuite) TestUpdatePlayer() {
	suite.mockService.EXPECT().UpdatePlayer(gomock.Any(), int64(7), gomock.Any()).Return(nil, apperrors.ErrJerseyNumberTaken)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/players/7", map[string]interface{}{
		"name":          "Juan Pérez",
		"birth_date":    "2008-05-10",
		"position":      "MEDIO",
		"jersey_number": 11,
	})

	suite.Equal(http.StatusConflict, recorder.Code)
}

func (suite *PlayerHandlerTestSuite) TestQueries() {
	suite.Run("Roster", func() {
		suite.mockService.EXPECT().ListRoster(gomock.Any()).Return([]service.PlayerResponse{}, nil)
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/players", nil)
		suite.Equal(http.StatusOK, recorder.Code)
		suite.JSONEq(`[]`, recorder.Body.String())
	})

	suite.Run("Search", func() {
		suite.mockService.EXPECT().SearchPlayersByName(gomock.Any(), "ere").Return([]service.PlayerResponse{{ID: 1, Name: "Juan Pérez"}}, nil)
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/players/search?name=ere", nil)
		var resp []service.PlayerResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
		suite.Len(resp, 1)
	})

	suite.Run("By age", func() {
		suite.mockService.EXPECT().FindPlayersByAgeRange(gomock.Any(), 15, 17).Return([]service.PlayerResponse{}, nil)
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/players/by-age?min=15&max=17", nil)
		suite.Equal(http.StatusOK, recorder.Code)
	})

	suite.Run("By age with bad range", func() {
		suite.mockService.EXPECT().FindPlayersByAgeRange(gomock.Any(), 17, 15).Return(nil, apperrors.ErrInvalidAgeRange)
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/players/by-age?min=17&max=15", nil)
		suite.Equal(http.StatusBadRequest, recorder.Code)
	})

	suite.Run("By age without max", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/players/by-age?min=15", nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "max")
	})

	suite.Run("By position is case-insensitive", func() {
		teamID := int64(1)
		suite.mockService.EXPECT().ListPlayersByPosition(gomock.Any(), models.PositionGoalkeeper, &teamID).Return([]service.PlayerResponse{}, nil)
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/players/by-position/portero?team_id=1", nil)
		suite.Equal(http.StatusOK, recorder.Code)
	})

	suite.Run("Team roster", func() {
		suite.mockService.EXPECT().ListPlayersByTeam(gomock.Any(), int64(42)).Return([]service.PlayerResponse{}, nil)
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/42/players", nil)
		suite.Equal(http.StatusOK, recorder.Code)
	})

	suite.Run("Position breakdown", func() {
		suite.mockService.EXPECT().GetPositionBreakdown(gomock.Any(), int64(1)).Return(&service.PositionBreakdownResponse{TeamID: 1, Total: 0}, nil)
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/1/positions", nil)
		suite.Equal(http.StatusOK, recorder.Code)
	})
}

func (suite *PlayerHandlerTestSuite) TestErrorStatuses() {
	update := map[string]interface{}{
		"name":          "Juan Pérez",
		"birth_date":    "2008-05-10",
		"position":      "MEDIO",
		"jersey_number": 11,
	}

	suite.httpSuite.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{
			Name:             "unknown position is rejected before the service",
			Request:          testutils.MockHTTPRequest{Method: http.MethodGet, URL: "/api/v1/players/by-position/libero"},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusBadRequest, Body: map[string]string{"error": apperrors.ErrInvalidPosition.Error()}},
		},
		{
			Name:             "bad team_id filter",
			Request:          testutils.MockHTTPRequest{Method: http.MethodGet, URL: "/api/v1/players/by-position/medio?team_id=abc"},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusBadRequest, Body: map[string]string{"error": "invalid team_id parameter"}},
		},
		{
			Name:             "bad player id",
			Request:          testutils.MockHTTPRequest{Method: http.MethodPut, URL: "/api/v1/players/abc", Body: update},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusBadRequest, Body: map[string]string{"error": "invalid player ID"}},
		},
		{
			Name:    "update of a missing player",
			Request: testutils.MockHTTPRequest{Method: http.MethodPut, URL: "/api/v1/players/404", Body: update},
			Setup: func() {
				suite.mockService.EXPECT().UpdatePlayer(gomock.Any(), int64(404), gomock.Any()).Return(nil, apperrors.ErrPlayerNotFound)
			},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusNotFound, Body: map[string]string{"error": apperrors.ErrPlayerNotFound.Error()}},
		},
		{
			Name:    "jersey taken on update",
			Request: testutils.MockHTTPRequest{Method: http.MethodPut, URL: "/api/v1/players/7", Body: update},
			Setup: func() {
				suite.mockService.EXPECT().UpdatePlayer(gomock.Any(), int64(7), gomock.Any()).Return(nil, apperrors.ErrJerseyNumberTaken)
			},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusConflict, Body: map[string]string{"error": apperrors.ErrJerseyNumberTaken.Error()}},
		},
		{
			Name:    "unexpected failure hides details",
			Request: testutils.MockHTTPRequest{Method: http.MethodGet, URL: "/api/v1/players", Headers: map[string]string{"X-Request-ID": "req-1"}},
			Setup: func() {
				suite.mockService.EXPECT().ListRoster(gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusInternalServerError, Body: map[string]string{"error": "internal server error"}},
		},
	})
}

func (suite *PlayerHandlerTestSuite) TestUpdatePlayer_DirectContext() {
	ctx, recorder := testutils.CreateTestGinContext()
	testutils.SetJSONBody(ctx, map[string]interface{}{
		"name":          " Juan Pérez ",
		"birth_date":    "2008-05-10",
		"position":      "medio",
		"jersey_number": 10,
	})
	testutils.SetURLParam(ctx, "id", "7")

	suite.mockService.EXPECT().UpdatePlayer(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, req *service.UpdatePlayerRequest) (*service.PlayerResponse, error) {
			suite.Equal(10, req.JerseyNumber)
			return &service.PlayerResponse{ID: 7, Name: "Juan Pérez", JerseyNumber: 10, Active: true}, nil
		})

	suite.handler.UpdatePlayer(ctx)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK)
	var resp service.PlayerResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &resp)
	suite.Equal(int64(7), resp.ID)
	suite.True(resp.Active)
}

// TestPlayerHandlerTestSuite runs the test suite
func TestPlayerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerHandlerTestSuite))
}
