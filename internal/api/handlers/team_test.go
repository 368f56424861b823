package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tournament-backend/internal/api/handlers"
	apperrors "tournament-backend/internal/errors"
	"tournament-backend/internal/mocks"
	"tournament-backend/internal/repository"
	"tournament-backend/internal/service"
	"tournament-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	teams := suite.httpSuite.Router.Group("/api/v1/teams")
	{
		teams.GET("", suite.handler.ListTeams)
		teams.POST("", suite.handler.CreateTeam)
		teams.GET("/search", suite.handler.SearchTeams)
		teams.GET("/by-name/:name", suite.handler.GetTeamByName)
		teams.GET("/categories/counts", suite.handler.CategoryCounts)
		teams.GET("/categories/:category/count", suite.handler.CountByCategory)
		teams.GET("/:id", suite.handler.GetTeam)
		teams.PUT("/:id", suite.handler.UpdateTeam)
		teams.DELETE("/:id", suite.handler.DeactivateTeam)
		teams.POST("/:id/roster/deactivate", suite.handler.DeactivateRoster)
		teams.GET("/:id/players/count", suite.handler.CountPlayers)
		teams.POST("/:id/crest", suite.handler.UploadCrest)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) makeInvalidJSONRequest(method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	return recorder
}

func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.Run("Success", func() {
		suite.mockService.EXPECT().CreateTeam(gomock.Any(), &service.CreateTeamRequest{Name: "Halcones", Category: "Sub-17"}).
			Return(&service.TeamResponse{ID: 1, Name: "Halcones", Category: "Sub-17", Active: true, Players: []service.PlayerSummary{}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]interface{}{
			"name":     "Halcones",
			"category": "Sub-17",
		})

		var resp service.TeamResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
		suite.Equal(int64(1), resp.ID)
		suite.Equal("Halcones", resp.Name)
	})

	suite.Run("Duplicate name", func() {
		suite.mockService.EXPECT().CreateTeam(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrTeamExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]interface{}{
			"name":     "halcones",
			"category": "Sub-17",
		})

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
	})

	suite.Run("Validation error", func() {
		suite.mockService.EXPECT().CreateTeam(gomock.Any(), gomock.Any()).Return(nil, apperrors.NewValidationError("name", "is required"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]interface{}{"category": "Sub-17"})

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "name")
	})

	suite.Run("Invalid JSON", func() {
		recorder := suite.makeInvalidJSONRequest(http.MethodPost, "/api/v1/teams")
		suite.Equal(http.StatusBadRequest, recorder.Code)
	})
}

func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.Run("Success", func() {
		suite.mockService.EXPECT().GetTeam(gomock.Any(), int64(1)).
			Return(&service.TeamResponse{ID: 1, Name: "Halcones", PlayerCount: 1, Players: []service.PlayerSummary{{ID: 7, Name: "Juan Pérez", JerseyNumber: 10}}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/1", nil)

		var resp service.TeamResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
		suite.Equal(1, resp.PlayerCount)
		suite.Equal("Juan Pérez", resp.Players[0].Name)
	})

	suite.Run("Invalid ID", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/abc", nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid team ID")
	})

	suite.Run("Not found", func() {
		suite.mockService.EXPECT().GetTeam(gomock.Any(), int64(9)).Return(nil, apperrors.ErrTeamNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/9", nil)

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team not found")
	})

	suite.Run("Internal error is not leaked", func() {
		suite.mockService.EXPECT().GetTeam(gomock.Any(), int64(2)).Return(nil, errors.New("pq: connection refused"))

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/2", nil)

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "internal server error")
		suite.NotContains(recorder.Body.String(), "connection refused")
	})
}

func (suite *TeamHandlerTestSuite) TestListTeams() {
	suite.Run("Passes filters", func() {
		suite.mockService.EXPECT().ListTeams(gomock.Any(), "Sub-17", 2, 5).
			Return(&service.TeamListResponse{Teams: []service.TeamSummary{}, Total: 6, Page: 2, PageSize: 5}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams?category=Sub-17&page=2&page_size=5", nil)

		var resp service.TeamListResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
		suite.Equal(int64(6), resp.Total)
	})

	suite.Run("Invalid page", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams?page=first", nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "page")
	})
}

func (suite *TeamHandlerTestSuite) TestSearchAndLookup() {
	suite.mockService.EXPECT().SearchTeamsByName(gomock.Any(), "alc").Return([]service.TeamSummary{{ID: 1, Name: "Halcones"}}, nil)
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/search?q=alc", nil)
	var summaries []service.TeamSummary
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &summaries)
	suite.Len(summaries, 1)

	suite.mockService.EXPECT().GetTeamByName(gomock.Any(), "Halcones").Return(&service.TeamResponse{ID: 1, Name: "Halcones"}, nil)
	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/by-name/Halcones", nil)
	suite.Equal(http.StatusOK, recorder.Code)

	suite.mockService.EXPECT().CountTeamsByCategory(gomock.Any(), "Sub-17").Return(&repository.CategoryCount{Category: "Sub-17", Count: 3}, nil)
	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/categories/Sub-17/count", nil)
	var count repository.CategoryCount
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &count)
	suite.Equal(int64(3), count.Count)

	suite.mockService.EXPECT().CategoryCounts(gomock.Any()).Return([]repository.CategoryCount{}, nil)
	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/categories/counts", nil)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`[]`, recorder.Body.String())
}

func (suite *TeamHandlerTestSuite) TestUpdateTeam() {
	suite.mockService.EXPECT().UpdateTeam(gomock.Any(), int64(1), &service.UpdateTeamRequest{Name: "Halcones FC", Category: "Sub-19"}).
		Return(&service.TeamResponse{ID: 1, Name: "Halcones FC", Category: "Sub-19"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/teams/1", map[string]interface{}{
		"name":     "Halcones FC",
		"category": "Sub-19",
	})

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestDeactivate() {
	suite.mockService.EXPECT().DeactivateTeam(gomock.Any(), int64(1)).Return(nil)
	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/1", nil)
	suite.Equal(http.StatusNoContent, recorder.Code)

	suite.mockService.EXPECT().DeactivateTeamRoster(gomock.Any(), int64(1)).
		Return(&service.RosterDeactivationResponse{TeamID: 1, DeactivatedPlayers: 4}, nil)
	recorder = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/1/roster/deactivate", nil)
	var resp service.RosterDeactivationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal(int64(4), resp.DeactivatedPlayers)
}

func (suite *TeamHandlerTestSuite) TestCountPlayers() {
	suite.mockService.EXPECT().CountActivePlayers(gomock.Any(), int64(1)).Return(&service.PlayerCountResponse{TeamID: 1, Count: 11}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/1/players/count", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"team_id":1,"count":11}`, recorder.Body.String())
}

func (suite *TeamHandlerTestSuite) TestUploadCrest() {
	suite.Run("Success", func() {
		suite.mockService.EXPECT().UploadCrest(gomock.Any(), int64(1), "escudo.png", "image/png", gomock.Any()).
			Return(&service.TeamResponse{ID: 1, CrestURL: "https://cdn.example.com/crests/1/a.png"}, nil)

		recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPost, "/api/v1/teams/1/crest", "crest", "escudo.png", "image/png", []byte("png"))

		var resp service.TeamResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
		suite.Equal("https://cdn.example.com/crests/1/a.png", resp.CrestURL)
	})

	suite.Run("Missing file", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/1/crest", nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "crest file is required")
	})

	suite.Run("Storage not configured", func() {
		suite.mockService.EXPECT().UploadCrest(gomock.Any(), int64(1), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrStorageNotConfigured)

		recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPost, "/api/v1/teams/1/crest", "crest", "escudo.png", "image/png", []byte("png"))

		suite.Equal(http.StatusServiceUnavailable, recorder.Code)
	})
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
