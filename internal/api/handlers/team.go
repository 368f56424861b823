package handlers

import (
	"net/http"

	"tournament-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// maxCrestSize bounds crest uploads
const maxCrestSize = 2 << 20

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Create an active team. Names are unique ignoring case, inactive teams included.
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Team name already in use"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	team, err := h.teamService.CreateTeam(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Description Get a team, active or not, with its active roster
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}

	team, err := h.teamService.GetTeam(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// GetTeamByName handles GET /teams/by-name/:name
// @Summary Get team by name
// @Description Get a team by exact name, ignoring case
// @Tags teams
// @Produce json
// @Param name path string true "Team name"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/by-name/{name} [get]
func (h *TeamHandler) GetTeamByName(c *gin.Context) {
	team, err := h.teamService.GetTeamByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// ListTeams handles GET /teams
// @Summary List active teams
// @Description List active teams ordered by name, optionally filtered by category
// @Tags teams
// @Produce json
// @Param category query string false "Category filter (case-insensitive)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.TeamListResponse "Successfully retrieved teams"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	page, ok := queryInt(c, "page", 1)
	if !ok {
		return
	}
	pageSize, ok := queryInt(c, "page_size", 20)
	if !ok {
		return
	}

	teams, err := h.teamService.ListTeams(c.Request.Context(), c.Query("category"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// SearchTeams handles GET /teams/search
// @Summary Search active teams by name
// @Description Substring match ignoring case and accents
// @Tags teams
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {array} service.TeamSummary "Matching teams"
// @Failure 400 {object} ErrorResponse "Missing search text"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/search [get]
func (h *TeamHandler) SearchTeams(c *gin.Context) {
	teams, err := h.teamService.SearchTeamsByName(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update a team
// @Description Replace a team's name, category, crest, description and founding date
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param team body service.UpdateTeamRequest true "Team data"
// @Success 200 {object} service.TeamResponse "Successfully updated team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Team name already in use"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	team, err := h.teamService.UpdateTeam(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeactivateTeam handles DELETE /teams/:id
// @Summary Deactivate a team
// @Description Mark a team inactive. Its players stay active.
// @Tags teams
// @Param id path int true "Team ID"
// @Success 204 "Team deactivated"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeactivateTeam(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}

	if err := h.teamService.DeactivateTeam(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeactivateRoster handles POST /teams/:id/roster/deactivate
// @Summary Deactivate a team's roster
// @Description Soft-delete every active player of the team
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} service.RosterDeactivationResponse "Players deactivated"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id}/roster/deactivate [post]
func (h *TeamHandler) DeactivateRoster(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}

	resp, err := h.teamService.DeactivateTeamRoster(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CountByCategory handles GET /teams/categories/:category/count
// @Summary Count active teams in a category
// @Tags teams
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} repository.CategoryCount
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/categories/{category}/count [get]
func (h *TeamHandler) CountByCategory(c *gin.Context) {
	count, err := h.teamService.CountTeamsByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, count)
}

// CategoryCounts handles GET /teams/categories/counts
// @Summary Count active teams per category
// @Tags teams
// @Produce json
// @Success 200 {array} repository.CategoryCount
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/categories/counts [get]
func (h *TeamHandler) CategoryCounts(c *gin.Context) {
	counts, err := h.teamService.CategoryCounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, counts)
}

// CountPlayers handles GET /teams/:id/players/count
// @Summary Count a team's active players
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} service.PlayerCountResponse
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id}/players/count [get]
func (h *TeamHandler) CountPlayers(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}

	count, err := h.teamService.CountActivePlayers(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, count)
}

// UploadCrest handles POST /teams/:id/crest
// @Summary Upload a team crest
// @Description Store an image in object storage and set it as the team's crest
// @Tags teams
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Team ID"
// @Param crest formData file true "Crest image"
// @Success 200 {object} service.TeamResponse "Crest updated"
// @Failure 400 {object} ErrorResponse "Missing or unsupported file"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 503 {object} ErrorResponse "Object storage not configured"
// @Router /teams/{id}/crest [post]
func (h *TeamHandler) UploadCrest(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxCrestSize)
	fileHeader, err := c.FormFile("crest")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "crest file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "could not read crest file"})
		return
	}
	defer file.Close()

	team, err := h.teamService.UploadCrest(c.Request.Context(), id, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}
