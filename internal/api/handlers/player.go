package handlers

import (
	"net/http"
	"strconv"

	"tournament-backend/internal/database/models"
	apperrors "tournament-backend/internal/errors"
	"tournament-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlayerHandler handles HTTP requests for player operations
type PlayerHandler struct {
	playerService service.PlayerServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService service.PlayerServiceInterface) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// RegisterPlayer handles POST /players
// @Summary Register a player
// @Description Add an active player to a team. Jersey numbers are unique among a team's active players.
// @Tags players
// @Accept json
// @Produce json
// @Param player body service.RegisterPlayerRequest true "Player data"
// @Success 201 {object} service.PlayerResponse "Successfully registered player"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Jersey number already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /players [post]
func (h *PlayerHandler) RegisterPlayer(c *gin.Context) {
	var req service.RegisterPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	player, err := h.playerService.RegisterPlayer(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, player)
}

// GetPlayer handles GET /players/:id
// @Summary Get player by ID
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} service.PlayerResponse "Successfully retrieved player"
// @Failure 400 {object} ErrorResponse "Invalid player ID"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, ok := parseID(c, "id", "player")
	if !ok {
		return
	}

	player, err := h.playerService.GetPlayer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// UpdatePlayer handles PUT /players/:id
// @Summary Update a player
// @Tags players
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Param player body service.UpdatePlayerRequest true "Player data"
// @Success 200 {object} service.PlayerResponse "Successfully updated player"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Failure 409 {object} ErrorResponse "Jersey number already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /players/{id} [put]
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	id, ok := parseID(c, "id", "player")
	if !ok {
		return
	}

	var req service.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	player, err := h.playerService.UpdatePlayer(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// DeletePlayer handles DELETE /players/:id
// @Summary Soft-delete a player
// @Description Mark a player inactive, freeing its jersey number
// @Tags players
// @Param id path int true "Player ID"
// @Success 204 "Player deactivated"
// @Failure 400 {object} ErrorResponse "Invalid player ID"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /players/{id} [delete]
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	id, ok := parseID(c, "id", "player")
	if !ok {
		return
	}

	if err := h.playerService.SoftDeletePlayer(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListRoster handles GET /players
// @Summary List every active player
// @Description Active players ordered by team name, then jersey number
// @Tags players
// @Produce json
// @Success 200 {array} service.PlayerResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /players [get]
func (h *PlayerHandler) ListRoster(c *gin.Context) {
	players, err := h.playerService.ListRoster(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, players)
}

// SearchPlayers handles GET /players/search
// @Summary Search active players by name
// @Description Substring match ignoring case and accents
// @Tags players
// @Produce json
// @Param name query string true "Search text"
// @Success 200 {array} service.PlayerResponse
// @Failure 400 {object} ErrorResponse "Missing search text"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /players/search [get]
func (h *PlayerHandler) SearchPlayers(c *gin.Context) {
	players, err := h.playerService.SearchPlayersByName(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, players)
}

// ListByAge handles GET /players/by-age
// @Summary Find active players by age
// @Description Whole-year age within [min, max], inclusive
// @Tags players
// @Produce json
// @Param min query int true "Minimum age"
// @Param max query int true "Maximum age"
// @Success 200 {array} service.PlayerResponse
// @Failure 400 {object} ErrorResponse "Invalid age range"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /players/by-age [get]
func (h *PlayerHandler) ListByAge(c *gin.Context) {
	minAge, err := strconv.Atoi(c.Query("min"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid min parameter"})
		return
	}
	maxAge, err := strconv.Atoi(c.Query("max"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid max parameter"})
		return
	}

	players, err := h.playerService.FindPlayersByAgeRange(c.Request.Context(), minAge, maxAge)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, players)
}

// ListByPosition handles GET /players/by-position/:position
// @Summary List active players at a position
// @Tags players
// @Produce json
// @Param position path string true "PORTERO, DEFENSA, MEDIO or DELANTERO"
// @Param team_id query int false "Restrict to one team"
// @Success 200 {array} service.PlayerResponse
// @Failure 400 {object} ErrorResponse "Invalid position"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /players/by-position/{position} [get]
func (h *PlayerHandler) ListByPosition(c *gin.Context) {
	position, ok := models.ParsePosition(c.Param("position"))
	if !ok {
		respondError(c, apperrors.ErrInvalidPosition)
		return
	}

	var teamID *int64
	if raw := c.Query("team_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid team_id parameter"})
			return
		}
		teamID = &id
	}

	players, err := h.playerService.ListPlayersByPosition(c.Request.Context(), position, teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, players)
}

// ListByTeam handles GET /teams/:id/players
// @Summary List a team's active players
// @Description Registration order. An unknown team has an empty roster.
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {array} service.PlayerResponse
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id}/players [get]
func (h *PlayerHandler) ListByTeam(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}

	players, err := h.playerService.ListPlayersByTeam(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, players)
}

// PositionBreakdown handles GET /teams/:id/positions
// @Summary Count a team's active players per position
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} service.PositionBreakdownResponse
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id}/positions [get]
func (h *PlayerHandler) PositionBreakdown(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}

	breakdown, err := h.playerService.GetPositionBreakdown(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, breakdown)
}
