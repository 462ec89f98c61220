package library

import (
	"errors"
	"strconv"

	"gamesync/core/logger"
	"gamesync/feature/library/models"
	"gamesync/feature/library/sync"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the game library.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the library routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/library")
	group.Post("/sync", h.HandleStartSync)
	group.Get("/sync/:operationId", h.HandleGetProgress)
	group.Get("/sync/:operationId/result", h.HandleGetResult)
	group.Get("/games/:id", h.HandleGetGame)
	group.Post("/games/:id/update", h.HandleUpdateGame)
}

// HandleStartSync launches a background synchronization run.
// @Summary Start Library Sync
// @Description Start a background synchronization of the given owners' game libraries. Returns an operation id for progress polling.
// @Tags library
// @Accept json
// @Produce json
// @Param options body models.SyncOptions true "Synchronization options"
// @Success 202 {object} map[string]string "Operation ID"
// @Failure 400 {object} map[string]string "Invalid options"
// @Router /library/sync [post]
func (h *Handler) HandleStartSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var opts models.SyncOptions
	if err := c.BodyParser(&opts); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	operationID, err := h.service.StartSync(opts)
	if err != nil {
		if errors.Is(err, sync.ErrNoOwners) || errors.Is(err, sync.ErrEmptyFilter) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Could not start synchronization", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"operationId": operationID,
	})
}

// HandleGetProgress returns the current progress of a run.
// @Summary Get Sync Progress
// @Description Get the progress of a running or finished synchronization.
// @Tags library
// @Produce json
// @Param operationId path string true "Operation ID"
// @Success 200 {object} progress.Operation "Progress"
// @Failure 404 {object} map[string]string "Unknown operation"
// @Router /library/sync/{operationId} [get]
func (h *Handler) HandleGetProgress(c *fiber.Ctx) error {
	operationID := c.Params("operationId")

	op, ok := h.service.GetProgress(operationID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown operation id",
		})
	}
	return c.JSON(op)
}

// HandleGetResult returns the terminal summary of a finished run.
// @Summary Get Sync Result
// @Description Get the result summary of a finished synchronization. Available once the run is completed or failed.
// @Tags library
// @Produce json
// @Param operationId path string true "Operation ID"
// @Success 200 {object} models.SyncResult "Result"
// @Failure 404 {object} map[string]string "Unknown operation or run still in progress"
// @Router /library/sync/{operationId}/result [get]
func (h *Handler) HandleGetResult(c *fiber.Ctx) error {
	operationID := c.Params("operationId")

	result, ok := h.service.GetResult(operationID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no result for operation id",
		})
	}
	return c.JSON(result)
}

// HandleGetGame returns the stored record for one game.
// @Summary Get Game
// @Description Get the stored record of a single game.
// @Tags library
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.GameRecord "Game"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /library/games/{id} [get]
func (h *Handler) HandleGetGame(c *fiber.Ctx) error {
	itemID, err := parseItemID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid item id",
		})
	}
	l := logger.WithRayID(h.service.logger, c)

	record, err := h.service.GetGame(c.Context(), itemID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "game not found",
			})
		}
		l.Error("Game lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(record)
}

// HandleUpdateGame synchronously refetches a single game.
// @Summary Update Single Game
// @Description Refetch metadata for one game and replace the stored record. Fails with 409 if the id is blacklisted.
// @Tags library
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.GameRecord "Updated game"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Blacklisted"
// @Router /library/games/{id}/update [post]
func (h *Handler) HandleUpdateGame(c *fiber.Ctx) error {
	itemID, err := parseItemID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid item id",
		})
	}
	l := logger.WithRayID(h.service.logger, c)

	record, err := h.service.UpdateSingleGame(c.Context(), itemID)
	if err != nil {
		switch {
		case errors.Is(err, ErrBlacklisted):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "game not found",
			})
		default:
			l.Error("Single game update failed", zap.Uint64("item_id", itemID), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}
	return c.JSON(record)
}

func parseItemID(c *fiber.Ctx) (uint64, error) {
	return strconv.ParseUint(c.Params("id"), 10, 64)
}
