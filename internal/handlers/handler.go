package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/arlen/habitledger-api/internal/config"
	"github.com/arlen/habitledger-api/internal/ledger"
)

// Handler carries the dependencies every endpoint needs. Constructed once at
// startup and shared; holds no per-request state.
type Handler struct {
	db  *gorm.DB
	svc *ledger.Service
	cfg *config.Config
}

func New(db *gorm.DB, svc *ledger.Service, cfg *config.Config) *Handler {
	return &Handler{db: db, svc: svc, cfg: cfg}
}

// domainError maps ledger sentinels onto HTTP statuses. Conflict never
// escapes the toggle, but it is mapped anyway so new call sites stay safe.
func domainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ledger.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ledger.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ledger.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ledger.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
