package controller

import (
	"github.com/castlegate/chess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// RulesController maps the rules engine onto the REST boundary.
type RulesController struct {
	rules *service.RulesService
	log   zerolog.Logger
}

func NewRulesController(rules *service.RulesService, log zerolog.Logger) *RulesController {
	return &RulesController{rules: rules, log: log}
}

// GetLegalMoves handles GET /api/chess/legal_moves?fen=...
func (rc *RulesController) GetLegalMoves(c *fiber.Ctx) error {
	fen := c.Query("fen")
	if fen == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"kind":  "parse",
			"error": "missing fen query parameter",
		})
	}

	moves, err := rc.rules.LegalMoves(fen)
	if err != nil {
		return rc.fail(c, err)
	}
	return c.JSON(moves)
}

// MakeMove handles POST /api/chess/move.
func (rc *RulesController) MakeMove(c *fiber.Ctx) error {
	var req service.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"kind":  "parse",
			"error": "malformed request body",
		})
	}

	result, err := rc.rules.ApplyMove(req)
	if err != nil {
		return rc.fail(c, err)
	}
	return c.JSON(result)
}

// fail translates the engine's error taxonomy into HTTP responses. Every
// validation failure is a client error with a machine-readable kind; only
// unrecognized errors surface as 500s.
func (rc *RulesController) fail(c *fiber.Ctx, err error) error {
	kind := errorKind(err)
	if kind == "internal" {
		rc.log.Error().Err(err).Str("request_id", requestID(c)).Msg("unhandled rules error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"kind":  "internal",
			"error": "internal server error",
		})
	}

	rc.log.Debug().Err(err).Str("request_id", requestID(c)).Str("kind", kind).Msg("rejected request")
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"kind":  kind,
		"error": err.Error(),
	})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestID").(string); ok {
		return id
	}
	return ""
}
