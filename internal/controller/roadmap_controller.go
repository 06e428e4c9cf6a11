package controller

import (
	"career-roadmap-be/internal/dto"
	"career-roadmap-be/internal/pkg/serverutils"
	"career-roadmap-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRoadmapController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	GetActive(ctx *fiber.Ctx) error
	Run(ctx *fiber.Ctx) error
	Certifications(ctx *fiber.Ctx) error
}

type roadmapController struct {
	service   service.IRoadmapService
	jwtSecret string
	apiKey    string
}

func NewRoadmapController(service service.IRoadmapService, jwtSecret, apiKey string) IRoadmapController {
	return &roadmapController{
		service:   service,
		jwtSecret: jwtSecret,
		apiKey:    apiKey,
	}
}

func (c *roadmapController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/roadmap/v1")

	// Service-to-service invocation, guarded by static key instead of JWT
	h.Post("/run", serverutils.ApiKeyMiddleware(c.apiKey), c.Run)

	h.Use(serverutils.JwtMiddleware(c.jwtSecret))
	h.Post("/generate", c.Generate)
	h.Get("/active", c.GetActive)
	h.Post("/certifications", c.Certifications)
}

func (c *roadmapController) Generate(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.GenerateRoadmapRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Generate(ctx.Context(), userId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Career profile not found"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Roadmap generated", res))
}

func (c *roadmapController) GetActive(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var profileId *uuid.UUID
	if raw := ctx.Query("profile_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid profile_id"))
		}
		profileId = &id
	}

	res, err := c.service.GetActive(ctx.Context(), userId, profileId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "No active roadmap"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Active roadmap", res))
}

// Run executes the engine directly on a caller-supplied context payload.
// The response body is the bare plan, not the standard envelope, since the
// caller is another service expecting the engine contract.
func (c *roadmapController) Run(ctx *fiber.Ctx) error {
	var req dto.RunRoadmapRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON body"})
	}

	res, err := c.service.Run(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(res)
}

func (c *roadmapController) Certifications(ctx *fiber.Ctx) error {
	var req dto.CertificationsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Certifications(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Recommended certifications", res))
}
