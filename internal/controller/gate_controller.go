package controller

import (
	"io"
	"strconv"

	"smart-warehouse-be/internal/pkg/serverutils"
	"smart-warehouse-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGateController interface {
	RegisterRoutes(root fiber.Router, api fiber.Router)
	ProcessEntrance(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
	RecentDecisions(ctx *fiber.Ctx) error
}

type gateController struct {
	gateService service.IGateService
}

func NewGateController(gateService service.IGateService) IGateController {
	return &gateController{
		gateService: gateService,
	}
}

// RegisterRoutes keeps the decision endpoints at the root path; the gate
// terminal predates the /api prefix. The audit listing is staff-only.
func (c *gateController) RegisterRoutes(root fiber.Router, api fiber.Router) {
	root.Post("/process-entrance", c.ProcessEntrance)
	root.Get("/health", c.Health)

	h := api.Group("/gate/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("decisions", c.RecentDecisions)
}

func (c *gateController) ProcessEntrance(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	res, err := c.gateService.ProcessArrival(ctx.Context(), image, fileHeader.Filename)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *gateController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(c.gateService.Health(ctx.Context()))
}

func (c *gateController) RecentDecisions(ctx *fiber.Ctx) error {
	limit, err := strconv.Atoi(ctx.Query("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	res, err := c.gateService.RecentDecisions(ctx.Context(), limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Recent gate decisions", res))
}
