package controller

import (
	"errors"

	"smart-warehouse-be/internal/dto"
	"smart-warehouse-be/internal/pkg/serverutils"
	"smart-warehouse-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IWarehouseController interface {
	RegisterRoutes(r fiber.Router)
	ListClients(ctx *fiber.Ctx) error
	ListProducts(ctx *fiber.Ctx) error
	ListTrucks(ctx *fiber.Ctx) error
	AdjustStock(ctx *fiber.Ctx) error
}

type warehouseController struct {
	warehouseService service.IWarehouseService
}

func NewWarehouseController(warehouseService service.IWarehouseService) IWarehouseController {
	return &warehouseController{
		warehouseService: warehouseService,
	}
}

func (c *warehouseController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/warehouse/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("clients", c.ListClients)
	h.Get("products", c.ListProducts)
	h.Get("trucks", c.ListTrucks)
	h.Patch("products/:id/stock", c.AdjustStock)
}

func (c *warehouseController) ListClients(ctx *fiber.Ctx) error {
	res, err := c.warehouseService.ListClients(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Clients", res))
}

func (c *warehouseController) ListProducts(ctx *fiber.Ctx) error {
	res, err := c.warehouseService.ListProducts(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Products", res))
}

func (c *warehouseController) ListTrucks(ctx *fiber.Ctx) error {
	res, err := c.warehouseService.ListTrucks(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Trucks", res))
}

func (c *warehouseController) AdjustStock(ctx *fiber.Ctx) error {
	productId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid product ID")
	}

	var req dto.AdjustStockRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.warehouseService.AdjustStock(ctx.Context(), productId, req.Delta)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Product not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Stock adjusted", res))
}
