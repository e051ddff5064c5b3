package controller

import (
	"smart-warehouse-be/internal/dto"
	"smart-warehouse-be/internal/pkg/serverutils"
	"smart-warehouse-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(root fiber.Router)
	ChatbotOrder(ctx *fiber.Ctx) error
}

type chatbotController struct {
	chatbotService service.IChatbotService
}

func NewChatbotController(chatbotService service.IChatbotService) IChatbotController {
	return &chatbotController{
		chatbotService: chatbotService,
	}
}

func (c *chatbotController) RegisterRoutes(root fiber.Router) {
	root.Post("/chatbot-order", c.ChatbotOrder)
}

func (c *chatbotController) ChatbotOrder(ctx *fiber.Ctx) error {
	var req dto.ChatbotOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.JSON(&dto.ChatbotOrderResponse{Status: "error", Message: "Invalid request body"})
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.JSON(&dto.ChatbotOrderResponse{Status: "error", Message: err.Error()})
	}

	// Always 200 with a flat payload; the terminal switches on status.
	return ctx.JSON(c.chatbotService.HandleMessage(ctx.Context(), &req))
}
