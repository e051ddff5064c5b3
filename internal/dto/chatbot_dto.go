package dto

type ChatbotOrderRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionId string `json:"session_id"`
}

// ChatbotOrderResponse is flat on purpose; the terminal client switches on
// status ("success" | "warning" | "chat" | "error") and prints message.
type ChatbotOrderResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
