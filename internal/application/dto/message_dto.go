package dto

// SendMessageRequest internal message-send endpoint body. Phone is normalized
// before forwarding to the gateway.
type SendMessageRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}
