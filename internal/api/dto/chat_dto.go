package dto

// SendMessageRequest payload for a direct message.
type SendMessageRequest struct {
	Content string `json:"content"`
}
