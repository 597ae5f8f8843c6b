package domain

type ChatMessage struct {
	Role string `json:"role" validate:"required"`
	Text string `json:"text"`
}

type ChatRequest struct {
	Message string        `json:"message" validate:"required"`
	History []ChatMessage `json:"history" validate:"dive"`
}

type ChatReply struct {
	Reply string `json:"reply"`
}
