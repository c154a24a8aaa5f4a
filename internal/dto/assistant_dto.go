package dto

import (
	"time"

	"afrimigrate-be/pkg/helpdesk"
)

type CreateAssistantSessionRequest struct {
	Desk string `json:"desk" validate:"omitempty,oneof=help support"`
}

type AskAssistantRequest struct {
	Content string `json:"content"`
}

type AssistantMessage struct {
	Role    helpdesk.Role        `json:"role"`
	Content string               `json:"content"`
	At      time.Time            `json:"at"`
	Lines   [][]helpdesk.Segment `json:"lines"`
}

type AssistantSessionResponse struct {
	Id        string             `json:"id"`
	Desk      string             `json:"desk"`
	Open      bool               `json:"open"`
	Pending   int                `json:"pending"`
	CreatedAt time.Time          `json:"created_at"`
	Messages  []AssistantMessage `json:"messages"`
}

type FAQResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
