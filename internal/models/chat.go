package models

import "time"

type MessageSender string

const (
	SenderUser MessageSender = "user"
	SenderAI   MessageSender = "ai"
)

type MessageType string

const (
	MessageText     MessageType = "text"
	MessageCareer   MessageType = "career"
	MessageWellness MessageType = "wellness"
	MessageCrisis   MessageType = "crisis"
)

type ChatMessage struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	Sender    MessageSender `json:"sender"`
	Type      MessageType   `json:"type"`
	Timestamp time.Time     `json:"timestamp"`
}
