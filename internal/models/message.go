package models

import (
	"time"

	"gorm.io/gorm"
)

// Message is one directed entry in the append-only message log. Rows are
// created by send and only ever mutated by mark-read, which flips Read from
// false to true.
type Message struct {
	gorm.Model
	SenderID   uint   `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint   `gorm:"not null;index" json:"receiver_id"`
	Content    string `gorm:"not null" json:"content"`
	Read       bool   `gorm:"not null;default:false" json:"read"`

	Sender   *User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver *User `gorm:"foreignKey:ReceiverID" json:"-"`
}

func (message *Message) ToMessageResponse() *MessageResponse {
	response := &MessageResponse{
		ID:         message.ID,
		SenderID:   message.SenderID,
		ReceiverID: message.ReceiverID,
		Content:    message.Content,
		Read:       message.Read,
		CreatedAt:  message.CreatedAt,
	}
	if message.Sender != nil {
		response.Sender = message.Sender.ToUserResponse()
	}
	if message.Receiver != nil {
		response.Receiver = message.Receiver.ToUserResponse()
	}
	return response
}

type MessageResponse struct {
	ID         uint          `json:"id"`
	SenderID   uint          `json:"sender_id"`
	ReceiverID uint          `json:"receiver_id"`
	Content    string        `json:"content"`
	Read       bool          `json:"read"`
	CreatedAt  time.Time     `json:"created_at"`
	Sender     *UserResponse `json:"sender,omitempty"`
	Receiver   *UserResponse `json:"receiver,omitempty"`
}

// ConversationSummary is derived on every listing, never persisted: the
// counterpart plus the most recent message exchanged with them.
type ConversationSummary struct {
	User        *UserResponse    `json:"user"`
	LastMessage *MessageResponse `json:"last_message"`
}
