package repositories

import (
	"propertyHub/internal/models"

	"gorm.io/gorm"
)

// MessageRepository owns the message log. Rows are only ever inserted by
// SaveMessage and updated by MarkMessagesRead; nothing deletes them.
type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db: db,
	}
}

func (mr *MessageRepository) SaveMessage(message *models.Message) (*models.Message, []error) {
	var errors []error
	if err := mr.db.Create(message).Error; err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return message, nil
}

// GetMessagesBetween returns the transcript of a pair in both directions,
// oldest first.
func (mr *MessageRepository) GetMessagesBetween(userID1, userID2 uint, limit, offset int) ([]models.Message, []error) {
	var errors []error
	var messages []models.Message
	err := mr.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID1, userID2, userID2, userID1).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return messages, nil
}

// MarkMessagesRead flips every unread message from sender to receiver to read
// in a single filtered update, so concurrent calls converge and a repeat call
// simply reports zero rows.
func (mr *MessageRepository) MarkMessagesRead(senderID, receiverID uint) (int64, error) {
	result := mr.db.Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND read = ?", senderID, receiverID, false).
		Update("read", true)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (mr *MessageRepository) CountUnreadForUser(userID uint) (int64, error) {
	var count int64
	err := mr.db.Model(&models.Message{}).
		Where("receiver_id = ? AND read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// GetUserMessages returns the full log a user participates in, newest first.
// Conversation grouping happens in the service layer.
func (mr *MessageRepository) GetUserMessages(userID uint) ([]models.Message, error) {
	var messages []models.Message
	err := mr.db.
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC, id DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
