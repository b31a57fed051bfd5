package repositories

import (
	"propertyHub/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		db: db,
	}
}

func (nr *NotificationRepository) CreateNotification(notification *models.Notification) error {
	return nr.db.Create(notification).Error
}

func (nr *NotificationRepository) FindLatest(limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := nr.db.Preload("RelatedUser").
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (nr *NotificationRepository) FindForUser(userID uint, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := nr.db.Preload("RelatedUser").
		Where("related_user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}
