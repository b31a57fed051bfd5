package services

import (
	"context"
	"encoding/json"
	"log"
	"propertyHub/configs"
	"propertyHub/internal/models"
	"propertyHub/internal/repositories"

	"github.com/redis/go-redis/v9"
)

// NotificationService is strictly best effort: it stores a row and publishes
// it on a redis channel for pollers, and every failure is logged and
// swallowed. Callers must never fail their own operation on a notification
// error.
type NotificationService struct {
	notificationRepo *repositories.NotificationRepository
	redis            *redis.Client
	ctx              context.Context
	channel          string
}

func NewNotificationService(
	notificationRepo *repositories.NotificationRepository,
	redisClient *redis.Client,
	ctx context.Context,
	config *configs.Config,
) *NotificationService {
	channel := "notifications"
	if config != nil {
		channel = config.Viper.GetString("redis.notification_channel")
	}
	return &NotificationService{
		notificationRepo: notificationRepo,
		redis:            redisClient,
		ctx:              ctx,
		channel:          channel,
	}
}

func (ns *NotificationService) Notify(notificationType, message string, relatedUserID *uint) {
	notification := &models.Notification{
		Type:          notificationType,
		Message:       message,
		RelatedUserID: relatedUserID,
	}
	if err := ns.notificationRepo.CreateNotification(notification); err != nil {
		log.Println("Failed to store notification:", err)
		return
	}
	ns.publish(notification)
}

func (ns *NotificationService) publish(notification *models.Notification) {
	if ns.redis == nil {
		return
	}
	payload, err := json.Marshal(notification)
	if err != nil {
		log.Println("Failed to marshal notification:", err)
		return
	}
	if err := ns.redis.Publish(ns.ctx, ns.channel, payload).Err(); err != nil {
		log.Println("Failed to publish notification:", err)
	}
}

func (ns *NotificationService) GetLatest() ([]models.Notification, []error) {
	var errors []error
	notifications, err := ns.notificationRepo.FindLatest(15)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return notifications, nil
}

func (ns *NotificationService) GetForUser(userID uint) ([]models.Notification, []error) {
	var errors []error
	notifications, err := ns.notificationRepo.FindForUser(userID, 10)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return notifications, nil
}
