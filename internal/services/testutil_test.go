package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"propertyHub/internal/models"
	"propertyHub/internal/repositories"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	testDBCounter   int64
	testUserCounter int64
)

// newTestDB opens an in-memory sqlite database with a unique name so parallel
// tests never share state. cache=shared keeps the database alive across the
// pooled connections gorm opens.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Message{},
		&models.MaintenanceRequest{},
		&models.Notification{},
		&models.StoredFile{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

type fixture struct {
	db               *gorm.DB
	authRepo         *repositories.AuthenticationRepository
	propertyRepo     *repositories.PropertyRepository
	messageRepo      *repositories.MessageRepository
	notificationRepo *repositories.NotificationRepository
	access           *AccessService
	messaging        *MessagingService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	authRepo := repositories.NewAuthenticationRepository(db)
	propertyRepo := repositories.NewPropertyRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	notificationService := NewNotificationService(notificationRepo, nil, context.Background(), nil)
	access := NewAccessService(authRepo, propertyRepo)
	messaging := NewMessagingService(messageRepo, authRepo, access, notificationService)

	return &fixture{
		db:               db,
		authRepo:         authRepo,
		propertyRepo:     propertyRepo,
		messageRepo:      messageRepo,
		notificationRepo: notificationRepo,
		access:           access,
		messaging:        messaging,
	}
}

func (f *fixture) createUser(t *testing.T, firstName, role string) *models.User {
	t.Helper()
	user := &models.User{
		FirstName:    firstName,
		LastName:     "Tester",
		Email:        fmt.Sprintf("%s_%d@example.com", firstName, atomic.AddInt64(&testUserCounter, 1)),
		Role:         role,
		PasswordHash: "not-a-real-hash",
	}
	if err := f.db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", firstName, err)
	}
	return user
}

// linkProperty creates a property tying a landlord and tenant together, which
// is what makes them allowed messaging peers.
func (f *fixture) linkProperty(t *testing.T, landlordID, tenantID *uint) *models.Property {
	t.Helper()
	property := &models.Property{
		Title:      "Test Property",
		Address:    "1 Test Street",
		Price:      1000,
		LandlordID: landlordID,
		TenantID:   tenantID,
	}
	if err := f.db.Create(property).Error; err != nil {
		t.Fatalf("failed to create property: %v", err)
	}
	return property
}

// seedMessage inserts a message row directly, bypassing authorization, with an
// explicit timestamp so ordering tests are deterministic.
func (f *fixture) seedMessage(t *testing.T, senderID, receiverID uint, content string, createdAt time.Time) *models.Message {
	t.Helper()
	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}
	message.CreatedAt = createdAt
	if err := f.db.Create(message).Error; err != nil {
		t.Fatalf("failed to seed message: %v", err)
	}
	return message
}

func containsError(errorList []error, target error) bool {
	for _, err := range errorList {
		if err == target {
			return true
		}
	}
	return false
}
