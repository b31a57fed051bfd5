package repositories

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"propertyHub/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var repoTestDBCounter int64

func newRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repositories_test_%d?mode=memory&cache=shared", atomic.AddInt64(&repoTestDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Message{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedMessage(t *testing.T, db *gorm.DB, senderID, receiverID uint, content string, createdAt time.Time) *models.Message {
	t.Helper()
	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}
	message.CreatedAt = createdAt
	if err := db.Create(message).Error; err != nil {
		t.Fatalf("failed to seed message: %v", err)
	}
	return message
}

func TestGetMessagesBetweenBothDirectionsAscending(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewMessageRepository(db)

	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	seedMessage(t, db, 1, 2, "first", base)
	seedMessage(t, db, 2, 1, "second", base.Add(time.Minute))
	seedMessage(t, db, 1, 2, "third", base.Add(2*time.Minute))
	// Unrelated pair, must never appear.
	seedMessage(t, db, 1, 3, "other", base.Add(3*time.Minute))

	messages, listErrs := repo.GetMessagesBetween(1, 2, 100, 0)
	if len(listErrs) > 0 {
		t.Fatalf("list failed: %v", listErrs)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	expected := []string{"first", "second", "third"}
	for i, message := range messages {
		if message.Content != expected[i] {
			t.Fatalf("unexpected order at %d: %q", i, message.Content)
		}
	}

	// Same transcript regardless of which participant is listed first.
	swapped, listErrs := repo.GetMessagesBetween(2, 1, 100, 0)
	if len(listErrs) > 0 {
		t.Fatalf("swapped list failed: %v", listErrs)
	}
	if len(swapped) != 3 {
		t.Fatalf("expected 3 messages for swapped pair, got %d", len(swapped))
	}
}

func TestGetMessagesBetweenLimitAndOffset(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewMessageRepository(db)

	base := time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedMessage(t, db, 1, 2, fmt.Sprintf("msg-%d", i), base.Add(time.Duration(i)*time.Minute))
	}

	page, listErrs := repo.GetMessagesBetween(1, 2, 2, 1)
	if len(listErrs) > 0 {
		t.Fatalf("list failed: %v", listErrs)
	}
	if len(page) != 2 || page[0].Content != "msg-1" || page[1].Content != "msg-2" {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestMarkMessagesReadTouchesOnlyTargetedRows(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewMessageRepository(db)

	base := time.Date(2026, 5, 3, 8, 0, 0, 0, time.UTC)
	seedMessage(t, db, 2, 1, "from-2-a", base)
	seedMessage(t, db, 2, 1, "from-2-b", base.Add(time.Minute))
	seedMessage(t, db, 3, 1, "from-3", base.Add(2*time.Minute))
	seedMessage(t, db, 1, 2, "outbound", base.Add(3*time.Minute))

	count, err := repo.MarkMessagesRead(2, 1)
	if err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 rows updated, got %d", count)
	}

	var stillUnread int64
	db.Model(&models.Message{}).
		Where("receiver_id = ? AND read = ?", 1, false).
		Count(&stillUnread)
	if stillUnread != 1 {
		t.Fatalf("message from sender 3 must stay unread, found %d", stillUnread)
	}

	var outboundRead int64
	db.Model(&models.Message{}).
		Where("sender_id = ? AND read = ?", 1, true).
		Count(&outboundRead)
	if outboundRead != 0 {
		t.Fatalf("outbound messages must not be flipped, found %d", outboundRead)
	}

	count, err = repo.MarkMessagesRead(2, 1)
	if err != nil {
		t.Fatalf("repeated mark read failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("repeated mark read must report 0, got %d", count)
	}
}

func TestCountUnreadForUser(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewMessageRepository(db)

	base := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)
	seedMessage(t, db, 2, 1, "a", base)
	seedMessage(t, db, 3, 1, "b", base.Add(time.Minute))
	seedMessage(t, db, 1, 2, "c", base.Add(2*time.Minute))

	count, err := repo.CountUnreadForUser(1)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 unread, got %d", count)
	}
}

func TestGetUserMessagesNewestFirst(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewMessageRepository(db)

	base := time.Date(2026, 5, 5, 8, 0, 0, 0, time.UTC)
	seedMessage(t, db, 1, 2, "oldest", base)
	seedMessage(t, db, 3, 1, "middle", base.Add(time.Minute))
	seedMessage(t, db, 1, 4, "newest", base.Add(2*time.Minute))
	// Not involving user 1.
	seedMessage(t, db, 2, 3, "foreign", base.Add(3*time.Minute))

	messages, err := repo.GetUserMessages(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	expected := []string{"newest", "middle", "oldest"}
	for i, message := range messages {
		if message.Content != expected[i] {
			t.Fatalf("unexpected order at %d: %q", i, message.Content)
		}
	}
}
