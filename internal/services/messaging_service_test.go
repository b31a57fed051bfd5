package services

import (
	"fmt"
	"testing"
	"time"

	"propertyHub/internal/enums"
	"propertyHub/internal/errs"
	"propertyHub/internal/models"
)

func TestSendForbiddenWithoutPropertyLink(t *testing.T) {
	f := newFixture(t)
	tenant := f.createUser(t, "tenant", enums.ROLE_TENANT)
	landlord := f.createUser(t, "landlord", enums.ROLE_LANDLORD)

	_, sendErrs := f.messaging.Send(tenant, landlord.ID, "hello")
	if !containsError(sendErrs, errs.ErrMessagingNotAllowed) {
		t.Fatalf("expected ErrMessagingNotAllowed, got %v", sendErrs)
	}

	var count int64
	f.db.Model(&models.Message{}).Count(&count)
	if count != 0 {
		t.Fatalf("rejected send must not persist a message, found %d rows", count)
	}
}

func TestSendBetweenLinkedUsersBothDirections(t *testing.T) {
	f := newFixture(t)
	tenant := f.createUser(t, "tenant", enums.ROLE_TENANT)
	landlord := f.createUser(t, "landlord", enums.ROLE_LANDLORD)
	f.linkProperty(t, &landlord.ID, &tenant.ID)

	sent, sendErrs := f.messaging.Send(tenant, landlord.ID, "hi landlord")
	if len(sendErrs) > 0 {
		t.Fatalf("tenant to landlord send failed: %v", sendErrs)
	}
	if sent.SenderID != tenant.ID || sent.ReceiverID != landlord.ID {
		t.Fatalf("unexpected participants on sent message: %+v", sent)
	}
	if sent.Read {
		t.Fatal("new message must start unread")
	}

	reply, replyErrs := f.messaging.Send(landlord, tenant.ID, "hi tenant")
	if len(replyErrs) > 0 {
		t.Fatalf("landlord to tenant send failed: %v", replyErrs)
	}
	if reply.Content != "hi tenant" {
		t.Fatalf("unexpected reply content: %q", reply.Content)
	}
}

func TestSendToAdminAlwaysAllowed(t *testing.T) {
	f := newFixture(t)
	tenant := f.createUser(t, "tenant", enums.ROLE_TENANT)
	admin := f.createUser(t, "admin", enums.ROLE_ADMIN)

	_, sendErrs := f.messaging.Send(tenant, admin.ID, "need help")
	if len(sendErrs) > 0 {
		t.Fatalf("sending to an admin must always be allowed: %v", sendErrs)
	}
}

func TestAdminSendsToAnyone(t *testing.T) {
	f := newFixture(t)
	admin := f.createUser(t, "admin", enums.ROLE_ADMIN)
	tenant := f.createUser(t, "tenant", enums.ROLE_TENANT)

	_, sendErrs := f.messaging.Send(admin, tenant.ID, "welcome aboard")
	if len(sendErrs) > 0 {
		t.Fatalf("admin send must not be restricted: %v", sendErrs)
	}
}

func TestSendToSelfRejected(t *testing.T) {
	f := newFixture(t)
	admin := f.createUser(t, "admin", enums.ROLE_ADMIN)

	_, sendErrs := f.messaging.Send(admin, admin.ID, "note to self")
	if !containsError(sendErrs, errs.ErrSelfMessagingNotAllowed) {
		t.Fatalf("expected ErrSelfMessagingNotAllowed, got %v", sendErrs)
	}
}

func TestSendToMissingReceiver(t *testing.T) {
	f := newFixture(t)
	tenant := f.createUser(t, "tenant", enums.ROLE_TENANT)

	_, sendErrs := f.messaging.Send(tenant, 9999, "anyone there")
	if !containsError(sendErrs, errs.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", sendErrs)
	}
}

func TestSendValidation(t *testing.T) {
	f := newFixture(t)
	tenant := f.createUser(t, "tenant", enums.ROLE_TENANT)

	_, sendErrs := f.messaging.Send(tenant, 0, "hello")
	if !containsError(sendErrs, errs.ErrReceiverRequired) {
		t.Fatalf("expected ErrReceiverRequired, got %v", sendErrs)
	}

	_, sendErrs = f.messaging.Send(tenant, 1, "   ")
	if !containsError(sendErrs, errs.ErrEmptyMessageContent) {
		t.Fatalf("expected ErrEmptyMessageContent for whitespace content, got %v", sendErrs)
	}
}

func TestListBetweenAscendingWithPaging(t *testing.T) {
	f := newFixture(t)
	tenant := f.createUser(t, "tenant", enums.ROLE_TENANT)
	landlord := f.createUser(t, "landlord", enums.ROLE_LANDLORD)
	f.linkProperty(t, &landlord.ID, &tenant.ID)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 6; i++ {
		sender, receiver := tenant.ID, landlord.ID
		if i%2 == 1 {
			sender, receiver = landlord.ID, tenant.ID
		}
		f.seedMessage(t, sender, receiver, fmt.Sprintf("msg-%d", i), base.Add(time.Duration(i)*time.Minute))
	}

	all, listErrs := f.messaging.ListBetween(tenant, landlord.ID, 0, 0)
	if len(listErrs) > 0 {
		t.Fatalf("list failed: %v", listErrs)
	}
	if len(all) != 6 {
		t.Fatalf("expected 6 messages, got %d", len(all))
	}
	for i, message := range all {
		if message.Content != fmt.Sprintf("msg-%d", i) {
			t.Fatalf("messages out of order at %d: %q", i, message.Content)
		}
		if i > 0 && all[i].CreatedAt.Before(all[i-1].CreatedAt) {
			t.Fatalf("transcript must be ascending, position %d is older than %d", i, i-1)
		}
	}

	page, listErrs := f.messaging.ListBetween(tenant, landlord.ID, 2, 2)
	if len(listErrs) > 0 {
		t.Fatalf("paged list failed: %v", listErrs)
	}
	if len(page) != 2 || page[0].Content != "msg-2" || page[1].Content != "msg-3" {
		t.Fatalf("unexpected page contents: %+v", page)
	}

	// An oversized limit is clamped rather than rejected.
	clamped, listErrs := f.messaging.ListBetween(tenant, landlord.ID, 100000, 0)
	if len(listErrs) > 0 {
		t.Fatalf("clamped list failed: %v", listErrs)
	}
	if len(clamped) != 6 {
		t.Fatalf("expected all 6 messages under clamped limit, got %d", len(clamped))
	}
}

func TestListBetweenForbiddenPeer(t *testing.T) {
	f := newFixture(t)
	tenant := f.createUser(t, "tenant", enums.ROLE_TENANT)
	stranger := f.createUser(t, "stranger", enums.ROLE_TENANT)

	_, listErrs := f.messaging.ListBetween(tenant, stranger.ID, 10, 0)
	if !containsError(listErrs, errs.ErrMessagingNotAllowed) {
		t.Fatalf("expected ErrMessagingNotAllowed, got %v", listErrs)
	}
}

func TestMarkReadCountsAndIsIdempotent(t *testing.T) {
	f := newFixture(t)
	tenant := f.createUser(t, "tenant", enums.ROLE_TENANT)
	landlord := f.createUser(t, "landlord", enums.ROLE_LANDLORD)
	f.linkProperty(t, &landlord.ID, &tenant.ID)

	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	f.seedMessage(t, landlord.ID, tenant.ID, "one", base)
	f.seedMessage(t, landlord.ID, tenant.ID, "two", base.Add(time.Minute))
	f.seedMessage(t, tenant.ID, landlord.ID, "reply", base.Add(2*time.Minute))

	count, markErrs := f.messaging.MarkRead(tenant, landlord.ID)
	if len(markErrs) > 0 {
		t.Fatalf("mark read failed: %v", markErrs)
	}
	if count != 2 {
		t.Fatalf("expected 2 rows marked, got %d", count)
	}

	count, markErrs = f.messaging.MarkRead(tenant, landlord.ID)
	if len(markErrs) > 0 {
		t.Fatalf("repeated mark read failed: %v", markErrs)
	}
	if count != 0 {
		t.Fatalf("repeated mark read must report 0 rows, got %d", count)
	}

	// The opposite direction is untouched.
	var unreadToLandlord int64
	f.db.Model(&models.Message{}).
		Where("receiver_id = ? AND read = ?", landlord.ID, false).
		Count(&unreadToLandlord)
	if unreadToLandlord != 1 {
		t.Fatalf("tenant's reply must stay unread, found %d unread", unreadToLandlord)
	}
}

func TestUnreadCount(t *testing.T) {
	f := newFixture(t)
	tenant := f.createUser(t, "tenant", enums.ROLE_TENANT)
	landlord := f.createUser(t, "landlord", enums.ROLE_LANDLORD)
	admin := f.createUser(t, "admin", enums.ROLE_ADMIN)
	f.linkProperty(t, &landlord.ID, &tenant.ID)

	base := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)
	f.seedMessage(t, landlord.ID, tenant.ID, "one", base)
	f.seedMessage(t, admin.ID, tenant.ID, "two", base.Add(time.Minute))
	f.seedMessage(t, tenant.ID, landlord.ID, "out", base.Add(2*time.Minute))

	count, countErrs := f.messaging.UnreadCount(tenant)
	if len(countErrs) > 0 {
		t.Fatalf("unread count failed: %v", countErrs)
	}
	if count != 2 {
		t.Fatalf("expected 2 unread, got %d", count)
	}

	if _, markErrs := f.messaging.MarkRead(tenant, landlord.ID); len(markErrs) > 0 {
		t.Fatalf("mark read failed: %v", markErrs)
	}
	count, _ = f.messaging.UnreadCount(tenant)
	if count != 1 {
		t.Fatalf("expected 1 unread after marking landlord's read, got %d", count)
	}
}

func TestListConversationsOnePerCounterpart(t *testing.T) {
	f := newFixture(t)
	tenant := f.createUser(t, "tenant", enums.ROLE_TENANT)
	landlord := f.createUser(t, "landlord", enums.ROLE_LANDLORD)
	admin := f.createUser(t, "admin", enums.ROLE_ADMIN)
	f.linkProperty(t, &landlord.ID, &tenant.ID)

	base := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)
	f.seedMessage(t, tenant.ID, landlord.ID, "old to landlord", base)
	f.seedMessage(t, landlord.ID, tenant.ID, "latest with landlord", base.Add(time.Minute))
	f.seedMessage(t, tenant.ID, admin.ID, "latest with admin", base.Add(2*time.Minute))

	summaries, listErrs := f.messaging.ListConversations(tenant)
	if len(listErrs) > 0 {
		t.Fatalf("list conversations failed: %v", listErrs)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(summaries))
	}

	// Most recently active first.
	if summaries[0].User.ID != admin.ID {
		t.Fatalf("expected admin conversation first, got user %d", summaries[0].User.ID)
	}
	if summaries[0].LastMessage.Content != "latest with admin" {
		t.Fatalf("unexpected last message for admin: %q", summaries[0].LastMessage.Content)
	}
	if summaries[1].User.ID != landlord.ID {
		t.Fatalf("expected landlord conversation second, got user %d", summaries[1].User.ID)
	}
	if summaries[1].LastMessage.Content != "latest with landlord" {
		t.Fatalf("unexpected last message for landlord: %q", summaries[1].LastMessage.Content)
	}
}

func TestRevokedLinkHidesConversationButKeepsMessages(t *testing.T) {
	f := newFixture(t)
	tenant := f.createUser(t, "tenant", enums.ROLE_TENANT)
	landlord := f.createUser(t, "landlord", enums.ROLE_LANDLORD)
	property := f.linkProperty(t, &landlord.ID, &tenant.ID)

	base := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)
	f.seedMessage(t, tenant.ID, landlord.ID, "while linked", base)

	if err := f.db.Delete(property).Error; err != nil {
		t.Fatalf("failed to delete property: %v", err)
	}

	summaries, listErrs := f.messaging.ListConversations(tenant)
	if len(listErrs) > 0 {
		t.Fatalf("list conversations failed: %v", listErrs)
	}
	if len(summaries) != 0 {
		t.Fatalf("revoked counterpart must be hidden, got %d conversations", len(summaries))
	}

	_, listErrs = f.messaging.ListBetween(tenant, landlord.ID, 10, 0)
	if !containsError(listErrs, errs.ErrMessagingNotAllowed) {
		t.Fatalf("expected ErrMessagingNotAllowed after revocation, got %v", listErrs)
	}

	// The rows themselves are never deleted.
	var count int64
	f.db.Model(&models.Message{}).Count(&count)
	if count != 1 {
		t.Fatalf("messages must survive revocation, found %d rows", count)
	}
}

func TestAdminStillSeesRevokedConversations(t *testing.T) {
	f := newFixture(t)
	admin := f.createUser(t, "admin", enums.ROLE_ADMIN)
	tenant := f.createUser(t, "tenant", enums.ROLE_TENANT)

	base := time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC)
	f.seedMessage(t, tenant.ID, admin.ID, "hello admin", base)

	summaries, listErrs := f.messaging.ListConversations(admin)
	if len(listErrs) > 0 {
		t.Fatalf("admin list conversations failed: %v", listErrs)
	}
	if len(summaries) != 1 || summaries[0].User.ID != tenant.ID {
		t.Fatalf("admin must see every conversation, got %+v", summaries)
	}
}

func TestTenantLandlordAdminScenario(t *testing.T) {
	f := newFixture(t)
	landlord := f.createUser(t, "landlord", enums.ROLE_LANDLORD)
	tenantA := f.createUser(t, "tenantA", enums.ROLE_TENANT)
	tenantB := f.createUser(t, "tenantB", enums.ROLE_TENANT)
	admin := f.createUser(t, "admin", enums.ROLE_ADMIN)
	f.linkProperty(t, &landlord.ID, &tenantA.ID)
	f.linkProperty(t, &landlord.ID, &tenantB.ID)

	// Tenants of the same landlord are not linked to each other.
	if _, sendErrs := f.messaging.Send(tenantA, tenantB.ID, "hi neighbour"); !containsError(sendErrs, errs.ErrMessagingNotAllowed) {
		t.Fatalf("tenants must not reach each other, got %v", sendErrs)
	}

	// Both tenants reach the landlord, the landlord reaches both.
	for _, pair := range [][2]*models.User{{tenantA, landlord}, {tenantB, landlord}, {landlord, tenantA}, {landlord, tenantB}} {
		if _, sendErrs := f.messaging.Send(pair[0], pair[1].ID, "ok"); len(sendErrs) > 0 {
			t.Fatalf("send from %d to %d failed: %v", pair[0].ID, pair[1].ID, sendErrs)
		}
	}

	// Everyone reaches the admin.
	if _, sendErrs := f.messaging.Send(tenantA, admin.ID, "question"); len(sendErrs) > 0 {
		t.Fatalf("tenant to admin failed: %v", sendErrs)
	}
}
