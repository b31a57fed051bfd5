package services

import (
	"fmt"
	"propertyHub/internal/enums"
	"propertyHub/internal/errs"
	"propertyHub/internal/models"
	"propertyHub/internal/repositories"
	"propertyHub/internal/validators"
)

const (
	defaultMessagePageSize = 100
	maxMessagePageSize     = 500
)

// MessagingService is the facade over the message log. Every operation
// resolves the caller's allowed-peer set first and authorizes the target peer
// against it before touching the store.
type MessagingService struct {
	messageRepo         *repositories.MessageRepository
	authRepo            *repositories.AuthenticationRepository
	accessService       *AccessService
	notificationService *NotificationService
}

func NewMessagingService(
	messageRepo *repositories.MessageRepository,
	authRepo *repositories.AuthenticationRepository,
	accessService *AccessService,
	notificationService *NotificationService,
) *MessagingService {
	return &MessagingService{
		messageRepo:         messageRepo,
		authRepo:            authRepo,
		accessService:       accessService,
		notificationService: notificationService,
	}
}

func (ms *MessagingService) Send(sender *models.User, receiverID uint, content string) (*models.MessageResponse, []error) {
	var errors []error

	if validationErrs := validators.ValidateSendMessage(receiverID, content); len(validationErrs) > 0 {
		return nil, validationErrs
	}

	receiver, err := ms.authRepo.FindUserByID(receiverID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	if receiver.ID == sender.ID {
		errors = append(errors, errs.ErrSelfMessagingNotAllowed)
		return nil, errors
	}

	allowed, accessErrs := ms.accessService.ResolveAllowedPeers(sender)
	if len(accessErrs) > 0 {
		return nil, accessErrs
	}
	if !allowed.Contains(receiver.ID) {
		errors = append(errors, errs.ErrMessagingNotAllowed)
		return nil, errors
	}

	message := &models.Message{
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Content:    content,
	}
	saved, saveErrs := ms.messageRepo.SaveMessage(message)
	if len(saveErrs) > 0 {
		return nil, saveErrs
	}
	saved.Sender = sender
	saved.Receiver = receiver

	// Best effort; a failed notification never fails the send.
	ms.notificationService.Notify(
		enums.NOTIFICATION_TYPE_MESSAGE,
		fmt.Sprintf("New message from %s %s", sender.FirstName, sender.LastName),
		&saved.SenderID,
	)

	return saved.ToMessageResponse(), nil
}

// ListBetween returns the transcript between the viewer and a peer, oldest
// first. The limit is clamped so a caller can never request an unbounded page.
func (ms *MessagingService) ListBetween(viewer *models.User, peerID uint, limit, offset int) ([]*models.MessageResponse, []error) {
	var errors []error

	if limit < 1 {
		limit = defaultMessagePageSize
	}
	if limit > maxMessagePageSize {
		limit = maxMessagePageSize
	}
	if offset < 0 {
		offset = 0
	}

	peer, err := ms.authRepo.FindUserByID(peerID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	allowed, accessErrs := ms.accessService.ResolveAllowedPeers(viewer)
	if len(accessErrs) > 0 {
		return nil, accessErrs
	}
	if !allowed.Contains(peer.ID) {
		errors = append(errors, errs.ErrMessagingNotAllowed)
		return nil, errors
	}

	messages, listErrs := ms.messageRepo.GetMessagesBetween(viewer.ID, peer.ID, limit, offset)
	if len(listErrs) > 0 {
		return nil, listErrs
	}

	responses := make([]*models.MessageResponse, 0, len(messages))
	for i := range messages {
		message := messages[i]
		if message.SenderID == viewer.ID {
			message.Sender = viewer
			message.Receiver = peer
		} else {
			message.Sender = peer
			message.Receiver = viewer
		}
		responses = append(responses, message.ToMessageResponse())
	}
	return responses, nil
}

// MarkRead flips every unread message from the peer to the viewer to read and
// returns how many rows changed. Calling it again right away returns zero.
func (ms *MessagingService) MarkRead(viewer *models.User, fromPeerID uint) (int64, []error) {
	var errors []error

	peer, err := ms.authRepo.FindUserByID(fromPeerID)
	if err != nil {
		errors = append(errors, err)
		return 0, errors
	}

	allowed, accessErrs := ms.accessService.ResolveAllowedPeers(viewer)
	if len(accessErrs) > 0 {
		return 0, accessErrs
	}
	if !allowed.Contains(peer.ID) {
		errors = append(errors, errs.ErrMessagingNotAllowed)
		return 0, errors
	}

	count, markErr := ms.messageRepo.MarkMessagesRead(peer.ID, viewer.ID)
	if markErr != nil {
		errors = append(errors, markErr)
		return 0, errors
	}
	return count, nil
}

// ListConversations groups the viewer's message log into one summary per
// counterpart and drops groups whose counterpart is no longer in the viewer's
// allowed set. The messages stay in storage; only the listing hides them.
func (ms *MessagingService) ListConversations(viewer *models.User) ([]*models.ConversationSummary, []error) {
	var errors []error

	messages, err := ms.messageRepo.GetUserMessages(viewer.ID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	groups := aggregateConversations(viewer.ID, messages)

	allowed, accessErrs := ms.accessService.ResolveAllowedPeers(viewer)
	if len(accessErrs) > 0 {
		return nil, accessErrs
	}
	if !allowed.Unrestricted {
		visible := groups[:0]
		for _, group := range groups {
			if allowed.Contains(group.CounterpartID) {
				visible = append(visible, group)
			}
		}
		groups = visible
	}

	counterpartIDs := make([]uint, 0, len(groups))
	for _, group := range groups {
		counterpartIDs = append(counterpartIDs, group.CounterpartID)
	}
	counterparts, err := ms.authRepo.FindUsersByIDs(counterpartIDs)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	counterpartByID := make(map[uint]*models.User, len(counterparts))
	for i := range counterparts {
		counterpartByID[counterparts[i].ID] = &counterparts[i]
	}

	summaries := make([]*models.ConversationSummary, 0, len(groups))
	for _, group := range groups {
		counterpart, ok := counterpartByID[group.CounterpartID]
		if !ok {
			// Counterpart account no longer exists; skip the group.
			continue
		}
		summaries = append(summaries, &models.ConversationSummary{
			User:        counterpart.ToUserResponse(),
			LastMessage: group.LastMessage.ToMessageResponse(),
		})
	}
	return summaries, nil
}

// UnreadCount needs no peer authorization: a user may always count messages
// addressed to them.
func (ms *MessagingService) UnreadCount(viewer *models.User) (int64, []error) {
	var errors []error
	count, err := ms.messageRepo.CountUnreadForUser(viewer.ID)
	if err != nil {
		errors = append(errors, err)
		return 0, errors
	}
	return count, nil
}
