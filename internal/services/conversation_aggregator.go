package services

import (
	"propertyHub/internal/models"
	"sort"
)

type conversationGroup struct {
	CounterpartID uint
	LastMessage   models.Message
}

// aggregateConversations reduces a user's message log to one group per
// counterpart, keeping only the newest message of each pair. Ties on
// created_at fall back to the higher message id, so the winner never depends
// on the order the rows were scanned in.
func aggregateConversations(viewerID uint, messages []models.Message) []conversationGroup {
	best := make(map[uint]models.Message)
	for _, message := range messages {
		counterpart := message.ReceiverID
		if message.ReceiverID == viewerID {
			counterpart = message.SenderID
		}
		current, ok := best[counterpart]
		if !ok || newerMessage(message, current) {
			best[counterpart] = message
		}
	}

	groups := make([]conversationGroup, 0, len(best))
	for counterpartID, message := range best {
		groups = append(groups, conversationGroup{
			CounterpartID: counterpartID,
			LastMessage:   message,
		})
	}

	// Most recently active conversation first.
	sort.Slice(groups, func(i, j int) bool {
		return newerMessage(groups[i].LastMessage, groups[j].LastMessage)
	})

	return groups
}

func newerMessage(a, b models.Message) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
