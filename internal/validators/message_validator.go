package validators

import (
	"propertyHub/internal/errs"
	"strings"
)

// ValidateSendMessage checks the two required send fields. Authorization is a
// separate step; this only rejects structurally invalid input.
func ValidateSendMessage(receiverID uint, content string) []error {
	var errors []error
	if receiverID == 0 {
		errors = append(errors, errs.ErrReceiverRequired)
	}
	if strings.TrimSpace(content) == "" {
		errors = append(errors, errs.ErrEmptyMessageContent)
	}
	return errors
}
