package validators

import (
	"testing"

	"propertyHub/internal/errs"
)

func TestValidateSendMessage(t *testing.T) {
	if errorList := ValidateSendMessage(1, "hello"); len(errorList) != 0 {
		t.Fatalf("valid input must pass, got %v", errorList)
	}

	errorList := ValidateSendMessage(0, "hello")
	if len(errorList) != 1 || errorList[0] != errs.ErrReceiverRequired {
		t.Fatalf("expected ErrReceiverRequired, got %v", errorList)
	}

	errorList = ValidateSendMessage(1, " \t\n")
	if len(errorList) != 1 || errorList[0] != errs.ErrEmptyMessageContent {
		t.Fatalf("expected ErrEmptyMessageContent, got %v", errorList)
	}

	errorList = ValidateSendMessage(0, "")
	if len(errorList) != 2 {
		t.Fatalf("expected both errors, got %v", errorList)
	}
}
