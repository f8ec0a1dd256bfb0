package common

import (
	"strings"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 200
	MaxCommentLength     = 500
)

func ValidateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return NewValidationError("title is required")
	}
	if len(title) > MaxTitleLength {
		return NewValidationError("title must be at most %d characters", MaxTitleLength)
	}
	return nil
}

func ValidateDescription(description string) error {
	if len(description) > MaxDescriptionLength {
		return NewValidationError("description must be at most %d characters", MaxDescriptionLength)
	}
	return nil
}

func ValidateCommentText(text string) error {
	if strings.TrimSpace(text) == "" {
		return NewValidationError("comment text is required")
	}
	if len(text) > MaxCommentLength {
		return NewValidationError("comment must be at most %d characters", MaxCommentLength)
	}
	return nil
}
