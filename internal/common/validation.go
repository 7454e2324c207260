package common

import (
	"errors"
	"regexp"
	"strings"
)

var userIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-]+$`)

func ValidateUserID(userID string) error {
	userID = strings.TrimSpace(userID)
	if len(userID) < 1 || len(userID) > 36 {
		return errors.New("user id must be between 1 and 36 characters")
	}

	if !userIDRegex.MatchString(userID) {
		return errors.New("user id can only contain letters, numbers, hyphens, and underscores")
	}

	return nil
}

func ValidateCollectionName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("collection name is required")
	}

	if len(name) > 128 {
		return errors.New("collection name is too long")
	}

	return nil
}
