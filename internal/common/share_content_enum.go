package common

import "strings"

// ShareContentType represents what kind of content a share link resolves to
type ShareContentType string

const (
	ShareContentTypeRecipe     ShareContentType = "recipe"
	ShareContentTypeProfile    ShareContentType = "profile"
	ShareContentTypeCollection ShareContentType = "collection"
)

// String returns the string representation
func (sct ShareContentType) String() string {
	return string(sct)
}

// IsValid checks if the share content type is valid
func (sct ShareContentType) IsValid() bool {
	return sct == ShareContentTypeRecipe || sct == ShareContentTypeProfile || sct == ShareContentTypeCollection
}

// DetectShareContentType classifies a share link by its URL path segment.
func DetectShareContentType(shareURL string) ShareContentType {
	lowerURL := strings.ToLower(shareURL)
	if strings.Contains(lowerURL, "/profile/") {
		return ShareContentTypeProfile
	}
	if strings.Contains(lowerURL, "/collection/") {
		return ShareContentTypeCollection
	}
	return ShareContentTypeRecipe // Default fallback
}
