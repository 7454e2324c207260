package remote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recipely/internal/common"
)

// RecordType values understood by the cloud store.
const (
	RecordTypeConnection = "connection"
	RecordTypeRecipe     = "recipe"
	RecordTypeCollection = "collection"
)

// Record is the wire representation of a synced entity. Version is the
// optimistic concurrency token: CreateOrUpdate fails with a conflict when
// the stored version no longer matches.
type Record struct {
	ID        string                 `bson:"_id" json:"id"`
	Type      string                 `bson:"type" json:"type"`
	Version   int64                  `bson:"version" json:"version"`
	UpdatedAt time.Time              `bson:"updated_at" json:"updated_at"`
	Fields    map[string]interface{} `bson:"fields" json:"fields"`
}

// Predicate selects records in a Fetch. UserID matches either party of a
// connection record when set.
type Predicate struct {
	Type   string
	UserID string
}

// ShareMetadata is the importable content a distributed share link
// resolves to.
type ShareMetadata struct {
	URL         string                  `bson:"url" json:"url"`
	ContentType common.ShareContentType `bson:"content_type" json:"content_type"`
	EntityID    string                  `bson:"entity_id" json:"entity_id"`
	OwnerID     string                  `bson:"owner_id" json:"owner_id"`
	Title       string                  `bson:"title" json:"title"`
}

// RemoteStore is the abstract eventually-consistent cloud store. It has no
// transactional guarantees across records.
type RemoteStore interface {
	CreateOrUpdate(ctx context.Context, record *Record) error
	Delete(ctx context.Context, record *Record) error
	Fetch(ctx context.Context, predicate Predicate) ([]*Record, error)
	FetchShareMetadata(ctx context.Context, shareURL string) (*ShareMetadata, error)
}

// ErrorCode is the closed set of remote failure modes.
type ErrorCode string

const (
	CodeConflict           ErrorCode = "conflict"
	CodeNotAuthenticated   ErrorCode = "not_authenticated"
	CodeNetworkUnavailable ErrorCode = "network_unavailable"
	CodeTimeout            ErrorCode = "timeout"
)

// ErrShareNotFound reports an unknown or expired share link.
var ErrShareNotFound = errors.New("share link not found")

// Error is a remote-store failure carrying its failure-domain code.
type Error struct {
	Code ErrorCode
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote %s: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("remote %s", e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retriable reports whether the failure is transient. Conflicts and auth
// failures require user intervention and are never auto-retried.
func (e *Error) Retriable() bool {
	return e.Code == CodeNetworkUnavailable || e.Code == CodeTimeout
}

// NewError wraps err with a failure-domain code.
func NewError(code ErrorCode, err error) *Error {
	return &Error{Code: code, Err: err}
}

// IsRetriable reports whether err is a transient remote failure. Unknown
// errors are treated as terminal so a broken precondition cannot loop.
func IsRetriable(err error) bool {
	var re *Error
	if errors.As(err, &re) {
		return re.Retriable()
	}
	return false
}
