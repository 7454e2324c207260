package dbmysql

import (
	"time"
)

// ConnectionStatus values persisted on a connection edge. Rejection and
// deletion remove the row instead of adding a third status.
const (
	ConnectionStatusPending  = "pending"
	ConnectionStatusAccepted = "accepted"
)

// Connection is a directed social-graph edge requested by FromUserID.
// At most one live row exists per unordered {from,to} pair; all pair
// lookups must match in either direction.
type Connection struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	FromUserID string    `gorm:"column:from_user_id;size:36;not null;index:idx_connection_pair" json:"from_user_id"`
	ToUserID   string    `gorm:"column:to_user_id;size:36;not null;index:idx_connection_pair" json:"to_user_id"`
	Status     string    `gorm:"column:status;type:enum('pending','accepted');default:'pending'" json:"status"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Requester identity snapshotted at request time so notifications can
	// render without a user join.
	FromUsername    string `gorm:"column:from_username;size:64" json:"from_username"`
	FromDisplayName string `gorm:"column:from_display_name;size:128" json:"from_display_name"`
}

// InvolvesUser reports whether the user is either party of the edge.
func (c *Connection) InvolvesUser(userID string) bool {
	return c.FromUserID == userID || c.ToUserID == userID
}

// OtherUserID returns the party opposite to userID, or "" if userID is
// not on the edge.
func (c *Connection) OtherUserID(userID string) string {
	switch userID {
	case c.FromUserID:
		return c.ToUserID
	case c.ToUserID:
		return c.FromUserID
	}
	return ""
}

// SamePair reports whether both edges join the same unordered user pair.
func (c *Connection) SamePair(other *Connection) bool {
	if c.FromUserID == other.FromUserID && c.ToUserID == other.ToUserID {
		return true
	}
	return c.FromUserID == other.ToUserID && c.ToUserID == other.FromUserID
}
