package common

// UserSnapshot is the requester identity captured at the moment an
// operation is initiated, denormalized onto outgoing connection requests
// so the receiving side can render a notification without a user lookup.
type UserSnapshot struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}
