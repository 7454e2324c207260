package connections

import (
	"fmt"
	"time"

	"recipely/internal/dbmysql"
	"recipely/internal/remote"
)

// connectionToRecord builds the wire representation of an edge. Times go
// out as RFC 3339 strings so the record round-trips identically through
// any store encoding.
func connectionToRecord(connection *dbmysql.Connection, version int64) *remote.Record {
	return &remote.Record{
		ID:        connection.ID,
		Type:      remote.RecordTypeConnection,
		Version:   version,
		UpdatedAt: connection.UpdatedAt,
		Fields: map[string]interface{}{
			"from_user_id":      connection.FromUserID,
			"to_user_id":        connection.ToUserID,
			"status":            connection.Status,
			"created_at":        connection.CreatedAt.UTC().Format(time.RFC3339Nano),
			"updated_at":        connection.UpdatedAt.UTC().Format(time.RFC3339Nano),
			"from_username":     connection.FromUsername,
			"from_display_name": connection.FromDisplayName,
		},
	}
}

// recordToConnection decodes a remote record into an edge. A record
// missing its required fields fails its own decode only.
func recordToConnection(record *remote.Record) (*dbmysql.Connection, error) {
	fromUserID := stringField(record, "from_user_id")
	toUserID := stringField(record, "to_user_id")
	status := stringField(record, "status")
	if fromUserID == "" || toUserID == "" || status == "" {
		return nil, fmt.Errorf("malformed connection record %s", record.ID)
	}

	createdAt, err := timeField(record, "created_at")
	if err != nil {
		return nil, fmt.Errorf("malformed connection record %s: %w", record.ID, err)
	}
	updatedAt, err := timeField(record, "updated_at")
	if err != nil {
		return nil, fmt.Errorf("malformed connection record %s: %w", record.ID, err)
	}

	return &dbmysql.Connection{
		ID:              record.ID,
		FromUserID:      fromUserID,
		ToUserID:        toUserID,
		Status:          status,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
		FromUsername:    stringField(record, "from_username"),
		FromDisplayName: stringField(record, "from_display_name"),
	}, nil
}

func stringField(record *remote.Record, key string) string {
	if record.Fields == nil {
		return ""
	}
	if value, ok := record.Fields[key].(string); ok {
		return value
	}
	return ""
}

func timeField(record *remote.Record, key string) (time.Time, error) {
	raw := stringField(record, key)
	if raw == "" {
		return time.Time{}, fmt.Errorf("missing %s", key)
	}
	return time.Parse(time.RFC3339Nano, raw)
}
