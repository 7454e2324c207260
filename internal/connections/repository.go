package connections

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"recipely/internal/common"
	"recipely/internal/dbmysql"
)

// ConnectionRepository is local-store-only CRUD for connection edges. An
// edge between A and B is the same edge regardless of which side is
// queried, so every pair lookup matches both directions. No network calls
// originate here.
type ConnectionRepository interface {
	Save(ctx context.Context, connection *dbmysql.Connection) error
	FetchByID(ctx context.Context, connectionID string) (*dbmysql.Connection, error)
	FetchConnection(ctx context.Context, fromUserID, toUserID string) (*dbmysql.Connection, error)
	FetchConnections(ctx context.Context, forUserID string) ([]*dbmysql.Connection, error)
	FetchAcceptedConnections(ctx context.Context, forUserID string) ([]*dbmysql.Connection, error)
	FetchSentRequests(ctx context.Context, fromUserID string) ([]*dbmysql.Connection, error)
	FetchReceivedRequests(ctx context.Context, forUserID string) ([]*dbmysql.Connection, error)
	AreConnected(ctx context.Context, user1, user2 string) (bool, error)
	Delete(ctx context.Context, connection *dbmysql.Connection) error
}

type connectionRepository struct {
	db *gorm.DB
}

func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

// Save upserts the edge: matched by id first, then by unordered user
// pair. A second save for the same pair updates the stored row instead of
// duplicating it, and the caller's connection takes on the stored id.
func (r *connectionRepository) Save(ctx context.Context, connection *dbmysql.Connection) error {
	var existing dbmysql.Connection
	err := r.db.WithContext(ctx).
		Where("id = ?", connection.ID).
		First(&existing).Error
	if err == nil {
		return r.db.WithContext(ctx).Save(connection).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	err = r.db.WithContext(ctx).
		Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)",
			connection.FromUserID, connection.ToUserID, connection.ToUserID, connection.FromUserID).
		First(&existing).Error
	if err == nil {
		connection.ID = existing.ID
		connection.CreatedAt = existing.CreatedAt
		return r.db.WithContext(ctx).Save(connection).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.WithContext(ctx).Create(connection).Error
}

func (r *connectionRepository) FetchByID(ctx context.Context, connectionID string) (*dbmysql.Connection, error) {
	var connection dbmysql.Connection
	err := r.db.WithContext(ctx).
		Where("id = ?", connectionID).
		First(&connection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrConnectionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &connection, nil
}

func (r *connectionRepository) FetchConnection(ctx context.Context, fromUserID, toUserID string) (*dbmysql.Connection, error) {
	var connection dbmysql.Connection
	err := r.db.WithContext(ctx).
		Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)",
			fromUserID, toUserID, toUserID, fromUserID).
		First(&connection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrConnectionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &connection, nil
}

func (r *connectionRepository) FetchConnections(ctx context.Context, forUserID string) ([]*dbmysql.Connection, error) {
	var edges []*dbmysql.Connection
	err := r.db.WithContext(ctx).
		Where("from_user_id = ? OR to_user_id = ?", forUserID, forUserID).
		Order("updated_at DESC").
		Find(&edges).Error
	return edges, err
}

func (r *connectionRepository) FetchAcceptedConnections(ctx context.Context, forUserID string) ([]*dbmysql.Connection, error) {
	var edges []*dbmysql.Connection
	err := r.db.WithContext(ctx).
		Where("(from_user_id = ? OR to_user_id = ?) AND status = ?",
			forUserID, forUserID, dbmysql.ConnectionStatusAccepted).
		Order("updated_at DESC").
		Find(&edges).Error
	return edges, err
}

func (r *connectionRepository) FetchSentRequests(ctx context.Context, fromUserID string) ([]*dbmysql.Connection, error) {
	var edges []*dbmysql.Connection
	err := r.db.WithContext(ctx).
		Where("from_user_id = ? AND status = ?", fromUserID, dbmysql.ConnectionStatusPending).
		Order("created_at DESC").
		Find(&edges).Error
	return edges, err
}

func (r *connectionRepository) FetchReceivedRequests(ctx context.Context, forUserID string) ([]*dbmysql.Connection, error) {
	var edges []*dbmysql.Connection
	err := r.db.WithContext(ctx).
		Where("to_user_id = ? AND status = ?", forUserID, dbmysql.ConnectionStatusPending).
		Order("created_at DESC").
		Find(&edges).Error
	return edges, err
}

func (r *connectionRepository) AreConnected(ctx context.Context, user1, user2 string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Connection{}).
		Where("((from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)) AND status = ?",
			user1, user2, user2, user1, dbmysql.ConnectionStatusAccepted).
		Count(&count).Error
	return count > 0, err
}

// Delete removes the edge. Deleting a non-existent edge is not an error.
func (r *connectionRepository) Delete(ctx context.Context, connection *dbmysql.Connection) error {
	return r.db.WithContext(ctx).
		Where("id = ?", connection.ID).
		Delete(&dbmysql.Connection{}).Error
}
