package collections

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"recipely/internal/common"
	"recipely/internal/dbmysql"
)

// CollectionRepository is local-store-only CRUD for recipe collections.
// Membership mutations are idempotent; operating on a missing collection
// is the one error case.
type CollectionRepository interface {
	CreateCollection(ctx context.Context, name, userID string) (*dbmysql.Collection, error)
	FetchCollection(ctx context.Context, collectionID string) (*dbmysql.Collection, error)
	FetchCollections(ctx context.Context, userID string) ([]*dbmysql.Collection, error)
	DeleteCollection(ctx context.Context, collectionID string) error
	AddRecipe(ctx context.Context, recipeID, collectionID string) error
	RemoveRecipe(ctx context.Context, recipeID, collectionID string) error
	RecipeIDs(ctx context.Context, collectionID string) ([]string, error)
	RecipeCount(ctx context.Context, collectionID string) (int64, error)
}

type collectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) CreateCollection(ctx context.Context, name, userID string) (*dbmysql.Collection, error) {
	if err := common.ValidateCollectionName(name); err != nil {
		return nil, err
	}

	collection := &dbmysql.Collection{
		ID:     uuid.NewString(),
		Name:   name,
		UserID: userID,
	}
	if err := r.db.WithContext(ctx).Create(collection).Error; err != nil {
		return nil, err
	}
	return collection, nil
}

func (r *collectionRepository) FetchCollection(ctx context.Context, collectionID string) (*dbmysql.Collection, error) {
	var collection dbmysql.Collection
	err := r.db.WithContext(ctx).Where("id = ?", collectionID).First(&collection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrCollectionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) FetchCollections(ctx context.Context, userID string) ([]*dbmysql.Collection, error) {
	var collections []*dbmysql.Collection
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&collections).Error
	return collections, err
}

func (r *collectionRepository) DeleteCollection(ctx context.Context, collectionID string) error {
	if err := r.db.WithContext(ctx).
		Where("collection_id = ?", collectionID).
		Delete(&dbmysql.CollectionRecipe{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("id = ?", collectionID).
		Delete(&dbmysql.Collection{}).Error
}

// AddRecipe adds a recipe to the collection. Adding an already-present
// recipe is a no-op.
func (r *collectionRepository) AddRecipe(ctx context.Context, recipeID, collectionID string) error {
	if _, err := r.FetchCollection(ctx, collectionID); err != nil {
		return err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.CollectionRecipe{}).
		Where("collection_id = ? AND recipe_id = ?", collectionID, recipeID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	membership := &dbmysql.CollectionRecipe{
		CollectionID: collectionID,
		RecipeID:     recipeID,
	}
	if err := r.db.WithContext(ctx).Create(membership).Error; err != nil {
		return err
	}

	return r.touch(ctx, collectionID)
}

// RemoveRecipe removes a recipe from the collection. Removing an absent
// recipe is a no-op.
func (r *collectionRepository) RemoveRecipe(ctx context.Context, recipeID, collectionID string) error {
	if _, err := r.FetchCollection(ctx, collectionID); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("collection_id = ? AND recipe_id = ?", collectionID, recipeID).
		Delete(&dbmysql.CollectionRecipe{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return nil
	}

	return r.touch(ctx, collectionID)
}

func (r *collectionRepository) RecipeIDs(ctx context.Context, collectionID string) ([]string, error) {
	var recipeIDs []string
	err := r.db.WithContext(ctx).
		Model(&dbmysql.CollectionRecipe{}).
		Where("collection_id = ?", collectionID).
		Order("added_at ASC").
		Pluck("recipe_id", &recipeIDs).Error
	return recipeIDs, err
}

func (r *collectionRepository) RecipeCount(ctx context.Context, collectionID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.CollectionRecipe{}).
		Where("collection_id = ?", collectionID).
		Count(&count).Error
	return count, err
}

func (r *collectionRepository) touch(ctx context.Context, collectionID string) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Collection{}).
		Where("id = ?", collectionID).
		Update("updated_at", time.Now()).Error
}
