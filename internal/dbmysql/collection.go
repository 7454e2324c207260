package dbmysql

import (
	"time"
)

// Collection is a user-owned set of recipes. Only the owner mutates it.
type Collection struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"column:name;size:128;not null" json:"name"`
	UserID    string    `gorm:"column:user_id;size:36;not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// CollectionRecipe is one recipe's membership in a collection. The unique
// pair index makes add idempotent at the schema level.
type CollectionRecipe struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	CollectionID string    `gorm:"column:collection_id;size:36;not null;index:idx_collection_recipe,unique" json:"collection_id"`
	RecipeID     string    `gorm:"column:recipe_id;size:36;not null;index:idx_collection_recipe,unique" json:"recipe_id"`
	AddedAt      time.Time `gorm:"column:added_at;autoCreateTime" json:"added_at"`
}
