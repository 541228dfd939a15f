package store

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is the single table behind the GORM-backed store.
type Entry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value"`
}

func (Entry) TableName() string { return "kv_entries" }

// Gorm is the KV backend for deployments with a real database (Postgres in
// production). Same contract as the sqlite file store.
type Gorm struct {
	db *gorm.DB
}

// NewGorm migrates the kv table and returns the store.
func NewGorm(db *gorm.DB) (*Gorm, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &Gorm{db: db}, nil
}

func (g *Gorm) Get(key string, v any) error {
	var e Entry
	if err := g.db.First(&e, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal(e.Value, v)
}

func (g *Gorm) Put(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Entry{Key: key, Value: raw}).Error
}

func (g *Gorm) Delete(key string) error {
	return g.db.Delete(&Entry{}, "key = ?", key).Error
}
