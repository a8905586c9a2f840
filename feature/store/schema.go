package store

import (
	"fmt"

	"gorm.io/gorm"
)

// Initialize creates the store tables that do not exist yet.
// Existing tables are left untouched; there is no migration of their columns.
func Initialize(db *gorm.DB) ([]string, error) {
	var created []string
	m := db.Migrator()
	for _, model := range Models() {
		if m.HasTable(model) {
			continue
		}
		if err := m.CreateTable(model); err != nil {
			return created, fmt.Errorf("failed to create table for %T: %w", model, err)
		}
		if t, ok := model.(interface{ TableName() string }); ok {
			created = append(created, t.TableName())
		}
	}
	return created, nil
}
