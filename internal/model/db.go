package model

import "gorm.io/gorm"

// Migrate creates the glossary tables and indexes if they are missing.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Term{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(&Relation{}); err != nil {
		return err
	}

	return nil
}
