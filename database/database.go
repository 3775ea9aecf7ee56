package database

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"yatube/models"
)

var DB *gorm.DB

// Connect opens the MySQL connection. TranslateError is on so unique
// index violations surface as gorm.ErrDuplicatedKey regardless of driver.
func Connect(dsn string) error {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// Migrate creates tables together with the foreign-key lifecycle rules:
// author deletion cascades to posts, comments and follow edges, post
// deletion cascades to comments, group deletion nulls out post.group_id.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	)
}
