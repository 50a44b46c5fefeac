package models

import "time"

type User struct {
	ID             uint      `gorm:"primaryKey;column:id"`
	Email          string    `gorm:"column:email"`
	Username       string    `gorm:"column:username"`
	HashedPassword string    `gorm:"column:hashed_password"`
	FullName       string    `gorm:"column:full_name"`
	Active         bool      `gorm:"column:is_active"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
