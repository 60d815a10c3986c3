package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email       string `gorm:"unique;not null" json:"email"`
	Username    string `gorm:"unique;not null" json:"username"`
	Password    string `gorm:"not null" json:"-"`
	Role        string `gorm:"default:'student'" json:"role"` // student, instructor, admin
	IsActive    bool   `gorm:"default:true" json:"is_active"`
	XP          int    `gorm:"default:0" json:"xp"`
	Level       int    `gorm:"default:1" json:"level"`
	StreakDays  int    `gorm:"default:0" json:"streak_days"`
	Bio         string `gorm:"default:''" json:"bio"`
	AvatarStyle string `gorm:"default:'adventurer'" json:"avatar_style"` // DiceBear style seed
}
