package models

import (
	"time"

	"gorm.io/gorm"
)

type Badge struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	IconURL     string `json:"icon_url"`
	Criteria    string `gorm:"type:text" json:"criteria"`
}

type UserBadge struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	BadgeID   uint      `gorm:"index;not null" json:"badge_id"`
	AwardedAt time.Time `gorm:"autoCreateTime" json:"awarded_at"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Badge Badge `gorm:"foreignKey:BadgeID" json:"badge"`
}
