package models

import (
	"time"

	"gorm.io/gorm"
)

// UserProgress keeps one row per (user, lesson). Uniqueness is enforced
// by the upsert in the progress handler, not by a DB constraint.
type UserProgress struct {
	gorm.Model
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	LessonID     uint      `gorm:"index;not null" json:"lesson_id"`
	Completed    bool      `gorm:"default:false" json:"completed"`
	Score        *int      `json:"score"`
	LastAccessed time.Time `gorm:"autoUpdateTime" json:"last_accessed"`

	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Lesson Lesson `gorm:"foreignKey:LessonID" json:"-"`
}
