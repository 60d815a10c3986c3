package models

import (
	"time"

	"gorm.io/gorm"
)

// UserCourse is the enrollment join row. Enrolling twice is a no-op at
// the handler level; there is no unique constraint on (user, course).
type UserCourse struct {
	gorm.Model
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	CourseID        uint      `gorm:"index;not null" json:"course_id"`
	EnrolledAt      time.Time `gorm:"autoCreateTime" json:"enrolled_at"`
	ProgressPercent int       `gorm:"default:0" json:"progress_percent"`

	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Course Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}
