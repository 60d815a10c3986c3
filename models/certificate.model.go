package models

import (
	"time"

	"gorm.io/gorm"
)

type Certificate struct {
	gorm.Model
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	CourseID       uint      `gorm:"index;not null" json:"course_id"`
	Serial         string    `gorm:"unique;not null" json:"serial"`
	CertificateURL string    `json:"certificate_url"` // PDF link
	IssuedAt       time.Time `gorm:"autoCreateTime" json:"issued_at"`

	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Course Course `gorm:"foreignKey:CourseID" json:"-"`
}
