package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title       string  `gorm:"index;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Category    string  `json:"category"` // legacy free-text category, predates subjects
	SubjectID   *uint   `gorm:"index" json:"subject_id"`
	ImageURL    string  `gorm:"default:''" json:"image_url"`
	Difficulty  string  `gorm:"default:'Beginner'" json:"difficulty"`
	Duration    string  `gorm:"default:'8 weeks'" json:"duration"`
	Rating      float64 `gorm:"default:4.5" json:"rating"`

	Subject *Subject `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	Modules []Module `gorm:"foreignKey:CourseID" json:"modules,omitempty"`
}
