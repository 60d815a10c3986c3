package models

import "gorm.io/gorm"

type Branch struct {
	gorm.Model
	Name     string `gorm:"unique;not null" json:"name"` // e.g. "Computer Science & Engineering"
	Code     string `gorm:"unique;not null" json:"code"` // e.g. "CSE"
	ImageURL string `gorm:"default:''" json:"image_url"`

	Subjects []Subject `gorm:"foreignKey:BranchID" json:"subjects,omitempty"`
}

type Subject struct {
	gorm.Model
	Title       string `gorm:"index;not null" json:"title"`
	Code        string `gorm:"index" json:"code"` // e.g. "CS201"
	BranchID    uint   `gorm:"index;not null" json:"branch_id"`
	Year        int    `json:"year"`     // 1-4
	Semester    int    `json:"semester"` // 1-8
	Description string `gorm:"type:text" json:"description"`

	Branch Branch `gorm:"foreignKey:BranchID" json:"-"`
}
