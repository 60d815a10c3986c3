package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Module struct {
	gorm.Model
	CourseID   uint   `gorm:"index;not null" json:"course_id"`
	Title      string `gorm:"not null" json:"title"`
	OrderIndex int    `gorm:"default:0" json:"order_index"`

	Lessons []Lesson `gorm:"foreignKey:ModuleID" json:"lessons,omitempty"`
}

// Lesson content kinds
const (
	LessonVideo      = "video"
	LessonText       = "text"
	LessonQuiz       = "quiz"
	LessonSimulation = "simulation"
)

type Lesson struct {
	gorm.Model
	ModuleID        uint           `gorm:"index;not null" json:"module_id"`
	Title           string         `gorm:"not null" json:"title"`
	ContentType     string         `gorm:"not null" json:"content_type"` // video, text, quiz, simulation
	ContentURL      string         `gorm:"default:''" json:"content_url"`
	Payload         datatypes.JSON `json:"payload,omitempty"` // inline quiz questions
	DurationMinutes int            `gorm:"default:10" json:"duration_minutes"`
}
