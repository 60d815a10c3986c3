package models

import "gorm.io/gorm"

type Skill struct {
	gorm.Model
	Name     string `gorm:"unique;not null" json:"name"`
	Category string `json:"category"` // Frontend, Backend, Security, ...
}

type UserSkill struct {
	gorm.Model
	UserID      uint `gorm:"index;not null" json:"user_id"`
	SkillID     uint `gorm:"index;not null" json:"skill_id"`
	Proficiency int  `gorm:"default:0" json:"proficiency"` // 0-100
	Verified    bool `gorm:"default:false" json:"verified"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Skill Skill `gorm:"foreignKey:SkillID" json:"skill"`
}
