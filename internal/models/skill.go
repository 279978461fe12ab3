package models

// DefaultSkillScore is assigned when a skill is created without a score.
const DefaultSkillScore = 80

// SkillModel is a single entry of the skills section.
type SkillModel struct {
	Base
	Name       string `json:"name"         gorm:"size:20"           validate:"max=20"`
	Score      int    `json:"score"        gorm:"not null"`
	Image      string `json:"image"        gorm:"size:100"          validate:"max=100"`
	IsKeySkill bool   `json:"is_key_skill" gorm:"not null;index"`
}

func (SkillModel) TableName() string { return "skills" }

func (s SkillModel) String() string { return s.Name }
