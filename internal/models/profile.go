package models

// UserProfileModel is the public profile of an identity. Exactly one profile
// may exist per user; removing the user removes the profile.
type UserProfileModel struct {
	Base
	UserID string       `json:"user_id"        gorm:"type:char(36);uniqueIndex;not null" validate:"required"`
	User   *UserModel   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" validate:"-"`
	Avatar string       `json:"avatar"         gorm:"size:100"  validate:"max=100"`
	Title  string       `json:"title"          gorm:"size:200"  validate:"max=200"`
	Bio    string       `json:"bio"            gorm:"type:text"`
	Skills []SkillModel `json:"skills"         gorm:"many2many:user_profile_skills;joinForeignKey:UserProfileID;joinReferences:SkillID;constraint:OnDelete:CASCADE" validate:"-"`
	CV     string       `json:"cv"             gorm:"size:100"  validate:"max=100"`
}

func (UserProfileModel) TableName() string { return "user_profiles" }

// String renders the owner's full name. The User association must be loaded.
func (p UserProfileModel) String() string {
	if p.User == nil {
		return ""
	}
	return p.User.FullName()
}

// SkillIDs returns the ids of the loaded skills.
func (p UserProfileModel) SkillIDs() []string {
	ids := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		ids = append(ids, s.ID)
	}
	return ids
}

// UserProfileSkill is the junction row between a profile and a skill.
type UserProfileSkill struct {
	UserProfileID string `gorm:"type:char(36);primaryKey"`
	SkillID       string `gorm:"type:char(36);primaryKey;index"`
}

func (UserProfileSkill) TableName() string { return "user_profile_skills" }
