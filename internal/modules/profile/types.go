package profile

type CreateProfileDTO struct {
	UserID   string   `json:"user_id"`
	Avatar   string   `json:"avatar"`
	Title    string   `json:"title"`
	Bio      string   `json:"bio"`
	CV       string   `json:"cv"`
	SkillIDs []string `json:"skill_ids"`
}

// UpdateProfileDTO edits a profile. A nil SkillIDs leaves the skill set
// alone; a non-nil empty one clears it.
type UpdateProfileDTO struct {
	Avatar   *string   `json:"avatar"`
	Title    *string   `json:"title"`
	Bio      *string   `json:"bio"`
	CV       *string   `json:"cv"`
	SkillIDs *[]string `json:"skill_ids"`
}
