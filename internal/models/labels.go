package models

// Label holds the human readable names of an entity kind.
type Label struct {
	Singular string
	Plural   string
}

var labels = map[string]Label{
	UserModel{}.TableName():           {"User", "Users"},
	SkillModel{}.TableName():          {"Skill", "Skills"},
	UserProfileModel{}.TableName():    {"UserProfile", "UserProfiles"},
	ContactProfileModel{}.TableName(): {"Contact Profile", "Contact Profiles"},
	TestimonialModel{}.TableName():    {"Testimonial", "Testimonials"},
	MediaModel{}.TableName():          {"Media", "Media Files"},
	PortfolioModel{}.TableName():      {"Portfolio", "Portfolio Profiles"},
	CertificateModel{}.TableName():    {"Certificate", "Certificates"},
}

// LabelOf returns the display labels for r's kind. Unknown kinds fall back
// to the table name.
func LabelOf(r Record) Label {
	if l, ok := labels[r.TableName()]; ok {
		return l
	}
	return Label{Singular: r.TableName(), Plural: r.TableName()}
}

// All lists every persisted entity in dependency order.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&SkillModel{},
		&UserProfileModel{},
		&ContactProfileModel{},
		&TestimonialModel{},
		&MediaModel{},
		&PortfolioModel{},
		&CertificateModel{},
	}
}
