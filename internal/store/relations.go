package store

import (
	"context"

	"github.com/folio-space/core/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type change struct {
	table string
	id    string
	op    Op
}

var profilesTable = models.UserProfileModel{}.TableName()

// checkReferences enforces the profile's one-to-one link to its identity.
func checkReferences(tx *gorm.DB, rec models.Record) error {
	p, ok := rec.(*models.UserProfileModel)
	if !ok {
		return nil
	}

	var n int64
	if err := tx.Model(&models.UserModel{}).Where("id = ?", p.UserID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrIdentityNotFound
	}

	q := tx.Model(&models.UserProfileModel{}).Where("user_id = ?", p.UserID)
	if p.ID != "" {
		q = q.Where("id <> ?", p.ID)
	}
	if err := q.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrProfileExists
	}
	return nil
}

// releaseReferences removes rows that point at rec before rec itself is
// deleted and reports which other records changed as a result.
func releaseReferences(tx *gorm.DB, rec models.Record) ([]change, error) {
	switch r := rec.(type) {
	case *models.SkillModel:
		var profileIDs []string
		if err := tx.Model(&models.UserProfileSkill{}).
			Where("skill_id = ?", r.ID).
			Pluck("user_profile_id", &profileIDs).Error; err != nil {
			return nil, err
		}
		if len(profileIDs) == 0 {
			return nil, nil
		}
		if err := tx.Where("skill_id = ?", r.ID).Delete(&models.UserProfileSkill{}).Error; err != nil {
			return nil, err
		}
		changes := make([]change, 0, len(profileIDs))
		for _, id := range profileIDs {
			changes = append(changes, change{table: profilesTable, id: id, op: OpUpdate})
		}
		return changes, nil

	case *models.UserProfileModel:
		return nil, tx.Where("user_profile_id = ?", r.ID).Delete(&models.UserProfileSkill{}).Error

	case *models.UserModel:
		var profileIDs []string
		if err := tx.Model(&models.UserProfileModel{}).
			Where("user_id = ?", r.ID).
			Pluck("id", &profileIDs).Error; err != nil {
			return nil, err
		}
		if len(profileIDs) == 0 {
			return nil, nil
		}
		if err := tx.Where("user_profile_id IN ?", profileIDs).Delete(&models.UserProfileSkill{}).Error; err != nil {
			return nil, err
		}
		if err := tx.Where("id IN ?", profileIDs).Delete(&models.UserProfileModel{}).Error; err != nil {
			return nil, err
		}
		changes := make([]change, 0, len(profileIDs))
		for _, id := range profileIDs {
			changes = append(changes, change{table: profilesTable, id: id, op: OpDelete})
		}
		return changes, nil
	}
	return nil, nil
}

// SaveProfile saves p like Save. When skillIDs is non-nil the profile's skill
// set is replaced by it in the same transaction; nil leaves it untouched.
func (s *Store) SaveProfile(ctx context.Context, p *models.UserProfileModel, skillIDs []string) error {
	var within func(tx *gorm.DB) error
	if skillIDs != nil {
		within = func(tx *gorm.DB) error {
			return replaceSkills(tx, p.ID, skillIDs)
		}
	}
	return s.save(ctx, p, within)
}

// SetSkills replaces the skill set of a profile.
func (s *Store) SetSkills(ctx context.Context, profileID string, skillIDs []string) error {
	return s.changeSkills(ctx, profileID, func(tx *gorm.DB) error {
		return replaceSkills(tx, profileID, skillIDs)
	})
}

// AddSkills associates skills with a profile. Existing associations are kept.
func (s *Store) AddSkills(ctx context.Context, profileID string, skillIDs ...string) error {
	return s.changeSkills(ctx, profileID, func(tx *gorm.DB) error {
		ids, err := requireSkills(tx, skillIDs)
		if err != nil || len(ids) == 0 {
			return err
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(junctionRows(profileID, ids)).Error
	})
}

// RemoveSkills drops associations between a profile and skills. Skills that
// are not associated are ignored.
func (s *Store) RemoveSkills(ctx context.Context, profileID string, skillIDs ...string) error {
	return s.changeSkills(ctx, profileID, func(tx *gorm.DB) error {
		ids := uniqueIDs(skillIDs)
		if len(ids) == 0 {
			return nil
		}
		return tx.Where("user_profile_id = ? AND skill_id IN ?", profileID, ids).
			Delete(&models.UserProfileSkill{}).Error
	})
}

func (s *Store) changeSkills(ctx context.Context, profileID string, fn func(tx *gorm.DB) error) error {
	if profileID == "" {
		return ErrNotFound
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireExisting(tx, profilesTable, profileID); err != nil {
			return err
		}
		return fn(tx)
	})
	if err != nil {
		return err
	}
	s.committed(ctx, change{table: profilesTable, id: profileID, op: OpUpdate})
	return nil
}

func replaceSkills(tx *gorm.DB, profileID string, skillIDs []string) error {
	ids, err := requireSkills(tx, skillIDs)
	if err != nil {
		return err
	}
	if err := tx.Where("user_profile_id = ?", profileID).Delete(&models.UserProfileSkill{}).Error; err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	return tx.Create(junctionRows(profileID, ids)).Error
}

// requireSkills returns the distinct non-empty ids, or ErrSkillNotFound when
// any of them does not exist.
func requireSkills(tx *gorm.DB, skillIDs []string) ([]string, error) {
	ids := uniqueIDs(skillIDs)
	if len(ids) == 0 {
		return nil, nil
	}
	var n int64
	if err := tx.Model(&models.SkillModel{}).Where("id IN ?", ids).Count(&n).Error; err != nil {
		return nil, err
	}
	if int(n) != len(ids) {
		return nil, ErrSkillNotFound
	}
	return ids, nil
}

func junctionRows(profileID string, skillIDs []string) *[]models.UserProfileSkill {
	rows := make([]models.UserProfileSkill, 0, len(skillIDs))
	for _, id := range skillIDs {
		rows = append(rows, models.UserProfileSkill{UserProfileID: profileID, SkillID: id})
	}
	return &rows
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
