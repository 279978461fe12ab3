package skill

import (
	"context"
	"strings"
	"testing"

	"github.com/folio-space/core/internal/filestore"
	"github.com/folio-space/core/internal/pkg/validation"
	"github.com/folio-space/core/internal/store"
	"github.com/folio-space/core/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *Service {
	t.Helper()
	files, err := filestore.NewLocal(t.TempDir(), "/media")
	require.NoError(t, err)
	return NewService(storetest.New(t), files)
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestSkillService_Create_Defaults(t *testing.T) {
	svc := newService(t)

	m, err := svc.Create(context.Background(), &CreateSkillDTO{Name: "Go"})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, 80, m.Score)
	assert.False(t, m.IsKeySkill)
	assert.Equal(t, "Go", m.String())

	zero, err := svc.Create(context.Background(), &CreateSkillDTO{Name: "Cobol", Score: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, 0, zero.Score)
}

func TestSkillService_Create_NameTooLong(t *testing.T) {
	svc := newService(t)
	_, err := svc.Create(context.Background(), &CreateSkillDTO{Name: strings.Repeat("k", 21)})
	verr, ok := validation.AsError(err)
	require.True(t, ok)
	assert.True(t, verr.Has("name"))
}

func TestSkillService_UpdateAndKeySkills(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	goSkill, err := svc.Create(ctx, &CreateSkillDTO{Name: "Go"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &CreateSkillDTO{Name: "Perl"})
	require.NoError(t, err)

	key := true
	updated, err := svc.Update(ctx, goSkill.ID, &UpdateSkillDTO{Name: strPtr("Golang"), IsKeySkill: &key, Score: intPtr(95)})
	require.NoError(t, err)
	assert.Equal(t, "Golang", updated.Name)
	assert.Equal(t, 95, updated.Score)

	keys, err := svc.KeySkills(ctx)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, goSkill.ID, keys[0].ID)

	missing, err := svc.Update(ctx, "missing", &UpdateSkillDTO{})
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSkillService_Delete(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, &CreateSkillDTO{Name: "Go"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, m.ID))

	got, err := svc.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, svc.Delete(ctx, m.ID), store.ErrNotFound)
}

func TestSkillService_SetImage(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, &CreateSkillDTO{Name: "Go"})
	require.NoError(t, err)

	updated, err := svc.SetImage(ctx, m.ID, "gopher.svg", []byte("<svg></svg>"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(updated.Image, "skills/"))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, updated.Image, list[0].Image)
}
