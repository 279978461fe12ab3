package contact

import (
	"context"
	"testing"

	"github.com/folio-space/core/internal/pkg/pagination"
	"github.com/folio-space/core/internal/pkg/validation"
	"github.com/folio-space/core/internal/store"
	"github.com/folio-space/core/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(storetest.New(t), nil)
}

func TestContactService_Create(t *testing.T) {
	svc := newService(t)

	m, err := svc.Create(context.Background(), &CreateContactDTO{Name: " Ada ", Email: "ada@example.com ", Message: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", m.Name)
	assert.Equal(t, "ada@example.com", m.Email)
	assert.False(t, m.Timestamp.IsZero())
}

func TestContactService_Create_Invalid(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create(context.Background(), &CreateContactDTO{Name: "Ada", Email: "not-an-email"})
	require.ErrorIs(t, err, validation.ErrInvalid)
	verr, ok := validation.AsError(err)
	require.True(t, ok)
	assert.True(t, verr.Has("email"))
	assert.True(t, verr.Has("message"))

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestContactService_Update_KeepsTimestamp(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, &CreateContactDTO{Name: "Ada", Email: "ada@example.com", Message: "Hello"})
	require.NoError(t, err)
	stamp := m.Timestamp

	msg := "Hello again"
	updated, err := svc.Update(ctx, m.ID, &UpdateContactDTO{Message: &msg})
	require.NoError(t, err)
	assert.Equal(t, "Hello again", updated.Message)

	got, err := svc.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, stamp.Equal(got.Timestamp))
}

func TestContactService_PageAndDelete(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := svc.Create(ctx, &CreateContactDTO{Name: name, Email: name + "@example.com", Message: "hi"})
		require.NoError(t, err)
	}

	items, page, err := svc.Page(ctx, pagination.New(1, 2))
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(3), page.Total)
	assert.True(t, page.HasNextPage)

	require.NoError(t, svc.Delete(ctx, items[0].ID))
	assert.ErrorIs(t, svc.Delete(ctx, items[0].ID), store.ErrNotFound)

	missing, err := svc.GetByID(ctx, items[0].ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
