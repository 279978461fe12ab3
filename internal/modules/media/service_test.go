package media

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/folio-space/core/internal/filestore"
	"github.com/folio-space/core/internal/pkg/validation"
	"github.com/folio-space/core/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngPayload = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) Put(ctx context.Context, key string, payload []byte) (string, error) {
	args := m.Called(ctx, key, payload)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) Delete(ctx context.Context, ref string) error {
	return m.Called(ctx, ref).Error(0)
}

func (m *mockStorage) URL(ref string) string {
	return m.Called(ref).String(0)
}

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }

func TestMediaService_Create_URLClearsIsImage(t *testing.T) {
	svc := NewService(storetest.New(t), nil)

	m, err := svc.Create(context.Background(), &CreateMediaDTO{Image: "media/a.png", URL: "http://example.com", Name: "Site"})
	require.NoError(t, err)
	assert.False(t, m.IsImage)

	got, err := svc.GetByID(context.Background(), m.ID)
	require.NoError(t, err)
	assert.False(t, got.IsImage)
}

func TestMediaService_Create_EmptyURLKeepsIsImage(t *testing.T) {
	svc := NewService(storetest.New(t), nil)

	m, err := svc.Create(context.Background(), &CreateMediaDTO{Image: "media/a.png", Name: "Shot"})
	require.NoError(t, err)
	assert.True(t, m.IsImage)

	off, err := svc.Create(context.Background(), &CreateMediaDTO{Image: "media/b.png", IsImage: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, off.IsImage)
}

func TestMediaService_Update_NeverReenablesIsImage(t *testing.T) {
	svc := NewService(storetest.New(t), nil)
	ctx := context.Background()

	m, err := svc.Create(ctx, &CreateMediaDTO{Image: "media/a.png", URL: "http://example.com"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, m.ID, &UpdateMediaDTO{URL: strPtr("")})
	require.NoError(t, err)
	assert.Empty(t, updated.URL)
	assert.False(t, updated.IsImage)

	updated, err = svc.Update(ctx, m.ID, &UpdateMediaDTO{URL: strPtr("https://example.org"), IsImage: boolPtr(true)})
	require.NoError(t, err)
	assert.False(t, updated.IsImage)
}

func TestMediaService_Create_Invalid(t *testing.T) {
	svc := NewService(storetest.New(t), nil)

	_, err := svc.Create(context.Background(), &CreateMediaDTO{URL: "not a url"})
	verr, ok := validation.AsError(err)
	require.True(t, ok)
	assert.True(t, verr.Has("image"))
	assert.True(t, verr.Has("url"))
}

func TestMediaService_CreateFromUpload(t *testing.T) {
	files := new(mockStorage)
	files.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "media/") && strings.HasSuffix(key, ".png")
	}), pngPayload).Return("media/abc.png", nil).Once()
	files.On("URL", "media/abc.png").Return("https://cdn.example.com/media/abc.png")

	svc := NewService(storetest.New(t), files)
	ctx := context.Background()

	m, err := svc.CreateFromUpload(ctx, "Shot.PNG", pngPayload, &CreateMediaDTO{Name: "Shot"})
	require.NoError(t, err)
	assert.Equal(t, "media/abc.png", m.Image)
	assert.True(t, m.IsImage)

	gallery, err := svc.Gallery(ctx)
	require.NoError(t, err)
	require.Len(t, gallery, 1)
	assert.Equal(t, "https://cdn.example.com/media/abc.png", gallery[0].ImageURL)
	files.AssertExpectations(t)
}

func TestMediaService_CreateFromUpload_RemovesUploadOnInvalidRecord(t *testing.T) {
	files := new(mockStorage)
	files.On("Put", mock.Anything, mock.Anything, pngPayload).Return("media/abc.png", nil).Once()
	files.On("Delete", mock.Anything, "media/abc.png").Return(nil).Once()

	svc := NewService(storetest.New(t), files)

	_, err := svc.CreateFromUpload(context.Background(), "a.png", pngPayload, &CreateMediaDTO{URL: "not a url"})
	assert.ErrorIs(t, err, validation.ErrInvalid)
	files.AssertExpectations(t)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMediaService_CreateFromUpload_PutFails(t *testing.T) {
	files := new(mockStorage)
	files.On("Put", mock.Anything, mock.Anything, pngPayload).Return("", errors.New("bucket gone")).Once()

	svc := NewService(storetest.New(t), files)

	_, err := svc.CreateFromUpload(context.Background(), "a.png", pngPayload, &CreateMediaDTO{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket gone")
	files.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestMediaService_CreateFromUpload_RejectsNonImage(t *testing.T) {
	files := new(mockStorage)
	svc := NewService(storetest.New(t), files)

	_, err := svc.CreateFromUpload(context.Background(), "notes.txt", []byte("plain text"), &CreateMediaDTO{Name: "Notes"})
	assert.ErrorIs(t, err, filestore.ErrNotImage)
	files.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)

	_, err = svc.CreateFromUpload(context.Background(), "empty.png", nil, &CreateMediaDTO{})
	assert.ErrorIs(t, err, filestore.ErrEmptyFile)
}

func TestMediaService_CreateFromUpload_NoStorage(t *testing.T) {
	svc := NewService(storetest.New(t), nil)

	_, err := svc.CreateFromUpload(context.Background(), "a.png", pngPayload, &CreateMediaDTO{})
	assert.ErrorIs(t, err, filestore.ErrUnavailable)
}

func TestMediaService_ListByName(t *testing.T) {
	svc := NewService(storetest.New(t), nil)
	ctx := context.Background()

	for _, name := range []string{"b", "c", "a"} {
		_, err := svc.Create(ctx, &CreateMediaDTO{Image: "media/" + name + ".png", Name: name})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{list[0].Name, list[1].Name, list[2].Name})

	require.NoError(t, svc.Delete(ctx, list[0].ID))
	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
