package filestore

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/folio-space/core/internal/config"
	"github.com/google/uuid"
	"github.com/h2non/filetype"
)

var (
	ErrUnavailable = errors.New("file storage is not configured")
	ErrNotImage    = errors.New("uploaded file is not an image")
	ErrEmptyFile   = errors.New("uploaded file is empty")
	ErrInvalidRef  = errors.New("invalid file reference")
)

// Storage keeps uploaded payloads and hands back a reference that is stored
// on the record.
type Storage interface {
	Put(ctx context.Context, key string, payload []byte) (string, error)
	Delete(ctx context.Context, ref string) error
	URL(ref string) string
}

// Field describes where uploads for one record field go.
type Field struct {
	Prefix    string
	ImageOnly bool
}

var (
	SkillImage           = Field{Prefix: "skills"}
	ProfileAvatar        = Field{Prefix: "avatar", ImageOnly: true}
	ProfileCV            = Field{Prefix: "cv"}
	TestimonialThumbnail = Field{Prefix: "thumbnail", ImageOnly: true}
	MediaImage           = Field{Prefix: "media", ImageOnly: true}
	PortfolioImage       = Field{Prefix: "portfolio", ImageOnly: true}
)

// Key builds a collision-resistant object key under the field prefix that
// keeps the original extension.
func (f Field) Key(original string) string {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(original)))
	if ext == "" || len(ext) > 10 {
		ext = ".dat"
	}
	return path.Join(f.Prefix, strings.ReplaceAll(uuid.NewString(), "-", "")[:18]+ext)
}

// CheckImage reports ErrNotImage unless payload starts with a known image signature.
func CheckImage(payload []byte) error {
	if len(payload) == 0 {
		return ErrEmptyFile
	}
	if !filetype.IsImage(payload) {
		return ErrNotImage
	}
	return nil
}

// ContentType sniffs the MIME type of payload.
func ContentType(payload []byte) string {
	kind, err := filetype.Match(payload)
	if err != nil || kind == filetype.Unknown {
		return "application/octet-stream"
	}
	return kind.MIME.Value
}

// Attach stores payload for field and passes the reference to save. When
// save fails the stored object is removed again and save's error returned.
func Attach(ctx context.Context, st Storage, field Field, filename string, payload []byte, save func(ref string) error) (string, error) {
	if st == nil {
		return "", ErrUnavailable
	}
	if len(payload) == 0 {
		return "", ErrEmptyFile
	}
	if field.ImageOnly {
		if err := CheckImage(payload); err != nil {
			return "", err
		}
	}

	ref, err := st.Put(ctx, field.Key(filename), payload)
	if err != nil {
		return "", fmt.Errorf("store %s upload: %w", field.Prefix, err)
	}
	if err := save(ref); err != nil {
		_ = st.Delete(ctx, ref)
		return "", err
	}
	return ref, nil
}

// New builds the storage backend selected in cfg.
func New(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Driver {
	case config.StorageLocal:
		return NewLocal(cfg.Local.Dir, cfg.Local.BaseURL)
	case config.StorageS3:
		return NewS3(cfg.S3), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

func cleanRef(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrInvalidRef
	}
	cleaned := path.Clean("/" + ref)[1:]
	if cleaned == "" || cleaned != strings.TrimPrefix(ref, "/") {
		return "", ErrInvalidRef
	}
	return cleaned, nil
}
