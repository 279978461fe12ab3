package app

import (
	"context"
	"testing"

	"github.com/folio-space/core/internal/config"
	"github.com/folio-space/core/internal/modules/identity"
	"github.com/folio-space/core/internal/modules/portfolio"
	"github.com/folio-space/core/internal/modules/profile"
	"github.com/folio-space/core/internal/modules/skill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(t *testing.T) *config.AppConfig {
	t.Helper()
	return &config.AppConfig{
		Env:      "test",
		LogLevel: "info",
		Database: config.DatabaseConfig{
			Driver:      config.DriverSQLite,
			Name:        ":memory:",
			LogLevel:    "silent",
			AutoMigrate: true,
		},
		Storage: config.StorageConfig{
			Driver: config.StorageLocal,
			Local:  config.LocalStorageConfig{Dir: t.TempDir(), BaseURL: "/media"},
		},
		Cache: config.CacheConfig{TTLSeconds: 60, CleanupSeconds: 120},
	}
}

func TestNew_WiresServices(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, zap.NewNop(), testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Shutdown() })

	u, err := a.Identities.Create(ctx, &identity.CreateUserDTO{Username: "ada", FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)
	s, err := a.Skills.Create(ctx, &skill.CreateSkillDTO{Name: "Go"})
	require.NoError(t, err)
	p, err := a.Profiles.Create(ctx, &profile.CreateProfileDTO{UserID: u.ID, SkillIDs: []string{s.ID}})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", p.String())

	_, err = a.Portfolios.Create(ctx, &portfolio.CreatePortfolioDTO{Name: "Folio", Body: "# Title"})
	require.NoError(t, err)
	d, err := a.Portfolios.Detail(ctx, "folio")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Contains(t, d.BodyHTML, "<h1>Title</h1>")

	require.NoError(t, a.Identities.Delete(ctx, u.ID))
	list, err := a.Profiles.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNew_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := New(ctx, nil, nil)
	assert.Error(t, err)

	cfg := testConfig(t)
	cfg.Database.Driver = "oracle"
	_, err = New(ctx, nil, cfg)
	assert.ErrorContains(t, err, "unsupported database driver")

	cfg = testConfig(t)
	cfg.Storage.Driver = "ftp"
	_, err = New(ctx, nil, cfg)
	assert.ErrorContains(t, err, "unsupported storage driver")

	cfg = testConfig(t)
	cfg.Redis.URL = "not-a-redis-url"
	_, err = New(ctx, nil, cfg)
	assert.ErrorContains(t, err, "redis")
}
