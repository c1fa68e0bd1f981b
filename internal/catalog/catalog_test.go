package catalog_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magazine-catalog/internal/catalog"
	"magazine-catalog/internal/config"
	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/infra/adapter/persistence/memory"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/tests/fixtures"
)

func TestNew_Defaults(t *testing.T) {
	c := catalog.New()

	require.NotNil(t, c.Articles)
	require.NotNil(t, c.Authors)
	require.NotNil(t, c.Magazines)
	assert.Empty(t, c.Articles.All())
	assert.Empty(t, c.Magazines.List())
	assert.Nil(t, c.Magazines.TopPublisher())
}

func TestNew_SharedArticleRegistry(t *testing.T) {
	c := catalog.New()
	carry, err := c.Authors.Create("Carry Bradshaw")
	require.NoError(t, err)
	vogue, err := c.Magazines.Create("Vogue", "Fashion")
	require.NoError(t, err)

	art, err := c.Authors.AddArticle(carry, vogue, "How to wear a tutu with style")
	require.NoError(t, err)

	assert.Equal(t, []*entity.Article{art}, c.Magazines.Articles(vogue))
	assert.Equal(t, []*entity.Author{carry}, c.Magazines.Contributors(vogue))
	assert.Same(t, vogue, c.Magazines.TopPublisher())
}

func TestNew_CatalogsAreIsolated(t *testing.T) {
	first, err := fixtures.Default(catalog.New())
	require.NoError(t, err)
	second := catalog.New()

	assert.Len(t, first.Catalog.Articles.All(), 5)
	assert.Empty(t, second.Articles.All())
	assert.Empty(t, second.Magazines.List())
	assert.Nil(t, second.Magazines.TopPublisher())
	assert.Empty(t, second.Authors.Articles(first.Authors["Carry Bradshaw"]))
}

func TestNew_WithRepositories(t *testing.T) {
	articles := memory.NewArticleRepo()
	magazines := memory.NewMagazineRepo()
	c := catalog.New(catalog.WithArticleRepository(articles), catalog.WithMagazineRepository(magazines))

	_, err := fixtures.Default(c)
	require.NoError(t, err)

	assert.Equal(t, 5, articles.Count())
	assert.Equal(t, 3, magazines.Count())
}

func TestNew_WithLoggerAndMetrics(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(config.LoggingConfig{Level: "debug", Format: "json"}, &buf)
	m := metrics.NewCatalogMetrics(prometheus.NewRegistry())
	c := catalog.New(catalog.WithLogger(logger), catalog.WithMetrics(m))

	seeded, err := fixtures.Default(c)
	require.NoError(t, err)
	_, err = c.Magazines.Rename(seeded.Magazines["Vogue"], "V")
	require.NoError(t, err)

	assert.Equal(t, 5.0, testutil.ToFloat64(m.ArticlesRegistered))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.MagazinesRegistered))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AssignmentsIgnored.WithLabelValues("magazine", "name")))
	assert.Contains(t, buf.String(), `"component":"magazine"`)
	assert.Contains(t, buf.String(), "magazine assignment ignored")
}

// The bundled fixture: Carry has three Vogue articles, Nathaniel one in AD and one in Vogue.
func TestFixtureScenario(t *testing.T) {
	seeded, err := fixtures.Default(catalog.New())
	require.NoError(t, err)
	c := seeded.Catalog
	carry := seeded.Authors["Carry Bradshaw"]
	nathaniel := seeded.Authors["Nathaniel Hawthorne"]
	vogue := seeded.Magazines["Vogue"]
	ad := seeded.Magazines["AD"]
	gq := seeded.Magazines["GQ"]

	t.Run("author queries", func(t *testing.T) {
		assert.Len(t, c.Authors.Articles(carry), 3)
		assert.Equal(t, []*entity.Magazine{vogue}, c.Authors.Magazines(carry))
		assert.Equal(t, []string{"Fashion"}, c.Authors.TopicAreas(carry))
		assert.Equal(t, []*entity.Magazine{ad, vogue}, c.Authors.Magazines(nathaniel))
		assert.Equal(t, []string{"Architecture", "Fashion"}, c.Authors.TopicAreas(nathaniel))
	})

	t.Run("magazine queries", func(t *testing.T) {
		assert.Equal(t, []*entity.Author{carry, nathaniel}, c.Magazines.Contributors(vogue))
		assert.Equal(t, []string{
			"How to wear a tutu with style",
			"Street style in Manhattan",
			"Dating life in NYC",
			"Carrara marble trends",
		}, c.Magazines.ArticleTitles(vogue))
		assert.Equal(t, []*entity.Author{carry}, c.Magazines.ContributingAuthors(vogue))
		assert.Nil(t, c.Magazines.ContributingAuthors(ad))
		assert.Nil(t, c.Magazines.ArticleTitles(gq))
		assert.Empty(t, c.Magazines.Contributors(gq))
	})

	t.Run("top publisher", func(t *testing.T) {
		assert.Same(t, vogue, c.Magazines.TopPublisher())
	})
}

func TestCatalog_NewAuthor(t *testing.T) {
	c := catalog.New()

	carry, err := c.NewAuthor("Carry Bradshaw")
	require.NoError(t, err)
	assert.Equal(t, "Carry Bradshaw", carry.Name())
	assert.Empty(t, c.Authors.Articles(carry))

	none, err := c.NewAuthor("")
	assert.Nil(t, none)
	assert.ErrorIs(t, err, entity.ErrValidationFailed)
}

func TestNew_WithLoggingConfig(t *testing.T) {
	var buf bytes.Buffer
	c := catalog.New(catalog.WithLoggingConfig(config.LoggingConfig{Level: "debug", Format: "text"}, &buf))

	_, err := c.Magazines.Create("Vogue", "Fashion")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "msg=\"magazine registered\"")
	assert.Contains(t, buf.String(), "component=magazine")
}

func TestNew_WithLoggingConfig_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	c := catalog.New(catalog.WithLoggingConfig(config.LoggingConfig{Level: "info", Format: "json"}, &buf))

	_, err := c.Magazines.Create("Vogue", "Fashion")
	require.NoError(t, err)

	assert.Empty(t, buf.String())
}

func TestNewFromEnv(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantDebug bool
	}{
		{name: "debug level", level: "debug", wantDebug: true},
		{name: "default level", level: "", wantDebug: false},
		{name: "unsupported level falls back", level: "trace", wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.level)
			t.Setenv("LOG_FORMAT", "")
			t.Setenv("LOG_ADD_SOURCE", "")

			c := catalog.NewFromEnv()

			assert.Equal(t, tt.wantDebug, c.Magazines.Logger.Enabled(t.Context(), slog.LevelDebug))
			assert.True(t, c.Articles.Logger.Enabled(t.Context(), slog.LevelInfo))
		})
	}
}

func TestNewFromEnv_LaterOptionsWin(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	var buf bytes.Buffer

	c := catalog.NewFromEnv(catalog.WithLogger(logging.New(config.LoggingConfig{Level: "debug", Format: "json"}, &buf)))
	_, err := c.Magazines.Create("Vogue", "Fashion")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "magazine registered")
}

func TestNewFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: error\n  format: text\n"), 0o600))

	c, err := catalog.NewFromConfigFile(path)

	require.NoError(t, err)
	assert.False(t, c.Authors.Logger.Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, c.Authors.Logger.Enabled(t.Context(), slog.LevelError))

	_, err = fixtures.Default(c)
	require.NoError(t, err)
	assert.Same(t, c.Magazines.List()[0], c.Magazines.TopPublisher())
}

func TestNewFromConfigFile_Errors(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("logging:\n  format: xml\n"), 0o600))

	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.yaml")},
		{name: "unsupported format", path: invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := catalog.NewFromConfigFile(tt.path)

			assert.Nil(t, c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "load catalog config")
		})
	}
}
