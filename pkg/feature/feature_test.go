package feature_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linoteia/portfolio/pkg/feature"
)

func TestMemoryProvider(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	p, err := feature.NewMemoryProvider(
		feature.Flag{Name: "b", Enabled: false},
		feature.Flag{Name: "a", Enabled: true},
	)
	require.NoError(t, err)

	on, err := p.IsEnabled(ctx, "a")
	require.NoError(t, err)
	assert.True(t, on)

	_, err = p.IsEnabled(ctx, "missing")
	assert.True(t, feature.IsNotFound(err))

	flags, err := p.ListFlags(ctx)
	require.NoError(t, err)
	require.Len(t, flags, 2)
	assert.Equal(t, "a", flags[0].Name)

	require.NoError(t, p.Set(feature.Flag{Name: "b", Enabled: true}))
	on, err = p.IsEnabled(ctx, "b")
	require.NoError(t, err)
	assert.True(t, on)

	assert.ErrorIs(t, p.Set(feature.Flag{}), feature.ErrInvalidFlag)
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	doc := `
flags:
  - name: hero.portrait.enabled
    enabled: false
  - name: hero.cta.enabled
    description: LinkedIn and Telegram links
    enabled: true
`
	p, err := feature.LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)

	on, err := p.IsEnabled(context.Background(), "hero.portrait.enabled")
	require.NoError(t, err)
	assert.False(t, on)

	on, err = p.IsEnabled(context.Background(), "hero.cta.enabled")
	require.NoError(t, err)
	assert.True(t, on)
}

func TestLoadYAML_Errors(t *testing.T) {
	t.Parallel()

	_, err := feature.LoadYAML(strings.NewReader("flags:\n  - nme: typo\n"))
	assert.ErrorIs(t, err, feature.ErrInvalidFile)

	_, err = feature.LoadYAMLFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, feature.ErrInvalidFile)

	p, err := feature.LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	flags, _ := p.ListFlags(context.Background())
	assert.Empty(t, flags)
}

func TestLoadYAMLFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "flags.yaml")
	require.NoError(t, os.WriteFile(path, []byte("flags:\n  - name: x\n    enabled: true\n"), 0o600))

	p, err := feature.LoadYAMLFile(path)
	require.NoError(t, err)
	on, err := p.IsEnabled(context.Background(), "x")
	require.NoError(t, err)
	assert.True(t, on)
}
