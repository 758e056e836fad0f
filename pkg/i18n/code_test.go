package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linoteia/portfolio/pkg/i18n"
)

func TestParseCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    i18n.Code
		wantErr bool
	}{
		{in: "en", want: "en"},
		{in: "RU", want: "ru"},
		{in: "es-MX", want: "es"},
		{in: " en ", want: "en"},
		{in: "", wantErr: true},
		{in: "!!", wantErr: true},
		{in: "und", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := i18n.ParseCode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, i18n.ErrInvalidCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSet(t *testing.T) {
	t.Parallel()

	set, err := i18n.NewSet("en", "en", "es", "ru", "ES")
	require.NoError(t, err)

	assert.Equal(t, i18n.Code("en"), set.Default())
	assert.Equal(t, []i18n.Code{"en", "es", "ru"}, set.Codes())
	assert.True(t, set.Contains("ru"))
	assert.False(t, set.Contains("de"))

	code, ok := set.Lookup("es-ES")
	assert.True(t, ok)
	assert.Equal(t, i18n.Code("es"), code)

	_, ok = set.Lookup("de")
	assert.False(t, ok)
}

func TestNewSet_Errors(t *testing.T) {
	t.Parallel()

	_, err := i18n.NewSet("en")
	assert.ErrorIs(t, err, i18n.ErrEmptySet)

	_, err = i18n.NewSet("de", "en", "es")
	assert.ErrorIs(t, err, i18n.ErrDefaultNotInSet)

	_, err = i18n.NewSet("en", "en", "??")
	assert.ErrorIs(t, err, i18n.ErrInvalidCode)

	assert.Panics(t, func() { i18n.MustNewSet("de", "en") })
}
