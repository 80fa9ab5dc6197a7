package theme

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreference(t *testing.T) {
	tests := []struct {
		in      string
		want    Preference
		wantErr bool
	}{
		{in: "light", want: PreferenceLight},
		{in: " Dark ", want: PreferenceDark},
		{in: "SYSTEM", want: PreferenceSystem},
		{in: "", wantErr: true},
		{in: "auto", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePreference(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownPreference)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvedHelpers(t *testing.T) {
	assert.Equal(t, ResolvedDark, ResolvedLight.Opposite())
	assert.Equal(t, ResolvedLight, ResolvedDark.Opposite())
	assert.Equal(t, PreferenceDark, ResolvedDark.Preference())
	assert.Equal(t, PreferenceLight, ResolvedLight.Preference())
}

func TestPaletteCoverage(t *testing.T) {
	for _, r := range []Resolved{ResolvedLight, ResolvedDark} {
		for _, s := range PaletteFor(r).Swatches() {
			_, err := ParseHex(s.Hex)
			assert.NoError(t, err, "%s %s", r, s.Name)
		}
	}
	assert.Equal(t, PaletteFor(ResolvedLight), PaletteFor(Resolved("sepia")))
	assert.NotEqual(t, PaletteFor(ResolvedLight).Background, PaletteFor(ResolvedDark).Background)
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#1F6FEB")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x1F, G: 0x6F, B: 0xEB, A: 0xFF}, c)

	_, err = ParseHex("#FFF")
	assert.Error(t, err)
	_, err = ParseHex("zzzzzz")
	assert.Error(t, err)
}
