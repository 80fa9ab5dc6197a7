// Package ui binds the theme manager to a Fyne application.
//
// This file defines the compact Fyne theme whose colours come from the
// resolved palette.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	apptheme "github.com/yantradaan/yantra-daan/internal/theme"
)

// YantraTheme wraps the default Fyne theme with a forced light/dark variant,
// palette colours and compact sizing.
type YantraTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	palette apptheme.Palette
}

// NewYantraTheme creates a light YantraTheme.
func NewYantraTheme() *YantraTheme {
	return NewYantraThemeFor(apptheme.ResolvedLight)
}

// NewYantraThemeFor creates a YantraTheme for a resolved theme.
func NewYantraThemeFor(r apptheme.Resolved) *YantraTheme {
	return &YantraTheme{
		base:    theme.DefaultTheme(),
		variant: variantFor(r),
		palette: apptheme.PaletteFor(r),
	}
}

// Variant reports the forced variant.
func (t *YantraTheme) Variant() fyne.ThemeVariant {
	return t.variant
}

// Color maps the semantic palette onto Fyne colour names. Anything the
// palette has no slot for falls through to the base theme with the forced variant.
func (t *YantraTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return apptheme.MustParseHex(t.palette.Background)
	case theme.ColorNameButton, theme.ColorNameInputBackground, theme.ColorNameMenuBackground,
		theme.ColorNameOverlayBackground, theme.ColorNameHeaderBackground:
		return apptheme.MustParseHex(t.palette.Surface)
	case theme.ColorNameForeground:
		return apptheme.MustParseHex(t.palette.Foreground)
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return apptheme.MustParseHex(t.palette.Muted)
	case theme.ColorNamePrimary, theme.ColorNameHyperlink:
		return apptheme.MustParseHex(t.palette.Primary)
	case theme.ColorNameWarning:
		return apptheme.MustParseHex(t.palette.Accent)
	case theme.ColorNameSeparator, theme.ColorNameInputBorder:
		return apptheme.MustParseHex(t.palette.Border)
	case theme.ColorNameError:
		return apptheme.MustParseHex(t.palette.Danger)
	case theme.ColorNameSuccess:
		return apptheme.MustParseHex(t.palette.Success)
	default:
		return t.base.Color(name, t.variant)
	}
}

// Font delegates to the base theme.
func (t *YantraTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *YantraTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides.
func (t *YantraTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}

func variantFor(r apptheme.Resolved) fyne.ThemeVariant {
	if r == apptheme.ResolvedDark {
		return theme.VariantDark
	}
	return theme.VariantLight
}
