package system

// colorSchemeIsDark decodes the org.freedesktop.appearance color-scheme
// value: 0 no preference, 1 prefer dark, 2 prefer light. Unknown values
// count as no preference.
func colorSchemeIsDark(value any) bool {
	switch v := value.(type) {
	case uint32:
		return v == 1
	case uint8:
		return v == 1
	case int32:
		return v == 1
	case int:
		return v == 1
	}
	return false
}
