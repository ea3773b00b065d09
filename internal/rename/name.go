package rename

import (
	"strings"
	"unicode"
)

// SnakeCase converts a plugin name to its lowercase underscore form.
// "my-plugin" -> "my_plugin"
func SnakeCase(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "-", "_"))
}

// PascalCase converts a plugin name to its concatenated capitalized form.
// "my-plugin" -> "MyPlugin"
func PascalCase(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})

	var b strings.Builder
	for _, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}
