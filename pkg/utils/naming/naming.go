// Package naming converts upstream icon names to the kebab-case file names
// used inside icons.zip.
package naming

import (
	"regexp"
	"strings"
)

var (
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	hyphenRun     = regexp.MustCompile(`-+`)
)

// splitExtension splits at the last dot. The extension keeps its dot.
func splitExtension(name string) (base, ext string) {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return name, ""
	}
	return name[:idx], name[idx:]
}

// ToKebabCase converts snake_case, camelCase and PascalCase names to
// kebab-case, e.g. "AlarmClockCheck.svg" -> "alarm-clock-check.svg". A
// trailing extension is reattached unchanged.
func ToKebabCase(name string) string {
	base, ext := splitExtension(name)

	result := strings.ReplaceAll(base, "_", "-")
	result = camelBoundary.ReplaceAllString(result, "$1-$2")
	result = hyphenRun.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	result = strings.ToLower(result)

	return result + ext
}

// StripExtension removes the part after the last dot, if any
func StripExtension(name string) string {
	base, _ := splitExtension(name)
	return base
}

// AddExtension appends ext unless name already ends with it
func AddExtension(name, ext string) string {
	if strings.HasSuffix(name, ext) {
		return name
	}
	return name + ext
}
