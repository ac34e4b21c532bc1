package naming_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/iconpack/pkg/utils/naming"
)

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "PascalCase with extension", input: "AlarmClockCheck.svg", want: "alarm-clock-check.svg"},
		{name: "snake_case", input: "account_balance", want: "account-balance"},
		{name: "leading digit", input: "3d_rotation", want: "3d-rotation"},
		{name: "camelCase", input: "arrowDown", want: "arrow-down"},
		{name: "already kebab-case", input: "arrow-down.svg", want: "arrow-down.svg"},
		{name: "hyphen runs collapse", input: "a__b--c", want: "a-b-c"},
		{name: "edge hyphens trimmed", input: "_private_", want: "private"},
		{name: "uppercase run", input: "HTTPServer", want: "httpserver"},
		{name: "extension keeps case", input: "MyIcon.SVG", want: "my-icon.SVG"},
		{name: "only last dot is extension", input: "icon.v2_Final.svg", want: "icon.v2-final.svg"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, naming.ToKebabCase(tt.input)).Equal(tt.want)
		})
	}
}

func TestToKebabCase_Idempotent(t *testing.T) {
	inputs := []string{
		"AlarmClockCheck.svg",
		"account_balance",
		"3d_rotation",
		"-_Mixed__CaseName_-.Svg",
		"aBcDeF",
		".hidden",
		"trailing.",
		"ÄrgerlichIcon",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once := naming.ToKebabCase(input)
			gt.Value(t, naming.ToKebabCase(once)).Equal(once)
		})
	}
}

func TestStripExtension(t *testing.T) {
	gt.Value(t, naming.StripExtension("house.svg")).Equal("house")
	gt.Value(t, naming.StripExtension("archive.tar.gz")).Equal("archive.tar")
	gt.Value(t, naming.StripExtension("house")).Equal("house")
}

func TestAddExtension(t *testing.T) {
	gt.Value(t, naming.AddExtension("house", ".svg")).Equal("house.svg")
	gt.Value(t, naming.AddExtension("house.svg", ".svg")).Equal("house.svg")

	t.Run("idempotent", func(t *testing.T) {
		for _, name := range []string{"house", "house.svg", "", ".svg"} {
			once := naming.AddExtension(name, ".svg")
			gt.Value(t, naming.AddExtension(once, ".svg")).Equal(once)
		}
	})
}
