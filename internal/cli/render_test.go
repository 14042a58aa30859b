package cli

import (
	"slices"
	"testing"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"svg"}},
		{"dot", []string{"dot"}},
		{"svg,png", []string{"svg", "png"}},
	}

	for _, tt := range tests {
		if got := parseFormats(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := validateFormats([]string{"dot", "svg", "pdf", "png"}); err != nil {
		t.Errorf("valid formats should pass: %v", err)
	}

	if err := validateFormats([]string{"svg", "gif"}); err == nil {
		t.Error("invalid format should fail")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output string
		format string
		multi  bool
		want   string
	}{
		{"derive from input", "team.toml", "", "svg", false, "team.svg"},
		{"explicit single output", "team.toml", "diagram.svg", "svg", false, "diagram.svg"},
		{"multi derives per format", "team.toml", "", "png", true, "team.png"},
		{"multi with base output", "team.toml", "out/diagram.svg", "png", true, "out/diagram.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.input, tt.output, tt.format, tt.multi); got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
