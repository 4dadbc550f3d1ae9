package rules

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestExpandLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Rule
	}{
		{
			name: "single version",
			line: "lodash@4.17.20",
			want: []Rule{{Package: "lodash", Version: "4.17.20"}},
		},
		{
			name: "multiple versions",
			line: "debug@4.3.1,4.3.2,4.4.2",
			want: []Rule{
				{Package: "debug", Version: "4.3.1"},
				{Package: "debug", Version: "4.3.2"},
				{Package: "debug", Version: "4.4.2"},
			},
		},
		{
			name: "scoped package splits on last at-sign",
			line: "@ctrl/tinycolor@4.1.1,4.1.2",
			want: []Rule{
				{Package: "@ctrl/tinycolor", Version: "4.1.1"},
				{Package: "@ctrl/tinycolor", Version: "4.1.2"},
			},
		},
		{
			name: "whitespace around line and tokens",
			line: "  chalk@ 5.6.1 , 5.6.2  ",
			want: []Rule{
				{Package: "chalk", Version: "5.6.1"},
				{Package: "chalk", Version: "5.6.2"},
			},
		},
		{
			name: "blank version tokens dropped",
			line: "ansi-styles@6.2.2,,  ,",
			want: []Rule{{Package: "ansi-styles", Version: "6.2.2"}},
		},
		{
			name: "blank line",
			line: "   ",
			want: nil,
		},
		{
			name: "no separator",
			line: "lodash",
			want: nil,
		},
		{
			name: "empty package name",
			line: "@4.17.20",
			want: nil,
		},
		{
			name: "trailing separator with no versions",
			line: "lodash@",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandLine(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExpandLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("expands all lines in order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.txt")
		content := `debug@4.3.1,4.3.2

@ctrl/tinycolor@4.1.1
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		got, err := Load(path)
		if err != nil {
			t.Fatalf("Load() unexpected error: %v", err)
		}

		want := []Rule{
			{Package: "debug", Version: "4.3.1"},
			{Package: "debug", Version: "4.3.2"},
			{Package: "@ctrl/tinycolor", Version: "4.1.1"},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Load() = %v, want %v", got, want)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
			t.Error("Load() expected error for missing file")
		}
	})

	t.Run("file with only blank lines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.txt")
		if err := os.WriteFile(path, []byte("\n   \n\n"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Load() expected error for empty rule set")
		}
	})
}

func TestRuleString(t *testing.T) {
	r := Rule{Package: "@ctrl/tinycolor", Version: "4.1.1"}
	if got := r.String(); got != "@ctrl/tinycolor@4.1.1" {
		t.Errorf("String() = %q, want %q", got, "@ctrl/tinycolor@4.1.1")
	}
}
