package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/asciify/internal/storage"
	"github.com/san-kum/asciify/internal/theme"
)

// newTestCommand resets the package flag state and points it at a fresh
// state directory and optional config body.
func newTestCommand(t *testing.T, cfgBody string) (*cobra.Command, *storage.Store) {
	t.Helper()
	dir := t.TempDir()

	cmd := &cobra.Command{Use: "asciify"}
	addConversionFlags(cmd)

	configFile, stateDir, logLevel = "", filepath.Join(dir, "state"), "error"
	t.Cleanup(func() { configFile, stateDir, logLevel, themeName = "", "", "", "" })

	if cfgBody != "" {
		configFile = filepath.Join(dir, "asciify.yaml")
		if err := os.WriteFile(configFile, []byte(cfgBody), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return cmd, storage.New(stateDir)
}

func TestSetupThemePrecedence(t *testing.T) {
	tests := []struct {
		name      string
		config    string
		saved     string
		flag      string
		want      theme.Theme
		wantSaved string
	}{
		{"default", "", "", "", theme.Dark, ""},
		{"config", "theme: light\n", "", "", theme.Light, ""},
		{"saved over config", "theme: light\n", "dark", "", theme.Dark, "dark"},
		{"flag over saved", "", "dark", "light", theme.Light, "dark"},
		{"flag over config", "theme: dark\n", "", "light", theme.Light, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, st := newTestCommand(t, tt.config)
			if tt.saved != "" {
				if err := st.Set(theme.Key, tt.saved); err != nil {
					t.Fatal(err)
				}
			}
			if tt.flag != "" {
				if err := cmd.Flags().Set("theme", tt.flag); err != nil {
					t.Fatal(err)
				}
			}

			e, err := setup(cmd)
			if err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			if e.themes.Current() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, e.themes.Current())
			}

			v, _, err := st.Get(theme.Key)
			if err != nil {
				t.Fatal(err)
			}
			if v != tt.wantSaved {
				t.Errorf("expected saved theme %q, got %q", tt.wantSaved, v)
			}
		})
	}
}

func TestSetupToggleIsPersisted(t *testing.T) {
	tests := []struct {
		name   string
		config string
		flag   string
	}{
		{"config theme", "theme: light\n", ""},
		{"flag theme", "", "light"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, st := newTestCommand(t, tt.config)
			if tt.flag != "" {
				if err := cmd.Flags().Set("theme", tt.flag); err != nil {
					t.Fatal(err)
				}
			}

			e, err := setup(cmd)
			if err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			next, err := e.themes.Toggle()
			if err != nil {
				t.Fatalf("toggle failed: %v", err)
			}
			if next != theme.Dark {
				t.Errorf("expected dark after toggle, got %s", next)
			}

			v, ok, err := st.Get(theme.Key)
			if err != nil || !ok {
				t.Fatalf("expected toggled theme to be saved, got ok=%v err=%v", ok, err)
			}
			if v != "dark" {
				t.Errorf("expected saved dark, got %q", v)
			}
		})
	}
}

func writePNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestPrintArt(t *testing.T) {
	cmd, _ := newTestCommand(t, "width: 20\n")
	e, err := setup(cmd)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	black := filepath.Join(dir, "black.png")
	writePNG(t, black, 2, 2, color.Black)

	var out bytes.Buffer
	if err := printArt(e, &out, []string{black}); err != nil {
		t.Fatalf("print failed: %v", err)
	}
	want := ""
	for i := 0; i < 10; i++ {
		if i > 0 {
			want += "\n"
		}
		want += "@@@@@@@@@@@@@@@@@@@@"
	}
	if out.String() != want+"\n" {
		t.Errorf("expected 10 rows of 20 '@', got %q", out.String())
	}
}

func TestPrintArtWithoutRows(t *testing.T) {
	cmd, _ := newTestCommand(t, "width: 20\n")
	e, err := setup(cmd)
	if err != nil {
		t.Fatal(err)
	}

	// 100x1 at width 20 gives floor(20 * 0.01 * 0.5) = 0 rows
	strip := filepath.Join(t.TempDir(), "strip.png")
	writePNG(t, strip, 100, 1, color.White)

	var out bytes.Buffer
	if err := printArt(e, &out, []string{strip}); err != nil {
		t.Fatalf("expected empty art to print, got %v", err)
	}
	if out.String() != "\n" {
		t.Errorf("expected an empty line, got %q", out.String())
	}
}
