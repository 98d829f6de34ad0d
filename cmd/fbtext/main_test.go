package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/fbtext"
	"github.com/gogpu/fbtext/harness"
)

func TestSelfTests(t *testing.T) {
	var buf bytes.Buffer
	if code := harness.Run(&buf); code != harness.ExitSuccess {
		t.Fatalf("self-tests exit %#x:\n%s", code, buf.String())
	}
	if n := len(harness.Tests()); n != 6 {
		t.Errorf("registered %d self-tests, want 6", n)
	}
	if !strings.Contains(buf.String(), "zero_writer_panics...\t[ok]") {
		t.Errorf("should-panic self-test not reported as passing:\n%s", buf.String())
	}
}

func TestParsePair(t *testing.T) {
	tests := []struct {
		in      string
		a, b    int
		wantErr bool
	}{
		{"1920,1080", 1920, 1080, false},
		{" 800 , 600 ", 800, 600, false},
		{"800x600", 0, 0, true},
		{"a,1", 0, 0, true},
		{"1,", 0, 0, true},
	}
	for _, tt := range tests {
		a, b, err := parsePair(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePair(%q) error = %v", tt.in, err)
			continue
		}
		if a != tt.a || b != tt.b {
			t.Errorf("parsePair(%q) = %d, %d", tt.in, a, b)
		}
	}
}

func TestDeviceGeometry(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "fb0")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, val := range map[string]string{
		"virtual_size":   "1024,768\n",
		"bits_per_pixel": "32\n",
		"stride":         "4352\n",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(val), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	orig := sysfsRoot
	sysfsRoot = root
	t.Cleanup(func() { sysfsRoot = orig })

	g, err := deviceGeometry("/dev/fb0", fbtext.FormatBGR)
	if err != nil {
		t.Fatalf("deviceGeometry() error = %v", err)
	}
	want := fbtext.Geometry{Width: 1024, Height: 768, Stride: 1088, BytesPerPixel: 4, Format: fbtext.FormatBGR}
	if g != want {
		t.Errorf("deviceGeometry() = %+v, want %+v", g, want)
	}

	if _, err := deviceGeometry("/dev/fb1", fbtext.FormatRGB); err == nil {
		t.Error("deviceGeometry() of a missing device succeeded")
	}
}

func testConfig() config {
	return config{
		width:  120,
		height: 60,
		bpp:    4,
		format: "rgb",
		fg:     "white",
		bg:     "#000000",
		size:   fbtext.DefaultFontSize,
		text:   "hello fbtext, wrapped across lines",
		wrap:   true,
	}
}

// TestRun_Errors checks that bad settings come back as errors from run,
// before the console is created.
func TestRun_Errors(t *testing.T) {
	orig := sysfsRoot
	sysfsRoot = t.TempDir()
	t.Cleanup(func() { sysfsRoot = orig })

	tests := []struct {
		name  string
		apply func(*config)
	}{
		{"foreground", func(c *config) { c.fg = "nope" }},
		{"background", func(c *config) { c.bg = "#12" }},
		{"format", func(c *config) { c.format = "yuv" }},
		{"geometry", func(c *config) { c.width = 0 }},
		{"device", func(c *config) { c.device = "/dev/fb7" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.apply(&cfg)
			if err := run(cfg); err == nil {
				t.Error("run() error = nil")
			}
		})
	}
}

func TestRun_SavesPNG(t *testing.T) {
	cfg := testConfig()
	cfg.output = filepath.Join(t.TempDir(), "screen.png")

	if err := run(cfg); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	f, err := os.Open(cfg.output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != cfg.width || b.Dy() != cfg.height {
		t.Errorf("image is %dx%d, want %dx%d", b.Dx(), b.Dy(), cfg.width, cfg.height)
	}
}
