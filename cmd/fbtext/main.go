// Command fbtext renders text into a Linux framebuffer device or, without
// one, into an in-memory buffer saved as PNG.
//
// Usage:
//
//	fbtext -device /dev/fb0 -text "hello"
//	fbtext -width 640 -height 480 -wrap -text "$(cat notes.txt)" -out notes.png
//	fbtext -selftest
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/fbtext"
	"github.com/gogpu/fbtext/harness"
)

// config holds the command-line settings.
type config struct {
	device   string
	width    int
	height   int
	stride   int
	bpp      int
	format   string
	fg, bg   string
	size     float64
	text     string
	wrap     bool
	output   string
	selftest bool
	verbose  bool
}

func parseFlags() config {
	var c config
	flag.StringVar(&c.device, "device", "", "framebuffer device to map, e.g. /dev/fb0")
	flag.IntVar(&c.width, "width", 800, "screen width in pixels (in-memory buffer)")
	flag.IntVar(&c.height, "height", 600, "screen height in pixels (in-memory buffer)")
	flag.IntVar(&c.stride, "stride", 0, "row stride in pixels, 0 means width")
	flag.IntVar(&c.bpp, "bpp", 4, "bytes per pixel")
	flag.StringVar(&c.format, "format", "rgb", "pixel format: rgb or bgr")
	flag.StringVar(&c.fg, "fg", "#ffffff", "text color, hex or SVG name")
	flag.StringVar(&c.bg, "bg", "#000000", "background color, hex or SVG name")
	flag.Float64Var(&c.size, "size", fbtext.DefaultFontSize, "font size in pixels")
	flag.StringVar(&c.text, "text", "Hello from fbtext!", "text to render")
	flag.BoolVar(&c.wrap, "wrap", false, "wrap at word boundaries")
	flag.StringVar(&c.output, "out", "", "save the screen as PNG")
	flag.BoolVar(&c.selftest, "selftest", false, "run the built-in self-tests and exit with their status")
	flag.BoolVar(&c.verbose, "v", false, "debug logging")
	flag.Parse()
	return c
}

func main() {
	cfg := parseFlags()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	fbtext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if cfg.selftest {
		os.Exit(int(harness.Run(os.Stdout)))
	}

	// run has released the mapping by the time either of these exits.
	defer fbtext.Recover()
	if err := run(cfg); err != nil {
		fbtext.Fatalf("fbtext: %v", err)
	}
}

// run renders cfg.text on the console and optionally saves it. Every
// failure is returned so deferred cleanup runs.
func run(cfg config) error {
	fg, err := fbtext.ParseColor(cfg.fg)
	if err != nil {
		return err
	}
	bg, err := fbtext.ParseColor(cfg.bg)
	if err != nil {
		return err
	}
	pf, err := fbtext.ParseFormat(cfg.format)
	if err != nil {
		return err
	}

	var fb fbtext.Framebuffer
	if cfg.device != "" {
		m, err := mapDevice(cfg.device, pf)
		if err != nil {
			return fmt.Errorf("map %s: %w", cfg.device, err)
		}
		defer m.Close()
		fb = m.Framebuffer()
	} else {
		stride := cfg.stride
		if stride == 0 {
			stride = cfg.width
		}
		fb, err = fbtext.NewFramebuffer(fbtext.Geometry{
			Width:         cfg.width,
			Height:        cfg.height,
			Stride:        stride,
			BytesPerPixel: cfg.bpp,
			Format:        pf,
		})
		if err != nil {
			return err
		}
	}

	if err := fbtext.Init(fb,
		fbtext.WithForeground(fg),
		fbtext.WithBackground(bg),
		fbtext.WithFontSize(cfg.size),
	); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}

	err = fbtext.Do(func(w *fbtext.Writer) error {
		if cfg.wrap {
			return w.WriteStringWrapped(cfg.text)
		}
		_, err := w.WriteString(cfg.text)
		return err
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if cfg.output != "" {
		if err := savePNG(cfg.output); err != nil {
			return err
		}
		log.Printf("Screen saved to %s", cfg.output)
	}
	return nil
}

// savePNG encodes a snapshot of the console.
func savePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = fbtext.Do(func(w *fbtext.Writer) error {
		return png.Encode(f, w.Snapshot())
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
