package fbtext

import "github.com/gogpu/fbtext/text"

// Option configures a Writer during creation.
//
// Example:
//
//	w, err := fbtext.NewWriter(fb,
//	    fbtext.WithForeground(fbtext.Green),
//	    fbtext.WithFontSize(20),
//	)
type Option func(*config)

// config holds the Writer configuration.
type config struct {
	fg, bg        Color
	fontSize      float64
	letterSpacing int
	lineSpacing   int
	borderPadding int
	lineHeight    float64
	tabWidth      int
	shaper        text.Shaper
}

// Defaults.
const (
	DefaultFontSize      = 16.0
	DefaultLetterSpacing = 1
	DefaultLineSpacing   = 2
	DefaultBorderPadding = 1
)

// defaultConfig returns the default writer configuration.
func defaultConfig() config {
	return config{
		fg:            White,
		bg:            Black,
		fontSize:      DefaultFontSize,
		letterSpacing: DefaultLetterSpacing,
		lineSpacing:   DefaultLineSpacing,
		borderPadding: DefaultBorderPadding,
		lineHeight:    text.DefaultLineHeight,
		tabWidth:      text.DefaultTabWidth,
		shaper:        text.BuiltinShaper{},
	}
}

// WithForeground sets the initial text color. The default is White.
func WithForeground(c Color) Option {
	return func(o *config) {
		o.fg = c
	}
}

// WithBackground sets the initial background color. The default is Black.
func WithBackground(c Color) Option {
	return func(o *config) {
		o.bg = c
	}
}

// WithFontSize sets the point size of the embedded font, in pixels per em.
// Non-positive values are ignored.
func WithFontSize(size float64) Option {
	return func(o *config) {
		if size > 0 {
			o.fontSize = size
		}
	}
}

// WithLetterSpacing sets the extra pixels added after each character written
// with WriteChar. Negative values are ignored.
func WithLetterSpacing(px int) Option {
	return func(o *config) {
		if px >= 0 {
			o.letterSpacing = px
		}
	}
}

// WithLineSpacing sets the extra pixels Newline adds to the font size.
// Negative values are ignored.
func WithLineSpacing(px int) Option {
	return func(o *config) {
		if px >= 0 {
			o.lineSpacing = px
		}
	}
}

// WithBorderPadding sets the margin kept free on every edge.
// Negative values are ignored.
func WithBorderPadding(px int) Option {
	return func(o *config) {
		if px >= 0 {
			o.borderPadding = px
		}
	}
}

// WithLineHeight sets the line advance used by WriteString when a run wraps,
// as a multiple of the font size. Non-positive values are ignored.
func WithLineHeight(mult float64) Option {
	return func(o *config) {
		if mult > 0 {
			o.lineHeight = mult
		}
	}
}

// WithTabWidth sets how many spaces a tab expands to. Non-positive values
// are ignored.
func WithTabWidth(n int) Option {
	return func(o *config) {
		if n > 0 {
			o.tabWidth = n
		}
	}
}

// WithShaper selects how advances are computed. The default is
// text.BuiltinShaper; text.NewGoTextShaper adds GPOS kerning.
func WithShaper(s text.Shaper) Option {
	return func(o *config) {
		if s != nil {
			o.shaper = s
		}
	}
}
