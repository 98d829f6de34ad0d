package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/fbtext"
)

// sysfsRoot is where the kernel describes framebuffer devices.
var sysfsRoot = "/sys/class/graphics"

// deviceGeometry reads the geometry of a framebuffer device such as
// /dev/fb0 from sysfs. The kernel does not expose the channel order there,
// so format comes from the caller.
func deviceGeometry(device string, format fbtext.PixelFormat) (fbtext.Geometry, error) {
	dir := filepath.Join(sysfsRoot, filepath.Base(device))

	size, err := readAttr(dir, "virtual_size")
	if err != nil {
		return fbtext.Geometry{}, err
	}
	width, height, err := parsePair(size)
	if err != nil {
		return fbtext.Geometry{}, fmt.Errorf("virtual_size: %w", err)
	}

	bits, err := readIntAttr(dir, "bits_per_pixel")
	if err != nil {
		return fbtext.Geometry{}, err
	}
	strideBytes, err := readIntAttr(dir, "stride")
	if err != nil {
		return fbtext.Geometry{}, err
	}

	bpp := (bits + 7) / 8
	if bpp == 0 {
		return fbtext.Geometry{}, fmt.Errorf("%w: %d bits per pixel", fbtext.ErrInvalidGeometry, bits)
	}
	return fbtext.Geometry{
		Width:         width,
		Height:        height,
		Stride:        strideBytes / bpp,
		BytesPerPixel: bpp,
		Format:        format,
	}, nil
}

func readAttr(dir, name string) (string, error) {
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func readIntAttr(dir, name string) (int, error) {
	s, err := readAttr(dir, name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

// parsePair parses "1920,1080".
func parsePair(s string) (a, b int, err error) {
	first, second, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("malformed pair %q", s)
	}
	if a, err = strconv.Atoi(strings.TrimSpace(first)); err != nil {
		return 0, 0, err
	}
	if b, err = strconv.Atoi(strings.TrimSpace(second)); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
