//go:build !linux

package main

import (
	"errors"

	"github.com/gogpu/fbtext"
)

type mapping struct{}

func mapDevice(string, fbtext.PixelFormat) (*mapping, error) {
	return nil, errors.New("framebuffer devices are only supported on linux")
}

func (*mapping) Framebuffer() fbtext.Framebuffer { return fbtext.Framebuffer{} }

func (*mapping) Close() error { return nil }
