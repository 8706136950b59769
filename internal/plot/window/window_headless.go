//go:build headless

// Package window shows a rendered plot in a desktop window.
package window

import "image"

func Show(image.Image, string) error {
	return ErrHeadless
}
