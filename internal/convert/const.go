/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package convert converts WOFF font files on disk to TrueType or OpenType files.
package convert

import "errors"

var (
	// ErrUnsupportedFormat is returned for inputs that are not WOFF (version 1) fonts.
	ErrUnsupportedFormat = errors.New("unsupported font format")

	errInvalidFormatOption = errors.New("invalid output format")
)

// Output format options.
const (
	FormatAuto = "auto"
	FormatTTF  = "ttf"
	FormatOTF  = "otf"
)
