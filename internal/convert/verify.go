/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package convert

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
)

// Verify loads the sfnt font `data` with golang.org/x/image/font/sfnt and returns its
// glyph count.
func Verify(data []byte) (int, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return 0, fmt.Errorf("verify: %w", err)
	}
	return f.NumGlyphs(), nil
}
