/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	testcases := []struct {
		in       string
		expected string
	}{
		{"https://example.com", "https-example-com"},
		{"https://www.Example.com/fonts/", "https-www-example-com-fonts"},
		{"http://café.example/crème brûlée?x=1", "http-cafe-example-creme-brulee-x-1"},
		{"--already--slugged--", "already-slugged"},
		{"", ""},
	}

	for _, tcase := range testcases {
		assert.Equal(t, tcase.expected, Make(tcase.in), tcase.in)
	}
}

func TestDirName(t *testing.T) {
	assert.Equal(t, "font-thief-https-fonts-example-org", DirName("https://fonts.example.org"))
}
