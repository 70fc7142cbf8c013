/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package woff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSniff(t *testing.T) {
	testcases := []struct {
		data     []byte
		expected Format
	}{
		{[]byte("wOFF\x00\x01\x00\x00"), FormatWOFF},
		{[]byte("wOF2OTTO"), FormatWOFF2},
		{[]byte{0, 1, 0, 0, 0, 12}, FormatTrueType},
		{[]byte("true"), FormatTrueType},
		{[]byte("OTTO\x00\x0b"), FormatOpenType},
		{[]byte("<html>"), FormatUnknown},
		{[]byte("wOF"), FormatUnknown},
		{nil, FormatUnknown},
	}

	for _, tcase := range testcases {
		assert.Equal(t, tcase.expected, Sniff(tcase.data), "%q", tcase.data)
	}
}

func TestFlavorFormat(t *testing.T) {
	assert.Equal(t, FormatOpenType, FlavorFormat(FlavorCFF))
	assert.Equal(t, FormatTrueType, FlavorFormat(FlavorTrueType))
	assert.Equal(t, FormatTrueType, FlavorFormat(FlavorApple))
	assert.Equal(t, "otf", FormatOpenType.String())
	assert.Equal(t, "ttf", FormatTrueType.String())
}
