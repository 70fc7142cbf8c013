/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package slug turns page URLs into directory names.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// dirPrefix is prepended to the slug of the page fonts are fetched from.
const dirPrefix = "font-thief-"

// Make returns a lower case slug of `s`: diacritics are removed and every run of
// characters other than letters and digits becomes a single hyphen.
func Make(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	sep := false
	for _, r := range strings.ToLower(folded) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			sep = true
			continue
		}
		if sep && b.Len() > 0 {
			b.WriteByte('-')
		}
		sep = false
		b.WriteRune(r)
	}
	return b.String()
}

// DirName returns the name of the directory fonts fetched from `pageURL` are saved in.
func DirName(pageURL string) string {
	return dirPrefix + Make(pageURL)
}
