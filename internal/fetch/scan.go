/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fetch

import (
	"bytes"
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/unidoc/unidoc/common"
)

// cssURLRe matches url(...) references in style sheets.
var cssURLRe = regexp.MustCompile(`url\(\s*['"]?([^'")]+?)['"]?\s*\)`)

// scanner collects font URLs in discovery order.
type scanner struct {
	opts  Options
	seen  map[string]bool
	fonts []Font
}

// Scan loads the page at `pageURL` and returns the fonts it references through font
// preload links, inline style blocks and linked style sheets.
func Scan(ctx context.Context, pageURL string, opts Options) ([]Font, error) {
	base, err := ParsePageURL(pageURL)
	if err != nil {
		return nil, err
	}

	page, err := get(ctx, base.String(), opts)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, err
	}

	s := &scanner{opts: opts, seen: map[string]bool{}}
	var sheets []*url.URL
	doc.Find("link[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		ref, err := base.Parse(strings.TrimSpace(href))
		if err != nil {
			common.Log.Debug("Skipping link %q: %v", href, err)
			return
		}

		rel := strings.Fields(strings.ToLower(sel.AttrOr("rel", "")))
		switch {
		case hasWord(rel, "stylesheet"):
			sheets = append(sheets, ref)
		case hasWord(rel, "preload") && strings.EqualFold(sel.AttrOr("as", ""), "font"):
			s.add(ref)
		default:
			if isFontURL(ref) {
				s.add(ref)
			}
		}
	})

	doc.Find("style").Each(func(_ int, sel *goquery.Selection) {
		s.scanCSS(base, sel.Text())
	})

	for _, sheet := range sheets {
		css, err := get(ctx, sheet.String(), opts)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			common.Log.Debug("Skipping stylesheet %s: %v", sheet, err)
			continue
		}
		s.scanCSS(sheet, string(css))
	}

	return s.fonts, nil
}

// scanCSS adds the fonts referenced by `css`, resolving relative URLs against `base`.
func (s *scanner) scanCSS(base *url.URL, css string) {
	for _, m := range cssURLRe.FindAllStringSubmatch(css, -1) {
		ref, err := base.Parse(strings.TrimSpace(m[1]))
		if err != nil {
			continue
		}
		if isFontURL(ref) {
			s.add(ref)
		}
	}
}

func (s *scanner) add(u *url.URL) {
	u.Fragment = ""
	key := u.String()
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.fonts = append(s.fonts, Font{URL: key, Name: fontName(u)})
}

func hasWord(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}
	return false
}
