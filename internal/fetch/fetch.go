/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package fetch finds the fonts a web page uses and downloads them.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

var (
	// ErrInvalidURL is returned for page URLs that are not absolute http(s) URLs.
	ErrInvalidURL = errors.New("invalid url")

	errStatus       = errors.New("unexpected http status")
	errBodyTooLarge = errors.New("response body too large")
)

// maxBodySize bounds pages, stylesheets and fonts read into memory.
var maxBodySize int64 = 64 << 20

var fontExtensions = map[string]bool{
	".woff":  true,
	".woff2": true,
	".ttf":   true,
	".otf":   true,
}

// Options configure fetching.
type Options struct {
	Client    *http.Client
	UserAgent string

	// Jobs bounds concurrent downloads. Values below 1 mean 1.
	Jobs int
}

// DefaultOptions returns the default fetch options.
func DefaultOptions() Options {
	return Options{
		Client:    &http.Client{Timeout: 30 * time.Second},
		UserAgent: "fontthief",
		Jobs:      4,
	}
}

// Font is a font referenced by a page.
type Font struct {
	URL  string
	Name string // file name taken from the URL path.
}

// ParsePageURL checks that `raw` is an absolute http or https URL.
func ParsePageURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return u, nil
}

// isFontURL reports whether `u` names a font file by its extension.
func isFontURL(u *url.URL) bool {
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return fontExtensions[strings.ToLower(path.Ext(u.Path))]
}

func fontName(u *url.URL) string {
	return path.Base(u.Path)
}

// get fetches `u` and returns its body.
func get(ctx context.Context, u string, opts Options) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	if opts.UserAgent != "" {
		req.Header.Set("User-Agent", opts.UserAgent)
	}

	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: %s", errStatus, u, resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > maxBodySize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", errBodyTooLarge, u, maxBodySize)
	}
	return body, nil
}
