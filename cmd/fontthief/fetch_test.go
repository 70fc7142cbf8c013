/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/unidoc/fontthief/internal/slug"
)

const fetchTestPage = `<!DOCTYPE html>
<html><head>
<link rel="preload" as="font" href="/fonts/Go-Regular.woff" crossorigin>
<link rel="preload" as="font" href="/fonts/Gone.woff" crossorigin>
</head><body>Fonts</body></html>`

func TestFetchConvertsAfterFailedDownload(t *testing.T) {
	font := wrapWOFF(goregular.TTF)
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(fetchTestPage))
	})
	mux.HandleFunc("/fonts/Go-Regular.woff", func(w http.ResponseWriter, r *http.Request) {
		w.Write(font)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cmd := &fetchCmd{
		URL:       srv.URL + "/",
		Dir:       t.TempDir(),
		Timeout:   10 * time.Second,
		UserAgent: "fontthief-test",
		Convert:   true,
		DecodeFlags: DecodeFlags{
			Format: "auto",
			Order:  "bytewise",
			Jobs:   2,
		},
	}
	err := cmd.Run(&runContext{ctx: context.Background()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Gone.woff")

	dir := filepath.Join(cmd.Dir, slug.DirName(cmd.URL))
	_, err = os.Stat(filepath.Join(dir, "Go-Regular.ttf"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "Go-Regular.woff"))
	assert.True(t, os.IsNotExist(err))
}
