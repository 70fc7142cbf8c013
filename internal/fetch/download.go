/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/errgroup"

	"github.com/unidoc/unidoc/common"
)

// downloader saves fonts into a directory, skipping content it has already saved.
type downloader struct {
	dir  string
	opts Options

	mu      sync.Mutex
	digests map[[blake2b.Size256]byte]string
	names   map[string]bool
}

// Download fetches `fonts` into `dir`, creating it if needed, and returns the paths of
// the saved files in the order of `fonts`. Fonts whose content was already saved under
// another URL are skipped. A failed download does not stop the others; the first error
// is returned together with the paths that were saved.
func Download(ctx context.Context, fonts []Font, dir string, opts Options) ([]string, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, err
	}

	d := &downloader{
		dir:     dir,
		opts:    opts,
		digests: map[[blake2b.Size256]byte]string{},
		names:   map[string]bool{},
	}

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}
	saved := make([]string, len(fonts))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, f := range fonts {
		i, f := i, f
		g.Go(func() error {
			p, err := d.download(ctx, f)
			if err != nil {
				common.Log.Error("Downloading %s: %v", f.URL, err)
				return err
			}
			saved[i] = p
			return nil
		})
	}
	err = g.Wait()

	var paths []string
	for _, p := range saved {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths, err
}

// download saves font `f` and returns its path, or "" if the content is a duplicate.
func (d *downloader) download(ctx context.Context, f Font) (string, error) {
	data, err := get(ctx, f.URL, d.opts)
	if err != nil {
		return "", err
	}

	digest := blake2b.Sum256(data)
	d.mu.Lock()
	if prev, dup := d.digests[digest]; dup {
		d.mu.Unlock()
		common.Log.Debug("%s has the same content as %s", f.URL, prev)
		return "", nil
	}
	d.digests[digest] = f.URL
	name := d.uniqueName(f.Name)
	d.mu.Unlock()

	p := filepath.Join(d.dir, name)
	err = os.WriteFile(p, data, 0644)
	if err != nil {
		return "", err
	}
	common.Log.Info("✔ %s", name)
	return p, nil
}

// uniqueName returns `name` or, if taken, a numbered variant of it. Must be called with
// d.mu held.
func (d *downloader) uniqueName(name string) string {
	name = filepath.Base(filepath.Clean("/" + name))
	if name == "/" || name == "." {
		name = "font"
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	candidate := name
	for i := 1; d.names[candidate]; i++ {
		candidate = fmt.Sprintf("%s-%d%s", stem, i, ext)
	}
	d.names[candidate] = true
	return candidate
}
