// Package assets selects and serves the static asset bundle.
package assets

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/spf13/afero"

	"github.com/devgenius/devgenius/internal/config"
	"github.com/devgenius/devgenius/web"
)

// New returns the static asset filesystem selected by configuration: the
// embedded bundle for production builds, the on-disk directory during
// development so edits show up without a rebuild.
func New(cfg config.Provider) (afero.Fs, error) {
	switch cfg.GetAssetSource() {
	case "embed":
		sub, err := fs.Sub(web.FS, "static")
		if err != nil {
			return nil, fmt.Errorf("embedded static assets: %w", err)
		}
		return afero.FromIOFS{FS: sub}, nil
	case "disk":
		return afero.NewBasePathFs(afero.NewOsFs(), cfg.GetStaticDir()), nil
	default:
		return nil, fmt.Errorf("unknown asset source %q", cfg.GetAssetSource())
	}
}

// Handler serves the asset filesystem over HTTP. The caller strips any
// route prefix before handing requests to it.
func Handler(fsys afero.Fs) http.Handler {
	return http.FileServer(afero.NewHttpFs(fsys))
}
