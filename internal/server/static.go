package server

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/bitlance/web/web"
	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
)

// newStaticFS returns the static asset filesystem: dir on disk when set,
// otherwise the assets embedded in the binary.
func newStaticFS(dir string) (afero.Fs, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("static dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("static dir %q is not a directory", dir)
		}
		return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir)), nil
	}
	sub, err := fs.Sub(web.FS, "static")
	if err != nil {
		return nil, fmt.Errorf("embedded static assets: %w", err)
	}
	return afero.FromIOFS{FS: sub}, nil
}

// registerStatic serves fsys under /static.
func registerStatic(e *echo.Echo, fsys afero.Fs) {
	e.StaticFS("/static", afero.NewIOFS(fsys))
}
