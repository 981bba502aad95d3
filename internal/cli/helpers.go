package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/re-cinq/fsd/internal/config"
	"github.com/re-cinq/fsd/internal/fileutil"
	"github.com/re-cinq/fsd/internal/layer"
	"github.com/re-cinq/fsd/internal/scaffold"
	"github.com/re-cinq/fsd/internal/tsconfig"
)

// tsconfigFile marks a workspace root when no config file is found.
const tsconfigFile = "tsconfig.json"

// workspace is a resolved workspace root with its merged config. FS is rooted
// at FSRoot, the volume holding Root, so layers aliased outside the workspace
// stay reachable.
type workspace struct {
	Root   string
	FSRoot string
	FS     billy.Filesystem
	Config *config.Config
}

// openWorkspace resolves the workspace root and loads its config. An empty
// Root means no workspace was found; the caller decides how to report it.
func openWorkspace() (*workspace, error) {
	root, err := findWorkspace(workspaceDir)
	if err != nil {
		return nil, err
	}

	cfgPath := configPath
	if cfgPath != "" {
		if _, err := os.Stat(cfgPath); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else if root != "" {
		cfgPath = filepath.Join(root, config.FileName)
	}
	cfg, err := config.Resolve(cfgPath)
	if err != nil {
		return nil, err
	}
	if errs := config.Validate(cfg); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "Error: %s\n", e)
		}
		return nil, fmt.Errorf("%d validation error(s)", len(errs))
	}

	ws := &workspace{Root: root, Config: cfg}
	if root != "" {
		ws.FSRoot = fileutil.VolumeRoot(root)
		ws.FS = osfs.New(ws.FSRoot)
	}
	return ws, nil
}

// aliases loads the path aliases from the workspace tsconfig.
func (ws *workspace) aliases() (tsconfig.AliasMap, error) {
	return scaffold.LoadAliases(ws.FS, ws.FSRoot, ws.Root, ws.Config)
}

// dirExists reports whether dir is a directory on fsys rooted at fsRoot.
func dirExists(fsys billy.Filesystem, fsRoot, dir string) bool {
	rel, err := fileutil.Within(fsRoot, dir)
	if err != nil {
		return false
	}
	info, err := fsys.Stat(rel)
	return err == nil && info.IsDir()
}

// layers resolves every alias that names a layer.
func (ws *workspace) layers() ([]layer.Layer, error) {
	if ws.Root == "" {
		return nil, errors.New("no workspace folder found")
	}
	aliases, err := ws.aliases()
	if err != nil {
		return nil, err
	}
	return layer.All(aliases, ws.Root), nil
}

// findWorkspace returns the explicit workspace directory, or walks up from
// the working directory looking for a config file or tsconfig.json.
func findWorkspace(explicit string) (string, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", fmt.Errorf("resolving workspace: %w", err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", fmt.Errorf("workspace %s: %w", abs, err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("workspace %s is not a directory", abs)
		}
		return abs, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	found := findFileUp(cwd, []string{config.FileName, tsconfigFile})
	if found == "" {
		return "", nil
	}
	return filepath.Dir(found), nil
}

// walkUpUntil walks up the directory tree from dir, calling check on each directory.
// Returns the first directory where check returns true, or "" if none found.
func walkUpUntil(dir string, check func(string) bool) string {
	for {
		if check(dir) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// findFileUp walks up from dir looking for any of the given filenames.
// Returns the full path to the first file found, or "" if none found.
func findFileUp(dir string, filenames []string) string {
	foundDir := walkUpUntil(dir, func(d string) bool {
		for _, name := range filenames {
			if _, err := os.Stat(filepath.Join(d, name)); err == nil {
				return true
			}
		}
		return false
	})
	if foundDir == "" {
		return ""
	}
	for _, name := range filenames {
		p := filepath.Join(foundDir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
