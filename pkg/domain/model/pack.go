package model

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

const (
	UpstreamFileName  = "upstream.toml"
	PyprojectFileName = "pyproject.toml"
	ReadmeFileName    = "README.md"
	IconsFileName     = "icons.zip"
	ManifestFileName  = "pack_manifest.json"

	cacheDirName    = "cache"
	srcDirName      = "src"
	outputDirPrefix = "justmyresource_"
)

// PackDir is the on-disk layout of one pack:
//
//	<root>/upstream.toml
//	<root>/pyproject.toml   (optional)
//	<root>/cache/<archive>
//	<root>/src/justmyresource_<name>/{icons.zip,pack_manifest.json}
//	<root>/README.md
type PackDir struct {
	Root string
}

// NewPackDir returns the PackDir rooted at root
func NewPackDir(root string) *PackDir {
	return &PackDir{Root: filepath.Clean(root)}
}

// Name is the pack name, taken from the directory name (e.g. "font-awesome")
func (x *PackDir) Name() string {
	abs, err := filepath.Abs(x.Root)
	if err != nil {
		return filepath.Base(x.Root)
	}
	return filepath.Base(abs)
}

func (x *PackDir) UpstreamPath() string { return filepath.Join(x.Root, UpstreamFileName) }
func (x *PackDir) PyprojectPath() string { return filepath.Join(x.Root, PyprojectFileName) }
func (x *PackDir) ReadmePath() string { return filepath.Join(x.Root, ReadmeFileName) }
func (x *PackDir) CacheDir() string { return filepath.Join(x.Root, cacheDirName) }
func (x *PackDir) SrcDir() string { return filepath.Join(x.Root, srcDirName) }

// HasUpstream reports whether the directory carries an upstream.toml
func (x *PackDir) HasUpstream() bool {
	st, err := os.Stat(x.UpstreamPath())
	return err == nil && !st.IsDir()
}

// OutputDir returns the first src/justmyresource_* directory in name order
func (x *PackDir) OutputDir() (string, error) {
	entries, err := os.ReadDir(x.SrcDir())
	if err != nil {
		return "", goerr.Wrap(err, "src directory not found", goerr.V("pack", x.Root))
	}

	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), outputDirPrefix) {
			return filepath.Join(x.SrcDir(), entry.Name()), nil
		}
	}

	return "", goerr.New("no justmyresource_* directory found", goerr.V("src", x.SrcDir()))
}
