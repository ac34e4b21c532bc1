package cli

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconpack/pkg/domain/model"
)

// packDir validates that path is an existing directory
func packDir(path string) (*model.PackDir, error) {
	if path == "" {
		return nil, goerr.New("PACK_DIR is required")
	}

	st, err := os.Stat(path)
	if err != nil {
		return nil, goerr.Wrap(err, "pack directory not found", goerr.V("path", path))
	}
	if !st.IsDir() {
		return nil, goerr.New("pack path is not a directory", goerr.V("path", path))
	}

	return model.NewPackDir(path), nil
}
