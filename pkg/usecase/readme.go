package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconpack/pkg/domain/interfaces"
	"github.com/m-mizutani/iconpack/pkg/domain/model"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/readme.md.tmpl
var readmeTemplate string

type readmeUseCase struct {
	tmpl *template.Template
}

// NewReadme creates a new instance of ReadmeUseCase
func NewReadme() (interfaces.ReadmeUseCase, error) {
	tmpl, err := template.New("readme").Parse(readmeTemplate)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse readme template")
	}

	return &readmeUseCase{
		tmpl: tmpl,
	}, nil
}

// Generate renders README.md of one pack
func (uc *readmeUseCase) Generate(ctx context.Context, pack *model.PackDir) (string, error) {
	logger := ctxlog.From(ctx)

	cfg, err := loadPackConfig(pack)
	if err != nil {
		return "", err
	}

	pkgName, err := packageName(pack)
	if err != nil {
		return "", err
	}

	rc := model.NewReadmeContext(cfg, DisplayName(pack.Name()), pkgName)

	var buf bytes.Buffer
	if err := uc.tmpl.Execute(&buf, rc); err != nil {
		return "", goerr.Wrap(err, "failed to render readme", goerr.V("pack", pack.Name()))
	}

	path := pack.ReadmePath()
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", goerr.Wrap(err, "failed to write readme", goerr.V("path", path))
	}

	logger.Debug("Generated readme", "path", path, "package", pkgName)
	return path, nil
}

// GenerateAll renders README.md for every pack directory under packsDir that
// carries an upstream.toml, in name order. It stops at the first failure.
func (uc *readmeUseCase) GenerateAll(ctx context.Context, packsDir string) ([]string, error) {
	logger := ctxlog.From(ctx)

	entries, err := os.ReadDir(packsDir)
	if err != nil {
		return nil, goerr.Wrap(err, "packs directory not found", goerr.V("packs_dir", packsDir))
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		pack := model.NewPackDir(filepath.Join(packsDir, entry.Name()))
		if !pack.HasUpstream() {
			logger.Debug("Skipping directory without upstream.toml", "dir", entry.Name())
			continue
		}

		path, err := uc.Generate(ctx, pack)
		if err != nil {
			return paths, goerr.Wrap(err, "failed to generate readme", goerr.V("pack", entry.Name()))
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// DisplayName turns a pack directory name into a title, e.g.
// "material-community" into "Material Community"
func DisplayName(dirName string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(dirName, "-", " "))
}

type pyproject struct {
	Project struct {
		Name string `toml:"name"`
	} `toml:"project"`
}

// packageName is [project].name of pyproject.toml, or the directory name
// with underscores when the file or field is absent
func packageName(pack *model.PackDir) (string, error) {
	fallback := strings.ReplaceAll(pack.Name(), "-", "_")

	data, err := os.ReadFile(pack.PyprojectPath())
	if os.IsNotExist(err) {
		return fallback, nil
	} else if err != nil {
		return "", goerr.Wrap(err, "failed to read pyproject.toml", goerr.V("path", pack.PyprojectPath()))
	}

	var p pyproject
	if err := toml.Unmarshal(data, &p); err != nil {
		return "", goerr.Wrap(err, "failed to parse pyproject.toml", goerr.V("path", pack.PyprojectPath()))
	}
	if p.Project.Name == "" {
		return fallback, nil
	}
	return p.Project.Name, nil
}
