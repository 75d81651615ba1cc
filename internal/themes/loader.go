package themes

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/memory"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/slidepreview/internal/domain/style"
	slideerrors "github.com/alexisbeaulieu97/slidepreview/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadDir decodes every *.yaml and *.yml file under root as a theme. Fields a
// file omits are taken from the default theme; the name defaults to the
// file's base name.
func LoadDir(fs billy.Filesystem, root string) ([]style.Theme, error) {
	var files []string
	err := util.Walk(fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && p != root {
				return filepath.SkipDir
			}
			return nil
		}
		switch strings.ToLower(path.Ext(p)) {
		case ".yaml", ".yml":
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk themes: %w", err)
	}
	sort.Strings(files)

	out := make([]style.Theme, 0, len(files))
	for _, p := range files {
		theme, err := decodeFile(fs, p)
		if err != nil {
			return nil, err
		}
		out = append(out, theme)
	}
	return out, nil
}

func decodeFile(fs billy.Filesystem, p string) (style.Theme, error) {
	f, err := fs.Open(p)
	if err != nil {
		return style.Theme{}, slideerrors.NewParseError(p, 0, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return style.Theme{}, slideerrors.NewParseError(p, 0, err)
	}

	return Decode(data, p)
}

// Decode parses one theme document on top of the default theme.
func Decode(data []byte, source string) (style.Theme, error) {
	theme := style.Theme{Config: style.Default()}
	theme.Config.FooterText = ""

	if err := yaml.Unmarshal(data, &theme); err != nil {
		return style.Theme{}, slideerrors.NewParseError(source, extractLine(err), err)
	}
	if theme.Name == "" {
		base := path.Base(source)
		theme.Name = strings.ToLower(strings.TrimSuffix(base, path.Ext(base)))
	}
	if theme.Config.Fonts.SizeMultiplier == 0 {
		theme.Config.Fonts.SizeMultiplier = 1
	}
	if err := theme.Validate(); err != nil {
		return style.Theme{}, fmt.Errorf("theme %s: %w", source, err)
	}
	return theme, nil
}

// LoadGit clones a theme pack into memory and decodes it. Nothing touches disk.
func LoadGit(ctx context.Context, url, ref string) ([]style.Theme, error) {
	opts := &git.CloneOptions{URL: url, Depth: 1}
	if ref != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(ref)
		opts.SingleBranch = true
	}

	fs := memfs.New()
	if _, err := git.CloneContext(ctx, memory.NewStorage(), fs, opts); err != nil {
		return nil, slideerrors.NewSourceError(url, fmt.Errorf("clone theme repository: %w", err))
	}
	return LoadDir(fs, "/")
}

// AddAll stores every theme in c, stopping at the first invalid one.
func (c *Catalog) AddAll(themes []style.Theme) error {
	for _, t := range themes {
		if err := c.Add(t); err != nil {
			return err
		}
	}
	return nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
