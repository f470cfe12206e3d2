package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/inovacc/gitextra/internal/application"
	"github.com/inovacc/gitextra/internal/git"
	"github.com/inovacc/gitextra/internal/giturl"
	"github.com/inovacc/gitextra/internal/ui"
)

// Cloner performs the clone network transfer. *git.Client implements it.
type Cloner interface {
	Clone(ctx context.Context, cloneURL, targetPath string) error
}

// CreateOptions carries the user input for one provisioning run.
type CreateOptions struct {
	Source     string // URL, file:// path, or catalog name
	Directory  string // target directory; derived from the clone URL when empty
	Customizer string // command-line customizer override, may be empty
}

// Creator sequences catalog lookup, clone, and customization.
type Creator struct {
	Log         ui.Logger
	Cloner      Cloner
	CatalogPath string
	Stdout      io.Writer // customizer output streams
	Stderr      io.Writer
}

// NewCreator returns a Creator wired to the real git binary, the
// user's catalog, and the process streams.
func NewCreator(log ui.Logger) (*Creator, error) {
	path, err := application.CatalogPath()
	if err != nil {
		return nil, err
	}

	return &Creator{
		Log:         log,
		Cloner:      git.NewClient(),
		CatalogPath: path,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	}, nil
}

// Create runs the provisioning pipeline: resolve the source, clone it,
// then run the customizer if its file exists in the new directory.
// Resolution and clone failures abort; a missing customizer file only
// warns and the run still succeeds.
func (c *Creator) Create(ctx context.Context, opts CreateOptions) error {
	cat, err := LoadCatalog(c.Log, c.CatalogPath)
	if err != nil {
		return err
	}

	source, err := ResolveSource(opts.Source, cat)
	if err != nil {
		return err
	}

	customizer := resolveCustomizer(opts.Customizer, source.Customizer)

	dir := opts.Directory
	if dir == "" {
		dir = giturl.RepoName(source.CloneURL)
		if dir == "" {
			return fmt.Errorf("unable to derive a directory name from %q, pass one explicitly", source.CloneURL)
		}
	}

	if err := c.Cloner.Clone(ctx, source.CloneURL, dir); err != nil {
		return &CloneError{URL: source.CloneURL, Err: err}
	}

	return c.runCustomizer(ctx, dir, customizer)
}

// resolveCustomizer applies the filename precedence chain: explicit
// command-line override, then the catalog-declared name carried by the
// resolved source, then the system default.
func resolveCustomizer(override, candidate string) string {
	if override != "" {
		return override
	}

	if candidate != "" {
		return candidate
	}

	return DefaultCustomizerName
}

func (c *Creator) runCustomizer(ctx context.Context, dir, customizer string) error {
	path := filepath.Join(dir, customizer)

	if _, err := os.Stat(path); err != nil {
		c.Log.Warningf("customization file '%s' not found", path)

		return nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return &CustomizerError{Path: path, Err: err}
	}

	c.Log.Outputf("Running the customization script")

	// The script runs inside the new project with its base name as the
	// only argument.
	cmd := exec.CommandContext(ctx, absPath, filepath.Base(dir))
	cmd.Dir = dir
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	if err := cmd.Run(); err != nil {
		return &CustomizerError{Path: path, Err: err}
	}

	return nil
}
