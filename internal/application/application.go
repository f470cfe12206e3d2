package application

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	// AppName is the application name used for identification
	AppName = "gitextra"

	// Version is the application version reported by --version
	Version = "0.6.0"

	// catalogFileName is the repository catalog file inside the config directory
	catalogFileName = "repos.toml"
)

var (
	once        sync.Once
	catalogPath string
	errPath     error
)

// CatalogPath returns the path of the repository catalog file.
// The catalog always lives at ~/.config/git_extra/repos.toml, on every
// platform, so existing catalogs keep working regardless of OS config
// directory conventions.
func CatalogPath() (string, error) {
	once.Do(lazyLoad)

	if errPath != nil {
		return "", errPath
	}

	return catalogPath, nil
}

func lazyLoad() {
	home, err := os.UserHomeDir()
	if err != nil {
		errPath = fmt.Errorf("failed to get home directory: %w", err)

		return
	}

	catalogPath = filepath.Join(home, ".config", "git_extra", catalogFileName)
}
