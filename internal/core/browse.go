package core

import (
	"context"
	"fmt"
	"os"

	ghbrowser "github.com/cli/go-gh/v2/pkg/browser"
	"github.com/inovacc/gitextra/internal/git"
	"github.com/inovacc/gitextra/internal/giturl"
	"github.com/inovacc/gitextra/internal/ui"
)

// DefaultRemoteName is used when the caller does not name a remote.
const DefaultRemoteName = "origin"

// RemoteLister produces the raw remote listing. *git.Client implements it.
type RemoteLister interface {
	Remotes(ctx context.Context) (string, error)
}

// URLOpener opens a URL in the user's browser.
type URLOpener interface {
	Browse(url string) error
}

// Browser resolves a remote to its web page and opens it.
type Browser struct {
	Log    ui.Logger
	Git    RemoteLister
	Opener URLOpener
}

// NewBrowser returns a Browser wired to the real git binary and the
// system browser launcher.
func NewBrowser(log ui.Logger) *Browser {
	opener := ghbrowser.New("", os.Stdout, os.Stderr)

	return &Browser{
		Log:    log,
		Git:    git.NewClient(),
		Opener: opener,
	}
}

// Browse resolves remoteName (defaulting to origin) against the
// repository's remote listing and opens the browsable URL. Finding no
// match is a soft outcome: a warning, not an error.
func (b *Browser) Browse(ctx context.Context, remoteName string) error {
	if remoteName == "" {
		remoteName = DefaultRemoteName
	}

	listing, err := b.Git.Remotes(ctx)
	if err != nil {
		if git.IsNotRepository(err) {
			return fmt.Errorf("the current directory is not a git repository")
		}

		return fmt.Errorf("unable to list remotes: %w", err)
	}

	url, ok := giturl.ResolveBrowseURL(listing, remoteName)
	if !ok {
		b.Log.Warningf("no browsable URL found for remote '%s'", remoteName)

		return nil
	}

	b.Log.Outputf("Opening URL '%s'", url)

	if err := b.Opener.Browse(url); err != nil {
		return fmt.Errorf("unable to open browser for %s: %w", url, err)
	}

	return nil
}
