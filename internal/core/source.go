package core

import (
	"errors"
	"io/fs"

	"github.com/inovacc/gitextra/internal/catalog"
	"github.com/inovacc/gitextra/internal/giturl"
	"github.com/inovacc/gitextra/internal/ui"
)

// DefaultCustomizerName is the customizer filename assumed when
// neither the command line nor the catalog entry names one.
const DefaultCustomizerName = "customize.ts"

// ResolvedSource is the outcome of source resolution: what to clone
// and which customizer filename the source suggests. The command-line
// override is applied later, by the orchestrator.
type ResolvedSource struct {
	CloneURL   string
	Customizer string
}

// ResolveSource decides whether sourceText is a direct URL, a local
// file:// path, or a catalog name, in that order. Explicit URL syntax
// always wins, so a catalog entry can never shadow a literal URL the
// user typed.
func ResolveSource(sourceText string, cat *catalog.Catalog) (ResolvedSource, error) {
	switch {
	case giturl.IsRemoteURL(sourceText):
		return ResolvedSource{
			CloneURL:   sourceText,
			Customizer: DefaultCustomizerName,
		}, nil

	case giturl.IsFileURL(sourceText):
		return ResolvedSource{
			CloneURL:   giturl.StripFileScheme(sourceText),
			Customizer: DefaultCustomizerName,
		}, nil
	}

	if entry, ok := cat.Get(sourceText); ok {
		customizer := entry.Customizer
		if customizer == "" {
			customizer = DefaultCustomizerName
		}

		return ResolvedSource{
			CloneURL:   entry.Origin,
			Customizer: customizer,
		}, nil
	}

	return ResolvedSource{}, &UnrecognizedSourceError{Source: sourceText}
}

// LoadCatalog reads the catalog at path. A missing file degrades to an
// empty catalog with a warning naming the expected path; this is a
// deliberate soft-degradation rule, never upgraded to an error. A
// malformed file is fatal.
func LoadCatalog(log ui.Logger, path string) (*catalog.Catalog, error) {
	cat, err := catalog.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warningf("'%s' not found", path)

			return catalog.Empty(), nil
		}

		return nil, err
	}

	return cat, nil
}
