package core

import "fmt"

// UnrecognizedSourceError indicates a clone source that is neither a
// recognized URL nor a catalog name. The message enumerates the
// accepted forms so callers can surface them directly.
type UnrecognizedSourceError struct {
	Source string
}

func (e *UnrecognizedSourceError) Error() string {
	return fmt.Sprintf("repository source %q is not recognized: use an https:// or git@ URL, a file:// path, or a name from your catalog", e.Source)
}

// CloneError wraps a failed clone with the attempted URL.
type CloneError struct {
	URL string
	Err error
}

func (e *CloneError) Error() string {
	return fmt.Sprintf("unable to clone %q: %v", e.URL, e.Err)
}

func (e *CloneError) Unwrap() error {
	return e.Err
}

// CustomizerError wraps a customizer launch or exit failure with the
// resolved script path.
type CustomizerError struct {
	Path string
	Err  error
}

func (e *CustomizerError) Error() string {
	return fmt.Sprintf("there was a problem running customizer file %q: %v", e.Path, e.Err)
}

func (e *CustomizerError) Unwrap() error {
	return e.Err
}
