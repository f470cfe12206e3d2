// Package giturl parses git remote URLs and remote listings.
//
// Two remote URL syntaxes are recognized: the scp-like SSH form
// (git@host:user/project.git) and the HTTPS form, optionally carrying
// a credential prefix that is discarded. Everything here is pure
// string matching; no network access.
package giturl

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrNotRecognized indicates a URL that is neither SSH nor HTTPS form.
	// Callers scanning multiple candidates treat it as a soft outcome.
	ErrNotRecognized = errors.New("remote URL not recognized")

	sshPattern   = regexp.MustCompile(`^git@(?P<domain>[a-z0-9\-.]+):(?P<user>[a-zA-Z0-9\-_]+)/(?P<project>[a-zA-Z0-9\-_]+)\.git$`)
	httpsPattern = regexp.MustCompile(`^https://(?:[a-zA-Z0-9\-_]+@)?(?P<domain>[a-z0-9\-.]+)/(?P<user>[a-zA-Z0-9\-_]+)/(?P<project>[a-zA-Z0-9\-_]+)\.git$`)
)

// fileScheme prefixes clone sources that point at a local repository.
const fileScheme = "file://"

// ParsedRemoteURL is the canonical decomposition of a remote URL.
// Project never carries a trailing ".git"; Domain is host syntax only.
type ParsedRemoteURL struct {
	Domain  string
	User    string
	Project string
}

// BrowseURL renders the canonical browsable address for the remote,
// without credentials or the .git suffix.
func (p ParsedRemoteURL) BrowseURL() string {
	return fmt.Sprintf("https://%s/%s/%s", p.Domain, p.User, p.Project)
}

// Parse classifies a remote URL, trying the SSH form first and the
// HTTPS form second. Returns ErrNotRecognized when neither matches.
func Parse(raw string) (ParsedRemoteURL, error) {
	for _, re := range []*regexp.Regexp{sshPattern, httpsPattern} {
		m := re.FindStringSubmatch(raw)
		if m == nil {
			continue
		}

		return ParsedRemoteURL{
			Domain:  m[re.SubexpIndex("domain")],
			User:    m[re.SubexpIndex("user")],
			Project: m[re.SubexpIndex("project")],
		}, nil
	}

	return ParsedRemoteURL{}, fmt.Errorf("%w: %s", ErrNotRecognized, raw)
}

// IsRemoteURL reports whether s matches the SSH or HTTPS remote form.
func IsRemoteURL(s string) bool {
	return sshPattern.MatchString(s) || httpsPattern.MatchString(s)
}

// IsFileURL reports whether s carries the file:// scheme prefix.
func IsFileURL(s string) bool {
	return strings.HasPrefix(s, fileScheme)
}

// StripFileScheme removes the file:// prefix, leaving a local path
// suitable for handing to git clone.
func StripFileScheme(s string) string {
	return strings.TrimPrefix(s, fileScheme)
}

// RepoName extracts the repository name from a clone URL or path,
// without the .git suffix. Used to derive a default target directory.
func RepoName(cloneURL string) string {
	trimmed := strings.TrimRight(cloneURL, "/")

	if p, err := Parse(trimmed); err == nil {
		return p.Project
	}

	if i := strings.LastIndexAny(trimmed, "/:"); i >= 0 {
		trimmed = trimmed[i+1:]
	}

	return strings.TrimSuffix(trimmed, ".git")
}
