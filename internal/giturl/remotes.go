package giturl

import "regexp"

// remoteLinePattern matches one line of `git remote -vv` output.
// Lines that do not match (blank lines, formats from future git
// versions) are skipped rather than treated as errors.
var remoteLinePattern = regexp.MustCompile(`(?m)^(?P<name>[a-zA-Z0-9\-]+)\s+(?P<url>.*)\s+\((?P<direction>fetch|push)\)$`)

// Direction distinguishes the two endpoints a remote entry describes.
type Direction string

const (
	DirectionFetch Direction = "fetch"
	DirectionPush  Direction = "push"
)

// Remote is a single record from a remote listing.
type Remote struct {
	Name      string
	URL       string
	Direction Direction
}

// ParseRemotes splits raw remote-listing text into records.
func ParseRemotes(listing string) []Remote {
	var remotes []Remote

	for _, m := range remoteLinePattern.FindAllStringSubmatch(listing, -1) {
		remotes = append(remotes, Remote{
			Name:      m[remoteLinePattern.SubexpIndex("name")],
			URL:       m[remoteLinePattern.SubexpIndex("url")],
			Direction: Direction(m[remoteLinePattern.SubexpIndex("direction")]),
		})
	}

	return remotes
}

// ResolveBrowseURL finds the browsable URL for the named remote in a
// remote listing. Only fetch-direction records are considered; browsing
// uses the fetch endpoint by convention. A candidate that fails to
// normalize does not end the scan, because a listing may hold several
// entries under one name in different protocol forms. Returns the
// first successfully normalized URL, or ok=false when no candidate
// under that name normalizes.
func ResolveBrowseURL(listing, remoteName string) (string, bool) {
	for _, remote := range ParseRemotes(listing) {
		if remote.Direction != DirectionFetch || remote.Name != remoteName {
			continue
		}

		p, err := Parse(remote.URL)
		if err != nil {
			continue
		}

		return p.BrowseURL(), true
	}

	return "", false
}
