package giturl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleListing = `origin	git@example.com:alice/proj.git (fetch)
origin	git@example.com:alice/proj.git (push)
upstream	https://example.org/team/proj.git (fetch)
upstream	https://example.org/team/proj.git (push)
`

func TestParseRemotes(t *testing.T) {
	remotes := ParseRemotes(sampleListing)
	require.Len(t, remotes, 4)

	require.Equal(t, "origin", remotes[0].Name)
	require.Equal(t, "git@example.com:alice/proj.git", remotes[0].URL)
	require.Equal(t, DirectionFetch, remotes[0].Direction)
	require.Equal(t, DirectionPush, remotes[1].Direction)
}

func TestParseRemotes_SkipsUnrecognizedLines(t *testing.T) {
	listing := "some future format line\n\norigin\thttps://example.com/a/b.git (fetch)\ntrailing junk\n"

	remotes := ParseRemotes(listing)
	require.Len(t, remotes, 1)
	require.Equal(t, "origin", remotes[0].Name)
}

func TestParseRemotes_Empty(t *testing.T) {
	require.Empty(t, ParseRemotes(""))
}

func TestResolveBrowseURL(t *testing.T) {
	tests := []struct {
		name    string
		listing string
		remote  string
		want    string
		wantOK  bool
	}{
		{
			name:    "origin ssh form",
			listing: sampleListing,
			remote:  "origin",
			want:    "https://example.com/alice/proj",
			wantOK:  true,
		},
		{
			name:    "other remote https form",
			listing: sampleListing,
			remote:  "upstream",
			want:    "https://example.org/team/proj",
			wantOK:  true,
		},
		{
			name:    "remote not listed",
			listing: sampleListing,
			remote:  "fork",
			wantOK:  false,
		},
		{
			name:    "malformed candidate is skipped for the next one",
			listing: "origin\tsvn://legacy.example.com/proj (fetch)\norigin\tgit@example.com:alice/proj.git (fetch)\n",
			remote:  "origin",
			want:    "https://example.com/alice/proj",
			wantOK:  true,
		},
		{
			name:    "push-only record is never selected",
			listing: "origin\tgit@example.com:alice/proj.git (push)\n",
			remote:  "origin",
			wantOK:  false,
		},
		{
			name:    "no candidate normalizes",
			listing: "origin\tsvn://legacy.example.com/proj (fetch)\n",
			remote:  "origin",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveBrowseURL(tt.listing, tt.remote)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

// The first fetch record that normalizes wins, even when later entries
// under the same name would also normalize.
func TestResolveBrowseURL_FirstMatchWins(t *testing.T) {
	listing := "origin\tgit@one.example.com:a/b.git (fetch)\norigin\tgit@two.example.com:c/d.git (fetch)\n"

	got, ok := ResolveBrowseURL(listing, "origin")
	require.True(t, ok)
	require.Equal(t, "https://one.example.com/a/b", got)
}
