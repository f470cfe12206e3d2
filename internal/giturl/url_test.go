package giturl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_SSH(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantDomain  string
		wantUser    string
		wantProject string
		wantErr     bool
	}{
		{
			name:        "ssh github",
			input:       "git@github.com:alice/proj.git",
			wantDomain:  "github.com",
			wantUser:    "alice",
			wantProject: "proj",
		},
		{
			name:        "ssh with hyphens and underscores",
			input:       "git@my-git.example.com:some-user/some_project.git",
			wantDomain:  "my-git.example.com",
			wantUser:    "some-user",
			wantProject: "some_project",
		},
		{
			name:    "ssh missing .git suffix",
			input:   "git@github.com:alice/proj",
			wantErr: true,
		},
		{
			name:    "ssh uppercase domain",
			input:   "git@GitHub.com:alice/proj.git",
			wantErr: true,
		},
		{
			name:    "ssh with nested path",
			input:   "git@github.com:org/group/proj.git",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNotRecognized)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantDomain, p.Domain)
			require.Equal(t, tt.wantUser, p.User)
			require.Equal(t, tt.wantProject, p.Project)
		})
	}
}

func TestParse_HTTPS(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantDomain  string
		wantUser    string
		wantProject string
		wantErr     bool
	}{
		{
			name:        "https github",
			input:       "https://github.com/bob/demo.git",
			wantDomain:  "github.com",
			wantUser:    "bob",
			wantProject: "demo",
		},
		{
			name:        "https with credential prefix",
			input:       "https://token123@github.com/bob/demo.git",
			wantDomain:  "github.com",
			wantUser:    "bob",
			wantProject: "demo",
		},
		{
			name:    "https missing .git suffix",
			input:   "https://github.com/bob/demo",
			wantErr: true,
		},
		{
			name:    "http scheme",
			input:   "http://github.com/bob/demo.git",
			wantErr: true,
		},
		{
			name:    "https missing project",
			input:   "https://github.com/bob.git",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNotRecognized)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantDomain, p.Domain)
			require.Equal(t, tt.wantUser, p.User)
			require.Equal(t, tt.wantProject, p.Project)
		})
	}
}

func TestBrowseURL(t *testing.T) {
	p, err := Parse("git@example.com:alice/proj.git")
	require.NoError(t, err)
	require.Equal(t, "https://example.com/alice/proj", p.BrowseURL())
}

// Feeding a browse URL back through HTTPS matching (with the .git
// suffix restored) must reproduce the same triple.
func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		"git@github.com:alice/proj.git",
		"https://user@git.example.org/team/tool.git",
	}

	for _, input := range inputs {
		first, err := Parse(input)
		require.NoError(t, err)

		second, err := Parse(first.BrowseURL() + ".git")
		require.NoError(t, err)
		require.Equal(t, first, second)
	}
}

func TestIsRemoteURL(t *testing.T) {
	require.True(t, IsRemoteURL("git@github.com:alice/proj.git"))
	require.True(t, IsRemoteURL("https://github.com/bob/demo.git"))
	require.False(t, IsRemoteURL("file:///tmp/repo"))
	require.False(t, IsRemoteURL("demo"))
}

func TestFileURL(t *testing.T) {
	require.True(t, IsFileURL("file:///tmp/repo"))
	require.False(t, IsFileURL("/tmp/repo"))
	require.Equal(t, "/tmp/repo", StripFileScheme("file:///tmp/repo"))
}

func TestRepoName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ssh url", "git@github.com:alice/proj.git", "proj"},
		{"https url", "https://github.com/bob/demo.git", "demo"},
		{"local path", "/tmp/repos/thing", "thing"},
		{"local path with .git", "/srv/git/thing.git", "thing"},
		{"bare name", "thing", "thing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RepoName(tt.input))
		})
	}
}
