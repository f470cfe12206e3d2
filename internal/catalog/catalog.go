// Package catalog reads the user-maintained repository catalog: a TOML
// table mapping short names to clonable origins with an optional
// customizer filename and description.
package catalog

import (
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// Entry describes one named repository.
type Entry struct {
	Origin      string `toml:"origin"`
	Customizer  string `toml:"customizer"`
	Description string `toml:"description"`
}

// Catalog is a read-only name-to-entry mapping, immutable for the
// duration of one invocation.
type Catalog struct {
	entries map[string]Entry
}

// Empty returns a catalog with no entries.
func Empty() *Catalog {
	return &Catalog{entries: map[string]Entry{}}
}

// Load reads and decodes the catalog file. A missing file is returned
// as-is (callers check with errors.Is(err, fs.ErrNotExist) and degrade
// to an empty catalog); a malformed file is a hard error.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	entries := map[string]Entry{}
	if err := toml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	for name, entry := range entries {
		if entry.Origin == "" {
			return nil, fmt.Errorf("failed to parse catalog %s: entry %q has no origin", path, name)
		}
	}

	return &Catalog{entries: entries}, nil
}

// Get returns the entry for name, if present.
func (c *Catalog) Get(name string) (Entry, bool) {
	entry, ok := c.entries[name]

	return entry, ok
}

// Names returns all catalog names, sorted for stable presentation.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
