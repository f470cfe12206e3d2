package core

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/gitextra/internal/catalog"
	"github.com/inovacc/gitextra/internal/ui"
)

var descriptionStyle = lipgloss.NewStyle().Faint(true)

// ListCatalog prints the catalog entries, names left-aligned to the
// widest name, with the origin beside each and the description, when
// present, dimmed on the following line.
func ListCatalog(log ui.Logger, cat *catalog.Catalog) {
	names := cat.Names()
	if len(names) == 0 {
		return
	}

	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}
	width += 3

	for _, name := range names {
		entry, _ := cat.Get(name)

		log.Outputf("%-*s %s", width, name, entry.Origin)

		if entry.Description != "" {
			log.Outputf("%-*s %s", width, "", descriptionStyle.Render(entry.Description))
		}
	}
}
