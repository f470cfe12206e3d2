// Package cli provides the interactive terminal components for
// gitextra, built on Bubbletea's Model-View-Update architecture with
// Lipgloss styling. Currently a single component: the catalog picker
// shown when quick-start create is run without a source argument.
package cli
