// Package core provides the business logic layer for gitextra.
//
// This package contains all core functionality separated from UI
// concerns: resolving remote listings to browsable URLs, resolving a
// clone source from a URL or catalog name, and sequencing the
// clone-then-customize provisioning pipeline.
//
// # Design Principles
//
//   - Functions return errors instead of printing to stdout/stderr
//   - User-facing output goes through an injected ui.Logger
//   - Subprocess and browser access sit behind small interfaces so
//     tests can run the pipelines without git, a network, or a display
//
// # Provisioning
//
// Provisioning is strictly linear: resolve the source, clone, check
// for the customizer, run it at most once. Failures in resolution,
// clone, or the customizer run abort the pipeline; a missing
// customizer file is an expected case and only warns.
package core
