// Package cli provides the terminal gallery for repogallery.
//
// The package uses [Bubbletea] for the interactive UI and [Lipgloss] for
// styling. [GalleryModel] follows the standard Bubbletea Model-View-Update
// architecture and moves through three phases:
//
//   - Loading: a spinner while the loader fetches every page
//   - Ready: a card list with sort, language and fork controls
//   - Error: the problem title and detail, with r to reload
//
// Keys are ignored while loading except quit. Quitting cancels an
// in-flight load.
//
// # Styling
//
// Common styles are defined as package-level variables for reuse.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
