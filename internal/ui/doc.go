// Package ui provides the terminal user interface for foodie.
//
// The UI is a Bubble Tea program. Model holds all view state and reads
// cookbook data from a state.Store snapshot that the poller keeps fresh.
// Changes (create, edit, favorite, delete) run as commands against an
// access.Cookbook and refresh the store before reporting back, so the next
// frame always shows the backend's view of the cookbook.
//
// # Views
//
//   - List: recipes with filter (f), search (/) and a preview pane on wide terminals
//   - Recipe: scrollable detail for one recipe
//   - Form: create or edit a recipe with live field validation
//
// # Key Bindings
//
//   - j/k, g/G, ctrl+d/ctrl+u: Navigate
//   - enter: Open recipe
//   - n: New recipe; e: Edit; s: Toggle favorite; d: Delete (asks first)
//   - tab/shift+tab: Move between form fields; ctrl+s: Save
//   - T: Cycle theme; ?: Help; q or ctrl+c: Quit
//
// Preferences (theme and list filter) are saved to the prefs file whenever
// they change.
package ui
