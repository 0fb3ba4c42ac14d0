// Package state shares the latest cookbook between the background poller and
// the UI.
//
// The poller calls Refresh (or Update) on its own goroutine; the UI calls
// Snapshot on every tick and renders from the copy it gets back. A failed
// refresh keeps the previous cookbook and increments ConsecutiveFailures, so
// the header can show "Retrying..." without the list going blank. After two
// consecutive failures IsOffline reports true.
package state
