// Package app is the composition root of the foodie TUI.
//
// Run loads the configuration and preferences, opens a file logger, picks
// the cookbook backend and then hands control to the UI:
//
//	Run()
//	  ├─> config.Load()   Read ~/.config/foodie/config.toml
//	  ├─> prefs.Load()    Theme and last list filter
//	  ├─> logging.New()   zap logger writing to <log_dir>/foodie.log
//	  ├─> OpenBook()      SQLite store, remote server, or demo data
//	  ├─> StartPoller()   Background refresh of state.Store
//	  └─> ui.Run()        Bubble Tea program (blocks)
//
// # Polling Behavior
//
// The poller refreshes the shared state.Store every interval (default 2
// seconds). After a failure the wait doubles per consecutive failure, capped
// at 30 seconds, and the last good cookbook stays on screen. The UI reads
// snapshots at its own tick so slow backends never block a frame.
//
// # Error Handling
//
// Configuration, logging and backend setup errors are returned from Run.
// Poll failures are logged and retried.
package app
