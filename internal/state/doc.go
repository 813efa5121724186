// Package state shares the terminal geometry between the backend goroutine
// that learns about resizes and the loop that renders frames.
//
// # Concurrency Model
//
// The Store uses a readers-writer lock:
//
//   - Update(): Acquires write lock (exclusive access)
//   - Snapshot(): Acquires read lock (concurrent reads allowed)
//
// The zero Store is ready to use. Snapshot returns a zero Snapshot with
// HasSize false until the first valid Update.
//
// # Usage Example
//
//	// Backend goroutine, on tea.WindowSizeMsg:
//	store.Update(msg.Width, msg.Height)
//
//	// Render loop:
//	w, h := store.Size(80, 24)
//	frame := surface.New(w, h)
package state
