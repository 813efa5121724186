// Package app is the composition root of the fm file manager.
//
// # Overview
//
// Run wires configuration, logging, the message bus, both panels, the button
// bar, the orchestrator and the terminal backend, then drives the run loop
// until the user quits.
//
// # Startup
//
//  1. Open the log file (the terminal owns stdout and stderr)
//  2. Load fm-config.toml, writing the embedded default when it is missing
//  3. Pick the panel directories: arguments, then saved prefs, then the
//     working directory (or the first readable ancestor of $PWD)
//  4. Build the bus, panels, button bar and fm.App
//  5. Start the bubbletea program and the event source
//
// # Run Loop
//
//	┌──────────────────────────────┐
//	│ loop()                       │
//	│  ├─> Render to a Surface     │
//	│  ├─> terminal.Show(frame)    │
//	│  ├─> fm.App.Step()           │
//	│  └─> act on the Action       │
//	└──────────────────────────────┘
//
// Redraw and SigCont clear the screen, CtrlZ suspends the process, and Quit,
// CtrlC and SigTerm stop the loop. Any error from Step stops the loop and is
// returned from Run.
//
// # Shutdown
//
// Both panel directories are saved to prefs.toml and, when PrintWD is set,
// the focused panel's directory is written there so a shell wrapper can cd
// into it.
package app
