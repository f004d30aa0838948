// Package debug provides optional file-based debug logging.
//
// When the TUI_DEBUG environment variable is set to a file path, debug
// messages are appended to that file through a zap logger. Otherwise,
// logging is a no-op. Terminal UIs own stdout, so nothing is ever written
// to the console.
package debug
