// Package keymap provides key binding management for the glint viewer.
//
// The keymap maps terminal key events to a small closed set of Actions
// (quit and the cursor motions). Unbound keys resolve to ActionNone.
//
// # Key Specification
//
// Bindings can be specified in several formats:
//
//	"q"        - Single character
//	"Ctrl+Q"   - Ctrl+Q (readable notation)
//	"<C-q>"    - Ctrl+Q (angle bracket notation)
//	"PgDn"     - Special key by name
//
// # Modifiers
//
// Ctrl+letter is matched whether the terminal reports it as a control key
// or as a letter with the Ctrl modifier. A binding without modifiers also
// matches the same key pressed with modifiers, unless a more specific
// binding exists.
package keymap
