// Package renderer provides the display layer for the glint viewer.
//
// The renderer is responsible for:
//   - Deciding what each screen row shows (content, placeholder or banner)
//   - The render mode state machine (Welcome, Content, Farewell)
//   - Issuing drawing calls through the backend and flushing once per frame
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│        View (frame composition)         │
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell) │ ANSITerminal (x/term)│
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	v := renderer.NewView(term, buf, renderer.DefaultViewOptions())
//	v.Render(renderer.ModeWelcome, core.Origin)
package renderer
