// Package ui provides abstraction primitives for TUI composition with Bubble Tea.
//
// Core abstractions:
//   - View: A screen or major UI region with its own model, update, view (Elm-style)
//   - ModalHost: Layered modal views that own input while showing
//   - KeybindRegistry / KeyHandler: Leader-key sequence dispatch
package ui
