// Package ui renders the quote screen with Bubble Tea.
//
// The screen owns two widgets, the quote label and the refresh button.
// It turns lifecycle and key events into viewmodel inputs and applies
// viewmodel outputs, which reach it as OutputMsg through the program's
// message loop so every widget change happens on the UI goroutine.
package ui
