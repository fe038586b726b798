// Package viz provides the interactive terminal viewer.
//
// The viewer is a Bubble Tea program around a [session.Controller]. It shows
// the current art in the active theme and maps keys onto controller calls:
//
// # Key Bindings
//
//	h/←  l/→   - Width -1 / +1
//	H    L     - Width -10 / +10
//	T          - Toggle dark/light theme
//	S          - Save ascii.txt
//	P          - Save ascii.png
//	V          - Save ascii.svg
//	Q          - Quit
package viz
