// Package viz provides the terminal front end for the animation settings.
//
// [Editor] is a Bubble Tea model over a [settings.Store]. Every key press
// becomes one typed store update, so the editor exercises the same preset
// and custom rules as any other UI, and the preview redraws from the
// store's current config.
//
// # Key Bindings
//
//	Tab   - Switch between cursor and zoom animation
//	j/k   - Select a row
//	h/l   - Previous/next preset, or decrease/increase a value
//	Space - Toggle motion blur
//	R     - Reset the selected animation to the default preset
//	Q     - Quit
//
// Numeric rows are clamped to the ranges and steps of the editor's sliders;
// the store itself accepts any value.
package viz
