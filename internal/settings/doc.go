// Package settings owns the live animation settings of an editor session:
// motion blur plus the cursor and zoom spring configs.
//
// A single [Store] is created per session and handed to every consumer.
// UI controls send typed partial updates; renderers read a snapshot or bind
// an easing once per transition.
//
// # Presets and custom values
//
// Each animation record carries a [preset.Style]. Updating an animation
// applies these steps, in order, as one atomic change:
//
//  1. If the update names a preset style, copy its mass, tension and
//     friction into the record.
//  2. Merge every field the update sets, style included.
//  3. If the update sets a numeric field but no style, mark the record
//     custom.
//  4. If the update sets a style, that style is final.
//
// So {Style: gentle, Tension: 300} yields gentle with tension 300, while
// {Tension: 300} alone yields custom.
package settings
