// Package widget provides a small set of leaf and composite components
// built on the tui component contract.
//
// Leaves embed *tui.Base and override Draw, Event and Diagnostic. Composites
// embed *tui.Container and add children on construction.
//
//   - [Label] shows static text and refuses focus.
//   - [Button] takes focus, shows a cursor and raises OnClick.
//   - [Frame] draws a border, degrading to ASCII on targets without unicode.
//   - [Filler] paints its whole area with one glyph.
//   - [Panel] wraps a component in a frame.
package widget
