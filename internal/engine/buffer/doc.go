// Package buffer provides the document model for the autopair engine:
// a code-point addressable text store with line lookup, atomic batch
// edits, and position mapping across edits.
//
// All offsets in this package are rune (code point) offsets, not byte
// offsets. The pair engine reasons about single code points adjacent to
// the caret, so rune addressing is the native coordinate system.
//
// Position mapping is exposed through Mapping with an explicit MapMode
// on every transform. Callers must choose between MapClamp (nearest
// surviving position) and MapTrackAfter (moves with content inserted
// strictly before it, reports deletion); there is no default mode.
package buffer
