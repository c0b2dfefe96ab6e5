// Package token provides line tokenization for structure sketches.
//
// [Scan] splits raw sketch text into Line records, stripping tree connector
// glyphs and comments while measuring indentation two ways: as the width of
// the leading filler after glyphs are normalized to spaces, and as the raw
// count of leading filler runes. The parse package resolves nesting from
// either measurement.
package token
