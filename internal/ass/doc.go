// Package ass implements the Advanced SubStation Alpha document model used
// throughout Substation.
//
// It parses raw ASS text into a Document (script info, style table, event
// table), exposes typed accessors over the textual field maps, and renders a
// Document back to canonical ASS text. Parsing is deliberately permissive in
// the same places the format is: unknown sections are skipped, event line
// labels are carried through uninterpreted, and only the three canonical
// sections survive a round trip.
//
// The codec helpers (colors, timestamps, chapter timestamps) are stateless
// and shared by the extraction and chapter-generation code.
package ass
