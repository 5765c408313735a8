// Package xref expands cross-reference events across a collection of parsed
// subtitle documents.
//
// Shared lines (openings, endings, recurring signs) are authored once and
// pulled into each episode through placeholder events: an event whose Name is
// the literal "ref" and whose Effect is "document!key" (empty document means
// the same file). Resolution replaces each placeholder with clones of every
// event in the target document tagged with that Effect key, keeping the
// placeholder's timing, style, and margins.
//
// Resolution must run only after every document in the set has been parsed,
// since references routinely point across files.
package xref
