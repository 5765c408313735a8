// Package extract derives per-language subtitle documents and chapter
// metadata from a resolved master document.
//
// Master documents carry every language side by side, tagged through the
// event Name field, plus chapter markers as specially tagged Comment events.
// Extraction filters a master down to one distributable track per language
// and renders the chapter markers as ffmetadata blocks for remuxing.
package extract
