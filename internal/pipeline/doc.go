// Package pipeline orchestrates a full processing run: subtitle sources are
// discovered and parsed, cross-references between documents are resolved,
// per-language tracks are exported under their release names, and videos are
// optionally remuxed with chapter metadata. Runs are serialized with a file
// lock and recorded in the state store so unchanged sources can be skipped.
package pipeline
