// Package scan discovers subtitle source documents on disk and owns the
// encoding conventions around them. Source files may carry a UTF-8 byte
// order mark (some editors insist on one), so reads route through a
// BOM-stripping decoder; exports are written back with the mark so the same
// editors reopen them cleanly.
package scan
