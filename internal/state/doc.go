// Package state persists export bookkeeping in SQLite. Each exported
// subtitle track is recorded with a hash of its source document so repeat
// runs can skip episodes whose sources have not changed since the last
// successful export.
package state
