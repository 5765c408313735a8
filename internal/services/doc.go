// Package services provides the shared error taxonomy and context plumbing
// used by the pipeline stages and the CLI. Stage code wraps failures with one
// of the exported sentinels so callers can classify them without string
// matching, and annotates contexts so log lines carry episode and stage
// identifiers automatically.
package services
