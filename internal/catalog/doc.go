// Package catalog carries the release metadata for the series: romanized
// episode titles and the canonical release file names, CRC tags included.
// Episode identifiers are the subtitle file stems, either a decimal episode
// number or one of the extras ("OP", "ED1").
package catalog
