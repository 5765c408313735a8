// Package language normalizes subtitle language codes.
//
// Subtitle tracks in master documents and in configuration are tagged with
// ISO 639-1 codes; ffmpeg stream metadata wants ISO 639-2. This package
// converts between the two and supplies display names for CLI output.
package language
