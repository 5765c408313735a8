// Package remux drives ffmpeg to copy episode videos into tagged MP4
// releases. Streams are copied without re-encoding; the work is attaching
// chapter metadata, stamping audio and video language tags, and enabling
// faststart so the files stream cleanly.
package remux
