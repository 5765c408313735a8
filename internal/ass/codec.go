package ass

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatColor renders a packed ABGR color value in ASS hex notation:
// "&H" followed by eight uppercase hex digits.
func FormatColor(value uint32) string {
	return fmt.Sprintf("&H%08X", value)
}

// ParseColor decodes an ASS color field. The canonical form is "&H" plus hex
// digits; anything else is accepted as a plain base-10 integer literal, which
// some authoring tools emit.
func ParseColor(value string) (uint32, error) {
	if rest, ok := strings.CutPrefix(value, "&H"); ok {
		parsed, err := strconv.ParseUint(rest, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: color %q: %v", ErrCodec, value, err)
		}
		return uint32(parsed), nil
	}
	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: color %q: %v", ErrCodec, value, err)
	}
	return uint32(parsed), nil
}

// FormatTime renders seconds as an ASS event timestamp, H:MM:SS.CC. The hour
// field is unpadded and the fraction carries exactly two digits (centisecond
// precision).
func FormatTime(seconds float64) string {
	whole := int64(seconds)
	h := whole / 3600
	m := (whole / 60) % 60
	s := math.Mod(seconds, 60)
	return fmt.Sprintf("%d:%02d:%05.2f", h, m, s)
}

// ParseTime decodes an ASS H:MM:SS.CC timestamp into seconds.
func ParseTime(value string) (float64, error) {
	parts := strings.SplitN(value, ":", 3)
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: timestamp %q: expected H:MM:SS.CC", ErrCodec, value)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: timestamp %q: %v", ErrCodec, value, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: timestamp %q: %v", ErrCodec, value, err)
	}
	s, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: timestamp %q: %v", ErrCodec, value, err)
	}
	return float64(h)*3600 + float64(m)*60 + s, nil
}

// FormatChapterTime renders seconds at millisecond precision, H:MM:SS.mmm,
// as used by Matroska chapter metadata. Encode-only; nothing parses it back.
func FormatChapterTime(seconds float64) string {
	whole := int64(seconds)
	h := whole / 3600
	m := (whole / 60) % 60
	s := math.Mod(seconds, 60)
	return fmt.Sprintf("%d:%02d:%06.3f", h, m, s)
}

// formatFloat renders a float field the way authoring tools do: shortest
// representation that round-trips.
func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
