package ass

import (
	"fmt"
	"strconv"
)

// Style wraps one style definition row. Fields is keyed by the document's
// style field order; values stay in their textual form and the typed
// accessors convert on demand.
type Style struct {
	Fields map[string]string
}

// NewStyle wraps the given field map.
func NewStyle(fields map[string]string) *Style {
	return &Style{Fields: fields}
}

// Clone returns a style with an independent copy of the field map.
func (s *Style) Clone() *Style {
	fields := make(map[string]string, len(s.Fields))
	for k, v := range s.Fields {
		fields[k] = v
	}
	return &Style{Fields: fields}
}

func (s *Style) intField(key string) (int, error) {
	value, err := strconv.Atoi(s.Fields[key])
	if err != nil {
		return 0, fmt.Errorf("%w: style field %s=%q: not an integer", ErrCodec, key, s.Fields[key])
	}
	return value, nil
}

func (s *Style) floatField(key string) (float64, error) {
	value, err := strconv.ParseFloat(s.Fields[key], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: style field %s=%q: not a number", ErrCodec, key, s.Fields[key])
	}
	return value, nil
}

func (s *Style) boolField(key string) (bool, error) {
	value, err := s.intField(key)
	if err != nil {
		return false, err
	}
	return value != 0, nil
}

func (s *Style) colorField(key string) (uint32, error) {
	value, err := ParseColor(s.Fields[key])
	if err != nil {
		return 0, fmt.Errorf("style field %s: %w", key, err)
	}
	return value, nil
}

func (s *Style) setBool(key string, value bool) {
	if value {
		s.Fields[key] = "1"
	} else {
		s.Fields[key] = "0"
	}
}

// Name returns the style name.
func (s *Style) Name() string { return s.Fields["Name"] }

// SetName sets the style name.
func (s *Style) SetName(value string) { s.Fields["Name"] = value }

// Fontname returns the font family name.
func (s *Style) Fontname() string { return s.Fields["Fontname"] }

// SetFontname sets the font family name.
func (s *Style) SetFontname(value string) { s.Fields["Fontname"] = value }

func (s *Style) Fontsize() (int, error) { return s.intField("Fontsize") }
func (s *Style) SetFontsize(value int)  { s.Fields["Fontsize"] = strconv.Itoa(value) }

func (s *Style) PrimaryColour() (uint32, error) { return s.colorField("PrimaryColour") }
func (s *Style) SetPrimaryColour(value uint32)  { s.Fields["PrimaryColour"] = FormatColor(value) }

func (s *Style) SecondaryColour() (uint32, error) { return s.colorField("SecondaryColour") }
func (s *Style) SetSecondaryColour(value uint32)  { s.Fields["SecondaryColour"] = FormatColor(value) }

func (s *Style) OutlineColour() (uint32, error) { return s.colorField("OutlineColour") }
func (s *Style) SetOutlineColour(value uint32)  { s.Fields["OutlineColour"] = FormatColor(value) }

func (s *Style) BackColour() (uint32, error) { return s.colorField("BackColour") }
func (s *Style) SetBackColour(value uint32)  { s.Fields["BackColour"] = FormatColor(value) }

func (s *Style) Bold() (bool, error) { return s.boolField("Bold") }
func (s *Style) SetBold(value bool)  { s.setBool("Bold", value) }

func (s *Style) Italic() (bool, error) { return s.boolField("Italic") }
func (s *Style) SetItalic(value bool)  { s.setBool("Italic", value) }

func (s *Style) Underline() (bool, error) { return s.boolField("Underline") }
func (s *Style) SetUnderline(value bool)  { s.setBool("Underline", value) }

func (s *Style) StrikeOut() (bool, error) { return s.boolField("StrikeOut") }
func (s *Style) SetStrikeOut(value bool)  { s.setBool("StrikeOut", value) }

func (s *Style) ScaleX() (float64, error) { return s.floatField("ScaleX") }
func (s *Style) SetScaleX(value float64)  { s.Fields["ScaleX"] = formatFloat(value) }

func (s *Style) ScaleY() (float64, error) { return s.floatField("ScaleY") }
func (s *Style) SetScaleY(value float64)  { s.Fields["ScaleY"] = formatFloat(value) }

func (s *Style) Spacing() (float64, error) { return s.floatField("Spacing") }
func (s *Style) SetSpacing(value float64)  { s.Fields["Spacing"] = formatFloat(value) }

func (s *Style) Angle() (float64, error) { return s.floatField("Angle") }
func (s *Style) SetAngle(value float64)  { s.Fields["Angle"] = formatFloat(value) }

func (s *Style) BorderStyle() (int, error) { return s.intField("BorderStyle") }
func (s *Style) SetBorderStyle(value int)  { s.Fields["BorderStyle"] = strconv.Itoa(value) }

func (s *Style) Outline() (float64, error) { return s.floatField("Outline") }
func (s *Style) SetOutline(value float64)  { s.Fields["Outline"] = formatFloat(value) }

func (s *Style) Shadow() (float64, error) { return s.floatField("Shadow") }
func (s *Style) SetShadow(value float64)  { s.Fields["Shadow"] = formatFloat(value) }

func (s *Style) Alignment() (int, error) { return s.intField("Alignment") }
func (s *Style) SetAlignment(value int)  { s.Fields["Alignment"] = strconv.Itoa(value) }

func (s *Style) MarginL() (int, error) { return s.intField("MarginL") }
func (s *Style) SetMarginL(value int)  { s.Fields["MarginL"] = strconv.Itoa(value) }

func (s *Style) MarginR() (int, error) { return s.intField("MarginR") }
func (s *Style) SetMarginR(value int)  { s.Fields["MarginR"] = strconv.Itoa(value) }

func (s *Style) MarginV() (int, error) { return s.intField("MarginV") }
func (s *Style) SetMarginV(value int)  { s.Fields["MarginV"] = strconv.Itoa(value) }

func (s *Style) Encoding() (int, error) { return s.intField("Encoding") }
func (s *Style) SetEncoding(value int)  { s.Fields["Encoding"] = strconv.Itoa(value) }
