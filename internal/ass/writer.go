package ass

import "strings"

// Render produces the canonical text form of the document: the three
// interpreted sections with their Format lines, separated by blank lines.
// Comment lines and uninterpreted sections from the original input are not
// reproduced; round-tripping is lossy by design.
func (d *Document) Render() string {
	var b strings.Builder

	b.WriteString("[Script Info]\n")
	for _, key := range d.ScriptInfo.Keys() {
		value, _ := d.ScriptInfo.Get(key)
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteByte('\n')
	}

	b.WriteString("\n[V4+ Styles]\n")
	b.WriteString("Format: ")
	b.WriteString(strings.Join(d.StyleFormat, ", "))
	b.WriteByte('\n')
	for _, style := range d.Styles {
		b.WriteString("Style: ")
		writeRow(&b, d.StyleFormat, style.Fields)
	}

	b.WriteString("\n[Events]\n")
	b.WriteString("Format: ")
	b.WriteString(strings.Join(d.EventFormat, ", "))
	b.WriteByte('\n')
	for _, event := range d.Events {
		b.WriteString(event.Type)
		b.WriteString(": ")
		writeRow(&b, d.EventFormat, event.Fields)
	}

	return b.String()
}

func writeRow(b *strings.Builder, format []string, fields map[string]string) {
	for i, key := range format {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(fields[key])
	}
	b.WriteByte('\n')
}
