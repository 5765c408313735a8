package ass

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

const sampleDoc = `[Script Info]
; Script generated by Aegisub
Title: Episode 01
ScriptType: v4.00+
PlayResX: 640
PlayResY: 480

[Aegisub Project Garbage]
Audio File: ../Videos/01.mp4
Scroll Position: 40

[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding
Style: Default,Arial,20,&H00FFFFFF,&HF0000000,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,0,2,10,10,10,1
Style: TitleEP,Arial,28,&H00FFFFFF,&HF0000000,&H00000000,&H00000000,1,0,0,0,100,100,0,0,1,2,0,8,10,10,10,1

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:01.00,0:00:03.00,Default,en,0,0,0,,Hello, world, again
Comment: 0,0:01:05.00,0:02:05.50,Default,chapter,0,0,0,,Part One
Dialogue: 0,0:00:05.00,0:00:07.00,Default,ja,0,0,0,intro,こんにちは
`

func TestParseSections(t *testing.T) {
	doc, err := ParseString(sampleDoc)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	if got := doc.ScriptInfo.Keys(); !reflect.DeepEqual(got, []string{"Title", "ScriptType", "PlayResX", "PlayResY"}) {
		t.Errorf("script info keys = %v", got)
	}
	if title, _ := doc.ScriptInfo.Get("Title"); title != "Episode 01" {
		t.Errorf("Title = %q", title)
	}

	if len(doc.StyleFormat) != 23 {
		t.Errorf("style format has %d fields, want 23", len(doc.StyleFormat))
	}
	if len(doc.Styles) != 2 {
		t.Fatalf("parsed %d styles, want 2", len(doc.Styles))
	}
	if name := doc.Styles[1].Name(); name != "TitleEP" {
		t.Errorf("second style name = %q", name)
	}
	if bold, err := doc.Styles[1].Bold(); err != nil || !bold {
		t.Errorf("TitleEP bold = %v, %v", bold, err)
	}

	if !reflect.DeepEqual(doc.EventFormat, DefaultEventFormat) {
		t.Errorf("event format = %v", doc.EventFormat)
	}
	if len(doc.Events) != 3 {
		t.Fatalf("parsed %d events, want 3", len(doc.Events))
	}
	if doc.Events[1].Type != "Comment" {
		t.Errorf("second event type = %q", doc.Events[1].Type)
	}
	// The trailing Text field absorbs embedded commas.
	if text := doc.Events[0].Text(); text != "Hello, world, again" {
		t.Errorf("first event text = %q", text)
	}
	if effect := doc.Events[2].Effect(); effect != "intro" {
		t.Errorf("third event effect = %q", effect)
	}
	start, err := doc.Events[1].Start()
	if err != nil || start != 65 {
		t.Errorf("comment start = %v, %v", start, err)
	}
}

func TestParseDropsUnknownSections(t *testing.T) {
	doc, err := ParseString(sampleDoc)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if _, ok := doc.ScriptInfo.Get("Audio File"); ok {
		t.Error("garbage section key leaked into script info")
	}
}

func TestParseDuplicateScriptInfoKey(t *testing.T) {
	doc, err := ParseString("[Script Info]\nTitle: First\nTitle: Second\n")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if title, _ := doc.ScriptInfo.Get("Title"); title != "Second" {
		t.Errorf("Title = %q, want last write", title)
	}
	if doc.ScriptInfo.Len() != 1 {
		t.Errorf("script info has %d keys, want 1", doc.ScriptInfo.Len())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing colon", "[Script Info]\nno separator here\n"},
		{"duplicate format", "[Events]\nFormat: Layer, Text\nFormat: Layer, Text\n"},
		{"style before format", "[V4+ Styles]\nStyle: Default,Arial\n"},
		{"event before format", "[Events]\nDialogue: 0,hi\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseString(tt.input); !errors.Is(err, ErrFormat) {
				t.Errorf("error = %v, want ErrFormat", err)
			}
		})
	}
}

func TestParseArbitraryEventType(t *testing.T) {
	doc, err := ParseString("[Events]\nFormat: Layer, Text\nPicture: 0,art.png\n")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if len(doc.Events) != 1 || doc.Events[0].Type != "Picture" {
		t.Fatalf("events = %+v", doc.Events)
	}
}

func TestRenderRoundTrip(t *testing.T) {
	first, err := ParseString(sampleDoc)
	if err != nil {
		t.Fatalf("parse sample: %v", err)
	}
	second, err := ParseString(first.Render())
	if err != nil {
		t.Fatalf("parse rendered: %v", err)
	}
	assertDocumentsEqual(t, first, second)
}

func TestRenderLayout(t *testing.T) {
	doc, err := ParseString(sampleDoc)
	if err != nil {
		t.Fatalf("parse sample: %v", err)
	}
	rendered := doc.Render()
	for _, want := range []string{
		"[Script Info]\nTitle: Episode 01\n",
		"\n[V4+ Styles]\nFormat: Name, Fontname",
		"\n[Events]\nFormat: Layer, Start",
		"Comment: 0,0:01:05.00,0:02:05.50,Default,chapter,0,0,0,,Part One\n",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendered output missing %q:\n%s", want, rendered)
		}
	}
	if strings.Contains(rendered, "Aegisub") {
		t.Error("rendered output reproduces uninterpreted sections")
	}
}

// assertDocumentsEqual compares the structural content of two documents.
func assertDocumentsEqual(t *testing.T, a, b *Document) {
	t.Helper()
	if !reflect.DeepEqual(a.ScriptInfo.Keys(), b.ScriptInfo.Keys()) {
		t.Errorf("script info keys differ: %v vs %v", a.ScriptInfo.Keys(), b.ScriptInfo.Keys())
	}
	for _, key := range a.ScriptInfo.Keys() {
		av, _ := a.ScriptInfo.Get(key)
		bv, _ := b.ScriptInfo.Get(key)
		if av != bv {
			t.Errorf("script info %q: %q vs %q", key, av, bv)
		}
	}
	if !reflect.DeepEqual(a.StyleFormat, b.StyleFormat) {
		t.Errorf("style formats differ: %v vs %v", a.StyleFormat, b.StyleFormat)
	}
	if !reflect.DeepEqual(a.EventFormat, b.EventFormat) {
		t.Errorf("event formats differ: %v vs %v", a.EventFormat, b.EventFormat)
	}
	if len(a.Styles) != len(b.Styles) {
		t.Fatalf("style counts differ: %d vs %d", len(a.Styles), len(b.Styles))
	}
	for i := range a.Styles {
		if !reflect.DeepEqual(a.Styles[i].Fields, b.Styles[i].Fields) {
			t.Errorf("style %d differs: %v vs %v", i, a.Styles[i].Fields, b.Styles[i].Fields)
		}
	}
	if len(a.Events) != len(b.Events) {
		t.Fatalf("event counts differ: %d vs %d", len(a.Events), len(b.Events))
	}
	for i := range a.Events {
		if a.Events[i].Type != b.Events[i].Type {
			t.Errorf("event %d type differs: %q vs %q", i, a.Events[i].Type, b.Events[i].Type)
		}
		if !reflect.DeepEqual(a.Events[i].Fields, b.Events[i].Fields) {
			t.Errorf("event %d differs: %v vs %v", i, a.Events[i].Fields, b.Events[i].Fields)
		}
	}
}
