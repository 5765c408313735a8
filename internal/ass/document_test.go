package ass

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewDocumentDefaults(t *testing.T) {
	doc := NewDocument()
	if !reflect.DeepEqual(doc.StyleFormat, DefaultStyleFormat) {
		t.Errorf("style format = %v", doc.StyleFormat)
	}
	if !reflect.DeepEqual(doc.EventFormat, DefaultEventFormat) {
		t.Errorf("event format = %v", doc.EventFormat)
	}
	if len(DefaultStyleFormat) != 23 {
		t.Errorf("canonical style format has %d fields, want 23", len(DefaultStyleFormat))
	}
	if len(DefaultEventFormat) != 10 {
		t.Errorf("canonical event format has %d fields, want 10", len(DefaultEventFormat))
	}
	// The defaults are copies; mutating one document must not leak.
	doc.StyleFormat[0] = "Mutated"
	if DefaultStyleFormat[0] != "Name" {
		t.Error("NewDocument aliases DefaultStyleFormat")
	}
}

func TestEventCloneIsIndependent(t *testing.T) {
	event := NewEvent("Dialogue", map[string]string{"Name": "en", "Text": "hello"})
	clone := event.Clone()
	clone.SetName("ja")
	clone.SetText("changed")
	if event.Name() != "en" || event.Text() != "hello" {
		t.Errorf("clone mutation leaked into original: %v", event.Fields)
	}
	if clone.Type != "Dialogue" {
		t.Errorf("clone type = %q", clone.Type)
	}
}

func TestStyleCloneIsIndependent(t *testing.T) {
	style := NewStyle(map[string]string{"Name": "Default", "Bold": "0"})
	clone := style.Clone()
	clone.SetBold(true)
	if bold, err := style.Bold(); err != nil || bold {
		t.Errorf("clone mutation leaked: bold=%v err=%v", bold, err)
	}
}

func TestTypedAccessors(t *testing.T) {
	event := NewEvent("Dialogue", map[string]string{
		"Layer": "2", "Start": "0:00:05.00", "End": "0:00:07.00",
		"Style": "Default", "Name": "en",
		"MarginL": "0", "MarginR": "0", "MarginV": "10",
		"Effect": "", "Text": "hi",
	})
	if layer, err := event.Layer(); err != nil || layer != 2 {
		t.Errorf("Layer = %v, %v", layer, err)
	}
	start, err := event.Start()
	if err != nil || start != 5 {
		t.Errorf("Start = %v, %v", start, err)
	}
	event.SetStart(125.5)
	if event.Fields["Start"] != "0:02:05.50" {
		t.Errorf("SetStart stored %q", event.Fields["Start"])
	}

	event.Fields["Layer"] = "two"
	if _, err := event.Layer(); !errors.Is(err, ErrCodec) {
		t.Errorf("Layer on non-numeric = %v, want ErrCodec", err)
	}

	style := NewStyle(map[string]string{"ScaleX": "100", "PrimaryColour": "&H00FFFFFF", "Fontsize": "20"})
	if scale, err := style.ScaleX(); err != nil || scale != 100 {
		t.Errorf("ScaleX = %v, %v", scale, err)
	}
	style.SetScaleX(87.5)
	if style.Fields["ScaleX"] != "87.5" {
		t.Errorf("SetScaleX stored %q", style.Fields["ScaleX"])
	}
	if color, err := style.PrimaryColour(); err != nil || color != 0xFFFFFF {
		t.Errorf("PrimaryColour = %#x, %v", color, err)
	}
	style.SetPrimaryColour(0xF0000000)
	if style.Fields["PrimaryColour"] != "&HF0000000" {
		t.Errorf("SetPrimaryColour stored %q", style.Fields["PrimaryColour"])
	}
}

func TestScriptInfoOrder(t *testing.T) {
	si := NewScriptInfo()
	si.Set("Title", "one")
	si.Set("ScriptType", "v4.00+")
	si.Set("Title", "two")
	if !reflect.DeepEqual(si.Keys(), []string{"Title", "ScriptType"}) {
		t.Errorf("keys = %v", si.Keys())
	}
	if value, _ := si.Get("Title"); value != "two" {
		t.Errorf("Title = %q", value)
	}

	clone := si.Clone()
	clone.Set("Extra", "x")
	if si.Len() != 2 {
		t.Errorf("clone mutation leaked, len = %d", si.Len())
	}
}
