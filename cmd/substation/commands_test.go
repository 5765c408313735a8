package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"substation/internal/testsupport"
)

const sampleEpisode = `[Script Info]
Title: Episode 01

[V4+ Styles]
Format: Name, Fontname, Fontsize
Style: Default,Arial,48
Style: TitleEP,Arial,64

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:05.00,0:00:08.00,TitleEP,ja,0,0,0,,Daibouken
Comment: 0,0:00:00.00,0:01:05.50,Default,chapter,0,0,0,,Part One
Dialogue: 0,0:00:10.00,0:00:12.00,Default,en,0,0,0,,Hello there
`

// writeTestConfig builds a TOML config pointing at per-test temp dirs and
// returns its path.
func writeTestConfig(t *testing.T) (string, string) {
	t.Helper()

	base := t.TempDir()
	subtitles := filepath.Join(base, "subtitles")
	content := fmt.Sprintf(`[paths]
subtitles_dir = %q
videos_dir = %q
export_dir = %q
log_dir = %q
`,
		subtitles,
		filepath.Join(base, "videos"),
		filepath.Join(base, "exports"),
		filepath.Join(base, "logs"),
	)
	path := filepath.Join(base, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path, subtitles
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	output, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(output, target) {
		t.Fatalf("output does not mention target: %q", output)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "subtitles_dir") {
		t.Fatal("sample config missing subtitles_dir")
	}

	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error without --overwrite")
	}
	if _, err := runCommand(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestChaptersCommandPrintsMetadata(t *testing.T) {
	configPath, subtitles := writeTestConfig(t)
	testsupport.WriteSubtitle(t, subtitles, "01", sampleEpisode)

	output, err := runCommand(t, "--config", configPath, "chapters", "01")
	if err != nil {
		t.Fatalf("chapters: %v", err)
	}
	want := "title=Daibouken\n[CHAPTER]\nTIMEBASE=1/1000\nSTART=0\nEND=65500\ntitle=Part One\n"
	if output != want {
		t.Fatalf("chapters output = %q, want %q", output, want)
	}
}

func TestChaptersCommandUnknownEpisode(t *testing.T) {
	configPath, subtitles := writeTestConfig(t)
	testsupport.WriteSubtitle(t, subtitles, "01", sampleEpisode)

	if _, err := runCommand(t, "--config", configPath, "chapters", "99"); err == nil {
		t.Fatal("expected error for unknown episode")
	}
}

func TestExtractCommandWritesTrack(t *testing.T) {
	configPath, subtitles := writeTestConfig(t)
	testsupport.WriteSubtitle(t, subtitles, "01", sampleEpisode)

	output, err := runCommand(t, "--config", configPath, "extract", "01", "en")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(output, "Hello there") {
		t.Fatalf("extract output missing dialogue: %q", output)
	}
	if strings.Contains(output, "Daibouken") {
		t.Fatalf("en track should not carry ja title event: %q", output)
	}

	target := filepath.Join(t.TempDir(), "01.en.ass")
	if _, err := runCommand(t, "--config", configPath, "extract", "01", "eng", "-o", target); err != nil {
		t.Fatalf("extract -o: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read track: %v", err)
	}
	if !strings.Contains(string(data), "Hello there") {
		t.Fatal("written track missing dialogue")
	}
}

func TestRunCommandReportsSummary(t *testing.T) {
	configPath, subtitles := writeTestConfig(t)
	testsupport.WriteSubtitle(t, subtitles, "01", sampleEpisode)

	output, err := runCommand(t, "--config", configPath, "run")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(output, "Exported") {
		t.Fatalf("run output missing summary: %q", output)
	}
}

func TestShowCommandListsExports(t *testing.T) {
	configPath, subtitles := writeTestConfig(t)
	testsupport.WriteSubtitle(t, subtitles, "01", sampleEpisode)

	if _, err := runCommand(t, "--config", configPath, "run"); err != nil {
		t.Fatalf("run: %v", err)
	}
	output, err := runCommand(t, "--config", configPath, "show")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, want := range []string{"01\ten", "01\tja", "01\tko"} {
		if !strings.Contains(output, want) {
			t.Fatalf("show output missing %q: %q", want, output)
		}
	}
}
