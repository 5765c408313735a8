package catalog

import (
	"strings"
	"testing"
)

func TestEpisodeTitle(t *testing.T) {
	cases := []struct {
		episode string
		want    string
	}{
		{"01", "Daibouken no Tabi ni Deru dasu"},
		{"1", "Daibouken no Tabi ni Deru dasu"},
		{"25", "Koori mo Tokasu Yuujou Power dasu"},
		{"50", "Musashi Tai Kojirou dasu"},
	}
	for _, tc := range cases {
		t.Run(tc.episode, func(t *testing.T) {
			got, err := EpisodeTitle(tc.episode)
			if err != nil {
				t.Fatalf("EpisodeTitle: %v", err)
			}
			if got != tc.want {
				t.Fatalf("EpisodeTitle = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEpisodeTitleErrors(t *testing.T) {
	for _, episode := range []string{"0", "51", "OP", "ED1", "abc", ""} {
		if _, err := EpisodeTitle(episode); err == nil {
			t.Fatalf("expected error for %q", episode)
		}
	}
}

func TestReleaseName(t *testing.T) {
	cases := []struct {
		episode string
		want    string
	}{
		{"01", "Karakuri Kengouden Musashi Road - Episode 01 - Daibouken no Tabi ni Deru dasu[B5FB4766]"},
		{"50", "Karakuri Kengouden Musashi Road - Episode 50 - Musashi Tai Kojirou dasu[887E1455]"},
		{"OP", "Karakuri Kengouden Musashi Road - Extra - Clean Opening[06807E43]"},
		{"ED1", "Karakuri Kengouden Musashi Road - Extra - Clean Ending 1[3240614B]"},
	}
	for _, tc := range cases {
		t.Run(tc.episode, func(t *testing.T) {
			got, err := ReleaseName(tc.episode)
			if err != nil {
				t.Fatalf("ReleaseName: %v", err)
			}
			if got != tc.want {
				t.Fatalf("ReleaseName = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestReleaseNameMatchesEpisodeTitle(t *testing.T) {
	for episode := 1; episode <= episodeCount; episode++ {
		id := string(rune('0'+episode/10)) + string(rune('0'+episode%10))
		name, err := ReleaseName(id)
		if err != nil {
			t.Fatalf("ReleaseName(%s): %v", id, err)
		}
		title, err := EpisodeTitle(id)
		if err != nil {
			t.Fatalf("EpisodeTitle(%s): %v", id, err)
		}
		if !strings.Contains(name, title) {
			t.Fatalf("release name %q does not contain title %q", name, title)
		}
		if !strings.HasPrefix(name, Series) {
			t.Fatalf("release name %q does not start with series title", name)
		}
	}
}

func TestIsExtra(t *testing.T) {
	if !IsExtra("OP") || !IsExtra("ED1") {
		t.Fatal("extras not recognized")
	}
	if IsExtra("01") || IsExtra("") {
		t.Fatal("numbered episode misclassified as extra")
	}
}
