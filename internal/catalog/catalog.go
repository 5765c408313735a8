package catalog

import (
	"fmt"
	"strconv"
)

// Series is the full series title shared by every release name.
const Series = "Karakuri Kengouden Musashi Road"

// Extra episode identifiers. These carry no numbered title and their
// release names live at the tail of the release table.
const (
	ExtraOpening = "OP"
	ExtraEnding  = "ED1"
)

const episodeCount = 50

// IsExtra reports whether the episode identifier names a clean opening or
// ending rather than a numbered episode.
func IsExtra(episode string) bool {
	return episode == ExtraOpening || episode == ExtraEnding
}

// EpisodeTitle returns the romanized title for a numbered episode.
// Extras have no episode title.
func EpisodeTitle(episode string) (string, error) {
	n, err := episodeNumber(episode)
	if err != nil {
		return "", err
	}
	return episodeTitles[n-1], nil
}

// ReleaseName returns the canonical release file name, without extension,
// for the given episode identifier.
func ReleaseName(episode string) (string, error) {
	switch episode {
	case ExtraOpening:
		return releaseNames[episodeCount+1], nil
	case ExtraEnding:
		return releaseNames[episodeCount], nil
	}
	n, err := episodeNumber(episode)
	if err != nil {
		return "", err
	}
	return releaseNames[n-1], nil
}

func episodeNumber(episode string) (int, error) {
	n, err := strconv.Atoi(episode)
	if err != nil {
		return 0, fmt.Errorf("catalog: unknown episode %q", episode)
	}
	if n < 1 || n > episodeCount {
		return 0, fmt.Errorf("catalog: episode %d out of range", n)
	}
	return n, nil
}
