package source

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/pcmcast-cli/pcmcast/filesystem"
	"github.com/samber/lo"
)

// audioExtensions lists file suffixes surfaced when browsing directories.
var audioExtensions = []string{
	".mp3", ".flac", ".ogg", ".oga", ".opus", ".m4a", ".aac", ".wav", ".wma",
	".m3u", ".m3u8",
}

// Direct resolves already-concrete media references: URLs pass through
// untouched and local paths are validated against the filesystem.
type Direct struct{}

// Resolve validates a media reference.
func (Direct) Resolve(mediaID string) (string, error) {
	trimmed := strings.TrimSpace(mediaID)
	if trimmed == "" {
		return "", fmt.Errorf("empty media reference")
	}

	// Guard against references that would be parsed as program flags.
	if strings.HasPrefix(trimmed, "-") {
		return "", fmt.Errorf("media reference %q must not start with '-'", trimmed)
	}

	if strings.Contains(trimmed, "://") {
		return trimmed, nil
	}

	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", trimmed, err)
	}

	exists, err := filesystem.API().Exists(abs)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("no such media: %s", abs)
	}

	return abs, nil
}

// Browse lists audio files, playlists and subdirectories under a directory.
func (Direct) Browse(path string) ([]Item, error) {
	entries, err := filesystem.API().ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("browse %s: %w", path, err)
	}

	var items []Item
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		full := filepath.Join(path, entry.Name())
		if entry.IsDir() {
			items = append(items, Item{ID: full, Name: entry.Name(), Dir: true})
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if lo.Contains(audioExtensions, ext) {
			items = append(items, Item{ID: full, Name: entry.Name()})
		}
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Dir != items[j].Dir {
			return items[i].Dir
		}
		return items[i].Name < items[j].Name
	})

	return items, nil
}

// Filter narrows browse results to items fuzzy-matching a query.
func Filter(items []Item, query string) []Item {
	if query == "" {
		return items
	}

	return lo.Filter(items, func(item Item, _ int) bool {
		return fuzzy.MatchFold(query, item.Name)
	})
}
