// Package history provides the implementation for tracking and persisting playback records.
package history

import (
	"github.com/metafates/gache"
	"github.com/pcmcast-cli/pcmcast/filesystem"
	"github.com/pcmcast-cli/pcmcast/where"
)

// cacher provides an abstracted, disk-backed registry for playback records.
var cacher = gache.New[map[string]*Record](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of playback records from the persistent store.
func Get() (map[string]*Record, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Record), nil
	}
	return cached, nil
}

// Save persists a playback record, keyed by track URI.
// Re-playing a track refreshes its timestamp and keeps the furthest observed position.
func Save(record *Record) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	if existing, exists := saved[record.URI]; exists {
		if record.Position < existing.Position {
			record.Position = existing.Position
		}
	}

	saved[record.URI] = record
	return cacher.Set(saved)
}

// Remove permanently deletes a specific playback record.
func Remove(record *Record) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, record.URI)
	return cacher.Set(saved)
}
