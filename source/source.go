// Package source defines the media-source boundary consumed by the playback controller.
//
// Resolution of abstract media identifiers to concrete URLs is a host
// concern; the controller only requires something satisfying Resolver.
package source

// Item is a single browsable media entry.
type Item struct {
	// ID is the reference to hand back to Resolve or PlayMedia.
	ID string
	// Name is the display label.
	Name string
	// Dir marks a container that can be browsed further.
	Dir bool
}

// Resolver turns media identifiers into playable URLs and enumerates
// browsable media.
type Resolver interface {
	// Resolve maps a media identifier to a concrete URL or filesystem path.
	Resolve(mediaID string) (string, error)

	// Browse lists the media available under a container identifier.
	Browse(path string) ([]Item, error)
}
