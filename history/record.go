package history

import (
	"fmt"
	"time"

	"github.com/pcmcast-cli/pcmcast/util"
)

// Record represents a single played track preserved in the user's history.
type Record struct {
	URI      string    `json:"uri"`
	Title    string    `json:"title"`
	PlayedAt time.Time `json:"played_at"`
	// Position is the furthest playback position reached, in seconds.
	Position int `json:"position"`
}

func (r *Record) String() string {
	name := r.Title
	if name == "" {
		name = r.URI
	}
	return fmt.Sprintf("%s @ %s", name, util.FormatTime(r.Position))
}
