package metadata

import (
	"context"
	"os/exec"
	"time"

	"github.com/metafates/gache"
	"github.com/pcmcast-cli/pcmcast/ffmpeg"
	"github.com/pcmcast-cli/pcmcast/filesystem"
	"github.com/pcmcast-cli/pcmcast/key"
	"github.com/pcmcast-cli/pcmcast/log"
	"github.com/pcmcast-cli/pcmcast/where"
	"github.com/spf13/viper"
)

// cacher persists probe results on disk, keyed by track URI.
var cacher = gache.New[map[string]*Media](
	&gache.Options{
		Path:       where.MetadataCache(),
		Lifetime:   time.Hour * 24 * 7,
		FileSystem: &filesystem.GacheFs{},
	},
)

// Probe runs the decode program in metadata-probe mode against a URI.
//
// Metadata being unavailable is not an error condition for the caller: a
// non-zero exit, a timeout or unparsable output all yield (nil, nil). An
// error is returned only when the probe could not be attempted at all.
func Probe(ctx context.Context, uri string) (*Media, error) {
	if !viper.GetBool(key.MetadataProbe) {
		return nil, nil
	}

	if media, ok := cached(uri); ok {
		return media, nil
	}

	timeout := time.Duration(viper.GetInt(key.PlayerProbeTimeout)) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, ffmpeg.Program(), ffmpeg.ProbeArgs(uri)...)

	// Tags arrive on stdout, container info on stderr; both feed the parser.
	out, err := cmd.CombinedOutput()
	if err != nil {
		// Non-zero exit or timeout degrades to "no metadata".
		log.Debugf("metadata probe for %s: %v", uri, err)
		return nil, nil
	}

	media := Parse(string(out))
	if media != nil {
		remember(uri, media)
	}
	return media, nil
}

// cached looks up a previously probed URI.
func cached(uri string) (*Media, bool) {
	if !viper.GetBool(key.MetadataCache) {
		return nil, false
	}

	stored, expired, err := cacher.Get()
	if err != nil || expired || stored == nil {
		return nil, false
	}

	media, ok := stored[uri]
	return media, ok
}

// remember stores a probe result for later lookups.
func remember(uri string, media *Media) {
	if !viper.GetBool(key.MetadataCache) {
		return
	}

	stored, expired, err := cacher.Get()
	if err != nil || expired || stored == nil {
		stored = make(map[string]*Media)
	}

	stored[uri] = media
	if err := cacher.Set(stored); err != nil {
		log.Warnf("persist metadata cache: %v", err)
	}
}
