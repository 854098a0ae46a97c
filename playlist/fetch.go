package playlist

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pcmcast-cli/pcmcast/constant"
	"github.com/pcmcast-cli/pcmcast/filesystem"
	"github.com/pcmcast-cli/pcmcast/key"
	"github.com/pcmcast-cli/pcmcast/network"
	"github.com/spf13/viper"
)

// IsPlaylistRef reports whether a media reference points at a playlist document.
func IsPlaylistRef(ref string) bool {
	trimmed := ref
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 && isURL(trimmed) {
		trimmed = trimmed[:i]
	}
	lower := strings.ToLower(trimmed)
	return strings.HasSuffix(lower, ".m3u") || strings.HasSuffix(lower, ".m3u8")
}

// Fetch retrieves and parses the playlist document at location.
//
// Local paths read through the virtualized filesystem; http(s) locations are
// fetched with a bounded timeout and a size cap so a stalled or infinite
// remote response cannot stall the caller.
func Fetch(ctx context.Context, location string) (Playlist, error) {
	document, err := retrieve(ctx, location)
	if err != nil {
		return Playlist{}, err
	}

	return Parse(document, location), nil
}

func retrieve(ctx context.Context, location string) (string, error) {
	if !isURL(location) {
		data, err := filesystem.API().ReadFile(location)
		if err != nil {
			return "", fmt.Errorf("read playlist: %w", err)
		}
		return string(data), nil
	}

	timeout := time.Duration(viper.GetInt(key.PlaylistFetchTimeout)) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return "", fmt.Errorf("build playlist request: %w", err)
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := network.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch playlist: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch playlist: unexpected status %s", resp.Status)
	}

	limit := int64(viper.GetInt(key.PlaylistMaxSize))
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return "", fmt.Errorf("read playlist body: %w", err)
	}

	return string(data), nil
}
