// Package playlist searches the Spotify catalog for public playlists
// matching mood keywords and picks one to recommend.
package playlist

import (
	"github.com/zmb3/spotify/v2"
)

const (
	// maxDescriptionLen bounds the description carried on a candidate.
	maxDescriptionLen = 200

	// minQualityTracks is the track count a candidate needs to pass the
	// quality filter.
	minQualityTracks = 10
)

// Candidate is a validated playlist projected from a raw search result.
// Identity is the URL; everything else is display data.
type Candidate struct {
	Name        string
	URL         string
	Description string
	Tracks      int
	Owner       string
	ImageURL    string
}

// newCandidate validates a raw search result and projects it into a
// Candidate. Results without a name, a public Spotify URL, at least one
// track, or an owner are dropped.
func newCandidate(p spotify.SimplePlaylist) (Candidate, bool) {
	url := p.ExternalURLs["spotify"]
	if p.Name == "" || url == "" || p.Tracks.Total == 0 {
		return Candidate{}, false
	}

	owner := p.Owner.DisplayName
	if owner == "" {
		owner = p.Owner.ID
	}
	if owner == "" {
		return Candidate{}, false
	}

	description := p.Description
	if description == "" {
		description = "No description available"
	}

	var imageURL string
	if len(p.Images) > 0 {
		imageURL = p.Images[0].URL
	}

	return Candidate{
		Name:        p.Name,
		URL:         url,
		Description: truncate(description, maxDescriptionLen),
		Tracks:      int(p.Tracks.Total),
		Owner:       owner,
		ImageURL:    imageURL,
	}, true
}

// truncate shortens s to at most n runes, appending an ellipsis marker when
// anything was cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// dedupe removes candidates sharing a URL, keeping the first occurrence and
// preserving first-seen order.
func dedupe(cands []Candidate) []Candidate {
	seen := make(map[string]struct{}, len(cands))
	unique := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if _, ok := seen[c.URL]; ok {
			continue
		}
		seen[c.URL] = struct{}{}
		unique = append(unique, c)
	}
	return unique
}

// filterQuality prefers candidates with at least minQualityTracks tracks,
// falling back to the full set when none qualify.
func filterQuality(cands []Candidate) []Candidate {
	kept := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if c.Tracks >= minQualityTracks {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return cands
	}
	return kept
}
