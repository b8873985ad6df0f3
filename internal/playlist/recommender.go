package playlist

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/zmb3/spotify/v2"
)

// ErrNoPlaylists signals that no valid playlist was found anywhere, even
// after the generic-keyword fallback. It reports absence, not failure.
var ErrNoPlaylists = errors.New("no playlists found")

// genericKeywords is the broad retry list used when the mood-specific
// keywords come up empty.
var genericKeywords = []string{"music", "playlist", "songs"}

// DefaultSearchDelay spaces out per-keyword requests to stay friendly with
// the catalog's rate limits.
const DefaultSearchDelay = 100 * time.Millisecond

// Searcher is the slice of the Spotify client the recommender needs.
type Searcher interface {
	Search(ctx context.Context, query string, t spotify.SearchType, opts ...spotify.RequestOption) (*spotify.SearchResult, error)
	FeaturedPlaylists(ctx context.Context, opts ...spotify.RequestOption) (string, *spotify.SimplePlaylistPage, error)
}

// Config holds recommender tunables.
type Config struct {
	Market string        // ISO country code scoping searches
	Limit  int           // results per keyword, capped at Spotify's 50
	Delay  time.Duration // pause between keyword searches; 0 means DefaultSearchDelay
}

// Recommender turns keyword lists into a single playlist recommendation.
type Recommender struct {
	api    Searcher
	market string
	limit  int
	delay  time.Duration
	sleep  func(time.Duration)
	log    zerolog.Logger
}

// New creates a Recommender over an authenticated Spotify client.
func New(api Searcher, cfg Config, log zerolog.Logger) *Recommender {
	if cfg.Market == "" {
		cfg.Market = "US"
	}
	if cfg.Limit <= 0 {
		cfg.Limit = 20
	}
	if cfg.Limit > 50 {
		cfg.Limit = 50
	}
	if cfg.Delay == 0 {
		cfg.Delay = DefaultSearchDelay
	}
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}
	return &Recommender{
		api:    api,
		market: cfg.Market,
		limit:  cfg.Limit,
		delay:  cfg.Delay,
		sleep:  time.Sleep,
		log:    log,
	}
}

// Search runs one catalog search per keyword and returns the merged,
// validated, URL-deduplicated candidates in first-seen order. A failed
// keyword is logged and skipped; it never aborts the overall search.
func (r *Recommender) Search(ctx context.Context, keywords []string) []Candidate {
	var all []Candidate
	searched := false

	for _, keyword := range keywords {
		if strings.TrimSpace(keyword) == "" {
			continue
		}
		if ctx.Err() != nil {
			break
		}

		// The delay separates consecutive requests only; neither the first
		// nor the last request pays it.
		if searched {
			r.sleep(r.delay)
		}
		searched = true

		// Quote the keyword for tighter phrase matching.
		results, err := r.api.Search(ctx, fmt.Sprintf("%q", keyword), spotify.SearchTypePlaylist,
			spotify.Limit(r.limit), spotify.Market(r.market))
		if err != nil {
			r.log.Warn().Err(err).Str("keyword", keyword).Msg("playlist search failed, skipping keyword")
			continue
		}

		if results == nil || results.Playlists == nil {
			r.log.Debug().Str("keyword", keyword).Msg("no results for keyword")
			continue
		}

		found := 0
		for _, p := range results.Playlists.Playlists {
			if c, ok := newCandidate(p); ok {
				all = append(all, c)
				found++
			}
		}
		r.log.Debug().Str("keyword", keyword).Int("candidates", found).Msg("keyword searched")
	}

	unique := dedupe(all)
	r.log.Info().Int("unique", len(unique)).Int("raw", len(all)).Msg("search complete")
	return unique
}

// Recommend picks one playlist for the given keywords. When they yield
// nothing it retries once with a generic keyword list before reporting
// ErrNoPlaylists.
func (r *Recommender) Recommend(ctx context.Context, keywords []string) (Candidate, error) {
	cands := r.Search(ctx, keywords)

	if len(cands) == 0 {
		r.log.Warn().Msg("no playlists for mood keywords, trying broader search")
		cands = r.Search(ctx, genericKeywords)
	}

	return Pick(cands)
}

// Featured fetches the catalog's featured playlists, validated and projected
// the same way as search results. It is an alternate source for callers that
// ask for it explicitly; Recommend never consults it.
func (r *Recommender) Featured(ctx context.Context) ([]Candidate, error) {
	_, page, err := r.api.FeaturedPlaylists(ctx, spotify.Limit(r.limit), spotify.Country(r.market))
	if err != nil {
		return nil, fmt.Errorf("fetching featured playlists: %w", err)
	}
	if page == nil {
		return nil, nil
	}

	var cands []Candidate
	for _, p := range page.Playlists {
		if c, ok := newCandidate(p); ok {
			cands = append(cands, c)
		}
	}
	return dedupe(cands), nil
}

// Pick applies the quality filter and chooses one candidate uniformly at
// random. Returns ErrNoPlaylists when there is nothing to choose from.
func Pick(cands []Candidate) (Candidate, error) {
	if len(cands) == 0 {
		return Candidate{}, ErrNoPlaylists
	}
	quality := filterQuality(cands)
	return quality[rand.IntN(len(quality))], nil
}
