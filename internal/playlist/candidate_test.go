package playlist

import (
	"strings"
	"testing"

	"github.com/zmb3/spotify/v2"
)

func validPlaylist() spotify.SimplePlaylist {
	return spotify.SimplePlaylist{
		Name:        "Morning Chill",
		Description: "Easy tunes",
		ExternalURLs: map[string]string{
			"spotify": "https://open.spotify.com/playlist/abc123",
		},
		Owner:  spotify.User{DisplayName: "DJ Ana", ID: "ana"},
		Tracks: spotify.PlaylistTracks{Total: 42},
		Images: []spotify.Image{{URL: "https://i.scdn.co/image/cover1"}},
	}
}

func TestNewCandidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*spotify.SimplePlaylist)
		wantOK bool
		check  func(t *testing.T, c Candidate)
	}{
		{
			name:   "valid playlist accepted",
			mutate: func(p *spotify.SimplePlaylist) {},
			wantOK: true,
			check: func(t *testing.T, c Candidate) {
				if c.Name != "Morning Chill" {
					t.Errorf("Name = %q", c.Name)
				}
				if c.URL != "https://open.spotify.com/playlist/abc123" {
					t.Errorf("URL = %q", c.URL)
				}
				if c.Tracks != 42 {
					t.Errorf("Tracks = %d", c.Tracks)
				}
				if c.Owner != "DJ Ana" {
					t.Errorf("Owner = %q", c.Owner)
				}
				if c.ImageURL != "https://i.scdn.co/image/cover1" {
					t.Errorf("ImageURL = %q", c.ImageURL)
				}
			},
		},
		{
			name:   "empty name dropped",
			mutate: func(p *spotify.SimplePlaylist) { p.Name = "" },
			wantOK: false,
		},
		{
			name:   "missing external URL dropped",
			mutate: func(p *spotify.SimplePlaylist) { p.ExternalURLs = nil },
			wantOK: false,
		},
		{
			name:   "zero tracks dropped",
			mutate: func(p *spotify.SimplePlaylist) { p.Tracks.Total = 0 },
			wantOK: false,
		},
		{
			name: "missing owner dropped",
			mutate: func(p *spotify.SimplePlaylist) {
				p.Owner = spotify.User{}
			},
			wantOK: false,
		},
		{
			name: "owner display name falls back to ID",
			mutate: func(p *spotify.SimplePlaylist) {
				p.Owner = spotify.User{ID: "ana"}
			},
			wantOK: true,
			check: func(t *testing.T, c Candidate) {
				if c.Owner != "ana" {
					t.Errorf("Owner = %q, want ana", c.Owner)
				}
			},
		},
		{
			name: "empty description gets a default",
			mutate: func(p *spotify.SimplePlaylist) {
				p.Description = ""
			},
			wantOK: true,
			check: func(t *testing.T, c Candidate) {
				if c.Description != "No description available" {
					t.Errorf("Description = %q", c.Description)
				}
			},
		},
		{
			name: "long description truncated with ellipsis",
			mutate: func(p *spotify.SimplePlaylist) {
				p.Description = strings.Repeat("x", 250)
			},
			wantOK: true,
			check: func(t *testing.T, c Candidate) {
				want := strings.Repeat("x", 200) + "..."
				if c.Description != want {
					t.Errorf("Description length = %d, want %d", len(c.Description), len(want))
				}
			},
		},
		{
			name: "no images leaves image URL empty",
			mutate: func(p *spotify.SimplePlaylist) {
				p.Images = nil
			},
			wantOK: true,
			check: func(t *testing.T, c Candidate) {
				if c.ImageURL != "" {
					t.Errorf("ImageURL = %q, want empty", c.ImageURL)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPlaylist()
			tt.mutate(&p)

			c, ok := newCandidate(p)
			if ok != tt.wantOK {
				t.Fatalf("newCandidate() ok = %v, want %v", ok, tt.wantOK)
			}
			if tt.check != nil {
				tt.check(t, c)
			}
		})
	}
}

func TestTruncateIsRuneSafe(t *testing.T) {
	s := strings.Repeat("å", 201)
	got := truncate(s, 200)
	want := strings.Repeat("å", 200) + "..."
	if got != want {
		t.Errorf("truncate() cut mid-rune: got %d runes", len([]rune(got)))
	}
}

func TestDedupe(t *testing.T) {
	cands := []Candidate{
		{Name: "First", URL: "https://open.spotify.com/playlist/1"},
		{Name: "Second", URL: "https://open.spotify.com/playlist/2"},
		{Name: "Duplicate of first", URL: "https://open.spotify.com/playlist/1"},
		{Name: "Third", URL: "https://open.spotify.com/playlist/3"},
	}

	got := dedupe(cands)

	if len(got) != 3 {
		t.Fatalf("dedupe() len = %d, want 3", len(got))
	}
	// First occurrence wins and order is preserved.
	if got[0].Name != "First" {
		t.Errorf("got[0].Name = %q, want First (first occurrence wins)", got[0].Name)
	}
	if got[1].Name != "Second" || got[2].Name != "Third" {
		t.Errorf("order not preserved: %q, %q", got[1].Name, got[2].Name)
	}
}

func TestFilterQuality(t *testing.T) {
	tests := []struct {
		name      string
		tracks    []int
		wantCount int
	}{
		{
			name:      "mixed keeps only ten or more",
			tracks:    []int{5, 15, 10, 3},
			wantCount: 2,
		},
		{
			name:      "none qualify falls back to the full set",
			tracks:    []int{5, 8, 3},
			wantCount: 3,
		},
		{
			name:      "all qualify",
			tracks:    []int{10, 20, 30},
			wantCount: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cands := make([]Candidate, len(tt.tracks))
			for i, n := range tt.tracks {
				cands[i] = Candidate{Tracks: n}
			}

			got := filterQuality(cands)
			if len(got) != tt.wantCount {
				t.Errorf("filterQuality() len = %d, want %d", len(got), tt.wantCount)
			}
		})
	}
}

func TestPickNeverSelectsFromEmptyFilteredSet(t *testing.T) {
	// None meet the quality bar; selection must still draw from all three.
	cands := []Candidate{
		{Name: "a", URL: "u1", Tracks: 5},
		{Name: "b", URL: "u2", Tracks: 8},
		{Name: "c", URL: "u3", Tracks: 3},
	}

	for range 20 {
		got, err := Pick(cands)
		if err != nil {
			t.Fatalf("Pick() error = %v", err)
		}
		if got.Name == "" {
			t.Fatal("Pick() returned zero candidate")
		}
	}
}

func TestPickEmpty(t *testing.T) {
	if _, err := Pick(nil); err != ErrNoPlaylists {
		t.Errorf("Pick(nil) error = %v, want ErrNoPlaylists", err)
	}
}
