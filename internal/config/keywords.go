package config

import "moodtune/internal/mood"

// moodKeywords maps each mood to the ordered search terms used against the
// playlist catalog. Read-only for the life of the process.
var moodKeywords = map[mood.Label][]string{
	mood.Happy:    {"happy", "party", "upbeat", "energetic", "dance"},
	mood.Sad:      {"sad", "melancholy", "blues", "emotional", "heartbreak"},
	mood.Angry:    {"rock", "metal", "aggressive", "intense", "hardcore"},
	mood.Fear:     {"ambient", "calm", "peaceful", "meditation", "relaxing"},
	mood.Surprise: {"pop", "hits", "trending", "viral", "popular"},
	mood.Disgust:  {"alternative", "indie", "experimental", "underground"},
	mood.Neutral:  {"chill", "lofi", "background", "study", "focus"},
}

// KeywordsFor returns a copy of the search keywords for a mood. Unknown
// labels fall back to the neutral list.
func KeywordsFor(l mood.Label) []string {
	ks, ok := moodKeywords[l]
	if !ok {
		ks = moodKeywords[mood.Neutral]
	}
	out := make([]string, len(ks))
	copy(out, ks)
	return out
}
