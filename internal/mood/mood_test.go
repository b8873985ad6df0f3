package mood

import (
	"errors"
	"testing"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		name      string
		counts    FeatureCounts
		wantLabel Label
		wantOK    bool
	}{
		{
			name:      "no face yields no label",
			counts:    FeatureCounts{Faces: 0, Smiles: 0, Eyes: 0},
			wantLabel: "",
			wantOK:    false,
		},
		{
			name:      "no face ignores stray smile boxes",
			counts:    FeatureCounts{Faces: 0, Smiles: 3, Eyes: 2},
			wantLabel: "",
			wantOK:    false,
		},
		{
			name:      "smile wins",
			counts:    FeatureCounts{Faces: 1, Smiles: 1, Eyes: 0},
			wantLabel: Happy,
			wantOK:    true,
		},
		{
			name:      "smile takes priority over eyes",
			counts:    FeatureCounts{Faces: 1, Smiles: 2, Eyes: 2},
			wantLabel: Happy,
			wantOK:    true,
		},
		{
			name:      "both eyes open and no smile is neutral",
			counts:    FeatureCounts{Faces: 1, Smiles: 0, Eyes: 2},
			wantLabel: Neutral,
			wantOK:    true,
		},
		{
			name:      "more than two eye boxes is still neutral",
			counts:    FeatureCounts{Faces: 2, Smiles: 0, Eyes: 4},
			wantLabel: Neutral,
			wantOK:    true,
		},
		{
			name:      "one eye and no smile is sad",
			counts:    FeatureCounts{Faces: 1, Smiles: 0, Eyes: 1},
			wantLabel: Sad,
			wantOK:    true,
		},
		{
			name:      "face with nothing else is sad",
			counts:    FeatureCounts{Faces: 1, Smiles: 0, Eyes: 0},
			wantLabel: Sad,
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Infer(tt.counts)
			if ok != tt.wantOK {
				t.Fatalf("Infer(%+v) ok = %v, want %v", tt.counts, ok, tt.wantOK)
			}
			if got != tt.wantLabel {
				t.Errorf("Infer(%+v) = %q, want %q", tt.counts, got, tt.wantLabel)
			}
		})
	}
}

func TestParse(t *testing.T) {
	for _, l := range All() {
		got, err := Parse(string(l))
		if err != nil {
			t.Errorf("Parse(%q) error = %v", l, err)
		}
		if got != l {
			t.Errorf("Parse(%q) = %q", l, got)
		}
	}

	if _, err := Parse("ecstatic"); !errors.Is(err, ErrUnknownLabel) {
		t.Errorf("Parse(ecstatic) error = %v, want ErrUnknownLabel", err)
	}
	if _, err := Parse(""); !errors.Is(err, ErrUnknownLabel) {
		t.Errorf("Parse(\"\") error = %v, want ErrUnknownLabel", err)
	}
}
