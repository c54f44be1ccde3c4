package classifier

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testModel() *Model {
	return &Model{
		Vocabulary: map[string]int{"economy": 0, "shocking": 1, "bank": 2},
		IDF:        []float64{1.0, 1.2, 1.0},
		Weights:    []float64{2.5, -3.0, 1.5},
		Intercept:  0,
	}
}

func TestProbabilityInRange(t *testing.T) {
	m := testModel()
	inputs := []string{
		"economy bank economy",
		"shocking shocking shocking",
		"nothing from the vocabulary here",
		"",
		strings.Repeat("economy ", 5000),
	}
	for _, in := range inputs {
		p := m.ProbabilityReal(in)
		if p < 0 || p > 1 {
			t.Fatalf("probability %v out of [0,1] for %q...", p, in[:min(len(in), 30)])
		}
	}
}

func TestPositiveAndNegativeSignals(t *testing.T) {
	m := testModel()
	if p := m.ProbabilityReal("economy bank report"); p <= 0.5 {
		t.Fatalf("positive-weight terms should score above 0.5, got %v", p)
	}
	if p := m.ProbabilityReal("shocking news today"); p >= 0.5 {
		t.Fatalf("negative-weight terms should score below 0.5, got %v", p)
	}
}

func TestUnknownVocabularyIsNeutral(t *testing.T) {
	m := testModel()
	if p := m.ProbabilityReal("completely unrelated words"); p != 0.5 {
		t.Fatalf("zero vector with zero intercept should be 0.5 exactly, got %v", p)
	}
}

func TestDeterministic(t *testing.T) {
	m := testModel()
	text := "economy bank shocking economy"
	if m.ProbabilityReal(text) != m.ProbabilityReal(text) {
		t.Fatal("scoring must be deterministic")
	}
}

func TestLongInputTruncated(t *testing.T) {
	m := testModel()
	// Positive prefix, negative flood after the truncation point: the tail
	// must not influence the score.
	text := strings.Repeat("economy ", 1250) + strings.Repeat(" shocking", 5000)
	if p := m.ProbabilityReal(text); p <= 0.5 {
		t.Fatalf("text beyond the truncation bound should be ignored, got %v", p)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.json")
	raw, err := json.Marshal(testModel())
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if p := m.ProbabilityReal("economy"); p <= 0.5 {
		t.Fatalf("loaded model should behave like the original, got %v", p)
	}
}

func TestLoadRejectsShapeMismatch(t *testing.T) {
	cases := []struct {
		name string
		bad  Model
	}{
		{
			"idf shorter than vocabulary",
			Model{
				Vocabulary: map[string]int{"a": 0, "b": 1},
				IDF:        []float64{1},
				Weights:    []float64{1, 2},
			},
		},
		{
			"index beyond weight vector",
			Model{
				Vocabulary: map[string]int{"good": 0, "bad": 5},
				IDF:        []float64{1, 1},
				Weights:    []float64{1, 1},
			},
		},
		{
			"negative index",
			Model{
				Vocabulary: map[string]int{"good": -1, "bad": 1},
				IDF:        []float64{1, 1},
				Weights:    []float64{1, 1},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "model.json")
			raw, _ := json.Marshal(tc.bad)
			if err := os.WriteFile(path, raw, 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Fatal("expected artifact validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing artifact")
	}
}
