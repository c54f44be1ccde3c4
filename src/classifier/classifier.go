package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"unicode"
)

// maxScoreChars bounds the text fed into scoring. Longer inputs are
// truncated, never rejected.
const maxScoreChars = 10000

// Model is a trained logistic regression over TF-IDF features, exported
// offline as a JSON artifact. It is loaded once at startup and never
// mutated, so concurrent scoring needs no locking.
type Model struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
	Weights    []float64      `json:"weights"`
	Intercept  float64        `json:"intercept"`
}

// Load reads a model artifact from disk and validates its shape.
func Load(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	var m Model
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}
	if len(m.Vocabulary) == 0 {
		return nil, fmt.Errorf("model %s: empty vocabulary", path)
	}
	if len(m.IDF) != len(m.Vocabulary) || len(m.Weights) != len(m.Vocabulary) {
		return nil, fmt.Errorf("model %s: vocabulary/idf/weights size mismatch (%d/%d/%d)",
			path, len(m.Vocabulary), len(m.IDF), len(m.Weights))
	}
	// Index values must address the weight vector; a bad artifact fails at
	// boot, never inside a request.
	for term, idx := range m.Vocabulary {
		if idx < 0 || idx >= len(m.Weights) {
			return nil, fmt.Errorf("model %s: term %q index %d out of range [0,%d)",
				path, term, idx, len(m.Weights))
		}
	}
	return &m, nil
}

// ProbabilityReal scores text and returns the probability that it is real
// news, always in [0, 1]. Total for any well-formed input.
func (m *Model) ProbabilityReal(text string) float64 {
	if r := []rune(text); len(r) > maxScoreChars {
		text = string(r[:maxScoreChars])
	}

	// Sparse TF vector over the trained vocabulary.
	tf := make(map[int]float64)
	for _, tok := range tokenize(text) {
		if idx, ok := m.Vocabulary[tok]; ok {
			tf[idx]++
		}
	}

	// TF-IDF with L2 normalization, matching the offline vectorizer.
	var norm float64
	for idx := range tf {
		tf[idx] *= m.IDF[idx]
		norm += tf[idx] * tf[idx]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range tf {
			tf[idx] /= norm
		}
	}

	z := m.Intercept
	for idx, v := range tf {
		z += m.Weights[idx] * v
	}

	p := 1 / (1 + math.Exp(-z))
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
