package verdict

import (
	"context"
	"math"
	"strings"

	"github.com/veriscan/veriscan/src/evidence"
)

// Label is the authenticity verdict for a piece of content.
type Label string

const (
	LabelReal      Label = "REAL"
	LabelFake      Label = "FAKE"
	LabelUncertain Label = "UNCERTAIN"
	// LabelUnknown means no resolvable text existed. It is produced only by
	// the short-circuit path, never by the fusion math.
	LabelUnknown Label = "UNKNOWN"
)

// Content is the subject under evaluation. ResolvedText is what the
// content-acquisition layer extracted; the engine itself never fetches.
type Content struct {
	Text         string
	URL          string
	ResolvedText string
}

// Verdict is the outcome of text analysis.
type Verdict struct {
	Label       Label           `json:"verdict"`
	Confidence  float64         `json:"confidence"`
	Similarity  float64         `json:"similarity"`
	Evidence    []evidence.Item `json:"evidence"`
	Explanation string          `json:"explanation"`
}

// Classifier scores text with a pre-trained model.
type Classifier interface {
	ProbabilityReal(text string) float64
}

// Retriever fetches corroborating evidence for a topic query. Failures are
// absorbed upstream; an empty slice is a valid degraded result.
type Retriever interface {
	Retrieve(ctx context.Context, query string) []evidence.Item
}

// Scorer measures topical closeness between content and evidence headlines.
type Scorer interface {
	Score(content string, items []evidence.Item) float64
}

// Config holds the fusion weights and thresholds.
type Config struct {
	SimilarityGate     float64 // evidence weight counts only above this
	RealThreshold      float64 // fused score >= this -> REAL
	UncertainThreshold float64 // fused score >= this -> UNCERTAIN, else FAKE
	MLBonusThreshold   float64 // classifier probability must exceed this
	MLBonus            float64 // flat bonus added when it does
	QueryChars         int     // leading chars of content used as search query
	MinTextChars       int     // shorter resolved text counts as unresolvable
}

func DefaultConfig() Config {
	return Config{
		SimilarityGate:     0.25,
		RealThreshold:      0.6,
		UncertainThreshold: 0.35,
		MLBonusThreshold:   0.7,
		MLBonus:            0.2,
		QueryChars:         120,
		MinTextChars:       50,
	}
}

// Fixed explanation strings keyed by which signals dominated.
const (
	explainCorroborated   = "Corroborated by trusted sources with classifier support"
	explainEvidenceOnly   = "Corroborated by trusted sources; classifier inconclusive"
	explainClassifierOnly = "Classifier support only; no corroborating coverage found"
	explainNoSignal       = "No corroborating coverage and no classifier support"
	explainUnresolvable   = "No resolvable content to analyze"
)

// Engine fuses classifier probability, evidence trust weights and headline
// similarity into a single verdict. Pure given its collaborators' outputs:
// identical inputs and identical retrieval outcomes yield identical verdicts.
type Engine struct {
	classifier Classifier
	retriever  Retriever
	scorer     Scorer
	config     Config
}

func NewEngine(classifier Classifier, retriever Retriever, scorer Scorer, config Config) *Engine {
	return &Engine{classifier: classifier, retriever: retriever, scorer: scorer, config: config}
}

// Evaluate runs the full fusion pipeline for one piece of content.
func (e *Engine) Evaluate(ctx context.Context, content Content) Verdict {
	text := strings.TrimSpace(content.ResolvedText)
	if len([]rune(text)) < e.config.MinTextChars {
		return Verdict{Label: LabelUnknown, Confidence: 0, Explanation: explainUnresolvable}
	}

	prob := clamp01(e.classifier.ProbabilityReal(text))

	query := text
	if r := []rune(query); len(r) > e.config.QueryChars {
		query = string(r[:e.config.QueryChars])
	}
	items := e.retriever.Retrieve(ctx, query)

	sim := clamp01(e.scorer.Score(text, items))

	// Binary gate: evidence contributes its full trust weight only when the
	// best headline match clears the similarity threshold.
	var evidenceWeight float64
	if sim > e.config.SimilarityGate {
		for _, it := range items {
			evidenceWeight += it.Weight
		}
	}

	var bonus float64
	if prob > e.config.MLBonusThreshold {
		bonus = e.config.MLBonus
	}

	score := clamp01(evidenceWeight + bonus)

	var label Label
	switch {
	case score >= e.config.RealThreshold:
		label = LabelReal
	case score >= e.config.UncertainThreshold:
		label = LabelUncertain
	default:
		label = LabelFake
	}

	return Verdict{
		Label:       label,
		Confidence:  round2(score * 100),
		Similarity:  sim,
		Evidence:    items,
		Explanation: explain(evidenceWeight, bonus),
	}
}

func explain(evidenceWeight, bonus float64) string {
	switch {
	case evidenceWeight > 0 && bonus > 0:
		return explainCorroborated
	case evidenceWeight > 0:
		return explainEvidenceOnly
	case bonus > 0:
		return explainClassifierOnly
	default:
		return explainNoSignal
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
