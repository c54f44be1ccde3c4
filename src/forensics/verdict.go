package forensics

// Config holds the forensic thresholds and their point values.
type Config struct {
	BlurThreshold   float64 // Laplacian variance below this is suspicious
	NoiseThreshold  float64 // intensity stddev below this is suspicious
	MinDimension    int     // min(width, height) below this is suspicious
	BlurPoints      int
	NoisePoints     int
	DimensionPoints int
	FakeThreshold   int // confidence at or above this -> FAKE
}

func DefaultConfig() Config {
	return Config{
		BlurThreshold:   60,
		NoiseThreshold:  15,
		MinDimension:    256,
		BlurPoints:      40,
		NoisePoints:     30,
		DimensionPoints: 30,
		FakeThreshold:   60,
	}
}

// Verdict is the outcome of image analysis.
type Verdict struct {
	Label      string `json:"verdict"`
	Confidence int    `json:"confidence"`
}

// Engine accumulates forensic signals into a deepfake confidence. Coarse
// heuristic triage, not a learned classifier: each signal is weak evidence
// of manipulation, and only their sum crosses into a FAKE call.
type Engine struct {
	config Config
}

func NewEngine(config Config) *Engine {
	return &Engine{config: config}
}

// Evaluate maps signals to a verdict. Deterministic: the label is a pure
// function of the signals and the configured threshold table.
func (e *Engine) Evaluate(s Signals) Verdict {
	score := 0
	if s.BlurVariance < e.config.BlurThreshold {
		score += e.config.BlurPoints // low detail / smoothing artifact
	}
	if s.NoiseStdDev < e.config.NoiseThreshold {
		score += e.config.NoisePoints // unnaturally clean noise floor
	}
	if min(s.Width, s.Height) < e.config.MinDimension {
		score += e.config.DimensionPoints // low-resolution, recompressed source
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	label := "REAL"
	if score >= e.config.FakeThreshold {
		label = "FAKE"
	}
	return Verdict{Label: label, Confidence: score}
}
