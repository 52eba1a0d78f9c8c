package filesense

import (
	"fmt"
	"strings"
)

// PredictionMode selects how much confidence a model prediction needs
// before it is reported as is
type PredictionMode string

const (
	// BestGuess always reports the model prediction
	BestGuess PredictionMode = "best-guess"

	// MediumConfidence overwrites predictions below the medium threshold
	MediumConfidence PredictionMode = "medium-confidence"

	// HighConfidence overwrites predictions below the per-label threshold
	HighConfidence PredictionMode = "high-confidence"
)

// ParsePredictionMode parses a prediction mode name
func ParsePredictionMode(s string) (PredictionMode, error) {
	switch mode := PredictionMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case BestGuess, MediumConfidence, HighConfidence:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: unknown prediction mode %q", ErrInvalidConfig, s)
	}
}

// highConfidenceThresholds overrides the high-confidence threshold for
// labels the model tends to confuse with each other
var highConfidenceThresholds = map[ContentType]float32{
	"markdown": 0.75,
	"ini":      0.95,
	"toml":     0.95,
	"yaml":     0.95,
}

// overwriteMap replaces model labels that are never reported directly
var overwriteMap = map[ContentType]ContentType{
	LabelRandomBytes: LabelUnknown,
	LabelRandomTxt:   LabelTxt,
}

// thresholds holds the resolved confidence thresholds of a session
type thresholds struct {
	mode   PredictionMode
	medium float32
	high   float32
}

func (t thresholds) forLabel(label ContentType) float32 {
	switch t.mode {
	case BestGuess:
		return 0
	case MediumConfidence:
		return t.medium
	default:
		if v, ok := highConfidenceThresholds[label]; ok && v > t.high {
			return v
		}
		return t.high
	}
}

// resolve applies the overwrite map and the confidence threshold to a
// model prediction
func (t thresholds) resolve(p Prediction) Inferred {
	out := Inferred{InferredType: p.Label, Confidence: p.Score}
	if mapped, ok := overwriteMap[p.Label]; ok {
		out.Overwrite = &Overwrite{ContentType: mapped, Reason: OverwriteMap}
		return out
	}
	if p.Score < t.forLabel(p.Label) {
		fallback := LabelUnknown
		if p.Label.IsText() {
			fallback = LabelTxt
		}
		out.Overwrite = &Overwrite{ContentType: fallback, Reason: LowConfidence}
	}
	return out
}
