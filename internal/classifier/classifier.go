package classifier

import (
	"context"
	"errors"
	"sort"
)

// ErrUndecodableImage is returned when the model cannot decode the payload.
var ErrUndecodableImage = errors.New("image could not be decoded")

// Prediction is one ranked label.
type Prediction struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	ClassID    int     `json:"class_id"`
}

// Result contains the ranked predictions returned by the classifier service.
type Result struct {
	Predictions []Prediction
}

// Top returns the highest ranked prediction.
func (r *Result) Top() (Prediction, bool) {
	if r == nil || len(r.Predictions) == 0 {
		return Prediction{}, false
	}
	return r.Predictions[0], true
}

// Alternatives returns every prediction after the top one.
func (r *Result) Alternatives() []Prediction {
	if r == nil || len(r.Predictions) < 2 {
		return []Prediction{}
	}
	return r.Predictions[1:]
}

// ModelInfo describes the deployed model.
type ModelInfo struct {
	Name       string         `json:"name,omitempty"`
	Version    string         `json:"version,omitempty"`
	InputSize  []int          `json:"input_size,omitempty"`
	NumClasses int            `json:"num_classes"`
	Labels     []string       `json:"labels"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// Client exposes the subset of functionality used by the scale flow.
type Client interface {
	Classify(ctx context.Context, image []byte, topK int) (*Result, error)
	ModelInfo(ctx context.Context) (*ModelInfo, error)
}

// Rank sorts predictions by descending confidence and keeps at most topK.
func Rank(predictions []Prediction, topK int) []Prediction {
	ranked := make([]Prediction, len(predictions))
	copy(ranked, predictions)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Confidence > ranked[j].Confidence
	})
	if topK > 0 && len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}
