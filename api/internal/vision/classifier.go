package vision

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// TopK is the number of candidates in a Ranking.
const TopK = 3

// ErrTensorShape means a tensor did not come out of Preprocess.
var ErrTensorShape = errors.New("tensor shape mismatch")

// Prediction is one ranked label.
type Prediction struct {
	Index      int
	Label      string
	Confidence float64
}

// Ranking is ordered by descending confidence.
type Ranking []Prediction

// Network runs the frozen model forward and returns raw logits.
type Network interface {
	Forward(in Tensor) ([]float32, error)
}

type Classifier struct {
	net    Network
	labels []string
}

// NewClassifier binds a network to the package label table.
func NewClassifier(net Network) *Classifier {
	return &Classifier{net: net, labels: Labels[:]}
}

// NewClassifierWithLabels is for models trained on a different label table.
func NewClassifierWithLabels(net Network, labels []string) *Classifier {
	return &Classifier{net: net, labels: labels}
}

// Classify returns the TopK most probable labels for one preprocessed image.
// Equal probabilities keep index order.
func (c *Classifier) Classify(in Tensor) (Ranking, error) {
	if len(in) != TensorLen {
		return nil, fmt.Errorf("%w: got %d values, want %d (%dx%dx%d)",
			ErrTensorShape, len(in), TensorLen, Channels, Height, Width)
	}
	logits, err := c.net.Forward(in)
	if err != nil {
		return nil, fmt.Errorf("forward: %w", err)
	}
	if len(logits) != len(c.labels) {
		return nil, fmt.Errorf("%w: model produced %d logits for %d labels",
			ErrTensorShape, len(logits), len(c.labels))
	}

	probs := Softmax(logits)
	idx := topK(probs, TopK)
	out := make(Ranking, 0, len(idx))
	for _, i := range idx {
		out = append(out, Prediction{Index: i, Label: c.labels[i], Confidence: probs[i]})
	}
	return out, nil
}

// Softmax is computed in float64 with the max logit subtracted.
func Softmax(logits []float32) []float64 {
	if len(logits) == 0 {
		return nil
	}
	maxv := float64(logits[0])
	for _, v := range logits[1:] {
		maxv = math.Max(maxv, float64(v))
	}
	out := make([]float64, len(logits))
	var sum float64
	for i, v := range logits {
		out[i] = math.Exp(float64(v) - maxv)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// topK returns at most k indices. With a single class it still returns a
// one element slice.
func topK(probs []float64, k int) []int {
	idx := make([]int, len(probs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return probs[idx[a]] > probs[idx[b]] })
	if k > len(idx) {
		k = len(idx)
	}
	return idx[:k]
}
