package vision_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"breed-bot/api/internal/vision"
)

type fakeNetwork struct {
	logits []float32
	err    error
	calls  int
}

func (f *fakeNetwork) Forward(vision.Tensor) ([]float32, error) {
	f.calls++
	return f.logits, f.err
}

func logitsWith(peaks map[int]float32) []float32 {
	out := make([]float32, vision.NumClasses)
	for i, v := range peaks {
		out[i] = v
	}
	return out
}

func TestLabels(t *testing.T) {
	req := require.New(t)
	req.Equal(120, vision.NumClasses)
	req.Equal("Afghan_hound", vision.Labels[0])
	req.Equal("Labrador_retriever", vision.Labels[40])
	req.Equal("beagle", vision.Labels[77])
	req.Equal("golden_retriever", vision.Labels[95])
	req.Equal("wire-haired_fox_terrier", vision.Labels[119])

	seen := map[string]bool{}
	for _, l := range vision.Labels {
		req.False(seen[l], "duplicate label %s", l)
		seen[l] = true
	}
}

func TestClassifier_Classify(t *testing.T) {
	tests := []struct {
		description string
		logits      []float32
		wantIdx     []int
	}{
		{
			description: "clear winner order",
			logits:      logitsWith(map[int]float32{40: 9, 95: 7, 77: 5}),
			wantIdx:     []int{40, 95, 77},
		},
		{
			description: "ties keep lowest index first",
			logits:      logitsWith(map[int]float32{10: 3, 5: 3, 7: 3, 2: 1}),
			wantIdx:     []int{5, 7, 10},
		},
		{
			description: "uniform logits pick first three",
			logits:      make([]float32, vision.NumClasses),
			wantIdx:     []int{0, 1, 2},
		},
		{
			description: "large logits stay finite",
			logits:      logitsWith(map[int]float32{3: 1000, 4: 999}),
			wantIdx:     []int{3, 4, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			c := vision.NewClassifier(&fakeNetwork{logits: tt.logits})

			got, err := c.Classify(make(vision.Tensor, vision.TensorLen))
			req.NoError(err)
			req.Len(got, vision.TopK)

			for i, p := range got {
				req.Equal(tt.wantIdx[i], p.Index)
				req.Equal(vision.Labels[p.Index], p.Label)
				req.GreaterOrEqual(p.Confidence, 0.0)
				req.LessOrEqual(p.Confidence, 1.0)
				if i > 0 {
					req.LessOrEqual(p.Confidence, got[i-1].Confidence)
				}
			}
		})
	}
}

func TestClassifier_SingleClassModel(t *testing.T) {
	req := require.New(t)
	c := vision.NewClassifierWithLabels(&fakeNetwork{logits: []float32{0.3}}, []string{"only"})

	got, err := c.Classify(make(vision.Tensor, vision.TensorLen))
	req.NoError(err)
	req.Len(got, 1)
	req.Equal("only", got[0].Label)
	req.InDelta(1.0, got[0].Confidence, 1e-9)
}

func TestClassifier_ShapeMismatch(t *testing.T) {
	t.Run("input tensor", func(t *testing.T) {
		req := require.New(t)
		net := &fakeNetwork{logits: make([]float32, vision.NumClasses)}
		c := vision.NewClassifier(net)

		_, err := c.Classify(make(vision.Tensor, 10))
		req.ErrorIs(err, vision.ErrTensorShape)
		req.Zero(net.calls)
	})

	t.Run("model output", func(t *testing.T) {
		req := require.New(t)
		c := vision.NewClassifier(&fakeNetwork{logits: make([]float32, 7)})

		_, err := c.Classify(make(vision.Tensor, vision.TensorLen))
		req.ErrorIs(err, vision.ErrTensorShape)
	})
}

func TestClassifier_ForwardError(t *testing.T) {
	req := require.New(t)
	boom := errors.New("session closed")
	c := vision.NewClassifier(&fakeNetwork{err: boom})

	_, err := c.Classify(make(vision.Tensor, vision.TensorLen))
	req.ErrorIs(err, boom)
}

func TestSoftmax(t *testing.T) {
	req := require.New(t)
	p := vision.Softmax([]float32{1, 2, 3})
	var sum float64
	for _, v := range p {
		sum += v
	}
	req.InDelta(1.0, sum, 1e-9)
	req.Greater(p[2], p[1])
	req.Greater(p[1], p[0])
	req.Nil(vision.Softmax(nil))
}
