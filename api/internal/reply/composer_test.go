package reply_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"breed-bot/api/internal/llm"
	"breed-bot/api/internal/mocks"
	"breed-bot/api/internal/reply"
	"breed-bot/api/internal/vision"
)

var sampleRanking = vision.Ranking{
	{Index: 40, Label: "Labrador_retriever", Confidence: 0.81},
	{Index: 95, Label: "golden_retriever", Confidence: 0.12},
	{Index: 77, Label: "beagle", Confidence: 0.03},
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 12, 9))))
	return buf.Bytes()
}

type fixture struct {
	gen        *mocks.MockGenerator
	classifier *mocks.MockClassifier
	composer   *reply.Composer
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	engines := mocks.NewMockEngines(ctrl)
	engines.EXPECT().Get(gomock.Any()).Return(gen).AnyTimes()
	classifier := mocks.NewMockClassifier(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return fixture{
		gen:        gen,
		classifier: classifier,
		composer:   reply.NewComposer(engines, classifier, nil, logger),
	}
}

func TestRenderRanking(t *testing.T) {
	req := require.New(t)
	req.Equal("1. Labrador retriever (81.00%)\n2. golden retriever (12.00%)\n3. beagle (3.00%)",
		reply.RenderRanking(sampleRanking))
	req.Equal("", reply.RenderRanking(nil))
}

func TestEnrichmentPrompt(t *testing.T) {
	req := require.New(t)
	p, err := reply.EnrichmentPrompt(sampleRanking)
	req.NoError(err)
	req.True(strings.HasPrefix(p, "ผลการทำนายสายพันธุ์สุนัข:\n1. Labrador retriever (81.0%)\n2. golden retriever (12.0%)\n3. beagle (3.0%)\n"))
	req.Contains(p, "สายพันธุ์ Labrador retriever (สายพันธุ์ที่มีความน่าจะเป็นสูงสุด)")
	req.Contains(p, "   - Labrador retriever\n   - golden retriever\n   - beagle\n")
	req.NotContains(p, "%!")

	_, err = reply.EnrichmentPrompt(sampleRanking[:2])
	req.Error(err)
}

func TestComposer_Text(t *testing.T) {
	t.Run("canned phrase skips the backend", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		got := f.composer.Text(context.Background(), "U1", reply.PhraseHello)
		req.True(got.Canned)
		req.Equal(reply.DefaultCanned()[reply.PhraseHello], got.Text)
		req.Empty(got.Reasoning)
	})

	t.Run("near match goes to the backend", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		f.gen.EXPECT().
			Generate(gomock.Any(), llm.Request{Prompt: reply.PhraseHello + " ", MaxTokens: 2048, Temperature: 0.3}).
			Return(llm.Succeed("<think>greet back</think>สวัสดีครับ"))

		got := f.composer.Text(context.Background(), "U1", reply.PhraseHello+" ")
		req.False(got.Canned)
		req.Equal("สวัสดีครับ", got.Text)
		req.Equal("greet back", got.Reasoning)
	})

	t.Run("backend failure falls back", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		f.gen.EXPECT().Generate(gomock.Any(), gomock.Any()).
			Return(llm.Fail(llm.FailureTimeout, 0, context.DeadlineExceeded))

		got := f.composer.Text(context.Background(), "U1", "หมาพันธุ์ไหนเลี้ยงง่าย")
		req.True(got.Degraded)
		req.Equal(reply.TextFallback(), got.Text)
		req.Empty(got.Reasoning)
	})

	t.Run("empty answer falls back", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		f.gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(llm.Succeed("<think>only thoughts</think>"))

		got := f.composer.Text(context.Background(), "U1", "hi")
		req.Equal(reply.TextFallback(), got.Text)
		req.True(got.Degraded)
		req.Empty(got.Reasoning)
	})
}

func TestComposer_Image(t *testing.T) {
	base := "🐶 สายพันธ์น้องหมา\n📊 มีความน่าจะเป็นดังนี้:\n" +
		"1. Labrador retriever (81.00%)\n2. golden retriever (12.00%)\n3. beagle (3.00%)"

	t.Run("enriched", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		f.classifier.EXPECT().Classify(gomock.Any()).DoAndReturn(func(in vision.Tensor) (vision.Ranking, error) {
			req.Len(in, vision.TensorLen)
			return sampleRanking, nil
		})
		f.gen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r llm.Request) llm.Result {
			req.Equal(1500, r.MaxTokens)
			req.Equal(0.3, r.Temperature)
			return llm.Succeed("<think>plan</think>\n\nลาบราดอร์เป็นมิตร")
		})

		got := f.composer.Image(context.Background(), "U1", pngBytes(t))
		req.Equal(base+"\n\n📖 ข้อมูลเพิ่มเติม:\nลาบราดอร์เป็นมิตร", got.Text)
		req.Equal("plan", got.Reasoning)
		req.False(got.Degraded)
	})

	t.Run("enrichment failure keeps the ranking", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		f.classifier.EXPECT().Classify(gomock.Any()).Return(sampleRanking, nil)
		f.gen.EXPECT().Generate(gomock.Any(), gomock.Any()).
			Return(llm.Fail(llm.FailureHTTP, 503, &llm.StatusError{Status: 503}))

		got := f.composer.Image(context.Background(), "U1", pngBytes(t))
		req.Equal(base, got.Text)
		req.True(got.Degraded)
		req.NotContains(got.Text, "503")
	})

	t.Run("empty enrichment keeps the ranking without reasoning", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		f.classifier.EXPECT().Classify(gomock.Any()).Return(sampleRanking, nil)
		f.gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(llm.Succeed("<think>plan</think>  "))

		got := f.composer.Image(context.Background(), "U1", pngBytes(t))
		req.Equal(base, got.Text)
		req.True(got.Degraded)
		req.Empty(got.Reasoning)
	})

	t.Run("undecodable image is a hard failure", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		got := f.composer.Image(context.Background(), "U1", []byte("not an image"))
		req.Equal(reply.ImageError(), got.Text)
	})

	t.Run("classifier error is a hard failure", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		f.classifier.EXPECT().Classify(gomock.Any()).Return(nil, vision.ErrTensorShape)

		got := f.composer.Image(context.Background(), "U1", pngBytes(t))
		req.Equal(reply.ImageError(), got.Text)
	})

	t.Run("short ranking skips enrichment", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		f.classifier.EXPECT().Classify(gomock.Any()).Return(sampleRanking[:1], nil)

		got := f.composer.Image(context.Background(), "U1", pngBytes(t))
		req.Equal("🐶 สายพันธ์น้องหมา\n📊 มีความน่าจะเป็นดังนี้:\n1. Labrador retriever (81.00%)", got.Text)
		req.True(got.Degraded)
	})
}

func TestLoadCanned(t *testing.T) {
	req := require.New(t)

	def, err := reply.LoadCanned("")
	req.NoError(err)
	req.Equal(reply.DefaultCanned(), def)

	path := filepath.Join(t.TempDir(), "canned.yaml")
	req.NoError(os.WriteFile(path, []byte("replies:\n  \"hello\": \"hi there\"\n  \"ชื่ออะไร\": \"\"\n"), 0o644))

	got, err := reply.LoadCanned(path)
	req.NoError(err)
	req.Equal("hi there", got["hello"])
	req.Contains(got, reply.PhraseHello)
	req.NotContains(got, reply.PhraseName)

	_, err = reply.LoadCanned(filepath.Join(t.TempDir(), "missing.yaml"))
	req.Error(err)
}
