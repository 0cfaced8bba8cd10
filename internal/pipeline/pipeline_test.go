package pipeline

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/textscan/internal/coords"
	"github.com/MeKo-Tech/textscan/internal/preprocess"
	"github.com/MeKo-Tech/textscan/internal/recognize"
	"github.com/MeKo-Tech/textscan/internal/testutil"
)

// countingEngine records invocations and the size of the image it received.
type countingEngine struct {
	text       string
	words      []recognize.Candidate
	err        error
	textCalls  int
	wordCalls  int
	lastWidth  int
	lastHeight int
}

func (e *countingEngine) Text(img image.Image) (string, error) {
	e.textCalls++
	e.lastWidth = img.Bounds().Dx()
	e.lastHeight = img.Bounds().Dy()
	return e.text, e.err
}

func (e *countingEngine) Words(img image.Image) ([]recognize.Candidate, error) {
	e.wordCalls++
	e.lastWidth = img.Bounds().Dx()
	e.lastHeight = img.Bounds().Dy()
	return e.words, e.err
}

func buildTestPipeline(t *testing.T, engine recognize.Engine) *Pipeline {
	t.Helper()
	p, err := NewBuilder().WithEngine(engine).Build()
	require.NoError(t, err)
	return p
}

func TestRunFullImageOCR_ExtractsText(t *testing.T) {
	engine := &countingEngine{text: " scanned text \n"}
	p := buildTestPipeline(t, engine)

	img := testutil.GenerateTextImage(testutil.DefaultTextImageConfig())
	got, err := p.RunFullImageOCR(img, preprocess.ModeGrayscale, 127)
	require.NoError(t, err)
	assert.Equal(t, "scanned text", got)
	assert.Equal(t, 1, engine.textCalls)
	// The engine receives the preprocessed buffer with unchanged dimensions.
	assert.Equal(t, 640, engine.lastWidth)
	assert.Equal(t, 480, engine.lastHeight)
}

func TestRunFullImageOCR_AbsentImageSkipsEngine(t *testing.T) {
	engine := &countingEngine{text: "never"}
	p := buildTestPipeline(t, engine)

	got, err := p.RunFullImageOCR(nil, preprocess.ModeGrayscale, 127)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, engine.textCalls)
}

func TestRunFullImageOCR_EmptyResultIsNotAnError(t *testing.T) {
	engine := &countingEngine{text: "   "}
	p := buildTestPipeline(t, engine)

	got, err := p.RunFullImageOCR(testutil.GenerateGradient(64, 64), preprocess.ModeGrayscale, 127)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRunFullImageOCR_UnknownModeFails(t *testing.T) {
	engine := &countingEngine{}
	p := buildTestPipeline(t, engine)

	_, err := p.RunFullImageOCR(testutil.GenerateGradient(32, 32), preprocess.Mode(99), 127)
	require.Error(t, err)
	assert.ErrorIs(t, err, preprocess.ErrUnknownMode)
	assert.Zero(t, engine.textCalls)
}

func TestRunROIOCR_ZeroAreaFailsBeforeEngine(t *testing.T) {
	engine := &countingEngine{text: "never"}
	p := buildTestPipeline(t, engine)

	img := testutil.GenerateGradient(100, 100)
	_, err := p.RunROIOCR(img, coords.Rectangle{X: 10, Y: 10, Width: 0, Height: 20}, preprocess.ModeGrayscale, 127)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyROI)
	assert.Zero(t, engine.textCalls)
}

func TestRunROIOCR_CropsToRegion(t *testing.T) {
	engine := &countingEngine{text: "region"}
	p := buildTestPipeline(t, engine)

	img := testutil.GenerateTextImage(testutil.DefaultTextImageConfig())
	got, err := p.RunROIOCR(img, coords.Rectangle{X: 100, Y: 50, Width: 200, Height: 80}, preprocess.ModeGrayscale, 127)
	require.NoError(t, err)
	assert.Equal(t, "region", got)
	assert.Equal(t, 200, engine.lastWidth)
	assert.Equal(t, 80, engine.lastHeight)
}

func TestRunROIOCR_SelectionOutsideImageFails(t *testing.T) {
	engine := &countingEngine{}
	p := buildTestPipeline(t, engine)

	img := testutil.GenerateGradient(50, 50)
	_, err := p.RunROIOCR(img, coords.Rectangle{X: 200, Y: 200, Width: 10, Height: 10}, preprocess.ModeGrayscale, 127)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyROI)
	assert.Zero(t, engine.textCalls)
}

func TestRunROIOCR_AbsentImageYieldsEmpty(t *testing.T) {
	engine := &countingEngine{}
	p := buildTestPipeline(t, engine)

	got, err := p.RunROIOCR(nil, coords.Rectangle{X: 0, Y: 0, Width: 10, Height: 10}, preprocess.ModeGrayscale, 127)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, engine.textCalls)
}

func TestRunOverlayDetection_ReturnsOriginalImageAndDetections(t *testing.T) {
	engine := &countingEngine{words: []recognize.Candidate{
		{X: 5, Y: 5, Width: 40, Height: 12, Confidence: -1, Text: "reject"},
		{X: 5, Y: 30, Width: 60, Height: 12, Confidence: 80, Text: "keep"},
	}}
	p := buildTestPipeline(t, engine)

	img := testutil.GenerateTextImage(testutil.DefaultTextImageConfig())
	res, err := p.RunOverlayDetection(img, preprocess.ModeThreshold, 127)
	require.NoError(t, err)
	require.NotNil(t, res)
	// The caller gets back the untouched original for overlay drawing.
	assert.Equal(t, image.Image(img), res.Image)
	require.Len(t, res.Detections, 1)
	assert.Equal(t, "keep", res.Detections[0].Text)
	assert.Equal(t, 1, engine.wordCalls)
}

func TestRunOverlayDetection_AbsentImage(t *testing.T) {
	engine := &countingEngine{}
	p := buildTestPipeline(t, engine)

	res, err := p.RunOverlayDetection(nil, preprocess.ModeGrayscale, 127)
	require.NoError(t, err)
	assert.Empty(t, res.Detections)
	assert.Zero(t, engine.wordCalls)
}

func TestRunOverlayDetection_EngineFailureSurfaces(t *testing.T) {
	engine := &countingEngine{err: errors.New("engine down")}
	p := buildTestPipeline(t, engine)

	_, err := p.RunOverlayDetection(testutil.GenerateGradient(32, 32), preprocess.ModeGrayscale, 127)
	require.Error(t, err)

	var engineErr *recognize.EngineError
	assert.ErrorAs(t, err, &engineErr)
}

func TestBuilder_InvalidPreprocessConfig(t *testing.T) {
	cfg := preprocess.DefaultConfig()
	cfg.AdaptiveBlockSize = 4
	_, err := NewBuilder().WithEngine(&countingEngine{}).WithPreprocessConfig(cfg).Build()
	assert.Error(t, err)
}

func TestBuilder_Defaults(t *testing.T) {
	p := buildTestPipeline(t, &countingEngine{})
	cfg := p.Config()
	assert.Equal(t, preprocess.ModeGrayscale, cfg.DefaultMode)
	assert.Equal(t, 127, cfg.DefaultThreshold)
	assert.Equal(t, "eng", cfg.Engine.Language)
}
