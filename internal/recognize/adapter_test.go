package recognize

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEngine is a scriptable Engine double that counts invocations.
type fakeEngine struct {
	text      string
	words     []Candidate
	err       error
	textCalls int
	wordCalls int
}

func (f *fakeEngine) Text(image.Image) (string, error) {
	f.textCalls++
	return f.text, f.err
}

func (f *fakeEngine) Words(image.Image) ([]Candidate, error) {
	f.wordCalls++
	return f.words, f.err
}

func testImage() image.Image {
	return image.NewGray(image.Rect(0, 0, 10, 10))
}

func TestRecognizeText_TrimsWhitespace(t *testing.T) {
	engine := &fakeEngine{text: "  hello world\n\n"}
	a := NewAdapter(engine)

	got, err := a.RecognizeText(testImage())
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, 1, engine.textCalls)
}

func TestRecognizeText_AbsentImageSkipsEngine(t *testing.T) {
	engine := &fakeEngine{text: "should not appear"}
	a := NewAdapter(engine)

	got, err := a.RecognizeText(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, engine.textCalls)
}

func TestRecognizeText_ZeroAreaImageSkipsEngine(t *testing.T) {
	engine := &fakeEngine{}
	a := NewAdapter(engine)

	got, err := a.RecognizeText(image.NewGray(image.Rect(0, 0, 0, 0)))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, engine.textCalls)
}

func TestRecognizeText_EngineFailureIsRecoverable(t *testing.T) {
	engine := &fakeEngine{err: errors.New("tesseract unavailable")}
	a := NewAdapter(engine)

	_, err := a.RecognizeText(testImage())
	require.Error(t, err)

	var engineErr *EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Contains(t, engineErr.Error(), "tesseract unavailable")
}

func TestDetectBlocks_FiltersNonPositiveConfidence(t *testing.T) {
	engine := &fakeEngine{words: []Candidate{
		{X: 0, Y: 0, Width: 5, Height: 5, Confidence: -1, Text: "reject"},
		{X: 1, Y: 1, Width: 5, Height: 5, Confidence: 0, Text: "reject"},
		{X: 2, Y: 2, Width: 5, Height: 5, Confidence: 5, Text: "low"},
		{X: 3, Y: 3, Width: 5, Height: 5, Confidence: 90, Text: "high"},
	}}
	a := NewAdapter(engine)

	got, err := a.DetectBlocks(testImage())
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Emission order is preserved.
	assert.Equal(t, 5, got[0].Confidence)
	assert.Equal(t, "low", got[0].Text)
	assert.Equal(t, 90, got[1].Confidence)
	assert.Equal(t, "high", got[1].Text)
}

func TestDetectBlocks_AbsentImageSkipsEngine(t *testing.T) {
	engine := &fakeEngine{}
	a := NewAdapter(engine)

	got, err := a.DetectBlocks(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, engine.wordCalls)
}

func TestDetectBlocks_EngineFailureIsRecoverable(t *testing.T) {
	engine := &fakeEngine{err: errors.New("decode error")}
	a := NewAdapter(engine)

	_, err := a.DetectBlocks(testImage())
	var engineErr *EngineError
	require.ErrorAs(t, err, &engineErr)
}

func TestDetectBlocks_EmptyTextAllowed(t *testing.T) {
	engine := &fakeEngine{words: []Candidate{
		{X: 0, Y: 0, Width: 4, Height: 4, Confidence: 40, Text: ""},
	}}
	a := NewAdapter(engine)

	got, err := a.DetectBlocks(testImage())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Text)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.Language = ""
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.PageSegMode = 14
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.EngineMode = -1
	assert.Error(t, bad.Validate())
}
