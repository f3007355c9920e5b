package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runTool(t *testing.T, tool Tool, input string) map[string]any {
	t.Helper()
	out, err := tool.Execute(context.Background(), input)
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	return result
}

func TestTextAnalyzerBasic(t *testing.T) {
	t.Parallel()
	result := runTool(t, &TextAnalyzer{}, `{"text":"Hello world."}`)

	assert.Equal(t, float64(2), result["word_count"])
	assert.Equal(t, float64(1), result["sentence_count"])
	assert.Equal(t, float64(12), result["char_count"])
	assert.Equal(t, float64(1), result["paragraph_count"])
	assert.Equal(t, float64(2), result["average_words_per_sentence"])
}

func TestTextAnalyzerMultipleSentences(t *testing.T) {
	t.Parallel()
	result := runTool(t, &TextAnalyzer{}, `{"text":"One two three. Four five six. Seven eight."}`)

	assert.Equal(t, float64(8), result["word_count"])
	assert.Equal(t, float64(3), result["sentence_count"])
}

func TestTextAnalyzerEmpty(t *testing.T) {
	t.Parallel()
	result := runTool(t, &TextAnalyzer{}, `{"text":""}`)

	assert.Equal(t, float64(0), result["word_count"])
	assert.Equal(t, float64(0), result["sentence_count"])
	assert.Equal(t, float64(0), result["average_words_per_sentence"])
}

func TestTextAnalyzerCommonWords(t *testing.T) {
	t.Parallel()
	result := runTool(t, &TextAnalyzer{}, `{"text":"the cat and the dog and the bird"}`)

	common, ok := result["most_common_words"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, common)

	first, ok := common[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "the", first["word"])
	assert.Equal(t, float64(3), first["count"])
}

func TestTextAnalyzerBadInput(t *testing.T) {
	t.Parallel()
	_, err := (&TextAnalyzer{}).Execute(context.Background(), "not json")
	require.Error(t, err)
}
