package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// TextAnalyzer computes basic statistics over a piece of text.
type TextAnalyzer struct{}

func (t *TextAnalyzer) Name() string { return "text_analyzer" }

func (t *TextAnalyzer) Description() string {
	return "Analyze text and return character, word, sentence and paragraph counts plus the most common words"
}

func (t *TextAnalyzer) InputSchema() any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{
				"type":        "string",
				"description": "The text to analyze",
			},
		},
		"required":             []string{"text"},
		"additionalProperties": false,
	}
}

type wordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

func (t *TextAnalyzer) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing text_analyzer input: %w", err)
	}

	words := strings.Fields(args.Text)
	sentences := countNonBlank(strings.Split(args.Text, "."))
	paragraphs := countNonBlank(strings.Split(args.Text, "\n\n"))

	avg := 0.0
	if sentences > 0 {
		avg = float64(len(words)) / float64(sentences)
	}

	return marshalResult(map[string]any{
		"char_count":                 len(args.Text),
		"word_count":                 len(words),
		"sentence_count":             sentences,
		"paragraph_count":            paragraphs,
		"average_words_per_sentence": avg,
		"most_common_words":          mostCommonWords(words, 5),
	})
}

func countNonBlank(parts []string) int {
	n := 0
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			n++
		}
	}
	return n
}

// mostCommonWords ranks words longer than two characters, case-folded and
// stripped of surrounding punctuation. Ties break alphabetically so the
// result is stable.
func mostCommonWords(words []string, topN int) []wordCount {
	counts := make(map[string]int)
	for _, w := range words {
		clean := strings.Trim(strings.ToLower(w), `.,!?;:"'()[]{}`)
		if len(clean) > 2 {
			counts[clean]++
		}
	}

	ranked := make([]wordCount, 0, len(counts))
	for w, c := range counts {
		ranked = append(ranked, wordCount{Word: w, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
