package services

import (
	"slices"
	"strings"

	"qna_workspace/dto"
)

// FilterBySearch keeps the questions matching a search string. The string
// splits on whitespace; a token written as [name] matches questions tagged
// with that exact name, every other token matches as a whole word of the
// title or text. Matching is case-insensitive and OR across all tokens,
// so "android phone" returns questions containing either word.
func FilterBySearch(questions []dto.Question, search string) []dto.Question {
	tokens := strings.Fields(strings.ToLower(search))
	if len(tokens) == 0 {
		return questions
	}

	words := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !strings.HasPrefix(t, "[") && !strings.HasSuffix(t, "]") {
			words = append(words, t)
		}
	}

	out := make([]dto.Question, 0, len(questions))
	for _, q := range questions {
		if matchesSearch(q, tokens, words) {
			out = append(out, q)
		}
	}
	return out
}

func matchesSearch(q dto.Question, tokens, words []string) bool {
	for _, tag := range q.Tags {
		if slices.Contains(tokens, "["+strings.ToLower(tag.Name)+"]") {
			return true
		}
	}
	titleWords := strings.Fields(strings.ToLower(q.Title))
	textWords := strings.Fields(strings.ToLower(q.Text))
	for _, w := range words {
		if slices.Contains(titleWords, w) || slices.Contains(textWords, w) {
			return true
		}
	}
	return false
}
