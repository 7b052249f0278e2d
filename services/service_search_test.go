package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"qna_workspace/dto"
)

func searchFixture() []dto.Question {
	return []dto.Question{
		{
			ID:    "react-q",
			Title: "How to manage state",
			Text:  "Using hooks in a component",
			Tags:  []dto.Tag{{Name: "react"}},
		},
		{
			ID:    "android-q",
			Title: "Android phone storage",
			Text:  "Running out of space",
			Tags:  []dto.Tag{{Name: "android"}},
		},
		{
			ID:    "shared-q",
			Title: "Storage on any device",
			Text:  "General question about disks",
			Tags:  []dto.Tag{{Name: "storage"}},
		},
	}
}

func ids(qs []dto.Question) []string {
	out := make([]string, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.ID)
	}
	return out
}

func TestFilterBySearch(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{
			name:   "tag token matches by tag only",
			search: "[react]",
			want:   []string{"react-q"},
		},
		{
			name:   "tag token is case-insensitive",
			search: "[ReAcT]",
			want:   []string{"react-q"},
		},
		{
			name:   "plain word matches title or text",
			search: "storage",
			want:   []string{"android-q", "shared-q"},
		},
		{
			name:   "multi-word search is a union, not intersection",
			search: "android disks",
			want:   []string{"android-q", "shared-q"},
		},
		{
			name:   "whole word only, no substring match",
			search: "stor",
			want:   []string{},
		},
		{
			name:   "mixed tag and word tokens",
			search: "[react] phone",
			want:   []string{"react-q", "android-q"},
		},
		{
			name:   "tag token never matches title text",
			search: "[storage]",
			want:   []string{"shared-q"},
		},
		{
			name:   "no tokens keeps everything",
			search: "   ",
			want:   []string{"react-q", "android-q", "shared-q"},
		},
		{
			name:   "unknown word matches nothing",
			search: "banana",
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterBySearch(searchFixture(), tt.search)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterBySearchPreservesOrder(t *testing.T) {
	qs := searchFixture()
	got := FilterBySearch(qs, "storage phone state")
	assert.Equal(t, []string{"react-q", "android-q", "shared-q"}, ids(got))
}
