package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qna_workspace/dto"
)

func ts(day int) time.Time {
	return time.Date(2024, time.March, day, 12, 0, 0, 0, time.UTC)
}

func question(id string, asked time.Time, answerTimes ...time.Time) dto.Question {
	q := dto.Question{ID: id, AskDateTime: asked}
	for _, at := range answerTimes {
		t := at
		q.Answers = append(q.Answers, dto.Answer{AnsDateTime: &t})
	}
	return q
}

func TestLatestActivity(t *testing.T) {
	asked := ts(1)

	t.Run("no answers falls back to ask time", func(t *testing.T) {
		assert.Equal(t, asked, LatestActivity(question("q", asked)))
	})

	t.Run("latest answer wins", func(t *testing.T) {
		q := question("q", asked, ts(3), ts(7), ts(5))
		assert.Equal(t, ts(7), LatestActivity(q))
	})

	t.Run("answer older than ask time still drives activity", func(t *testing.T) {
		q := question("q", ts(10), ts(2))
		assert.Equal(t, ts(2), LatestActivity(q))
	})
}

func TestSortActiveAnsweredAlwaysFirst(t *testing.T) {
	// one stale answered question against a brand-new unanswered one
	stale := question("stale", ts(1), ts(2))
	fresh := question("fresh", ts(20))

	got := SortActive([]dto.Question{fresh, stale})
	require.Len(t, got, 2)
	assert.Equal(t, "stale", got[0].ID)
	assert.Equal(t, "fresh", got[1].ID)
}

func TestSortActiveOrdersWithinGroups(t *testing.T) {
	qs := []dto.Question{
		question("a1", ts(1), ts(4)),
		question("a2", ts(2), ts(9)),
		question("u1", ts(3)),
		question("a3", ts(5), ts(6), ts(7)),
		question("u2", ts(8)),
	}

	got := SortActive(qs)
	ids := make([]string, 0, len(got))
	for _, q := range got {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{"a2", "a3", "a1", "u2", "u1"}, ids)
}

func TestSortActiveIsPermutation(t *testing.T) {
	qs := []dto.Question{
		question("a", ts(1), ts(2)),
		question("b", ts(3)),
		question("c", ts(4), ts(1)),
	}

	got := SortActive(qs)
	require.Len(t, got, len(qs))
	seen := map[string]bool{}
	for _, q := range got {
		seen[q.ID] = true
	}
	for _, q := range qs {
		assert.True(t, seen[q.ID], "question %s missing from result", q.ID)
	}
}

func TestSortActiveEmpty(t *testing.T) {
	assert.Empty(t, SortActive(nil))
}

func TestSortAnswersNewestFirst(t *testing.T) {
	t1, t2, t3 := ts(1), ts(2), ts(3)
	answers := []dto.Answer{
		{ID: "old", AnsDateTime: &t1},
		{ID: "stub"},
		{ID: "new", AnsDateTime: &t3},
		{ID: "mid", AnsDateTime: &t2},
	}

	SortAnswersNewestFirst(answers)
	assert.Equal(t, "new", answers[0].ID)
	assert.Equal(t, "mid", answers[1].ID)
	assert.Equal(t, "old", answers[2].ID)
	assert.Equal(t, "stub", answers[3].ID)
}
