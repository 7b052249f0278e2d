package services

import (
	"sort"
	"time"

	"qna_workspace/dto"
)

// LatestActivity returns the timestamp that drives the active ordering:
// the latest answer time when the question has answers, otherwise the
// ask time.
func LatestActivity(q dto.Question) time.Time {
	if len(q.Answers) == 0 {
		return q.AskDateTime
	}
	latest := time.Time{}
	for _, a := range q.Answers {
		if a.AnsDateTime != nil && a.AnsDateTime.After(latest) {
			latest = *a.AnsDateTime
		}
	}
	if latest.IsZero() {
		// answer refs present but not populated; fall back to ask time
		return q.AskDateTime
	}
	return latest
}

// SortActive orders questions by answer activity. Every question with at
// least one answer ranks above every question with none, no matter how
// recently the unanswered one was asked. Within each group the order is
// latest activity first.
func SortActive(questions []dto.Question) []dto.Question {
	type ranked struct {
		q        dto.Question
		activity time.Time
	}

	answered := make([]ranked, 0, len(questions))
	unanswered := make([]ranked, 0)
	for _, q := range questions {
		r := ranked{q: q, activity: LatestActivity(q)}
		if len(q.Answers) > 0 {
			answered = append(answered, r)
		} else {
			unanswered = append(unanswered, r)
		}
	}

	byActivityDesc := func(items []ranked) {
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].activity.After(items[j].activity)
		})
	}
	byActivityDesc(answered)
	byActivityDesc(unanswered)

	out := make([]dto.Question, 0, len(questions))
	for _, r := range answered {
		out = append(out, r.q)
	}
	for _, r := range unanswered {
		out = append(out, r.q)
	}
	return out
}
