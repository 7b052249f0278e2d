package services

import (
	"context"
	"slices"

	"go.mongodb.org/mongo-driver/v2/bson"

	"qna_workspace/dto"
	"qna_workspace/internal/repository"
)

// VoteDirection selects which of the two exclusive sets a vote targets.
type VoteDirection int

const (
	VoteUp VoteDirection = iota
	VoteDown
)

// ApplyVote runs the read-modify-write toggle against the answer document
// and returns the updated wire shape. There is no optimistic locking;
// concurrent presses by the same user resolve in arrival order.
func ApplyVote(ctx context.Context, answers *repository.AnswerRepository, answerID bson.ObjectID, userID string, dir VoteDirection) (dto.Answer, error) {
	answer, err := answers.FindByID(ctx, answerID)
	if err != nil {
		return dto.Answer{}, err
	}

	up, down := answer.UpVotes, answer.DownVotes
	if up == nil {
		up = []string{}
	}
	if down == nil {
		down = []string{}
	}
	switch dir {
	case VoteUp:
		up, down = ToggleVote(up, down, userID)
	case VoteDown:
		down, up = ToggleVote(down, up, userID)
	}

	if err := answers.SetVotes(ctx, answerID, up, down); err != nil {
		return dto.Answer{}, err
	}
	answer.UpVotes, answer.DownVotes = up, down
	return BuildAnswer(answer), nil
}

// ToggleVote applies one vote press for userID against a pair of exclusive
// vote sets. Pressing the same direction again withdraws the vote; pressing
// while the user sits in the opposite set moves them over. Returned slices
// are fresh copies.
func ToggleVote(target, opposite []string, userID string) (newTarget, newOpposite []string) {
	if slices.Contains(target, userID) {
		return removeVote(target, userID), slices.Clone(opposite)
	}
	newTarget = append(slices.Clone(target), userID)
	return newTarget, removeVote(opposite, userID)
}

// NetVotes is the displayed score.
func NetVotes(upVotes, downVotes []string) int {
	return len(upVotes) - len(downVotes)
}

func removeVote(votes []string, userID string) []string {
	out := make([]string, 0, len(votes))
	for _, v := range votes {
		if v != userID {
			out = append(out, v)
		}
	}
	return out
}
