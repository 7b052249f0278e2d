package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleVote(t *testing.T) {
	tests := []struct {
		name         string
		target       []string
		opposite     []string
		userID       string
		wantTarget   []string
		wantOpposite []string
	}{
		{
			name:         "first press adds to target",
			target:       []string{},
			opposite:     []string{},
			userID:       "u1",
			wantTarget:   []string{"u1"},
			wantOpposite: []string{},
		},
		{
			name:         "second press withdraws",
			target:       []string{"u1"},
			opposite:     []string{},
			userID:       "u1",
			wantTarget:   []string{},
			wantOpposite: []string{},
		},
		{
			name:         "press moves user out of opposite set",
			target:       []string{},
			opposite:     []string{"u1", "u2"},
			userID:       "u1",
			wantTarget:   []string{"u1"},
			wantOpposite: []string{"u2"},
		},
		{
			name:         "other voters are untouched",
			target:       []string{"u2"},
			opposite:     []string{"u3"},
			userID:       "u1",
			wantTarget:   []string{"u2", "u1"},
			wantOpposite: []string{"u3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotTarget, gotOpposite := ToggleVote(tt.target, tt.opposite, tt.userID)
			assert.Equal(t, tt.wantTarget, gotTarget)
			assert.Equal(t, tt.wantOpposite, gotOpposite)
		})
	}
}

// After an odd number of same-direction presses the user is in the set,
// after an even number they are not.
func TestToggleVoteParity(t *testing.T) {
	up, down := []string{}, []string{}
	for i := 1; i <= 5; i++ {
		up, down = ToggleVote(up, down, "u1")
		if i%2 == 1 {
			assert.Contains(t, up, "u1", "press %d", i)
		} else {
			assert.NotContains(t, up, "u1", "press %d", i)
		}
		assert.NotContains(t, down, "u1", "press %d", i)
	}
}

func TestToggleVoteExclusivity(t *testing.T) {
	up, down := []string{}, []string{}

	up, down = ToggleVote(up, down, "u1") // upvote
	down, up = ToggleVote(down, up, "u1") // switch to downvote
	assert.NotContains(t, up, "u1")
	assert.Contains(t, down, "u1")

	up, down = ToggleVote(up, down, "u1") // back to upvote
	assert.Contains(t, up, "u1")
	assert.NotContains(t, down, "u1")
}

func TestToggleVoteDoesNotMutateInputs(t *testing.T) {
	target := []string{"u2"}
	opposite := []string{"u1"}

	ToggleVote(target, opposite, "u1")
	assert.Equal(t, []string{"u2"}, target)
	assert.Equal(t, []string{"u1"}, opposite)
}

func TestNetVotes(t *testing.T) {
	assert.Equal(t, 0, NetVotes(nil, nil))
	assert.Equal(t, 2, NetVotes([]string{"a", "b", "c"}, []string{"d"}))
	assert.Equal(t, -1, NetVotes([]string{"a"}, []string{"b", "c"}))
}
