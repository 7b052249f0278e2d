package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagNameAcceptsStringsAndObjects(t *testing.T) {
	var req CreateQuestionReq
	body := `{"title":"t","text":"x","ask_date_time":"2024-03-01T12:00:00Z",` +
		`"tags":["go",{"name":"mongodb"},"fiber"]}`

	require.NoError(t, json.Unmarshal([]byte(body), &req))
	names := make([]string, 0, len(req.Tags))
	for _, tag := range req.Tags {
		names = append(names, tag.Name)
	}
	assert.Equal(t, []string{"go", "mongodb", "fiber"}, names)
}

func TestTagNameRejectsOtherShapes(t *testing.T) {
	var tag TagName
	assert.Error(t, json.Unmarshal([]byte(`5`), &tag))
	assert.Error(t, json.Unmarshal([]byte(`["nested"]`), &tag))
}
