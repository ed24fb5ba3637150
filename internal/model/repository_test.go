package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Presence(t *testing.T) {
	repo := Repository{Name: "empty"}

	assert.False(t, repo.HasLanguage())
	assert.False(t, repo.HasDescription())

	repo = Repository{Name: "full", Language: "Go", Description: "a tool"}

	assert.True(t, repo.HasLanguage())
	assert.True(t, repo.HasDescription())
}

func TestRepository_JSONFieldNames(t *testing.T) {
	repo := Repository{
		ID:        42,
		Name:      "gallery",
		Stars:     7,
		Fork:      true,
		HTMLURL:   "https://github.com/octocat/gallery",
		UpdatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(repo)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.Contains(t, fields, "stargazers_count")
	assert.Contains(t, fields, "html_url")
	assert.Contains(t, fields, "updated_at")
	assert.NotContains(t, fields, "language", "null language must be omitted")
	assert.NotContains(t, fields, "description", "absent description must be omitted")
}
