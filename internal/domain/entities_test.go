package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextProjectID_Empty(t *testing.T) {
	c := &DatasetContent{}
	assert.Equal(t, 1, c.NextProjectID())
}

func TestNextProjectID_SkipsGaps(t *testing.T) {
	c := &DatasetContent{Projects: []*Project{{ID: 3}, {ID: 7}, {ID: 1}}}
	assert.Equal(t, 8, c.NextProjectID())
}

func TestFindProjectByName_CaseSensitive(t *testing.T) {
	c := &DatasetContent{Projects: []*Project{{ID: 1, Name: "Groceries"}}}
	require.NotNil(t, c.FindProjectByName("Groceries"))
	assert.Nil(t, c.FindProjectByName("groceries"))
}

func TestFindProject_Missing(t *testing.T) {
	c := &DatasetContent{}
	assert.Nil(t, c.FindProject(42))
}

func TestNewGoal(t *testing.T) {
	g := NewGoal("Fit home", "renovate everything")
	require.NotEmpty(t, g.ID)
	assert.Equal(t, GoalActive, g.Status)
}

func TestDraftDisplayName_PrefersRefined(t *testing.T) {
	d := &DraftItem{Text: "buy milk", Classification: Classification{RefinedName: "Buy milk"}}
	assert.Equal(t, "Buy milk", d.DisplayName())

	d.Classification.RefinedName = ""
	assert.Equal(t, "buy milk", d.DisplayName())
}
