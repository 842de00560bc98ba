package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask_Defaults(t *testing.T) {
	task := NewTask("Buy milk")
	require.NotEmpty(t, task.ID)
	assert.Equal(t, "Buy milk", task.Name)
	assert.False(t, task.Completed)
	assert.Equal(t, DurationUnknown, task.Duration)
	assert.Nil(t, task.DueDate)
	assert.Nil(t, task.CompletedAt)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestNewResource_Defaults(t *testing.T) {
	res := NewResource("Paint roller")
	require.NotEmpty(t, res.ID)
	assert.Equal(t, "General", res.Store)
	assert.Equal(t, ResourceToBuy, res.Type)
	assert.False(t, res.Acquired)
}

func TestNewReference_Defaults(t *testing.T) {
	ref := NewReference("Wiring diagram")
	require.NotEmpty(t, ref.ID)
	assert.Equal(t, "", ref.Content)
}

func TestConstructors_GenerateDistinctIDs(t *testing.T) {
	a := NewTask("a")
	b := NewTask("b")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestItemKinds(t *testing.T) {
	assert.Equal(t, KindTask, NewTask("t").Kind())
	assert.Equal(t, KindResource, NewResource("r").Kind())
	assert.Equal(t, KindReference, NewReference("n").Kind())
}

func TestBase_SharedFieldsAccessibleThroughInterface(t *testing.T) {
	items := []ProjectItem{NewTask("t"), NewResource("r"), NewReference("n")}
	for _, item := range items {
		require.NotEmpty(t, item.Base().ID)
		item.Base().Tags = append(item.Base().Tags, "x")
		assert.Equal(t, []string{"x"}, item.Base().Tags)
	}
}

func TestNormalizeDuration(t *testing.T) {
	assert.Equal(t, "1h", NormalizeDuration("1h"))
	assert.Equal(t, DurationUnknown, NormalizeDuration(""))
	assert.Equal(t, DurationUnknown, NormalizeDuration("45min"))
}
