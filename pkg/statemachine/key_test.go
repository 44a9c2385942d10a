package statemachine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-state-container/pkg/statemachine"
)

func TestKey(t *testing.T) {
	t.Parallel()

	id := statemachine.ID(0)
	assert.False(t, id.IsZero(), "ID(0) is a real key")
	assert.False(t, id.IsNamed())
	n, ok := id.Int()
	assert.True(t, ok)
	assert.Equal(t, 0, n)
	assert.Equal(t, "#0", id.String())

	name := statemachine.Name("idle")
	assert.True(t, name.IsNamed())
	v, ok := name.NameValue()
	assert.True(t, ok)
	assert.Equal(t, "idle", v)
	_, ok = name.Int()
	assert.False(t, ok)
	assert.Equal(t, `"idle"`, name.String())

	var zero statemachine.Key
	assert.True(t, zero.IsZero())
	assert.Equal(t, "<none>", zero.String())

	assert.Equal(t, statemachine.Name("run"), statemachine.Name("run"))
	assert.NotEqual(t, statemachine.ID(1), statemachine.Name("1"))
}
