package standin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvocationSnapshot(t *testing.T) {
	cfg, _, _ := newTestConfig()
	stub, m := mustCreate(t, cfg)

	args := []any{"Ada", 7}
	inv := newInvocation(m, stub, "SayHi", args)

	assert.Same(t, m, inv.Mock())
	assert.Same(t, stub, inv.Object())
	assert.Equal(t, "SayHi", inv.Method())
	assert.Equal(t, []any{"Ada", 7}, inv.Args())

	// Mutating the caller's slice after the fact must not alter the snapshot.
	args[0] = "Bob"
	assert.Equal(t, []any{"Ada", 7}, inv.Args())

	// Nor may mutating the slice handed back by Args.
	inv.Args()[0] = "Eve"
	assert.Equal(t, []any{"Ada", 7}, inv.Args())
}

func TestInvocationString(t *testing.T) {
	cfg, _, _ := newTestConfig()
	cfg.Name = "g1"
	stub, m := mustCreate(t, cfg)

	testCases := []struct {
		name   string
		method string
		args   []any
		want   string
	}{
		{name: "No Args", method: "Reset", args: nil, want: "g1.Reset()"},
		{name: "One Arg", method: "SayHi", args: []any{"Ada"}, want: "g1.SayHi(Ada)"},
		{name: "Two Args", method: "SayHi", args: []any{"Ada", 7}, want: "g1.SayHi(Ada, 7)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			inv := newInvocation(m, stub, tc.method, tc.args)
			assert.Equal(t, tc.want, inv.String())
		})
	}
}

func TestAt(t *testing.T) {
	values := []any{"Hi", 2}

	assert.Equal(t, "Hi", At(values, 0))
	assert.Equal(t, 2, At(values, 1))
	assert.Nil(t, At(values, 2))
	assert.Nil(t, At(values, -1))
	assert.Nil(t, At(nil, 0))
}

func TestResultApply(t *testing.T) {
	t.Run("Return Values", func(t *testing.T) {
		assert.Equal(t, []any{"Hi", 2}, Return("Hi", 2).Apply())
	})

	t.Run("Return Nothing", func(t *testing.T) {
		assert.Empty(t, Return().Apply())
	})

	t.Run("Raise", func(t *testing.T) {
		boom := errors.New("boom")
		defer func() {
			require.Equal(t, boom, recover())
		}()
		Raise(boom).Apply()
		t.Fatal("expected Apply to raise")
	})
}
