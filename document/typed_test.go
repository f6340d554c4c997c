package document

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/designpatterns/internal/logger"
)

//
// -----------------------------------------------------------------------------
// As
// -----------------------------------------------------------------------------

func TestAs_AllBranches(t *testing.T) {
	t.Parallel()

	d := New(map[string]any{
		"model": "Tesla Model S",
		"price": 79900,
		"nil":   nil,
	})

	model, ok, err := As[string](d, "model")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Tesla Model S", model)

	price, ok, err := As[int](d, "price")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 79900, price)

	missing, ok, err := As[string](d, "color")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", missing)

	_, ok, err = As[string](d, "nil")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = As[string](d, "price")
	require.Error(t, err)
	assert.False(t, ok)

	var wrong WrongTypeError
	require.True(t, errors.As(err, &wrong))
	assert.Equal(t, WrongTypeError{Key: "price", Want: "string", Got: "int"}, wrong)
}

// TestAs_NoWidening verifies narrowing is a strict type assertion.
func TestAs_NoWidening(t *testing.T) {
	t.Parallel()

	d := New(map[string]any{"n": 1})

	_, _, err := As[int64](d, "n")
	assert.ErrorIs(t, err, ErrWrongType)

	_, _, err = As[float64](d, "n")
	assert.ErrorIs(t, err, ErrWrongType)
}

// TestAs_InterfaceTarget verifies narrowing to an interface type.
func TestAs_InterfaceTarget(t *testing.T) {
	t.Parallel()

	d := New(map[string]any{"err": errors.New("boom"), "s": "x"})

	e, ok, err := As[error](d, "err")
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualError(t, e, "boom")

	_, _, err = As[error](d, "s")
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestAs_NilDocument(t *testing.T) {
	t.Parallel()

	v, ok, err := As[string](nil, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)

	var typedNil *Base
	_, ok, err = As[string](typedNil, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

//
// -----------------------------------------------------------------------------
// GetAs / TryGetAs / MustGetAs
// -----------------------------------------------------------------------------

func TestGetAs(t *testing.T) {
	t.Parallel()

	d := New(map[string]any{"model": "X", "price": 1})

	v, ok := GetAs[string](d, "model")
	assert.True(t, ok)
	assert.Equal(t, "X", v)

	_, ok = GetAs[string](d, "price")
	assert.False(t, ok)

	_, ok = GetAs[string](d, "missing")
	assert.False(t, ok)
}

func TestTryGetAs(t *testing.T) {
	t.Parallel()

	d := New(map[string]any{"model": "X", "price": 1})

	v, err := TryGetAs[string](d, "model")
	require.NoError(t, err)
	assert.Equal(t, "X", v)

	_, err = TryGetAs[string](d, "missing")
	var missing MissingPropertyError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "missing", missing.Key)
	assert.ErrorIs(t, err, ErrMissingProperty)

	_, err = TryGetAs[string](d, "price")
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestMustGetAs(t *testing.T) {
	t.Parallel()

	d := New(map[string]any{"model": "X"})

	assert.Equal(t, "X", MustGetAs[string](d, "model"))
	require.PanicsWithError(t, `document: property "missing" missing`, func() {
		_ = MustGetAs[string](d, "missing")
	})
}

//
// -----------------------------------------------------------------------------
// ValueOr
// -----------------------------------------------------------------------------

// Not parallel: swaps the global logger to observe the mismatch log line.
func TestValueOr(t *testing.T) {
	orig := logger.Logger
	t.Cleanup(func() { logger.Logger = orig })

	var buf bytes.Buffer
	logger.SetOutput(&buf, log.DebugLevel)

	d := New(map[string]any{"model": "X", "price": 1})

	assert.Equal(t, "X", ValueOr(d, "model", "def"))
	assert.Equal(t, "def", ValueOr(d, "missing", "def"))
	assert.Empty(t, buf.String())

	assert.Equal(t, "def", ValueOr(d, "price", "def"))
	assert.Contains(t, buf.String(), "property type mismatch")
	assert.Contains(t, buf.String(), "key=price")
}

//
// -----------------------------------------------------------------------------
// Laws
// -----------------------------------------------------------------------------

// TestLaws_RoundTripAndOverwrite checks get-after-put and overwrite over a spread of keys.
func TestLaws_RoundTripAndOverwrite(t *testing.T) {
	t.Parallel()

	d := New(nil)
	keys := []string{"", "a", "model", "with space", "ключ", "🚗"}

	for i, k := range keys {
		d.Put(k, i)
		v, ok, err := As[int](d, k)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, i, v)

		d.Put(k, "second")
		s, err := TryGetAs[string](d, k)
		require.NoError(t, err)
		assert.Equal(t, "second", s)
	}
	assert.Equal(t, len(keys), d.Len())
}
