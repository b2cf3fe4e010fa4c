package lir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fanyi-zhao/solang/internal/ice"
)

func TestVartableDeclare(t *testing.T) {
	vt := NewVartable()

	a := vt.Declare(Uint{Width: 8}, "a")
	b := vt.Declare(Bool{}, "b")
	c := vt.Declare(Uint{Width: 256}, "")

	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)
	assert.Equal(t, 2, c)
	assert.Equal(t, 3, vt.Len())

	ty, err := vt.TypeOf(b)
	require.NoError(t, err)
	assert.Equal(t, Bool{}, ty)
	assert.Equal(t, "a", vt.NameOf(a))
	assert.Equal(t, "", vt.NameOf(c))
}

func TestVartableUnknownIdentity(t *testing.T) {
	vt := NewVartable()
	vt.Declare(Bool{}, "x")

	_, err := vt.TypeOf(7)
	require.Error(t, err)
	assert.True(t, ice.Is(err))
	assert.Contains(t, err.Error(), "%7")
}

func TestVartableNormalizesDebugNames(t *testing.T) {
	vt := NewVartable()

	// e plus combining acute must compare equal to the precomposed form.
	decomposed := vt.Declare(Bool{}, "cafe\u0301")
	precomposed := vt.Declare(Bool{}, "caf\u00e9")

	assert.Equal(t, vt.NameOf(precomposed), vt.NameOf(decomposed))
}
