package attr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEntity struct {
	attrs Map
}

func (e *testEntity) Attributes() Map { return e.attrs }

func TestMakeStringRoundTrip(t *testing.T) {
	for _, v := range []string{"", "example", "ünïcødé", "with\x00nul"} {
		a := Make(v)
		require.NotNil(t, a)
		assert.Equal(t, String.Identity(), a.TypeIdentity())

		got, ok := String.Get(a)
		require.True(t, ok)
		assert.Equal(t, v, got)

		got, ok = Get[string](a)
		require.True(t, ok)
		assert.Equal(t, v, got)
	}
}

func TestMakeInt64RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, math.MaxInt64, math.MinInt64} {
		a := Make(v)
		require.NotNil(t, a)
		assert.Equal(t, Int64.Identity(), a.TypeIdentity())

		got, ok := Int64.Get(a)
		require.True(t, ok)
		assert.Equal(t, v, got)

		got, ok = Get[int64](a)
		require.True(t, ok)
		assert.Equal(t, v, got)
	}
}

func TestMakeLiteralResolvesToString(t *testing.T) {
	a := Make("example")

	assert.Equal(t, TypeIdentity{Name: "attr.string", Version: 0}, a.TypeIdentity())
	s, ok := Get[string](a)
	require.True(t, ok)
	assert.Equal(t, "example", s)
}

func TestBuiltinIdentitiesUnique(t *testing.T) {
	assert.NotEqual(t, String.Identity(), Int64.Identity())
	assert.NotEqual(t, Make("1").TypeIdentity(), Make(int64(1)).TypeIdentity())
}

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []TypeIdentity{String.Identity(), Int64.Identity()} {
		d, ok := Default().Lookup(id)
		require.True(t, ok, "%s not registered", id)
		assert.Equal(t, id, d.Identity())
	}
}

func TestDowncastMismatch(t *testing.T) {
	s := Make("42")
	n := Make(int64(42))

	_, ok := Int64.Get(s)
	assert.False(t, ok)
	_, ok = String.Get(n)
	assert.False(t, ok)

	typed, ok := Int64.Cast(s)
	assert.False(t, ok)
	assert.Nil(t, typed)

	got, ok := Get[int64](s)
	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestDowncastNilHandle(t *testing.T) {
	_, ok := String.Cast(nil)
	assert.False(t, ok)

	_, ok = Get[string](nil)
	assert.False(t, ok)

	var typedNil *Value[string]
	_, ok = String.Cast(typedNil)
	assert.False(t, ok)
}

func TestBuiltinDefaults(t *testing.T) {
	owner := &testEntity{attrs: Map{"name": Make("owner")}}
	other := &testEntity{attrs: Map{"name": Make("other")}}

	for _, a := range []Attribute{Make("x"), Make(int64(7))} {
		assert.True(t, a.IsCopyable())
		assert.Nil(t, a.Init(owner))
		assert.Nil(t, a.Merge([]Entity{owner, other}))
		assert.Nil(t, a.Merge(nil))
		assert.Equal(t, "", a.String())
	}

	// inputs untouched
	require.Len(t, owner.attrs, 1)
	name, _ := String.Get(owner.attrs["name"])
	assert.Equal(t, "owner", name)
	require.Len(t, other.attrs, 1)
}
