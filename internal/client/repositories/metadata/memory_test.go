package metadata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	v, err := r.Get(ctx, "absent")
	require.NoError(t, err)
	require.Nil(t, v)

	in := []byte("tok1")
	require.NoError(t, r.Set(ctx, "t", in))
	in[0] = 'X'
	v, err = r.Get(ctx, "t")
	require.NoError(t, err)
	assert.Equal(t, []byte("tok1"), v)

	v[0] = 'Y'
	v2, _ := r.Get(ctx, "t")
	assert.Equal(t, []byte("tok1"), v2)

	require.NoError(t, r.SetMany(ctx, map[string][]byte{"a": {1}, "b": {2}}))
	require.NoError(t, r.Delete(ctx, "a"))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"t": []byte("tok1"), "b": {2}}, m)

	require.NoError(t, r.Clear(ctx))
	m, err = r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}
