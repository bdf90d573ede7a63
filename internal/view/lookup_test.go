package view

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCachesLoadedNames(t *testing.T) {
	ctx := context.Background()
	lookup := NewLookup(time.Minute, time.Minute)

	calls := 0
	load := func(context.Context) (map[string]string, error) {
		calls++
		return map[string]string{"m1": "Dr. Ana"}, nil
	}

	names, err := lookup.Names(ctx, "medicos", load)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Ana", names["m1"])

	_, err = lookup.Names(ctx, "medicos", load)
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "second read is served from cache")

	lookup.Invalidate("medicos")
	_, err = lookup.Names(ctx, "medicos", load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "invalidate forces a reload")
}

func TestLookupCollectionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	lookup := NewLookup(time.Minute, time.Minute)

	_, err := lookup.Names(ctx, "medicos", func(context.Context) (map[string]string, error) {
		return map[string]string{"m1": "Dr. Ana"}, nil
	})
	require.NoError(t, err)

	names, err := lookup.Names(ctx, "pacientes", func(context.Context) (map[string]string, error) {
		return map[string]string{"p1": "Luis"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Luis", names["p1"])
	assert.NotContains(t, names, "m1")
}
