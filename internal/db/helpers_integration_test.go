//go:build integration
// +build integration

package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// verifySink runs a full write and read cycle against an empty store
func verifySink(t *testing.T, sink Sink) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, sink.EnsureSchema(ctx))
	require.NoError(t, sink.EnsureSchema(ctx), "schema creation must be repeatable")

	n, err := sink.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n, "test store must start empty")

	require.NoError(t, sink.WriteBatch(ctx, sampleEdges()))

	n, err = sink.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	sample, err := sink.Sample(ctx, 5)
	require.NoError(t, err)
	require.Len(t, sample, 3)
	assert.Equal(t, []string{"6E1000", "AI1001", "UK2001"},
		[]string{sample[0].FlightNumber, sample[1].FlightNumber, sample[2].FlightNumber})
	assert.Equal(t, sampleEdges()[2], sample[1])

	route, err := sink.RouteFlights(ctx, "BOM", "BLR")
	require.NoError(t, err)
	require.Len(t, route, 1)
	assert.Equal(t, "00:40:00", route[0].ArrivalTime.String())
}

// verifyAtomicWrite checks that a failing batch leaves nothing behind
func verifyAtomicWrite(t *testing.T, sink Sink) {
	t.Helper()
	ctx := context.Background()

	before, err := sink.Count(ctx)
	require.NoError(t, err)

	bad := sampleEdges()
	bad[2].Source = "THIS-CODE-IS-TOO-LONG-FOR-THE-COLUMN"
	assert.Error(t, sink.WriteBatch(ctx, bad))

	after, err := sink.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
