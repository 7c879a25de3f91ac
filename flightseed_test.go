package flightseed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tordrt/flightseed/internal/config"
	"github.com/tordrt/flightseed/internal/network"
	"github.com/tordrt/flightseed/internal/registry"
)

func seedOf(v uint64) *uint64 { return &v }

func TestParseDatabaseURL(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		wantType    string
		wantConn    string
		wantErr     bool
		unsupported bool
	}{
		{name: "postgres", url: "postgres://u:p@localhost/flights", wantType: "postgres", wantConn: "postgres://u:p@localhost/flights"},
		{name: "postgresql", url: "postgresql://localhost/flights", wantType: "postgres", wantConn: "postgresql://localhost/flights"},
		{name: "mysql", url: "mysql://u:p@tcp(localhost:3306)/flights", wantType: "mysql", wantConn: "u:p@tcp(localhost:3306)/flights"},
		{name: "sqlite", url: "sqlite://data/flights.db", wantType: "sqlite", wantConn: "data/flights.db"},
		{name: "csv", url: "csv://out/flights.csv", wantType: "csv", wantConn: "out/flights.csv"},
		{name: "csv without path", url: "csv://", wantErr: true, unsupported: true},
		{name: "unknown scheme", url: "redis://localhost", wantErr: true, unsupported: true},
		{name: "empty", url: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbType, conn, err := parseDatabaseURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.unsupported, errors.Is(err, ErrUnsupportedURL))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, dbType)
			assert.Equal(t, tt.wantConn, conn)
		})
	}
}

func TestGenerateWithSeedIsReproducible(t *testing.T) {
	a, err := Generate(&Options{Seed: seedOf(42)})
	require.NoError(t, err)
	b, err := Generate(&Options{Seed: seedOf(42)})
	require.NoError(t, err)

	assert.Equal(t, a.Edges, b.Edges)
	assert.Equal(t, a.Summary.Total, len(a.Edges))
}

func TestGenerateRejectsPlanOutsideRegistry(t *testing.T) {
	reg, err := registry.New(registry.Tables{
		Airports: []registry.Airport{
			{Code: "AAA", City: "Alpha", Tier: registry.TierHub},
			{Code: "BBB", City: "Beta", Tier: registry.TierSecondary},
		},
		Airlines: []registry.Airline{{Code: "XX", Name: "Xair", CostFactor: 1}},
	})
	require.NoError(t, err)

	_, err = Generate(&Options{Registry: reg, Seed: seedOf(1)})
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrUnknownAirport)
}

func TestSeedAMDToBLRScenario(t *testing.T) {
	ctx := context.Background()
	url := "csv://" + filepath.Join(t.TempDir(), "flights.csv")

	rep, err := Seed(ctx, url, &Options{Seed: seedOf(7)})
	require.NoError(t, err)

	require.NotNil(t, rep.Generated)
	assert.False(t, rep.Skipped)
	assert.EqualValues(t, rep.Generated.Total, rep.Stored)
	assert.Len(t, rep.Sample, config.DefaultSampleSize)
	assert.True(t, sort.SliceIsSorted(rep.Sample, func(i, j int) bool {
		return rep.Sample[i].FlightNumber < rep.Sample[j].FlightNumber
	}))

	require.Len(t, rep.Routes, 3)
	assert.Equal(t, "AMD-BLR", rep.Routes[0].Name())
	assert.NotEmpty(t, rep.Routes[0].Flights)

	// every hub is reachable from AMD and reaches BLR
	net, err := Verify(ctx, url, &Options{
		Routes: []config.Route{
			{Source: "AMD", Destination: "DEL"}, {Source: "DEL", Destination: "BLR"},
			{Source: "AMD", Destination: "HYD"}, {Source: "HYD", Destination: "BLR"},
			{Source: "AMD", Destination: "MAA"}, {Source: "MAA", Destination: "BLR"},
		},
		SampleSize: -1,
	})
	require.NoError(t, err)
	assert.Empty(t, net.Sample)
	for _, r := range net.Routes {
		assert.NotEmpty(t, r.Flights, r.Name())
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	url := "csv://" + filepath.Join(t.TempDir(), "flights.csv")

	first, err := Seed(ctx, url, &Options{Seed: seedOf(3)})
	require.NoError(t, err)
	require.False(t, first.Skipped)

	second, err := Seed(ctx, url, &Options{Seed: seedOf(99)})
	require.NoError(t, err)

	assert.True(t, second.Skipped)
	assert.Nil(t, second.Generated)
	assert.Equal(t, first.Stored, second.Stored)
	assert.Equal(t, first.Sample, second.Sample)
}

func TestSeedStoresEdgesAsGenerated(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "flights.csv")

	_, err := Seed(ctx, "csv://"+path, &Options{Seed: seedOf(11)})
	require.NoError(t, err)

	net, err := Generate(&Options{Seed: seedOf(11)})
	require.NoError(t, err)

	rep, err := Verify(ctx, "csv://"+path, &Options{
		Routes:     []config.Route{{Source: "AMD", Destination: "BLR"}},
		SampleSize: -1,
	})
	require.NoError(t, err)

	want := net.Between("AMD", "BLR")
	got := rep.Routes[0].Flights
	require.Len(t, got, len(want))

	byNumber := make(map[string]network.FlightEdge, len(want))
	for _, e := range want {
		byNumber[e.FlightNumber] = e
	}
	for _, e := range got {
		w, ok := byNumber[e.FlightNumber]
		require.True(t, ok, e.FlightNumber)
		assert.Equal(t, w.DepartureTime, e.DepartureTime)
		assert.Equal(t, w.ArrivalTime, e.ArrivalTime)
		assert.InDelta(t, w.Cost, e.Cost, 0.001)
	}
}

func TestSeedConnectFailure(t *testing.T) {
	_, err := Seed(context.Background(), "ftp://nowhere", nil)
	assert.ErrorIs(t, err, ErrUnsupportedURL)
}

func TestVerifyMissingCSVReportsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.csv")

	rep, err := Verify(context.Background(), "csv://"+path, nil)
	require.NoError(t, err)
	assert.Zero(t, rep.Stored)
	assert.Empty(t, rep.Sample)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "verify must not create the file")
}
