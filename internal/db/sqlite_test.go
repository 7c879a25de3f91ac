//go:build integration
// +build integration

package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSQLiteSink(t *testing.T) {
	ctx := context.Background()

	client, err := NewSQLiteClient(ctx, filepath.Join(t.TempDir(), "flights.db"))
	require.NoError(t, err)
	defer client.Close()

	verifySink(t, client)
}
