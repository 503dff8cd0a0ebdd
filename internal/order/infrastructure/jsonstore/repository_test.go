package jsonstore

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpanda/restaurant/internal/order/domain"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRepository(log, filepath.Join(t.TempDir(), "orders.json"))
}

func TestSaveLoadPreservesInsertionOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	orders := []domain.Order{
		{ID: "#SP1000", Username: "cathy", Status: domain.StatusPending,
			Lines: []domain.Line{{ProductID: 1, Name: "Burger", UnitPrice: 5, Quantity: 2,
				Extras: []domain.Extra{{Name: "Cheese", Price: 0.5}}}},
			PaymentMethod: domain.PaymentCreditCard},
		{ID: "#SP2000", Username: "bob", Status: domain.StatusUpdated,
			Lines:         []domain.Line{{ProductID: 2, Name: "Cola", UnitPrice: 1.5, Quantity: 1}},
			PaymentMethod: domain.PaymentBankTransfer},
	}
	require.NoError(t, repo.Save(ctx, orders))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "#SP1000", got[0].ID)
	assert.Equal(t, "#SP2000", got[1].ID)
	assert.Equal(t, "Cheese", got[0].Lines[0].Extras[0].Name)
}

func TestLoadMissingFileStartsEmpty(t *testing.T) {
	got, err := newTestRepo(t).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadCorruptFileStartsEmpty(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, os.WriteFile(repo.path, []byte("[{broken"), 0o644))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Save(context.Background(), nil))

	data, err := os.ReadFile(repo.path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}
