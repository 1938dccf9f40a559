package mysql

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockdesk/internal/cache"
	"stockdesk/internal/testutil"
)

// Unit Tests

func TestNewSlotStore(t *testing.T) {
	db := &sql.DB{}
	store := NewSlotStore(db)

	assert.NotNil(t, store)
	assert.Equal(t, db, store.db)
}

// Integration Tests

func TestSlotStore_GetMiss(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	store := NewSlotStore(db)
	ctx := context.Background()
	require.NoError(t, store.EnsureSchema(ctx))

	_, err := store.Get(ctx, "never_written")
	assert.True(t, errors.Is(err, cache.ErrMiss))
}

func TestSlotStore_SetGetOverwrite(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	store := NewSlotStore(db)
	ctx := context.Background()
	require.NoError(t, store.EnsureSchema(ctx))

	require.NoError(t, store.Set(ctx, cache.SlotInventory, []byte(`[{"sku":"MS-2023"}]`)))
	payload, err := store.Get(ctx, cache.SlotInventory)
	require.NoError(t, err)
	assert.Equal(t, `[{"sku":"MS-2023"}]`, string(payload))

	// Overwrite the same slot.
	require.NoError(t, store.Set(ctx, cache.SlotInventory, []byte(`[]`)))
	payload, err = store.Get(ctx, cache.SlotInventory)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(payload))
}

func TestSlotStore_SlotsAreIndependent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	store := NewSlotStore(db)
	ctx := context.Background()
	require.NoError(t, store.EnsureSchema(ctx))

	require.NoError(t, store.Set(ctx, cache.SlotInventory, []byte(`[]`)))
	require.NoError(t, store.Set(ctx, cache.SlotPage, []byte(`3`)))

	page, err := store.Get(ctx, cache.SlotPage)
	require.NoError(t, err)
	assert.Equal(t, "3", string(page))
}
