package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daxp472/CMS/internal/auth"
	"github.com/daxp472/CMS/internal/service"
	"github.com/daxp472/CMS/internal/store/memory"
	storepg "github.com/daxp472/CMS/internal/store/postgres"
	"github.com/daxp472/CMS/internal/store/seed"
)

// Both store implementations must satisfy every seam main wires: the service
// store surface, the seeder's upsert slice and the auth user lookup.
var (
	_ service.Store  = (*memory.Store)(nil)
	_ service.Tx     = (*memory.Store)(nil)
	_ seed.Store     = (*memory.Store)(nil)
	_ auth.UserStore = (*memory.Store)(nil)

	_ service.Store  = (*storepg.Store)(nil)
	_ seed.Store     = (*storepg.Store)(nil)
	_ auth.UserStore = (*storepg.Store)(nil)
)

func TestSeedThroughStoreSeams(t *testing.T) {
	ctx := context.Background()
	mem := memory.New()

	var seedStore seed.Store = mem
	require.NoError(t, seed.Apply(ctx, seedStore))

	var userStore auth.UserStore = mem
	u, err := userStore.GetUserByEmail(ctx, "sho@central.police")
	require.NoError(t, err)
	require.Equal(t, seed.UserSHOID, u.ID)
}
