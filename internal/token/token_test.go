package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blocknews-net/herodotus/internal/entities"
	"github.com/blocknews-net/herodotus/internal/events"
)

var (
	owner  = entities.Identity{1}
	holder = entities.Identity{2}
)

func newRegistry() (*Registry, *events.Log) {
	log := events.NewLog(func() time.Time { return time.Unix(100, 0) })

	return New(owner, 202312, 202612, "https://example.com/sft/{id}.json", log), log
}

func TestRegistry_MintOne(t *testing.T) {
	r, log := newRegistry()

	require.NoError(t, r.MintOne(owner, holder, 202312))
	assert.EqualValues(t, 1, r.BalanceOf(holder, 202312))
	assert.EqualValues(t, 0, r.BalanceOf(holder, 202401))

	entries := log.Since(0)
	require.Len(t, entries, 1)
	assert.Equal(t, events.Minted{To: holder, ID: 202312}, entries[0].Event)

	require.NoError(t, r.MintOne(owner, holder, 202312))
	assert.EqualValues(t, 2, r.BalanceOf(holder, 202312))
}

func TestRegistry_MintOne_Errors(t *testing.T) {
	tt := []struct {
		name   string
		caller entities.Identity
		holder entities.Identity
		period entities.Period

		err error
	}{
		{
			name:   "not owner",
			caller: holder,
			holder: holder,
			period: 202312,
			err:    ErrUnauthorized,
		},
		{
			name:   "zero holder",
			caller: owner,
			holder: entities.ZeroIdentity,
			period: 202312,
			err:    ErrInvalidAddress,
		},
		{
			name:   "before first period",
			caller: owner,
			holder: holder,
			period: 202311,
			err:    ErrInvalidID,
		},
		{
			name:   "after last period",
			caller: owner,
			holder: holder,
			period: 202701,
			err:    ErrInvalidID,
		},
		{
			name:   "month out of range",
			caller: owner,
			holder: holder,
			period: 202400,
			err:    ErrInvalidID,
		},
		{
			name:   "month too high",
			caller: owner,
			holder: holder,
			period: 202413,
			err:    ErrInvalidID,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			r, log := newRegistry()

			require.Equal(t, tc.err, r.MintOne(tc.caller, tc.holder, tc.period))
			require.Equal(t, tc.err, r.CanMint(tc.caller, tc.holder, tc.period))
			assert.EqualValues(t, 0, r.BalanceOf(tc.holder, tc.period))
			assert.Empty(t, log.Since(0))
		})
	}
}

func TestRegistry_URI(t *testing.T) {
	r, _ := newRegistry()

	assert.Equal(t, "https://example.com/sft/{id}.json", r.URI())
}

func TestRegistry_TransferOwnership(t *testing.T) {
	r, log := newRegistry()

	require.Equal(t, ErrUnauthorized, r.TransferOwnership(holder, holder))
	require.Equal(t, ErrInvalidOwner, r.TransferOwnership(owner, entities.ZeroIdentity))

	require.NoError(t, r.TransferOwnership(owner, holder))
	assert.Equal(t, holder, r.Owner())

	// old owner lost mint rights
	require.Equal(t, ErrUnauthorized, r.MintOne(owner, holder, 202312))
	require.NoError(t, r.MintOne(holder, owner, 202312))

	entries := log.Since(0)
	require.Len(t, entries, 2)
	assert.Equal(t, events.OwnershipTransferred{Previous: owner, New: holder}, entries[0].Event)
}

func TestRegistry_RenounceOwnership(t *testing.T) {
	r, log := newRegistry()

	require.Equal(t, ErrUnauthorized, r.RenounceOwnership(holder))

	require.NoError(t, r.RenounceOwnership(owner))
	assert.Equal(t, entities.ZeroIdentity, r.Owner())

	require.Equal(t, ErrUnauthorized, r.MintOne(owner, holder, 202312))

	entries := log.Since(0)
	require.Len(t, entries, 1)
	assert.Equal(t, events.OwnershipTransferred{Previous: owner, New: entities.ZeroIdentity}, entries[0].Event)
}
