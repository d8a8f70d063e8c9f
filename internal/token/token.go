// Package token contains the top-users SFT registry. One token per holder per
// reward period, mintable only by the owner.
package token

import (
	"errors"
	"sync"

	"github.com/blocknews-net/herodotus/internal/entities"
	"github.com/blocknews-net/herodotus/internal/events"
)

// ErrUnauthorized is returned when a mint or ownership operation is attempted
// by somebody other than the owner.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidAddress is returned when the holder is the sentinel identity.
var ErrInvalidAddress = errors.New("invalid address")

// ErrInvalidID is returned when the period is outside the mintable range.
var ErrInvalidID = errors.New("invalid id")

// ErrInvalidOwner is returned when ownership is transferred to the sentinel identity.
var ErrInvalidOwner = errors.New("invalid owner")

type balanceKey struct {
	holder entities.Identity
	period entities.Period
}

// Registry tracks per-holder per-period token balances.
type Registry struct {
	mu       sync.RWMutex
	owner    entities.Identity
	first    entities.Period
	last     entities.Period
	uri      string
	balances map[balanceKey]uint64
	log      *events.Log
}

// New creates a registry minting periods in [first, last]. The URI template
// contains an "{id}" placeholder substitutable with the period.
func New(owner entities.Identity, first, last entities.Period, uri string, log *events.Log) *Registry {
	return &Registry{
		owner:    owner,
		first:    first,
		last:     last,
		uri:      uri,
		balances: make(map[balanceKey]uint64),
		log:      log,
	}
}

// MintOne mints a single token for (holder, period).
func (r *Registry) MintOne(caller, holder entities.Identity, period entities.Period) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkMint(caller, holder, period); err != nil {
		return err
	}

	r.balances[balanceKey{holder: holder, period: period}]++
	r.log.Append(events.Minted{To: holder, ID: period})

	return nil
}

// CanMint reports by error whether MintOne with the same arguments would
// succeed, without minting.
func (r *Registry) CanMint(caller, holder entities.Identity, period entities.Period) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.checkMint(caller, holder, period)
}

func (r *Registry) checkMint(caller, holder entities.Identity, period entities.Period) error {
	if caller != r.owner {
		return ErrUnauthorized
	}

	if holder.IsZero() {
		return ErrInvalidAddress
	}

	if period < r.first || period > r.last || period.Month() < 1 || period.Month() > 12 {
		return ErrInvalidID
	}

	return nil
}

// BalanceOf returns the number of tokens held by holder for period.
func (r *Registry) BalanceOf(holder entities.Identity, period entities.Period) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.balances[balanceKey{holder: holder, period: period}]
}

// URI returns the metadata URI template.
func (r *Registry) URI() string {
	return r.uri
}

// Owner returns the current owner.
func (r *Registry) Owner() entities.Identity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.owner
}

// TransferOwnership hands the registry over to newOwner.
func (r *Registry) TransferOwnership(caller, newOwner entities.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if caller != r.owner {
		return ErrUnauthorized
	}

	if newOwner.IsZero() {
		return ErrInvalidOwner
	}

	r.log.Append(events.OwnershipTransferred{Previous: r.owner, New: newOwner})
	r.owner = newOwner

	return nil
}

// RenounceOwnership resets the owner to the sentinel identity, disabling
// minting permanently.
func (r *Registry) RenounceOwnership(caller entities.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if caller != r.owner {
		return ErrUnauthorized
	}

	r.log.Append(events.OwnershipTransferred{Previous: r.owner, New: entities.ZeroIdentity})
	r.owner = entities.ZeroIdentity

	return nil
}
