// Package ledger contains the Block News state machine: the user registry,
// the publication store, the vote ledger, the follow graph and the periodic
// top-users reward cycle.
package ledger

import (
	"sync"
	"time"

	"github.com/blocknews-net/herodotus/internal/entities"
	"github.com/blocknews-net/herodotus/internal/events"
	"github.com/blocknews-net/herodotus/internal/token"
)

// GenesisPeriod is the first reward period.
const GenesisPeriod entities.Period = 202312

// Limits on the mutable profile fields.
const (
	MaxNameLen        = 24
	MaxDescriptionLen = 300
	MaxContentLen     = 300
	MaxLinkLen        = 300
	MinLinkLen        = 10
	MaxPicture        = 20
)

type voteKey struct {
	voter entities.Identity
	id    uint64
}

type rewardKey struct {
	user   entities.Identity
	period entities.Period
}

// Ledger is the aggregate holding the whole application state. Every
// operation runs under a single writer lock, so each one is applied atomically
// in a global total order.
type Ledger struct {
	mu  sync.RWMutex
	now func() time.Time

	owner  entities.Identity
	period entities.Period
	nextID uint64

	users         map[entities.Identity]*entities.User
	publications  map[uint64]*entities.Publication
	votes         map[voteKey]entities.Vote
	board         [entities.TopUsersCap]entities.Identity
	rewarded      map[rewardKey]struct{}
	categoryFeeds map[entities.Category]*entities.Ring

	tokens *token.Registry
	log    *events.Log
}

// New creates a ledger owned by owner, minting rewards through tokens and
// appending to log. now may be nil, in which case time.Now is used.
func New(owner entities.Identity, tokens *token.Registry, log *events.Log, now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}

	return &Ledger{
		now:           now,
		owner:         owner,
		period:        GenesisPeriod,
		nextID:        1,
		users:         make(map[entities.Identity]*entities.User),
		publications:  make(map[uint64]*entities.Publication),
		votes:         make(map[voteKey]entities.Vote),
		rewarded:      make(map[rewardKey]struct{}),
		categoryFeeds: make(map[entities.Category]*entities.Ring),
		tokens:        tokens,
		log:           log,
	}
}

// user returns the record for id, creating a zero-valued one on first
// reference. Callers must hold the lock.
func (l *Ledger) user(id entities.Identity) *entities.User {
	u, ok := l.users[id]
	if !ok {
		u = &entities.User{}
		l.users[id] = u
	}

	return u
}

// TransferOwnership hands the ledger over to newOwner.
func (l *Ledger) TransferOwnership(caller, newOwner entities.Identity) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if caller != l.owner {
		return ErrUnauthorized
	}

	if newOwner.IsZero() {
		return ErrInvalidOwner
	}

	l.log.Append(events.OwnershipTransferred{Previous: l.owner, New: newOwner})
	l.owner = newOwner

	return nil
}

// RenounceOwnership resets the owner to the sentinel identity. The reward
// cycle can never be run again afterwards.
func (l *Ledger) RenounceOwnership(caller entities.Identity) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if caller != l.owner {
		return ErrUnauthorized
	}

	l.log.Append(events.OwnershipTransferred{Previous: l.owner, New: entities.ZeroIdentity})
	l.owner = entities.ZeroIdentity

	return nil
}
