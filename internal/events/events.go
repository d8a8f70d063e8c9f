// Package events contains the append-only event log consumed by the
// presentation layer.
package events

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/blocknews-net/herodotus/internal/entities"
)

// Event is emitted by a successfully applied ledger operation.
type Event interface {
	// Name is the event name exposed to consumers.
	Name() string
}

// ChangedName ...
type ChangedName struct {
	User     entities.Identity `json:"user"`
	Previous string            `json:"previous"`
	New      string            `json:"new"`
}

// Name implements Event.
func (ChangedName) Name() string { return "ChangedName" }

// ChangedDescription ...
type ChangedDescription struct {
	User     entities.Identity `json:"user"`
	Previous string            `json:"previous"`
	New      string            `json:"new"`
}

// Name implements Event.
func (ChangedDescription) Name() string { return "ChangedDescription" }

// ChangedPicture ...
type ChangedPicture struct {
	User     entities.Identity `json:"user"`
	Previous uint8             `json:"previous"`
	New      uint8             `json:"new"`
}

// Name implements Event.
func (ChangedPicture) Name() string { return "ChangedPicture" }

// NewPost ...
type NewPost struct {
	ID     uint64            `json:"id"`
	Poster entities.Identity `json:"poster"`
}

// Name implements Event.
func (NewPost) Name() string { return "NewPost" }

// Reposted ...
type Reposted struct {
	Reposter entities.Identity `json:"reposter"`
	Of       uint64            `json:"of"`
	ID       uint64            `json:"id"`
}

// Name implements Event.
func (Reposted) Name() string { return "Reposted" }

// Upvoted ...
type Upvoted struct {
	Voter entities.Identity `json:"voter"`
	ID    uint64            `json:"id"`
}

// Name implements Event.
func (Upvoted) Name() string { return "Upvoted" }

// Downvoted ...
type Downvoted struct {
	Voter entities.Identity `json:"voter"`
	ID    uint64            `json:"id"`
}

// Name implements Event.
func (Downvoted) Name() string { return "Downvoted" }

// RemovedUpvote ...
type RemovedUpvote struct {
	Voter entities.Identity `json:"voter"`
	ID    uint64            `json:"id"`
}

// Name implements Event.
func (RemovedUpvote) Name() string { return "RemovedUpvote" }

// RemovedDownvote ...
type RemovedDownvote struct {
	Voter entities.Identity `json:"voter"`
	ID    uint64            `json:"id"`
}

// Name implements Event.
func (RemovedDownvote) Name() string { return "RemovedDownvote" }

// NewTopUser is emitted when a board slot changes hands. Either side may be
// the sentinel identity.
type NewTopUser struct {
	New      entities.Identity `json:"new"`
	Previous entities.Identity `json:"previous"`
}

// Name implements Event.
func (NewTopUser) Name() string { return "NewTopUser" }

// Followed ...
type Followed struct {
	Follower entities.Identity `json:"follower"`
	Followed entities.Identity `json:"followed"`
}

// Name implements Event.
func (Followed) Name() string { return "Followed" }

// Unfollowed ...
type Unfollowed struct {
	Follower   entities.Identity `json:"follower"`
	Unfollowed entities.Identity `json:"unfollowed"`
}

// Name implements Event.
func (Unfollowed) Name() string { return "Unfollowed" }

// Minted ...
type Minted struct {
	To entities.Identity `json:"to"`
	ID entities.Period   `json:"id"`
}

// Name implements Event.
func (Minted) Name() string { return "Minted" }

// OwnershipTransferred ...
type OwnershipTransferred struct {
	Previous entities.Identity `json:"previous"`
	New      entities.Identity `json:"new"`
}

// Name implements Event.
func (OwnershipTransferred) Name() string { return "OwnershipTransferred" }

// Entry is an event with its position in the log.
type Entry struct {
	Seq   uint64
	Time  time.Time
	Event Event
}

// MarshalJSON implements json.Marshaler. The event name is lifted next to the
// payload so that consumers can dispatch without inspecting fields.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Seq     uint64    `json:"seq"`
		Time    time.Time `json:"time"`
		Name    string    `json:"name"`
		Payload Event     `json:"payload"`
	}{
		Seq:     e.Seq,
		Time:    e.Time,
		Name:    e.Event.Name(),
		Payload: e.Event,
	})
}

// Log is an in-memory append-only event log. Sequence numbers start at 1.
type Log struct {
	mu      sync.RWMutex
	now     func() time.Time
	entries []Entry
}

// NewLog creates a log. now may be nil, in which case time.Now is used.
func NewLog(now func() time.Time) *Log {
	if now == nil {
		now = time.Now
	}

	return &Log{now: now}
}

// Append adds e to the log and returns its entry.
func (l *Log) Append(e Event) Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := Entry{
		Seq:   uint64(len(l.entries) + 1),
		Time:  l.now().UTC(),
		Event: e,
	}
	l.entries = append(l.entries, entry)

	return entry
}

// Since returns all entries with a sequence number greater than seq.
func (l *Log) Since(seq uint64) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if seq >= uint64(len(l.entries)) {
		return nil
	}

	out := make([]Entry, len(l.entries)-int(seq))
	copy(out, l.entries[seq:])

	return out
}

// Head returns the sequence number of the latest entry, 0 for an empty log.
func (l *Log) Head() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return uint64(len(l.entries))
}
