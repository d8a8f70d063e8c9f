// Package entities contains main entities of service.
package entities

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Capacities of the bounded collections. These are protocol constants, not
// tuning knobs.
const (
	// FollowListCap is the maximum number of entries in a following or followers list.
	FollowListCap = 40
	// UserPostsCap is the size of the per-user publication ring buffer.
	UserPostsCap = 25
	// CommentsCap is the maximum number of comments per publication.
	CommentsCap = 40
	// CategoryFeedCap is the size of the per-category publication ring buffer.
	CategoryFeedCap = 40
	// TopUsersCap is the size of the top-users board.
	TopUsersCap = 10
)

// IdentityLen is the byte length of an account address.
const IdentityLen = 20

// Identity is a 160-bit account address. The zero value is the sentinel
// "no user" and never belongs to a real account.
type Identity [IdentityLen]byte

// ZeroIdentity is the sentinel empty identity.
var ZeroIdentity Identity

// ParseIdentity parses a 0x-prefixed hex address.
func ParseIdentity(s string) (Identity, error) {
	var id Identity

	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return id, fmt.Errorf("identity must be 0x-prefixed")
	}

	b, err := hex.DecodeString(s[2:])
	if err != nil {
		return id, fmt.Errorf("failed to decode identity: %w", err)
	}

	if len(b) != IdentityLen {
		return id, fmt.Errorf("identity must be %d bytes long", IdentityLen)
	}

	copy(id[:], b)

	return id, nil
}

// IsZero reports whether id is the sentinel empty identity.
func (id Identity) IsZero() bool {
	return id == ZeroIdentity
}

func (id Identity) String() string {
	return "0x" + hex.EncodeToString(id[:])
}

// MarshalText implements encoding.TextMarshaler.
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *Identity) UnmarshalText(b []byte) error {
	v, err := ParseIdentity(string(b))
	if err != nil {
		return err
	}

	*id = v

	return nil
}

// Period is a YYYYMM-encoded calendar month used for scoring and rewards.
type Period uint32

// Next returns the period following p. December wraps into January of the
// next year, which is +89 in YYYYMM arithmetic.
func (p Period) Next() Period {
	if p%100 == 12 {
		return p + 89
	}

	return p + 1
}

// Month returns the MM component of p.
func (p Period) Month() uint32 {
	return uint32(p) % 100
}

// Category of a publication.
type Category uint8

const (
	// CategoryNone marks a publication without a category.
	CategoryNone Category = iota
	// CategoryTechnology ...
	CategoryTechnology
	// CategoryPolitics ...
	CategoryPolitics
	// CategorySports ...
	CategorySports
	// CategoryMiscellaneous ...
	CategoryMiscellaneous
)

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	return c <= CategoryMiscellaneous
}

// Vote is the tri-state record of a (voter, publication) pair.
type Vote uint8

const (
	// VoteNone ...
	VoteNone Vote = iota
	// VoteDown ...
	VoteDown
	// VoteUp ...
	VoteUp
)

// FollowList is a bounded, order-preserving list of identities. Removed
// entries are replaced with the sentinel identity so that the positions of
// the remaining entries are stable.
type FollowList struct {
	List  []Identity `json:"list"`
	Count uint8      `json:"count"`
}

// Contains reports whether id occupies a slot.
func (f FollowList) Contains(id Identity) bool {
	for _, v := range f.List {
		if v == id {
			return true
		}
	}

	return false
}

// Add places id into the first sentinel slot, growing the list if none is
// free. The caller is responsible for enforcing the capacity.
func (f *FollowList) Add(id Identity) {
	for i, v := range f.List {
		if v.IsZero() {
			f.List[i] = id
			f.Count++

			return
		}
	}

	f.List = append(f.List, id)
	f.Count++
}

// Remove resets id's slot to the sentinel and reports whether id was present.
func (f *FollowList) Remove(id Identity) bool {
	for i, v := range f.List {
		if v == id {
			f.List[i] = ZeroIdentity
			f.Count--

			return true
		}
	}

	return false
}

// Ring is a bounded ring buffer of publication IDs. It grows until it holds
// size entries, then the cursor wraps and the oldest entry is overwritten.
type Ring struct {
	Slots  []uint64 `json:"slots"`
	Cursor int      `json:"cursor"`
}

// Push writes id at the cursor position of a buffer bounded by size.
func (r *Ring) Push(id uint64, size int) {
	if len(r.Slots) < size {
		r.Slots = append(r.Slots, id)
	} else {
		r.Slots[r.Cursor] = id
	}

	r.Cursor = (r.Cursor + 1) % size
}

// User is a profile record. A zero-valued User stands for an account that was
// never written to; records spring into existence on first reference.
type User struct {
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Picture      uint8            `json:"picture"`
	Score        int64            `json:"score"`
	MonthlyScore map[Period]int64 `json:"monthlyScore,omitempty"`
	Followings   FollowList       `json:"followings"`
	Followers    FollowList       `json:"followers"`
	LastPostIDs  Ring             `json:"lastPostIDs"`
	SFTIDs       []Period         `json:"sftIDs"`
}

// Publication is a post, a comment or a repost. Everything but Score and
// CommentIDs is immutable after creation.
type Publication struct {
	Exists        bool      `json:"exists"`
	ID            uint64    `json:"id"`
	Poster        Identity  `json:"poster"`
	Content       string    `json:"content"`
	Link          string    `json:"link"`
	Category      Category  `json:"category"`
	IsCommentOfID uint64    `json:"isCommentOfID"`
	IsRepostOf    uint64    `json:"isRepostOf"`
	Score         int64     `json:"score"`
	CommentIDs    []uint64  `json:"commentIDs"`
	CreatedAt     time.Time `json:"createdAt"`
}
