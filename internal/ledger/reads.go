package ledger

import (
	"github.com/blocknews-net/herodotus/internal/entities"
)

// GetUser returns a copy of the record for id. Unknown identities read as the
// zero user.
func (l *Ledger) GetUser(id entities.Identity) entities.User {
	l.mu.RLock()
	defer l.mu.RUnlock()

	u, ok := l.users[id]
	if !ok {
		return entities.User{}
	}

	out := *u

	out.Followings.List = append([]entities.Identity(nil), u.Followings.List...)
	out.Followers.List = append([]entities.Identity(nil), u.Followers.List...)
	out.LastPostIDs.Slots = append([]uint64(nil), u.LastPostIDs.Slots...)
	out.SFTIDs = append([]entities.Period(nil), u.SFTIDs...)

	if u.MonthlyScore != nil {
		out.MonthlyScore = make(map[entities.Period]int64, len(u.MonthlyScore))
		for k, v := range u.MonthlyScore {
			out.MonthlyScore[k] = v
		}
	}

	return out
}

// GetPublication returns a copy of publication id. A publication that was
// never created reads as the zero value with Exists false.
func (l *Ledger) GetPublication(id uint64) entities.Publication {
	l.mu.RLock()
	defer l.mu.RUnlock()

	p, ok := l.publications[id]
	if !ok {
		return entities.Publication{}
	}

	out := *p
	out.CommentIDs = append([]uint64(nil), p.CommentIDs...)

	return out
}

// TopUsers returns the current top-users board. Empty slots hold the sentinel
// identity.
func (l *Ledger) TopUsers() [entities.TopUsersCap]entities.Identity {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.board
}

// LastPostsFromCategory returns the ring of the most recent publication IDs
// posted in c.
func (l *Ledger) LastPostsFromCategory(c entities.Category) (entities.Ring, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if !c.Valid() || c == entities.CategoryNone {
		return entities.Ring{}, ErrInvalidCategory
	}

	r, ok := l.categoryFeeds[c]
	if !ok {
		return entities.Ring{}, nil
	}

	return entities.Ring{
		Slots:  append([]uint64(nil), r.Slots...),
		Cursor: r.Cursor,
	}, nil
}

// MonthlyProfileScore returns the score id gathered during period.
func (l *Ledger) MonthlyProfileScore(id entities.Identity, period entities.Period) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	u, ok := l.users[id]
	if !ok {
		return 0
	}

	return u.MonthlyScore[period]
}

// DoesFollow reports whether follower follows followee.
func (l *Ledger) DoesFollow(follower, followee entities.Identity) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	u, ok := l.users[follower]
	if !ok {
		return false
	}

	return u.Followings.Contains(followee)
}

// UpvoteOrDownvote returns the voter's current vote on publication id.
func (l *Ledger) UpvoteOrDownvote(voter entities.Identity, id uint64) entities.Vote {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.votes[voteKey{voter: voter, id: id}]
}

// HasBeenRewarded reports whether id has been minted an SFT for period.
func (l *Ledger) HasBeenRewarded(id entities.Identity, period entities.Period) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.rewarded[rewardKey{user: id, period: period}]

	return ok
}

// NextUnusedPublicationID returns the ID the next publication will get.
func (l *Ledger) NextUnusedPublicationID() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.nextID
}

// CurrentPeriod returns the period votes are currently scored against.
func (l *Ledger) CurrentPeriod() entities.Period {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.period
}

// Owner returns the current owner.
func (l *Ledger) Owner() entities.Identity {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.owner
}
