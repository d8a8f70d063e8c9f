package ledger

import (
	"github.com/blocknews-net/herodotus/internal/entities"
	"github.com/blocknews-net/herodotus/internal/events"
)

// Follow adds target to the caller's followings list and the caller to the
// target's followers list, reusing sentinel slots freed by earlier unfollows.
func (l *Ledger) Follow(caller, target entities.Identity) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	// the sentinel marks empty slots and must never become a list entry
	if target.IsZero() {
		return ErrInvalidTarget
	}

	if caller == target {
		return ErrSelfFollow
	}

	follower, followed := l.user(caller), l.user(target)

	if follower.Followings.Contains(target) {
		return ErrAlreadyFollowing
	}

	if follower.Followings.Count >= entities.FollowListCap || followed.Followers.Count >= entities.FollowListCap {
		return ErrFollowLimit
	}

	follower.Followings.Add(target)
	followed.Followers.Add(caller)

	l.log.Append(events.Followed{Follower: caller, Followed: target})

	return nil
}

// Unfollow resets the slots taken by the relationship to the sentinel
// identity on both sides.
func (l *Ledger) Unfollow(caller, target entities.Identity) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if target.IsZero() {
		return ErrInvalidTarget
	}

	if caller == target {
		return ErrSelfUnfollow
	}

	follower := l.user(caller)

	if !follower.Followings.Contains(target) {
		return ErrNotFollowing
	}

	follower.Followings.Remove(target)
	l.user(target).Followers.Remove(caller)

	l.log.Append(events.Unfollowed{Follower: caller, Unfollowed: target})

	return nil
}
