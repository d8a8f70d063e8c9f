package ledger

import (
	"github.com/blocknews-net/herodotus/internal/entities"
	"github.com/blocknews-net/herodotus/internal/events"
)

// Upvote toggles the caller's upvote on publication id. An existing upvote is
// removed; an existing downvote is replaced.
func (l *Ledger) Upvote(caller entities.Identity, id uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	pub := l.publications[id]
	if pub == nil {
		return ErrPublicationNotFound
	}

	key := voteKey{voter: caller, id: id}

	switch l.votes[key] {
	case entities.VoteNone:
		l.votes[key] = entities.VoteUp
		l.applyDelta(pub, 1)
		l.log.Append(events.Upvoted{Voter: caller, ID: id})
	case entities.VoteUp:
		delete(l.votes, key)
		l.applyDelta(pub, -1)
		l.log.Append(events.RemovedUpvote{Voter: caller, ID: id})
	case entities.VoteDown:
		l.votes[key] = entities.VoteUp
		l.applyDelta(pub, 2)
		l.log.Append(events.RemovedDownvote{Voter: caller, ID: id})
		l.log.Append(events.Upvoted{Voter: caller, ID: id})
	}

	l.refreshBoard(pub.Poster)

	return nil
}

// Downvote toggles the caller's downvote on publication id. An existing
// downvote is removed; an existing upvote is replaced.
func (l *Ledger) Downvote(caller entities.Identity, id uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	pub := l.publications[id]
	if pub == nil {
		return ErrPublicationNotFound
	}

	key := voteKey{voter: caller, id: id}

	switch l.votes[key] {
	case entities.VoteNone:
		l.votes[key] = entities.VoteDown
		l.applyDelta(pub, -1)
		l.log.Append(events.Downvoted{Voter: caller, ID: id})
	case entities.VoteDown:
		delete(l.votes, key)
		l.applyDelta(pub, 1)
		l.log.Append(events.RemovedDownvote{Voter: caller, ID: id})
	case entities.VoteUp:
		l.votes[key] = entities.VoteDown
		l.applyDelta(pub, -2)
		l.log.Append(events.RemovedUpvote{Voter: caller, ID: id})
		l.log.Append(events.Downvoted{Voter: caller, ID: id})
	}

	l.refreshBoard(pub.Poster)

	return nil
}

// applyDelta applies a score delta to the publication, its poster and the
// poster's score for the current period.
func (l *Ledger) applyDelta(pub *entities.Publication, delta int64) {
	pub.Score += delta

	poster := l.user(pub.Poster)
	poster.Score += delta

	if poster.MonthlyScore == nil {
		poster.MonthlyScore = make(map[entities.Period]int64)
	}
	poster.MonthlyScore[l.period] += delta
}

// refreshBoard re-evaluates the poster's eligibility for the top-users board
// after its score changed. A positive-score user takes the first empty slot;
// when the board is full no slot is taken. A user dropping to zero or below
// gives its slot back to the sentinel.
func (l *Ledger) refreshBoard(user entities.Identity) {
	poster := l.user(user)

	if poster.Score > 0 {
		free := -1

		for i, v := range l.board {
			if v == user {
				return
			}

			if free < 0 && v.IsZero() {
				free = i
			}
		}

		if free < 0 {
			return
		}

		l.board[free] = user
		l.log.Append(events.NewTopUser{New: user, Previous: entities.ZeroIdentity})

		return
	}

	for i, v := range l.board {
		if v == user {
			l.board[i] = entities.ZeroIdentity
			l.log.Append(events.NewTopUser{New: entities.ZeroIdentity, Previous: user})

			return
		}
	}
}
