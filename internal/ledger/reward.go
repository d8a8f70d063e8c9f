package ledger

import (
	"fmt"

	"github.com/blocknews-net/herodotus/internal/entities"
)

// RewardTopUsers mints one SFT for every user currently on the top-users
// board who has not been rewarded for the current period yet, then resets the
// board and advances the period.
func (l *Ledger) RewardTopUsers(caller entities.Identity) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if caller != l.owner {
		return ErrUnauthorized
	}

	// Operations are all-or-nothing, so a mint that would fail has to be
	// caught before any state change.
	for _, user := range l.board {
		if user.IsZero() {
			continue
		}

		if _, ok := l.rewarded[rewardKey{user: user, period: l.period}]; ok {
			continue
		}

		if err := l.tokens.CanMint(caller, user, l.period); err != nil {
			return fmt.Errorf("failed to mint sft: %w", err)
		}

		break
	}

	for i, user := range l.board {
		if user.IsZero() {
			continue
		}

		key := rewardKey{user: user, period: l.period}

		if _, ok := l.rewarded[key]; !ok {
			if err := l.tokens.MintOne(caller, user, l.period); err != nil {
				return fmt.Errorf("failed to mint sft: %w", err)
			}

			l.user(user).SFTIDs = append(l.user(user).SFTIDs, l.period)
			l.rewarded[key] = struct{}{}
		}

		l.board[i] = entities.ZeroIdentity
	}

	l.period = l.period.Next()

	return nil
}
