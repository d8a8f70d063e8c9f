// Package impl is implementation of service interface.
package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blocknews-net/herodotus/internal/entities"
	"github.com/blocknews-net/herodotus/internal/events"
	"github.com/blocknews-net/herodotus/internal/ledger"
	"github.com/blocknews-net/herodotus/internal/service"
	"github.com/blocknews-net/herodotus/internal/storage"
	"github.com/blocknews-net/herodotus/internal/token"
)

type srv struct {
	ledger  *ledger.Ledger
	tokens  *token.Registry
	log     *events.Log
	journal storage.Journal
}

// New creates new instance of service.
func New(l *ledger.Ledger, t *token.Registry, log *events.Log, j storage.Journal) service.Service {
	return srv{
		ledger:  l,
		tokens:  t,
		log:     log,
		journal: j,
	}
}

// record journals an operation that was already applied to the ledger. A
// journal failure is surfaced to the caller: the in-memory state holds the
// operation, but it would be lost on restart.
func (s srv) record(ctx context.Context, kind string, caller entities.Identity, payload interface{}) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal operation: %w", err)
	}

	if _, err := s.journal.Append(ctx, &storage.Operation{
		Kind:      kind,
		Caller:    caller.String(),
		Payload:   b,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return fmt.Errorf("failed to journal operation: %w", err)
	}

	return nil
}

func (s srv) Ping(ctx context.Context) error {
	if err := s.journal.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping journal: %w", err)
	}

	return nil
}

func (s srv) ChangeName(ctx context.Context, caller entities.Identity, name string) error {
	if err := s.ledger.ChangeName(caller, name); err != nil {
		return err
	}

	return s.record(ctx, service.KindChangeName, caller, service.ChangeNamePayload{Name: name})
}

func (s srv) ChangeDescription(ctx context.Context, caller entities.Identity, description string) error {
	if err := s.ledger.ChangeDescription(caller, description); err != nil {
		return err
	}

	return s.record(ctx, service.KindChangeDescription, caller, service.ChangeDescriptionPayload{Description: description})
}

func (s srv) ChangePicture(ctx context.Context, caller entities.Identity, picture uint8) error {
	if err := s.ledger.ChangePicture(caller, picture); err != nil {
		return err
	}

	return s.record(ctx, service.KindChangePicture, caller, service.ChangePicturePayload{Picture: picture})
}

func (s srv) Post(ctx context.Context, caller entities.Identity, content, link string, category entities.Category, parentID uint64) (uint64, error) {
	id, err := s.ledger.Post(caller, content, link, category, parentID)
	if err != nil {
		return 0, err
	}

	if err := s.record(ctx, service.KindPost, caller, service.PostPayload{
		Content:  content,
		Link:     link,
		Category: category,
		ParentID: parentID,
	}); err != nil {
		return 0, err
	}

	return id, nil
}

func (s srv) Repost(ctx context.Context, caller entities.Identity, targetID uint64) (uint64, error) {
	id, err := s.ledger.Repost(caller, targetID)
	if err != nil {
		return 0, err
	}

	if err := s.record(ctx, service.KindRepost, caller, service.RepostPayload{TargetID: targetID}); err != nil {
		return 0, err
	}

	return id, nil
}

func (s srv) Upvote(ctx context.Context, caller entities.Identity, id uint64) error {
	if err := s.ledger.Upvote(caller, id); err != nil {
		return err
	}

	return s.record(ctx, service.KindUpvote, caller, service.VotePayload{ID: id})
}

func (s srv) Downvote(ctx context.Context, caller entities.Identity, id uint64) error {
	if err := s.ledger.Downvote(caller, id); err != nil {
		return err
	}

	return s.record(ctx, service.KindDownvote, caller, service.VotePayload{ID: id})
}

func (s srv) Follow(ctx context.Context, caller, target entities.Identity) error {
	if err := s.ledger.Follow(caller, target); err != nil {
		return err
	}

	return s.record(ctx, service.KindFollow, caller, service.FollowPayload{Target: target})
}

func (s srv) Unfollow(ctx context.Context, caller, target entities.Identity) error {
	if err := s.ledger.Unfollow(caller, target); err != nil {
		return err
	}

	return s.record(ctx, service.KindUnfollow, caller, service.FollowPayload{Target: target})
}

func (s srv) RewardTopUsers(ctx context.Context, caller entities.Identity) error {
	if err := s.ledger.RewardTopUsers(caller); err != nil {
		return err
	}

	return s.record(ctx, service.KindRewardTopUsers, caller, struct{}{})
}

// TransferOwnership hands over both the ledger and the SFT registry, the way
// the pair is deployed: a reward cycle run by the new owner has to be able to
// mint.
func (s srv) TransferOwnership(ctx context.Context, caller, newOwner entities.Identity) error {
	if err := s.ledger.TransferOwnership(caller, newOwner); err != nil {
		return err
	}

	if err := s.tokens.TransferOwnership(caller, newOwner); err != nil {
		return err
	}

	return s.record(ctx, service.KindTransferOwnership, caller, service.OwnershipPayload{NewOwner: newOwner})
}

func (s srv) RenounceOwnership(ctx context.Context, caller entities.Identity) error {
	if err := s.ledger.RenounceOwnership(caller); err != nil {
		return err
	}

	if err := s.tokens.RenounceOwnership(caller); err != nil {
		return err
	}

	return s.record(ctx, service.KindRenounceOwnership, caller, struct{}{})
}

func (s srv) GetUser(_ context.Context, id entities.Identity) entities.User {
	return s.ledger.GetUser(id)
}

func (s srv) GetPublication(_ context.Context, id uint64) entities.Publication {
	return s.ledger.GetPublication(id)
}

func (s srv) TopUsers(_ context.Context) [entities.TopUsersCap]entities.Identity {
	return s.ledger.TopUsers()
}

func (s srv) LastPostsFromCategory(_ context.Context, c entities.Category) (entities.Ring, error) {
	return s.ledger.LastPostsFromCategory(c)
}

func (s srv) MonthlyProfileScore(_ context.Context, id entities.Identity, period entities.Period) int64 {
	return s.ledger.MonthlyProfileScore(id, period)
}

func (s srv) DoesFollow(_ context.Context, follower, followee entities.Identity) bool {
	return s.ledger.DoesFollow(follower, followee)
}

func (s srv) UpvoteOrDownvote(_ context.Context, voter entities.Identity, id uint64) entities.Vote {
	return s.ledger.UpvoteOrDownvote(voter, id)
}

func (s srv) HasBeenRewarded(_ context.Context, id entities.Identity, period entities.Period) bool {
	return s.ledger.HasBeenRewarded(id, period)
}

func (s srv) NextUnusedPublicationID(_ context.Context) uint64 {
	return s.ledger.NextUnusedPublicationID()
}

func (s srv) CurrentPeriod(_ context.Context) entities.Period {
	return s.ledger.CurrentPeriod()
}

func (s srv) Owner(_ context.Context) entities.Identity {
	return s.ledger.Owner()
}

func (s srv) SFTURI(_ context.Context) string {
	return s.tokens.URI()
}

func (s srv) SFTBalance(_ context.Context, holder entities.Identity, period entities.Period) uint64 {
	return s.tokens.BalanceOf(holder, period)
}

func (s srv) Events(_ context.Context, after uint64) []events.Entry {
	return s.log.Since(after)
}
