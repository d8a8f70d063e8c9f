package impl

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/blocknews-net/herodotus/internal/entities"
	"github.com/blocknews-net/herodotus/internal/ledger"
	"github.com/blocknews-net/herodotus/internal/service"
	"github.com/blocknews-net/herodotus/internal/storage"
	"github.com/blocknews-net/herodotus/internal/token"
)

var log = logrus.WithField("package", "impl")

const replayBatchSize = 500

// Replay feeds the journal into l in sequence order, rebuilding the in-memory
// state after a restart. Operations that no longer apply are logged and
// skipped. It returns the sequence number of the last operation seen.
func Replay(ctx context.Context, j storage.Journal, l *ledger.Ledger, t *token.Registry) (int64, error) {
	var head int64

	for {
		ops, err := j.List(ctx, head, replayBatchSize)
		if err != nil {
			return head, fmt.Errorf("failed to list journal: %w", err)
		}

		if len(ops) == 0 {
			return head, nil
		}

		for _, op := range ops {
			if err := apply(op, l, t); err != nil {
				log.WithField("seq", op.Seq).WithField("kind", op.Kind).WithError(err).Error("failed to replay operation")
			}

			head = op.Seq
		}
	}
}

// nolint: gocyclo
func apply(op *storage.Operation, l *ledger.Ledger, t *token.Registry) error {
	caller, err := entities.ParseIdentity(op.Caller)
	if err != nil {
		return fmt.Errorf("failed to parse caller: %w", err)
	}

	switch op.Kind {
	case service.KindChangeName:
		var p service.ChangeNamePayload
		if err := json.Unmarshal(op.Payload, &p); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}

		return l.ChangeName(caller, p.Name)

	case service.KindChangeDescription:
		var p service.ChangeDescriptionPayload
		if err := json.Unmarshal(op.Payload, &p); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}

		return l.ChangeDescription(caller, p.Description)

	case service.KindChangePicture:
		var p service.ChangePicturePayload
		if err := json.Unmarshal(op.Payload, &p); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}

		return l.ChangePicture(caller, p.Picture)

	case service.KindPost:
		var p service.PostPayload
		if err := json.Unmarshal(op.Payload, &p); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}

		_, err := l.Post(caller, p.Content, p.Link, p.Category, p.ParentID)

		return err

	case service.KindRepost:
		var p service.RepostPayload
		if err := json.Unmarshal(op.Payload, &p); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}

		_, err := l.Repost(caller, p.TargetID)

		return err

	case service.KindUpvote:
		var p service.VotePayload
		if err := json.Unmarshal(op.Payload, &p); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}

		return l.Upvote(caller, p.ID)

	case service.KindDownvote:
		var p service.VotePayload
		if err := json.Unmarshal(op.Payload, &p); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}

		return l.Downvote(caller, p.ID)

	case service.KindFollow:
		var p service.FollowPayload
		if err := json.Unmarshal(op.Payload, &p); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}

		return l.Follow(caller, p.Target)

	case service.KindUnfollow:
		var p service.FollowPayload
		if err := json.Unmarshal(op.Payload, &p); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}

		return l.Unfollow(caller, p.Target)

	case service.KindRewardTopUsers:
		return l.RewardTopUsers(caller)

	case service.KindTransferOwnership:
		var p service.OwnershipPayload
		if err := json.Unmarshal(op.Payload, &p); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}

		if err := l.TransferOwnership(caller, p.NewOwner); err != nil {
			return err
		}

		return t.TransferOwnership(caller, p.NewOwner)

	case service.KindRenounceOwnership:
		if err := l.RenounceOwnership(caller); err != nil {
			return err
		}

		return t.RenounceOwnership(caller)

	default:
		return fmt.Errorf("unknown operation kind %q", op.Kind)
	}
}
