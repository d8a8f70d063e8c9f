// Package service contains interface for service business-logic.
package service

import (
	"context"

	"github.com/blocknews-net/herodotus/internal/entities"
	"github.com/blocknews-net/herodotus/internal/events"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// Operation kinds as stored in the journal.
const (
	KindChangeName        = "change_name"
	KindChangeDescription = "change_description"
	KindChangePicture     = "change_picture"
	KindPost              = "post"
	KindRepost            = "repost"
	KindUpvote            = "upvote"
	KindDownvote          = "downvote"
	KindFollow            = "follow"
	KindUnfollow          = "unfollow"
	KindRewardTopUsers    = "reward_top_users"
	KindTransferOwnership = "transfer_ownership"
	KindRenounceOwnership = "renounce_ownership"
)

// ChangeNamePayload ...
type ChangeNamePayload struct {
	Name string `json:"name"`
}

// ChangeDescriptionPayload ...
type ChangeDescriptionPayload struct {
	Description string `json:"description"`
}

// ChangePicturePayload ...
type ChangePicturePayload struct {
	Picture uint8 `json:"picture"`
}

// PostPayload ...
type PostPayload struct {
	Content  string            `json:"content"`
	Link     string            `json:"link"`
	Category entities.Category `json:"category"`
	ParentID uint64            `json:"parentID"`
}

// RepostPayload ...
type RepostPayload struct {
	TargetID uint64 `json:"targetID"`
}

// VotePayload is shared by upvote and downvote operations.
type VotePayload struct {
	ID uint64 `json:"id"`
}

// FollowPayload is shared by follow and unfollow operations.
type FollowPayload struct {
	Target entities.Identity `json:"target"`
}

// OwnershipPayload ...
type OwnershipPayload struct {
	NewOwner entities.Identity `json:"newOwner"`
}

// Service applies write operations to the ledger and journals the applied
// ones, and exposes the ledger's read surface.
type Service interface {
	Ping(ctx context.Context) error

	ChangeName(ctx context.Context, caller entities.Identity, name string) error
	ChangeDescription(ctx context.Context, caller entities.Identity, description string) error
	ChangePicture(ctx context.Context, caller entities.Identity, picture uint8) error
	Post(ctx context.Context, caller entities.Identity, content, link string, category entities.Category, parentID uint64) (uint64, error)
	Repost(ctx context.Context, caller entities.Identity, targetID uint64) (uint64, error)
	Upvote(ctx context.Context, caller entities.Identity, id uint64) error
	Downvote(ctx context.Context, caller entities.Identity, id uint64) error
	Follow(ctx context.Context, caller, target entities.Identity) error
	Unfollow(ctx context.Context, caller, target entities.Identity) error
	RewardTopUsers(ctx context.Context, caller entities.Identity) error
	TransferOwnership(ctx context.Context, caller, newOwner entities.Identity) error
	RenounceOwnership(ctx context.Context, caller entities.Identity) error

	GetUser(ctx context.Context, id entities.Identity) entities.User
	GetPublication(ctx context.Context, id uint64) entities.Publication
	TopUsers(ctx context.Context) [entities.TopUsersCap]entities.Identity
	LastPostsFromCategory(ctx context.Context, c entities.Category) (entities.Ring, error)
	MonthlyProfileScore(ctx context.Context, id entities.Identity, period entities.Period) int64
	DoesFollow(ctx context.Context, follower, followee entities.Identity) bool
	UpvoteOrDownvote(ctx context.Context, voter entities.Identity, id uint64) entities.Vote
	HasBeenRewarded(ctx context.Context, id entities.Identity, period entities.Period) bool
	NextUnusedPublicationID(ctx context.Context) uint64
	CurrentPeriod(ctx context.Context) entities.Period
	Owner(ctx context.Context) entities.Identity
	SFTURI(ctx context.Context) string
	SFTBalance(ctx context.Context, holder entities.Identity, period entities.Period) uint64
	Events(ctx context.Context, after uint64) []events.Entry
}
