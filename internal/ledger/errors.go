package ledger

import "errors"

// Validation and authorization errors. Every operation either fully applies
// or fails with one of these before any state change.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidOwner = errors.New("invalid owner")

	ErrNameTooLong        = errors.New("name must not be longer than 24 characters")
	ErrDescriptionTooLong = errors.New("description must not be longer than 300 characters")
	ErrInvalidPicture     = errors.New("invalid picture")

	ErrEmptyPublication    = errors.New("publication can't be empty")
	ErrPublicationTooLong  = errors.New("publications are limited to 300 characters")
	ErrInvalidLink         = errors.New("link must be between 10 and 300 characters")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrParentNotFound      = errors.New("parent publication does not exist")
	ErrTooManyComments     = errors.New("comments are limited to 40 per publication")
	ErrCommentWithCategory = errors.New("comments can't have a category")
	ErrRepostOfRepost      = errors.New("reposts can't be reposted")

	ErrPublicationNotFound = errors.New("publication with given id does not exist")

	ErrInvalidTarget    = errors.New("invalid target")
	ErrSelfFollow       = errors.New("you can't follow yourself")
	ErrSelfUnfollow     = errors.New("you can't unfollow yourself")
	ErrAlreadyFollowing = errors.New("you already follow this user")
	ErrNotFollowing     = errors.New("you don't follow this user")
	ErrFollowLimit      = errors.New("follow limit reached")
)
