package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/blocknews-net/herodotus/internal/entities"
	"github.com/blocknews-net/herodotus/internal/events"
	"github.com/blocknews-net/herodotus/internal/ledger"
	"github.com/blocknews-net/herodotus/internal/token"
)

// validationErrs are rejections of caller-supplied input; everything else
// coming out of a write is either an authorization failure or internal.
var validationErrs = []error{
	ledger.ErrInvalidOwner,
	ledger.ErrNameTooLong,
	ledger.ErrDescriptionTooLong,
	ledger.ErrInvalidPicture,
	ledger.ErrEmptyPublication,
	ledger.ErrPublicationTooLong,
	ledger.ErrInvalidLink,
	ledger.ErrInvalidCategory,
	ledger.ErrParentNotFound,
	ledger.ErrTooManyComments,
	ledger.ErrCommentWithCategory,
	ledger.ErrRepostOfRepost,
	ledger.ErrPublicationNotFound,
	ledger.ErrInvalidTarget,
	ledger.ErrSelfFollow,
	ledger.ErrSelfUnfollow,
	ledger.ErrAlreadyFollowing,
	ledger.ErrNotFollowing,
	ledger.ErrFollowLimit,
	token.ErrInvalidAddress,
	token.ErrInvalidID,
	token.ErrInvalidOwner,
}

func writeOperationError(w http.ResponseWriter, err error) {
	if errors.Is(err, ledger.ErrUnauthorized) || errors.Is(err, token.ErrUnauthorized) {
		writeError(w, http.StatusForbidden, err.Error())
		return
	}

	for _, v := range validationErrs {
		if errors.Is(err, v) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	writeInternalError(w, err.Error())
}

func identityParam(w http.ResponseWriter, r *http.Request, name string) (entities.Identity, bool) {
	id, err := entities.ParseIdentity(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return entities.ZeroIdentity, false
	}

	return id, true
}

func uint64Param(w http.ResponseWriter, r *http.Request, name string) (uint64, bool) {
	v, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}

	return v, true
}

func periodParam(w http.ResponseWriter, r *http.Request, name string) (entities.Period, bool) {
	v, err := strconv.ParseUint(chi.URLParam(r, name), 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}

	return entities.Period(v), true
}

func callerOK(w http.ResponseWriter, from entities.Identity) bool {
	if from.IsZero() {
		writeError(w, http.StatusBadRequest, "invalid from address")
		return false
	}

	return true
}

func (s server) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := identityParam(w, r, "address")
	if !ok {
		return
	}

	writeOK(w, http.StatusOK, s.s.GetUser(r.Context(), id))
}

func (s server) getMonthlyProfileScore(w http.ResponseWriter, r *http.Request) {
	id, ok := identityParam(w, r, "address")
	if !ok {
		return
	}

	period, ok := periodParam(w, r, "period")
	if !ok {
		return
	}

	writeOK(w, http.StatusOK, ScoreResponse{Score: s.s.MonthlyProfileScore(r.Context(), id, period)})
}

func (s server) hasBeenRewarded(w http.ResponseWriter, r *http.Request) {
	id, ok := identityParam(w, r, "address")
	if !ok {
		return
	}

	period, ok := periodParam(w, r, "period")
	if !ok {
		return
	}

	writeOK(w, http.StatusOK, RewardedResponse{Rewarded: s.s.HasBeenRewarded(r.Context(), id, period)})
}

func (s server) doesFollow(w http.ResponseWriter, r *http.Request) {
	follower, ok := identityParam(w, r, "follower")
	if !ok {
		return
	}

	followee, ok := identityParam(w, r, "followee")
	if !ok {
		return
	}

	writeOK(w, http.StatusOK, FollowsResponse{Follows: s.s.DoesFollow(r.Context(), follower, followee)})
}

func (s server) getPublication(w http.ResponseWriter, r *http.Request) {
	id, ok := uint64Param(w, r, "id")
	if !ok {
		return
	}

	writeOK(w, http.StatusOK, s.s.GetPublication(r.Context(), id))
}

func (s server) getVote(w http.ResponseWriter, r *http.Request) {
	id, ok := uint64Param(w, r, "id")
	if !ok {
		return
	}

	voter, ok := identityParam(w, r, "address")
	if !ok {
		return
	}

	writeOK(w, http.StatusOK, VoteResponse{Vote: s.s.UpvoteOrDownvote(r.Context(), voter, id)})
}

func (s server) getCategoryFeed(w http.ResponseWriter, r *http.Request) {
	v, err := strconv.ParseUint(chi.URLParam(r, "category"), 10, 8)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category")
		return
	}

	ring, err := s.s.LastPostsFromCategory(r.Context(), entities.Category(v))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeOK(w, http.StatusOK, ring)
}

func (s server) getTopUsers(w http.ResponseWriter, r *http.Request) {
	board := s.s.TopUsers(r.Context())

	writeOK(w, http.StatusOK, TopUsersResponse{TopUsers: board[:]})
}

func (s server) getNextID(w http.ResponseWriter, r *http.Request) {
	writeOK(w, http.StatusOK, NextIDResponse{NextID: s.s.NextUnusedPublicationID(r.Context())})
}

func (s server) getPeriod(w http.ResponseWriter, r *http.Request) {
	writeOK(w, http.StatusOK, PeriodResponse{Period: s.s.CurrentPeriod(r.Context())})
}

func (s server) getOwner(w http.ResponseWriter, r *http.Request) {
	writeOK(w, http.StatusOK, OwnerResponse{Owner: s.s.Owner(r.Context())})
}

func (s server) getSFTURI(w http.ResponseWriter, r *http.Request) {
	writeOK(w, http.StatusOK, URIResponse{URI: s.s.SFTURI(r.Context())})
}

func (s server) getSFTBalance(w http.ResponseWriter, r *http.Request) {
	holder, ok := identityParam(w, r, "address")
	if !ok {
		return
	}

	period, ok := periodParam(w, r, "period")
	if !ok {
		return
	}

	writeOK(w, http.StatusOK, BalanceResponse{Balance: s.s.SFTBalance(r.Context(), holder, period)})
}

func (s server) listEvents(w http.ResponseWriter, r *http.Request) {
	var after uint64

	if v := r.URL.Query().Get("after"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid after")
			return
		}

		after = parsed
	}

	entries := s.s.Events(r.Context(), after)
	if entries == nil {
		entries = []events.Entry{}
	}

	writeOK(w, http.StatusOK, EventsResponse{Events: entries})
}

func (s server) changeName(w http.ResponseWriter, r *http.Request) {
	var req ChangeNameRequest
	if !decodeRequest(w, r, &req) || !callerOK(w, req.From) {
		return
	}

	if err := s.s.ChangeName(r.Context(), req.From, req.Name); err != nil {
		writeOperationError(w, err)
		return
	}

	writeOK(w, http.StatusOK, OKResponse{OK: true})
}

func (s server) changeDescription(w http.ResponseWriter, r *http.Request) {
	var req ChangeDescriptionRequest
	if !decodeRequest(w, r, &req) || !callerOK(w, req.From) {
		return
	}

	if err := s.s.ChangeDescription(r.Context(), req.From, req.Description); err != nil {
		writeOperationError(w, err)
		return
	}

	writeOK(w, http.StatusOK, OKResponse{OK: true})
}

func (s server) changePicture(w http.ResponseWriter, r *http.Request) {
	var req ChangePictureRequest
	if !decodeRequest(w, r, &req) || !callerOK(w, req.From) {
		return
	}

	if err := s.s.ChangePicture(r.Context(), req.From, req.Picture); err != nil {
		writeOperationError(w, err)
		return
	}

	writeOK(w, http.StatusOK, OKResponse{OK: true})
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	var req PostRequest
	if !decodeRequest(w, r, &req) || !callerOK(w, req.From) {
		return
	}

	id, err := s.s.Post(r.Context(), req.From, req.Content, req.Link, req.Category, req.ParentID)
	if err != nil {
		writeOperationError(w, err)
		return
	}

	writeOK(w, http.StatusCreated, IDResponse{ID: id})
}

func (s server) repost(w http.ResponseWriter, r *http.Request) {
	targetID, ok := uint64Param(w, r, "id")
	if !ok {
		return
	}

	var req FromRequest
	if !decodeRequest(w, r, &req) || !callerOK(w, req.From) {
		return
	}

	id, err := s.s.Repost(r.Context(), req.From, targetID)
	if err != nil {
		writeOperationError(w, err)
		return
	}

	writeOK(w, http.StatusCreated, IDResponse{ID: id})
}

func (s server) upvote(w http.ResponseWriter, r *http.Request) {
	id, ok := uint64Param(w, r, "id")
	if !ok {
		return
	}

	var req FromRequest
	if !decodeRequest(w, r, &req) || !callerOK(w, req.From) {
		return
	}

	if err := s.s.Upvote(r.Context(), req.From, id); err != nil {
		writeOperationError(w, err)
		return
	}

	writeOK(w, http.StatusOK, OKResponse{OK: true})
}

func (s server) downvote(w http.ResponseWriter, r *http.Request) {
	id, ok := uint64Param(w, r, "id")
	if !ok {
		return
	}

	var req FromRequest
	if !decodeRequest(w, r, &req) || !callerOK(w, req.From) {
		return
	}

	if err := s.s.Downvote(r.Context(), req.From, id); err != nil {
		writeOperationError(w, err)
		return
	}

	writeOK(w, http.StatusOK, OKResponse{OK: true})
}

func (s server) follow(w http.ResponseWriter, r *http.Request) {
	var req FollowRequest
	if !decodeRequest(w, r, &req) || !callerOK(w, req.From) {
		return
	}

	if err := s.s.Follow(r.Context(), req.From, req.Target); err != nil {
		writeOperationError(w, err)
		return
	}

	writeOK(w, http.StatusOK, OKResponse{OK: true})
}

func (s server) unfollow(w http.ResponseWriter, r *http.Request) {
	var req FollowRequest
	if !decodeRequest(w, r, &req) || !callerOK(w, req.From) {
		return
	}

	if err := s.s.Unfollow(r.Context(), req.From, req.Target); err != nil {
		writeOperationError(w, err)
		return
	}

	writeOK(w, http.StatusOK, OKResponse{OK: true})
}

func (s server) rewardTopUsers(w http.ResponseWriter, r *http.Request) {
	var req FromRequest
	if !decodeRequest(w, r, &req) || !callerOK(w, req.From) {
		return
	}

	if err := s.s.RewardTopUsers(r.Context(), req.From); err != nil {
		writeOperationError(w, err)
		return
	}

	writeOK(w, http.StatusOK, OKResponse{OK: true})
}

func (s server) transferOwnership(w http.ResponseWriter, r *http.Request) {
	var req TransferOwnershipRequest
	if !decodeRequest(w, r, &req) || !callerOK(w, req.From) {
		return
	}

	if err := s.s.TransferOwnership(r.Context(), req.From, req.NewOwner); err != nil {
		writeOperationError(w, err)
		return
	}

	writeOK(w, http.StatusOK, OKResponse{OK: true})
}

func (s server) renounceOwnership(w http.ResponseWriter, r *http.Request) {
	var req FromRequest
	if !decodeRequest(w, r, &req) || !callerOK(w, req.From) {
		return
	}

	if err := s.s.RenounceOwnership(r.Context(), req.From); err != nil {
		writeOperationError(w, err)
		return
	}

	writeOK(w, http.StatusOK, OKResponse{OK: true})
}
