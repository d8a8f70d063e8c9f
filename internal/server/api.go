package server

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/blocknews-net/herodotus/internal/entities"
	"github.com/blocknews-net/herodotus/internal/events"
)

// maxBodySize leaves room for a publication with content and link both at
// their 300-character bounds plus JSON escaping overhead.
const maxBodySize = 4096

// Error ...
type Error struct {
	Error string `json:"error"`
}

// ChangeNameRequest ...
type ChangeNameRequest struct {
	From entities.Identity `json:"from"`
	Name string            `json:"name"`
}

// ChangeDescriptionRequest ...
type ChangeDescriptionRequest struct {
	From        entities.Identity `json:"from"`
	Description string            `json:"description"`
}

// ChangePictureRequest ...
type ChangePictureRequest struct {
	From    entities.Identity `json:"from"`
	Picture uint8             `json:"picture"`
}

// PostRequest ...
type PostRequest struct {
	From     entities.Identity `json:"from"`
	Content  string            `json:"content"`
	Link     string            `json:"link"`
	Category entities.Category `json:"category"`
	ParentID uint64            `json:"parentID"`
}

// FromRequest is the body of write operations carrying only the caller.
type FromRequest struct {
	From entities.Identity `json:"from"`
}

// FollowRequest ...
type FollowRequest struct {
	From   entities.Identity `json:"from"`
	Target entities.Identity `json:"target"`
}

// TransferOwnershipRequest ...
type TransferOwnershipRequest struct {
	From     entities.Identity `json:"from"`
	NewOwner entities.Identity `json:"newOwner"`
}

// IDResponse is returned by post and repost.
type IDResponse struct {
	ID uint64 `json:"id"`
}

// OKResponse is returned by writes without a result.
type OKResponse struct {
	OK bool `json:"ok"`
}

// ScoreResponse ...
type ScoreResponse struct {
	Score int64 `json:"score"`
}

// FollowsResponse ...
type FollowsResponse struct {
	Follows bool `json:"follows"`
}

// VoteResponse ...
type VoteResponse struct {
	Vote entities.Vote `json:"vote"`
}

// RewardedResponse ...
type RewardedResponse struct {
	Rewarded bool `json:"rewarded"`
}

// TopUsersResponse ...
type TopUsersResponse struct {
	TopUsers []entities.Identity `json:"topUsers"`
}

// NextIDResponse ...
type NextIDResponse struct {
	NextID uint64 `json:"nextID"`
}

// PeriodResponse ...
type PeriodResponse struct {
	Period entities.Period `json:"period"`
}

// OwnerResponse ...
type OwnerResponse struct {
	Owner entities.Identity `json:"owner"`
}

// URIResponse ...
type URIResponse struct {
	URI string `json:"uri"`
}

// BalanceResponse ...
type BalanceResponse struct {
	Balance uint64 `json:"balance"`
}

// EventsResponse ...
type EventsResponse struct {
	Events []events.Entry `json:"events"`
}

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		writeInternalError(w, "failed to marshal response: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	b, _ := json.Marshal(Error{Error: message}) // nolint
	_, _ = w.Write(b)
}

func writeInternalError(w http.ResponseWriter, message string) {
	logrus.Error(message)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func decodeRequest(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode request: "+err.Error())
		return false
	}

	return true
}
