package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blocknews-net/herodotus/internal/entities"
	"github.com/blocknews-net/herodotus/internal/events"
	"github.com/blocknews-net/herodotus/internal/ledger"
	"github.com/blocknews-net/herodotus/internal/service"
	"github.com/blocknews-net/herodotus/internal/storage"
	"github.com/blocknews-net/herodotus/internal/storage/mock"
	"github.com/blocknews-net/herodotus/internal/token"
)

var (
	owner = entities.Identity{0xff}
	alice = entities.Identity{1}
	bob   = entities.Identity{2}
)

func newService(t *testing.T) (service.Service, *mock.MockJournal) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	j := mock.NewMockJournal(ctrl)

	log := events.NewLog(func() time.Time { return time.Unix(100, 0) })
	tokens := token.New(owner, 202312, 202612, "https://example.com/sft/{id}.json", log)
	l := ledger.New(owner, tokens, log, func() time.Time { return time.Unix(100, 0) })

	return New(l, tokens, log, j), j
}

func TestSrv_Ping(t *testing.T) {
	s, j := newService(t)

	j.EXPECT().Ping(gomock.Any()).Return(nil)
	require.NoError(t, s.Ping(context.Background()))

	j.EXPECT().Ping(gomock.Any()).Return(context.Canceled)
	require.Error(t, s.Ping(context.Background()))
}

func TestSrv_ChangeName(t *testing.T) {
	s, j := newService(t)

	j.EXPECT().Append(gomock.Any(), gomock.Any()).Do(func(_ context.Context, op *storage.Operation) {
		assert.Equal(t, service.KindChangeName, op.Kind)
		assert.Equal(t, alice.String(), op.Caller)
		assert.JSONEq(t, `{"name":"alice"}`, string(op.Payload))
		assert.False(t, op.CreatedAt.IsZero())
	}).Return(int64(1), nil)

	require.NoError(t, s.ChangeName(context.Background(), alice, "alice"))
	assert.Equal(t, "alice", s.GetUser(context.Background(), alice).Name)
}

func TestSrv_ChangeName_NotJournaledOnFailure(t *testing.T) {
	s, _ := newService(t)

	// no Append expectation: a rejected operation must not reach the journal
	err := s.ChangeName(context.Background(), alice, strings.Repeat("a", ledger.MaxNameLen+1))
	require.Equal(t, ledger.ErrNameTooLong, err)
}

func TestSrv_ChangeName_JournalFailure(t *testing.T) {
	s, j := newService(t)

	j.EXPECT().Append(gomock.Any(), gomock.Any()).Return(int64(0), context.Canceled)

	err := s.ChangeName(context.Background(), alice, "alice")
	require.Error(t, err)

	// the ledger already holds the change
	assert.Equal(t, "alice", s.GetUser(context.Background(), alice).Name)
}

func TestSrv_Post(t *testing.T) {
	s, j := newService(t)

	j.EXPECT().Append(gomock.Any(), gomock.Any()).Do(func(_ context.Context, op *storage.Operation) {
		assert.Equal(t, service.KindPost, op.Kind)
		assert.JSONEq(t, `{"content":"hello","link":"https://example.com","category":1,"parentID":0}`, string(op.Payload))
	}).Return(int64(1), nil)

	id, err := s.Post(context.Background(), alice, "hello", "https://example.com", entities.CategoryTechnology, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, id)

	assert.True(t, s.GetPublication(context.Background(), id).Exists)
}

func TestSrv_Votes(t *testing.T) {
	s, j := newService(t)

	j.EXPECT().Append(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	id, err := s.Post(context.Background(), alice, "hello", "https://example.com", entities.CategoryNone, 0)
	require.NoError(t, err)

	j.EXPECT().Append(gomock.Any(), gomock.Any()).Do(func(_ context.Context, op *storage.Operation) {
		assert.Equal(t, service.KindUpvote, op.Kind)
		assert.Equal(t, bob.String(), op.Caller)
		assert.JSONEq(t, `{"id":1}`, string(op.Payload))
	}).Return(int64(2), nil)
	require.NoError(t, s.Upvote(context.Background(), bob, id))
	assert.Equal(t, entities.VoteUp, s.UpvoteOrDownvote(context.Background(), bob, id))

	j.EXPECT().Append(gomock.Any(), gomock.Any()).Do(func(_ context.Context, op *storage.Operation) {
		assert.Equal(t, service.KindDownvote, op.Kind)
	}).Return(int64(3), nil)
	require.NoError(t, s.Downvote(context.Background(), bob, id))
	assert.Equal(t, entities.VoteDown, s.UpvoteOrDownvote(context.Background(), bob, id))
}

func TestSrv_Follow(t *testing.T) {
	s, j := newService(t)

	j.EXPECT().Append(gomock.Any(), gomock.Any()).Do(func(_ context.Context, op *storage.Operation) {
		assert.Equal(t, service.KindFollow, op.Kind)
		assert.JSONEq(t, `{"target":"`+bob.String()+`"}`, string(op.Payload))
	}).Return(int64(1), nil)
	require.NoError(t, s.Follow(context.Background(), alice, bob))
	assert.True(t, s.DoesFollow(context.Background(), alice, bob))

	j.EXPECT().Append(gomock.Any(), gomock.Any()).Do(func(_ context.Context, op *storage.Operation) {
		assert.Equal(t, service.KindUnfollow, op.Kind)
	}).Return(int64(2), nil)
	require.NoError(t, s.Unfollow(context.Background(), alice, bob))
	assert.False(t, s.DoesFollow(context.Background(), alice, bob))
}

func TestSrv_RewardTopUsers(t *testing.T) {
	s, j := newService(t)

	j.EXPECT().Append(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(2)

	id, err := s.Post(context.Background(), alice, "hello", "https://example.com", entities.CategoryNone, 0)
	require.NoError(t, err)
	require.NoError(t, s.Upvote(context.Background(), bob, id))

	j.EXPECT().Append(gomock.Any(), gomock.Any()).Do(func(_ context.Context, op *storage.Operation) {
		assert.Equal(t, service.KindRewardTopUsers, op.Kind)
		assert.Equal(t, owner.String(), op.Caller)
	}).Return(int64(3), nil)

	require.NoError(t, s.RewardTopUsers(context.Background(), owner))
	assert.True(t, s.HasBeenRewarded(context.Background(), alice, 202312))
	assert.EqualValues(t, 1, s.SFTBalance(context.Background(), alice, 202312))
	assert.Equal(t, entities.Period(202401), s.CurrentPeriod(context.Background()))
}

func TestSrv_TransferOwnership(t *testing.T) {
	s, j := newService(t)

	j.EXPECT().Append(gomock.Any(), gomock.Any()).Do(func(_ context.Context, op *storage.Operation) {
		assert.Equal(t, service.KindTransferOwnership, op.Kind)
		assert.JSONEq(t, `{"newOwner":"`+alice.String()+`"}`, string(op.Payload))
	}).Return(int64(1), nil)

	require.NoError(t, s.TransferOwnership(context.Background(), owner, alice))
	assert.Equal(t, alice, s.Owner(context.Background()))

	// the registry changed hands as well: alice can run the reward cycle
	j.EXPECT().Append(gomock.Any(), gomock.Any()).Return(int64(2), nil)
	require.NoError(t, s.RewardTopUsers(context.Background(), alice))
}

func TestSrv_RenounceOwnership(t *testing.T) {
	s, j := newService(t)

	j.EXPECT().Append(gomock.Any(), gomock.Any()).Do(func(_ context.Context, op *storage.Operation) {
		assert.Equal(t, service.KindRenounceOwnership, op.Kind)
	}).Return(int64(1), nil)

	require.NoError(t, s.RenounceOwnership(context.Background(), owner))
	assert.Equal(t, entities.ZeroIdentity, s.Owner(context.Background()))
}

func TestSrv_Events(t *testing.T) {
	s, j := newService(t)

	assert.Empty(t, s.Events(context.Background(), 0))

	j.EXPECT().Append(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	_, err := s.Post(context.Background(), alice, "hello", "https://example.com", entities.CategoryNone, 0)
	require.NoError(t, err)

	entries := s.Events(context.Background(), 0)
	require.Len(t, entries, 1)
	assert.Equal(t, events.NewPost{ID: 1, Poster: alice}, entries[0].Event)

	assert.Empty(t, s.Events(context.Background(), 1))
}

func TestSrv_SFTURI(t *testing.T) {
	s, _ := newService(t)

	assert.Equal(t, "https://example.com/sft/{id}.json", s.SFTURI(context.Background()))
}
