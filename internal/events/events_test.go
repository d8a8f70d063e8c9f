package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blocknews-net/herodotus/internal/entities"
)

func TestLog_Append(t *testing.T) {
	now := time.Unix(100, 0)
	l := NewLog(func() time.Time { return now })

	e := l.Append(NewPost{ID: 1, Poster: entities.Identity{1}})
	assert.EqualValues(t, 1, e.Seq)
	assert.Equal(t, now.UTC(), e.Time)

	e = l.Append(Upvoted{Voter: entities.Identity{2}, ID: 1})
	assert.EqualValues(t, 2, e.Seq)

	assert.EqualValues(t, 2, l.Head())
}

func TestLog_Since(t *testing.T) {
	l := NewLog(func() time.Time { return time.Unix(100, 0) })

	assert.Empty(t, l.Since(0))

	l.Append(NewPost{ID: 1})
	l.Append(NewPost{ID: 2})
	l.Append(NewPost{ID: 3})

	all := l.Since(0)
	require.Len(t, all, 3)
	assert.EqualValues(t, 1, all[0].Seq)

	tail := l.Since(2)
	require.Len(t, tail, 1)
	assert.EqualValues(t, 3, tail[0].Seq)
	assert.Equal(t, NewPost{ID: 3}, tail[0].Event)

	assert.Empty(t, l.Since(3))
	assert.Empty(t, l.Since(100))
}

func TestEntry_MarshalJSON(t *testing.T) {
	e := Entry{
		Seq:   7,
		Time:  time.Unix(100, 0).UTC(),
		Event: Followed{Follower: entities.Identity{1}, Followed: entities.Identity{2}},
	}

	b, err := json.Marshal(e)
	require.NoError(t, err)

	assert.JSONEq(t, `
{
	"seq": 7,
	"time": "1970-01-01T00:01:40Z",
	"name": "Followed",
	"payload": {
		"follower": "0x0100000000000000000000000000000000000000",
		"followed": "0x0200000000000000000000000000000000000000"
	}
}
	`, string(b))
}
