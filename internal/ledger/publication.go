package ledger

import (
	"github.com/blocknews-net/herodotus/internal/entities"
	"github.com/blocknews-net/herodotus/internal/events"
)

// Post creates a publication. parentID 0 creates a top-level post, which must
// carry a link; a non-zero parentID creates a comment on that publication,
// which must not carry a category and may omit the link.
func (l *Ledger) Post(caller entities.Identity, content, link string, category entities.Category, parentID uint64) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if content == "" {
		return 0, ErrEmptyPublication
	}

	if len(content) > MaxContentLen {
		return 0, ErrPublicationTooLong
	}

	if !category.Valid() {
		return 0, ErrInvalidCategory
	}

	var parent *entities.Publication

	if parentID != 0 {
		parent = l.publications[parentID]
		if parent == nil {
			return 0, ErrParentNotFound
		}

		if len(parent.CommentIDs) >= entities.CommentsCap {
			return 0, ErrTooManyComments
		}

		if category != entities.CategoryNone {
			return 0, ErrCommentWithCategory
		}

		if link != "" && (len(link) < MinLinkLen || len(link) > MaxLinkLen) {
			return 0, ErrInvalidLink
		}
	} else if len(link) < MinLinkLen || len(link) > MaxLinkLen {
		return 0, ErrInvalidLink
	}

	id := l.allocateID()

	l.publications[id] = &entities.Publication{
		Exists:        true,
		ID:            id,
		Poster:        caller,
		Content:       content,
		Link:          link,
		Category:      category,
		IsCommentOfID: parentID,
		CreatedAt:     l.now().UTC(),
	}

	l.user(caller).LastPostIDs.Push(id, entities.UserPostsCap)

	if category != entities.CategoryNone {
		l.categoryFeed(category).Push(id, entities.CategoryFeedCap)
	}

	if parent != nil {
		parent.CommentIDs = append(parent.CommentIDs, id)
	}

	l.log.Append(events.NewPost{ID: id, Poster: caller})

	return id, nil
}

// Repost publishes an empty publication referencing targetID. Reposts cannot
// themselves be reposted.
func (l *Ledger) Repost(caller entities.Identity, targetID uint64) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	target := l.publications[targetID]
	if target == nil {
		return 0, ErrPublicationNotFound
	}

	if target.IsRepostOf != 0 {
		return 0, ErrRepostOfRepost
	}

	id := l.allocateID()

	l.publications[id] = &entities.Publication{
		Exists:     true,
		ID:         id,
		Poster:     caller,
		IsRepostOf: targetID,
		CreatedAt:  l.now().UTC(),
	}

	l.user(caller).LastPostIDs.Push(id, entities.UserPostsCap)

	l.log.Append(events.Reposted{Reposter: caller, Of: targetID, ID: id})

	return id, nil
}

func (l *Ledger) allocateID() uint64 {
	id := l.nextID
	l.nextID++

	return id
}

func (l *Ledger) categoryFeed(c entities.Category) *entities.Ring {
	r, ok := l.categoryFeeds[c]
	if !ok {
		r = &entities.Ring{}
		l.categoryFeeds[c] = r
	}

	return r
}
