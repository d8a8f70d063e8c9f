package ledger

import (
	"github.com/blocknews-net/herodotus/internal/entities"
	"github.com/blocknews-net/herodotus/internal/events"
)

// ChangeName sets the caller's display name.
func (l *Ledger) ChangeName(caller entities.Identity, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(name) > MaxNameLen {
		return ErrNameTooLong
	}

	u := l.user(caller)
	l.log.Append(events.ChangedName{User: caller, Previous: u.Name, New: name})
	u.Name = name

	return nil
}

// ChangeDescription sets the caller's profile description.
func (l *Ledger) ChangeDescription(caller entities.Identity, description string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(description) > MaxDescriptionLen {
		return ErrDescriptionTooLong
	}

	u := l.user(caller)
	l.log.Append(events.ChangedDescription{User: caller, Previous: u.Description, New: description})
	u.Description = description

	return nil
}

// ChangePicture sets the caller's profile picture index. 0 means no picture,
// 1..20 reference the fixed built-in set.
func (l *Ledger) ChangePicture(caller entities.Identity, picture uint8) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if picture > MaxPicture {
		return ErrInvalidPicture
	}

	u := l.user(caller)
	l.log.Append(events.ChangedPicture{User: caller, Previous: u.Picture, New: picture})
	u.Picture = picture

	return nil
}
