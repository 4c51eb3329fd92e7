package repo

import (
	"context"

	"github.com/finwise/finwise-server/internal/model"
)

// AddMessage appends an identical copy of the message to both the sender's
// and the recipient's arrays in a single users-collection write.
func (r *Repository) AddMessage(ctx context.Context, msg model.Message) error {
	users, err := r.store.Users(ctx)
	if err != nil {
		return err
	}
	si := indexByID(users, msg.SenderID)
	if si < 0 {
		return model.NewNotFoundError("user", msg.SenderID)
	}
	ri := indexByID(users, msg.RecipientID)
	if ri < 0 {
		return model.NewNotFoundError("user", msg.RecipientID)
	}

	users[si].Messages = append(users[si].Messages, msg)
	if ri != si {
		users[ri].Messages = append(users[ri].Messages, msg)
	}
	return r.saveUsers(ctx, users, msg.SenderID, msg.RecipientID)
}

// MarkMessagesRead sets read=true on the reader's copies of messages sent by
// the contact. The contact's own copies are untouched: read state is tracked
// per recipient copy.
func (r *Repository) MarkMessagesRead(ctx context.Context, readerID, contactID string) error {
	users, err := r.store.Users(ctx)
	if err != nil {
		return err
	}
	ri := indexByID(users, readerID)
	if ri < 0 {
		return model.NewNotFoundError("user", readerID)
	}
	changed := false
	for mi := range users[ri].Messages {
		m := &users[ri].Messages[mi]
		if m.SenderID == contactID && m.RecipientID == readerID && !m.Read {
			m.Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return r.saveUsers(ctx, users, readerID)
}
