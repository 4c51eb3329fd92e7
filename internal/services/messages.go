package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/finwise/finwise-server/internal/model"
	"github.com/finwise/finwise-server/internal/repo"
)

// Thread is one contact's conversation from a single participant's point
// of view, messages oldest first.
type Thread struct {
	ContactID   string          `json:"contactId"`
	ContactName string          `json:"contactName"`
	Unread      int             `json:"unread"`
	Messages    []model.Message `json:"messages"`
}

// MessageService delivers messages between users and experts. Each
// message is written to both participants' records under one id.
type MessageService struct {
	repo *repo.Repository
	log  zerolog.Logger
	now  func() time.Time
}

func NewMessageService(r *repo.Repository, log zerolog.Logger) *MessageService {
	return &MessageService{repo: r, log: log, now: time.Now}
}

// Send delivers a message, appending an identical copy to both sender
// and recipient. Whitespace-only content is rejected. The first exchange
// between a user and an expert seeds the expert's greeting ahead of the
// sender's message.
func (s *MessageService) Send(ctx context.Context, senderID, recipientID, content string) (*model.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, model.NewMissingFieldError("content")
	}
	sender, err := s.repo.FindUserByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindUserByID(ctx, recipientID); err != nil {
		return nil, err
	}
	if _, err := s.EnsureThread(ctx, senderID, recipientID); err != nil {
		return nil, err
	}
	msg := model.Message{
		ID:          uuid.NewString(),
		SenderID:    sender.ID,
		SenderName:  sender.FullName,
		RecipientID: recipientID,
		Content:     content,
		Timestamp:   s.now().UTC(),
	}
	if err := s.repo.AddMessage(ctx, msg); err != nil {
		return nil, err
	}
	s.log.Debug().Str("messageId", msg.ID).Str("senderId", senderID).Str("recipientId", recipientID).Msg("message sent")
	return &msg, nil
}

// ThreadsFor groups one participant's messages by contact. Threads are
// ordered by latest activity, newest thread first; within a thread
// messages run oldest first. Unread counts only the participant's
// received copies.
func (s *MessageService) ThreadsFor(ctx context.Context, participantID string) ([]Thread, error) {
	u, err := s.repo.FindUserByID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	threads := GroupByContact(u.Messages, u.ID)
	for i := range threads {
		if name, err := s.contactName(ctx, threads[i].ContactID); err == nil {
			threads[i].ContactName = name
		}
	}
	return threads, nil
}

func (s *MessageService) contactName(ctx context.Context, id string) (string, error) {
	c, err := s.repo.FindUserByID(ctx, id)
	if err != nil {
		return "", err
	}
	return c.FullName, nil
}

// GroupByContact partitions selfID's message copies into per-contact
// threads. The contact is whichever party of each message is not selfID.
func GroupByContact(messages []model.Message, selfID string) []Thread {
	byContact := make(map[string]*Thread)
	var order []string
	for _, m := range messages {
		contact := m.SenderID
		if contact == selfID {
			contact = m.RecipientID
		}
		t, ok := byContact[contact]
		if !ok {
			t = &Thread{ContactID: contact}
			byContact[contact] = t
			order = append(order, contact)
		}
		t.Messages = append(t.Messages, m)
		if m.RecipientID == selfID && !m.Read {
			t.Unread++
		}
	}
	threads := make([]Thread, 0, len(order))
	for _, id := range order {
		t := byContact[id]
		sort.SliceStable(t.Messages, func(i, j int) bool {
			return t.Messages[i].Timestamp.Before(t.Messages[j].Timestamp)
		})
		threads = append(threads, *t)
	}
	sort.SliceStable(threads, func(i, j int) bool {
		li := threads[i].Messages[len(threads[i].Messages)-1].Timestamp
		lj := threads[j].Messages[len(threads[j].Messages)-1].Timestamp
		return li.After(lj)
	})
	return threads
}

// MarkAsRead flags every message from contactID in readerID's record as
// read. Only the reader's copies change; the sender's mirror keeps its
// original state.
func (s *MessageService) MarkAsRead(ctx context.Context, readerID, contactID string) error {
	return s.repo.MarkMessagesRead(ctx, readerID, contactID)
}

// EnsureThread seeds a welcome message when the two participants have
// never exchanged one. The greeting is authored by the expert side of
// the pair regardless of who opened the conversation; between two
// non-experts nothing is seeded. Returns the seeded message, or nil when
// a thread already exists.
func (s *MessageService) EnsureThread(ctx context.Context, selfID, contactID string) (*model.Message, error) {
	self, err := s.repo.FindUserByID(ctx, selfID)
	if err != nil {
		return nil, err
	}
	contact, err := s.repo.FindUserByID(ctx, contactID)
	if err != nil {
		return nil, err
	}
	for _, m := range self.Messages {
		if m.SenderID == contact.ID || m.RecipientID == contact.ID {
			return nil, nil
		}
	}

	var msg model.Message
	switch {
	case contact.IsExpert():
		msg = model.Message{
			SenderID:    contact.ID,
			SenderName:  contact.FullName,
			RecipientID: self.ID,
			Content:     fmt.Sprintf("Hello! I'm %s, a financial expert specializing in %s. How can I help you with your financial goals today?", contact.FullName, contact.Specialty),
		}
	case self.IsExpert():
		msg = model.Message{
			SenderID:    self.ID,
			SenderName:  self.FullName,
			RecipientID: contact.ID,
			Content:     fmt.Sprintf("Hello %s, I'm %s, your financial advisor. How can I assist you with your financial planning today?", contact.FullName, self.FullName),
		}
	default:
		return nil, nil
	}
	msg.ID = uuid.NewString()
	msg.Timestamp = s.now().UTC()
	if err := s.repo.AddMessage(ctx, msg); err != nil {
		return nil, err
	}
	s.log.Debug().Str("messageId", msg.ID).Str("expertId", msg.SenderID).Msg("welcome message seeded")
	return &msg, nil
}
