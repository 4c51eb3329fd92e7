package repo

import (
	"context"

	"github.com/finwise/finwise-server/internal/model"
)

// AddMeeting writes the two mirrored meeting copies, the user-perspective one
// into the user's record and the expert-perspective one into the expert's,
// and adds the user to the expert's client roster exactly once. Both mirrors
// land in a single users-collection write.
func (r *Repository) AddMeeting(ctx context.Context, userID, expertID string, userCopy, expertCopy model.Meeting) error {
	users, err := r.store.Users(ctx)
	if err != nil {
		return err
	}
	ui := indexByID(users, userID)
	if ui < 0 {
		return model.NewNotFoundError("user", userID)
	}
	ei := indexByID(users, expertID)
	if ei < 0 || !users[ei].IsExpert() {
		return model.NewNotFoundError("expert", expertID)
	}

	users[ui].Meetings = append(users[ui].Meetings, userCopy)
	users[ei].Meetings = append(users[ei].Meetings, expertCopy)

	roster := false
	for _, id := range users[ei].Clients {
		if id == userID {
			roster = true
			break
		}
	}
	if !roster {
		users[ei].Clients = append(users[ei].Clients, userID)
	}

	return r.saveUsers(ctx, users, userID, expertID)
}

// UpdateMeetingMirrors applies mutate to the initiating party's copy of the
// meeting and to every other copy sharing its id. The initiator's copy missing
// is a NotFound; a missing counterpart copy is written around and reported as
// a ConsistencyFault after the found half has been persisted.
func (r *Repository) UpdateMeetingMirrors(ctx context.Context, actorID, meetingID string, mutate func(*model.Meeting)) (*model.Meeting, error) {
	users, err := r.store.Users(ctx)
	if err != nil {
		return nil, err
	}
	ai := indexByID(users, actorID)
	if ai < 0 {
		return nil, model.NewNotFoundError("user", actorID)
	}

	var updated *model.Meeting
	for mi := range users[ai].Meetings {
		if users[ai].Meetings[mi].ID == meetingID {
			mutate(&users[ai].Meetings[mi])
			m := users[ai].Meetings[mi]
			updated = &m
			break
		}
	}
	if updated == nil {
		return nil, model.NewNotFoundError("meeting", meetingID)
	}

	mirrors := 1
	for i := range users {
		if i == ai {
			continue
		}
		for mi := range users[i].Meetings {
			if users[i].Meetings[mi].ID == meetingID {
				mutate(&users[i].Meetings[mi])
				mirrors++
			}
		}
	}

	if err := r.saveUsers(ctx, users, actorID, counterpartOf(updated, actorID)); err != nil {
		return nil, err
	}
	if mirrors < 2 {
		r.log.Error().Str("meetingId", meetingID).Str("actorId", actorID).
			Msg("meeting mirror missing on update")
		return updated, model.NewConsistencyFaultError("meeting", meetingID,
			"counterparty copy not found; only the initiating party's copy was updated")
	}
	return updated, nil
}

// RemoveMeetingMirrors removes every copy of the meeting across all user
// records. Zero copies is a NotFound; exactly one is removed and the asymmetry
// reported as a ConsistencyFault.
func (r *Repository) RemoveMeetingMirrors(ctx context.Context, meetingID string) error {
	users, err := r.store.Users(ctx)
	if err != nil {
		return err
	}
	removed := 0
	touched := []string{}
	for i := range users {
		kept := users[i].Meetings[:0]
		for _, m := range users[i].Meetings {
			if m.ID == meetingID {
				removed++
				continue
			}
			kept = append(kept, m)
		}
		if len(kept) != len(users[i].Meetings) {
			users[i].Meetings = kept
			touched = append(touched, users[i].ID)
		}
	}
	if removed == 0 {
		return model.NewNotFoundError("meeting", meetingID)
	}
	if err := r.saveUsers(ctx, users, touched...); err != nil {
		return err
	}
	if removed < 2 {
		r.log.Error().Str("meetingId", meetingID).
			Msg("meeting mirror missing on cancel")
		return model.NewConsistencyFaultError("meeting", meetingID,
			"only one mirrored copy existed; it has been removed")
	}
	return nil
}

// counterpartOf returns the other party's id as recorded on a meeting copy.
func counterpartOf(m *model.Meeting, selfID string) string {
	if m.ExpertID != "" && m.ExpertID != selfID {
		return m.ExpertID
	}
	return m.UserID
}
