package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/finwise/finwise-server/internal/model"
	"github.com/finwise/finwise-server/internal/repo"
)

// MeetingFilter selects which side of "now" MeetingsFor returns.
type MeetingFilter string

const (
	FilterUpcoming MeetingFilter = "upcoming"
	FilterPast     MeetingFilter = "past"
)

// MeetingService schedules consultations between a user and an expert.
// Each meeting is written to both participants' records under one id.
type MeetingService struct {
	repo *repo.Repository
	log  zerolog.Logger
	now  func() time.Time
}

func NewMeetingService(r *repo.Repository, log zerolog.Logger) *MeetingService {
	return &MeetingService{repo: r, log: log, now: time.Now}
}

// ScheduleRequest carries the booking form fields. Notes are optional.
type ScheduleRequest struct {
	UserID   string `json:"userId"`
	ExpertID string `json:"expertId"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Topic    string `json:"topic"`
	Notes    string `json:"notes"`
}

func validateMeetingSlot(date, timeOfDay string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return model.NewMissingFieldError("date")
	}
	if _, err := time.Parse("15:04", timeOfDay); err != nil {
		return model.NewMissingFieldError("time")
	}
	return nil
}

// Schedule books a meeting and appends one perspective copy to each
// participant. The user also joins the expert's client roster if not
// already on it. The returned copy is the requesting user's.
func (s *MeetingService) Schedule(ctx context.Context, req ScheduleRequest) (*model.Meeting, error) {
	switch {
	case req.UserID == "":
		return nil, model.NewMissingFieldError("userId")
	case req.ExpertID == "":
		return nil, model.NewMissingFieldError("expertId")
	case strings.TrimSpace(req.Topic) == "":
		return nil, model.NewMissingFieldError("topic")
	}
	if err := validateMeetingSlot(req.Date, req.Time); err != nil {
		return nil, err
	}
	user, err := s.repo.FindUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	expert, err := s.repo.FindExpertByID(ctx, req.ExpertID)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	createdAt := s.now().UTC()
	userCopy := model.Meeting{
		ID:         id,
		ExpertID:   expert.ID,
		ExpertName: expert.FullName,
		Date:       req.Date,
		Time:       req.Time,
		Topic:      req.Topic,
		Notes:      req.Notes,
		Status:     model.MeetingScheduled,
		CreatedAt:  createdAt,
	}
	expertCopy := model.Meeting{
		ID:        id,
		UserID:    user.ID,
		UserName:  user.FullName,
		Date:      req.Date,
		Time:      req.Time,
		Topic:     req.Topic,
		Notes:     req.Notes,
		Status:    model.MeetingScheduled,
		CreatedAt: createdAt,
	}
	if err := s.repo.AddMeeting(ctx, user.ID, expert.ID, userCopy, expertCopy); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("meetingId", id).
		Str("userId", user.ID).
		Str("expertId", expert.ID).
		Str("date", req.Date).
		Msg("meeting scheduled")
	return &userCopy, nil
}

// Reschedule moves every copy of the meeting to a new slot and records
// the reason. actorID names whichever participant initiated the change;
// the meeting must appear in that participant's record.
func (s *MeetingService) Reschedule(ctx context.Context, actorID, meetingID, newDate, newTime, reason string) (*model.Meeting, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, model.NewMissingFieldError("reason")
	}
	if err := validateMeetingSlot(newDate, newTime); err != nil {
		return nil, err
	}
	m, err := s.repo.UpdateMeetingMirrors(ctx, actorID, meetingID, func(m *model.Meeting) {
		m.Date = newDate
		m.Time = newTime
		m.Status = model.MeetingRescheduled
		m.RescheduleReason = reason
	})
	if err != nil {
		return m, err
	}
	s.log.Info().Str("meetingId", meetingID).Str("date", newDate).Msg("meeting rescheduled")
	return m, nil
}

// Cancel removes every copy of the meeting. Client rosters are left
// untouched.
func (s *MeetingService) Cancel(ctx context.Context, meetingID string) error {
	if err := s.repo.RemoveMeetingMirrors(ctx, meetingID); err != nil {
		return err
	}
	s.log.Info().Str("meetingId", meetingID).Msg("meeting cancelled")
	return nil
}

// MeetingsFor returns one participant's copies, filtered and ordered for
// display.
func (s *MeetingService) MeetingsFor(ctx context.Context, participantID string, filter MeetingFilter) ([]model.Meeting, error) {
	u, err := s.repo.FindUserByID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	return FilterMeetings(u.Meetings, filter, s.now()), nil
}

// FilterMeetings splits meetings around now. A meeting starting exactly
// at now counts as upcoming. Upcoming meetings sort soonest first, past
// meetings most recent first. Entries whose date or time no longer parse
// are dropped from both views.
func FilterMeetings(meetings []model.Meeting, filter MeetingFilter, now time.Time) []model.Meeting {
	type keyed struct {
		m  model.Meeting
		at time.Time
	}
	var kept []keyed
	for _, m := range meetings {
		at, ok := m.StartsAt()
		if !ok {
			continue
		}
		switch filter {
		case FilterPast:
			if at.Before(now) {
				kept = append(kept, keyed{m, at})
			}
		default:
			if !at.Before(now) {
				kept = append(kept, keyed{m, at})
			}
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		if filter == FilterPast {
			return kept[i].at.After(kept[j].at)
		}
		return kept[i].at.Before(kept[j].at)
	})
	out := make([]model.Meeting, 0, len(kept))
	for _, k := range kept {
		out = append(out, k.m)
	}
	return out
}
