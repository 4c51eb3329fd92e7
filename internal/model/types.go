package model

import "time"

// AccountType distinguishes the two roles on the platform.
type AccountType string

const (
	AccountUser   AccountType = "user"
	AccountExpert AccountType = "expert"
)

// MeetingStatus is the stored lifecycle state of a meeting. Cancellation is
// terminal and removes the record, so it never appears as a stored status.
type MeetingStatus string

const (
	MeetingScheduled   MeetingStatus = "scheduled"
	MeetingRescheduled MeetingStatus = "rescheduled"
)

// User is the authoritative account record. Expert-only and user-only fields
// are omitted from JSON when empty so a record carries only its role's shape.
type User struct {
	ID           string      `json:"id"`
	FullName     string      `json:"fullname"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"password"`
	Type         AccountType `json:"type"`
	JoinDate     string      `json:"joinDate"`

	// user-only
	Interests []string `json:"interests,omitempty"`

	// expert-only
	Specialty   string   `json:"specialty,omitempty"`
	Credentials string   `json:"credentials,omitempty"`
	Experience  string   `json:"experience,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	Clients     []string `json:"clients,omitempty"`

	Articles []string  `json:"articles,omitempty"`
	Meetings []Meeting `json:"meetings"`
	Messages []Message `json:"messages"`
}

// IsExpert reports whether the account holds the expert role.
func (u *User) IsExpert() bool { return u.Type == AccountExpert }

// ExpertProfile is the display-only projection stored in the experts
// collection. Rating and review data live only here; everything else is
// mirrored from the owning User record and must stay in sync with it.
type ExpertProfile struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Title       string      `json:"title"`
	Bio         string      `json:"bio"`
	ImgSrc      string      `json:"imgSrc"`
	Rating      string      `json:"rating"`
	ReviewCount int         `json:"reviewCount"`
	Specialty   string      `json:"specialty"`
	Credentials string      `json:"credentials"`
	Experience  string      `json:"experience"`
	Specialties []string    `json:"specialties,omitempty"`
	Articles    []string    `json:"articles,omitempty"`
	Type        AccountType `json:"type"`
}

// Meeting is stored twice: once in the requesting user's record (carrying the
// expert's perspective fields) and once in the expert's record (carrying the
// user's). The shared ID is the join key; every mutation must touch both.
type Meeting struct {
	ID         string `json:"id"`
	ExpertID   string `json:"expertId,omitempty"`
	ExpertName string `json:"expertName,omitempty"`
	UserID     string `json:"userId,omitempty"`
	UserName   string `json:"userName,omitempty"`

	Date  string `json:"date"` // 2006-01-02
	Time  string `json:"time"` // 15:04
	Topic string `json:"topic"`
	Notes string `json:"notes,omitempty"`

	Status           MeetingStatus `json:"status"`
	RescheduleReason string        `json:"rescheduleReason,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
}

// StartsAt composes the stored date and time into an instant. The second
// return value is false when either part fails to parse.
func (m *Meeting) StartsAt() (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02 15:04", m.Date+" "+m.Time, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Message is stored twice with an identical ID, content and timestamp: once in
// the sender's record and once in the recipient's. Read state is tracked only
// on the recipient's copy.
type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	SenderName  string    `json:"senderName"`
	RecipientID string    `json:"recipientId"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	Read        bool      `json:"read,omitempty"`
}

// Article is published advisory content. AuthorID back-references the owning
// expert, whose Articles slice must list the article's ID.
type Article struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	AuthorID string   `json:"authorId"`
	Date     string   `json:"date"` // 2006-01-02
	Category string   `json:"category"`
	Summary  string   `json:"summary"`
	Content  string   `json:"content"`
	Image    string   `json:"image,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// ArticleDraft is the unsaved editor state parked in its own collection.
type ArticleDraft struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	Tags     string `json:"tags"`
}
