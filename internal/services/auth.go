package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/finwise/finwise-server/internal/model"
	"github.com/finwise/finwise-server/internal/repo"
	"github.com/finwise/finwise-server/internal/seed"
	"github.com/finwise/finwise-server/internal/store"
)

// Defaults applied to freshly registered accounts before the owner edits
// their profile.
const (
	defaultExpertSpecialty   = "Financial Advisor"
	defaultExpertCredentials = "CFP, CFA"
	defaultExpertExperience  = "8-12 years"
	defaultExpertBio         = "Experienced financial advisor with expertise in personalized investment strategies and retirement planning. My mission is to help clients achieve financial freedom through education and strategic planning."
)

func defaultUserInterests() []string {
	return []string{"Investing", "Retirement", "Budgeting"}
}

// AuthService owns account registration and the session pointer. Every
// entry point seeds the sample dataset first so a fresh database behaves
// like a returning one.
type AuthService struct {
	repo     *repo.Repository
	store    *store.Store
	log      zerolog.Logger
	hashCost int
	seedData bool
	now      func() time.Time
}

func NewAuthService(r *repo.Repository, log zerolog.Logger, hashCost int, seedData bool) *AuthService {
	if hashCost == 0 {
		hashCost = bcrypt.DefaultCost
	}
	return &AuthService{repo: r, store: r.Store(), log: log, hashCost: hashCost, seedData: seedData, now: time.Now}
}

func (s *AuthService) ensureSeeded(ctx context.Context) error {
	if !s.seedData {
		return nil
	}
	return seed.Ensure(ctx, s.store, s.log, s.hashCost)
}

// RegisterRequest carries the signup form fields.
type RegisterRequest struct {
	FullName    string `json:"fullname"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	AccountType string `json:"accountType"`
}

// Register creates an account, applies role defaults and signs the new
// account in.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	if err := s.ensureSeeded(ctx); err != nil {
		return nil, err
	}
	switch {
	case strings.TrimSpace(req.FullName) == "":
		return nil, model.NewMissingFieldError("fullname")
	case strings.TrimSpace(req.Email) == "":
		return nil, model.NewMissingFieldError("email")
	case req.Password == "":
		return nil, model.NewMissingFieldError("password")
	}
	accountType := model.AccountType(req.AccountType)
	if accountType != model.AccountUser && accountType != model.AccountExpert {
		return nil, model.NewMissingFieldError("accountType")
	}

	email := repo.NormalizeEmail(req.Email)
	if _, err := s.repo.FindUserByEmail(ctx, email); err == nil {
		return nil, model.NewDuplicateEmailError(email)
	} else if !model.IsNotFound(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, err
	}

	u := model.User{
		ID:           uuid.NewString(),
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		PasswordHash: string(hash),
		Type:         accountType,
		JoinDate:     s.now().Format("2006-01-02"),
		Articles:     []string{},
		Meetings:     []model.Meeting{},
		Messages:     []model.Message{},
	}
	if accountType == model.AccountExpert {
		u.Specialty = defaultExpertSpecialty
		u.Credentials = defaultExpertCredentials
		u.Experience = defaultExpertExperience
		u.Bio = defaultExpertBio
		u.Clients = []string{}
		u.Interests = []string{}
	} else {
		u.Interests = defaultUserInterests()
	}

	if err := s.repo.InsertUser(ctx, &u); err != nil {
		return nil, err
	}
	if u.IsExpert() {
		if err := s.repo.SyncExpertProfile(ctx, &u); err != nil {
			return nil, err
		}
	}
	if err := s.store.SetCurrentUser(ctx, &u); err != nil {
		return nil, err
	}
	s.log.Info().Str("userId", u.ID).Str("type", string(u.Type)).Msg("account registered")
	return &u, nil
}

// Login verifies credentials against the stored hash. The requested
// account type must match the stored one; a user cannot sign in through
// the expert form.
func (s *AuthService) Login(ctx context.Context, email, password string, accountType model.AccountType) (*model.User, error) {
	if err := s.ensureSeeded(ctx); err != nil {
		return nil, err
	}
	u, err := s.repo.FindUserByEmail(ctx, repo.NormalizeEmail(email))
	if err != nil {
		if model.IsNotFound(err) {
			return nil, model.NewInvalidCredentialsError()
		}
		return nil, err
	}
	if u.Type != accountType {
		return nil, model.NewInvalidCredentialsError()
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, model.NewInvalidCredentialsError()
	}
	if err := s.store.SetCurrentUser(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info().Str("userId", u.ID).Msg("login")
	return u, nil
}

// Logout clears the session pointer. Account records are untouched.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.store.ClearCurrentUser(ctx)
}

// CurrentUser returns the signed-in account, or nil when nobody is
// signed in.
func (s *AuthService) CurrentUser(ctx context.Context) (*model.User, error) {
	if err := s.ensureSeeded(ctx); err != nil {
		return nil, err
	}
	return s.store.CurrentUser(ctx)
}
