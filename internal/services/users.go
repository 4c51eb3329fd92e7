package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/finwise/finwise-server/internal/model"
	"github.com/finwise/finwise-server/internal/repo"
)

// UserService handles profile edits for both account types.
type UserService struct {
	repo     *repo.Repository
	log      zerolog.Logger
	hashCost int
}

func NewUserService(r *repo.Repository, log zerolog.Logger, hashCost int) *UserService {
	if hashCost == 0 {
		hashCost = bcrypt.DefaultCost
	}
	return &UserService{repo: r, log: log, hashCost: hashCost}
}

func (s *UserService) Get(ctx context.Context, userID string) (*model.User, error) {
	return s.repo.FindUserByID(ctx, userID)
}

// UpdateProfileRequest carries the account-settings form. A password
// change requires the current password alongside the new one.
type UpdateProfileRequest struct {
	FullName        string `json:"fullname"`
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*model.User, error) {
	switch {
	case strings.TrimSpace(req.FullName) == "":
		return nil, model.NewMissingFieldError("fullname")
	case strings.TrimSpace(req.Email) == "":
		return nil, model.NewMissingFieldError("email")
	}
	u, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	email := repo.NormalizeEmail(req.Email)
	if email != u.Email {
		if other, err := s.repo.FindUserByEmail(ctx, email); err == nil && other.ID != u.ID {
			return nil, model.NewDuplicateEmailError(email)
		} else if err != nil && !model.IsNotFound(err) {
			return nil, err
		}
	}
	if req.NewPassword != "" {
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)) != nil {
			return nil, model.NewInvalidCredentialsError()
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.hashCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	u.FullName = strings.TrimSpace(req.FullName)
	u.Email = email
	if err := s.repo.UpdateUser(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info().Str("userId", u.ID).Msg("profile updated")
	return u, nil
}

// UpdateExpertProfileRequest carries the expert profile form. All fields
// are required.
type UpdateExpertProfileRequest struct {
	FullName    string `json:"fullname"`
	Title       string `json:"title"`
	Email       string `json:"email"`
	Specialty   string `json:"specialty"`
	Bio         string `json:"bio"`
	Credentials string `json:"credentials"`
	Experience  string `json:"experience"`
}

func (s *UserService) UpdateExpertProfile(ctx context.Context, expertID string, req UpdateExpertProfileRequest) (*model.User, error) {
	for field, v := range map[string]string{
		"fullname":    req.FullName,
		"title":       req.Title,
		"email":       req.Email,
		"specialty":   req.Specialty,
		"bio":         req.Bio,
		"credentials": req.Credentials,
		"experience":  req.Experience,
	} {
		if strings.TrimSpace(v) == "" {
			return nil, model.NewMissingFieldError(field)
		}
	}
	u, err := s.repo.FindExpertByID(ctx, expertID)
	if err != nil {
		return nil, err
	}
	email := repo.NormalizeEmail(req.Email)
	if email != u.Email {
		if other, err := s.repo.FindUserByEmail(ctx, email); err == nil && other.ID != u.ID {
			return nil, model.NewDuplicateEmailError(email)
		} else if err != nil && !model.IsNotFound(err) {
			return nil, err
		}
	}
	u.FullName = strings.TrimSpace(req.FullName)
	u.Email = email
	u.Specialty = req.Specialty
	u.Bio = req.Bio
	u.Credentials = req.Credentials
	u.Experience = req.Experience
	if err := s.repo.UpdateUser(ctx, u); err != nil {
		return nil, err
	}
	if err := s.repo.SetExpertTitle(ctx, u.ID, req.Title); err != nil {
		return nil, err
	}
	s.log.Info().Str("expertId", u.ID).Msg("expert profile updated")
	return u, nil
}

// SetInterests replaces the user's interest tags.
func (s *UserService) SetInterests(ctx context.Context, userID string, interests []string) (*model.User, error) {
	u, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if interests == nil {
		interests = []string{}
	}
	u.Interests = interests
	if err := s.repo.UpdateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// PromoteRequest carries the become-an-expert application. All fields
// are required.
type PromoteRequest struct {
	Specialty   string `json:"specialty"`
	Experience  string `json:"experience"`
	Credentials string `json:"credentials"`
	Bio         string `json:"bio"`
	Motivation  string `json:"motivation"`
}

// PromoteToExpert converts a user account into an expert account and
// publishes its display profile.
func (s *UserService) PromoteToExpert(ctx context.Context, userID string, req PromoteRequest) (*model.User, error) {
	for field, v := range map[string]string{
		"specialty":   req.Specialty,
		"experience":  req.Experience,
		"credentials": req.Credentials,
		"bio":         req.Bio,
		"motivation":  req.Motivation,
	} {
		if strings.TrimSpace(v) == "" {
			return nil, model.NewMissingFieldError(field)
		}
	}
	u, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.Type = model.AccountExpert
	u.Specialty = req.Specialty
	u.Experience = req.Experience
	u.Credentials = req.Credentials
	u.Bio = req.Bio
	if u.Articles == nil {
		u.Articles = []string{}
	}
	if u.Clients == nil {
		u.Clients = []string{}
	}
	if err := s.repo.UpdateUser(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info().Str("userId", u.ID).Msg("account promoted to expert")
	return u, nil
}

// Experts lists every expert display profile.
func (s *UserService) Experts(ctx context.Context) ([]model.ExpertProfile, error) {
	return s.repo.ListExperts(ctx)
}

// Expert returns one expert display profile.
func (s *UserService) Expert(ctx context.Context, id string) (*model.ExpertProfile, error) {
	return s.repo.ExpertProfile(ctx, id)
}

// Clients lists the user records on an expert's roster.
func (s *UserService) Clients(ctx context.Context, expertID string) ([]model.User, error) {
	if _, err := s.repo.FindExpertByID(ctx, expertID); err != nil {
		return nil, err
	}
	return s.repo.Clients(ctx, expertID)
}
