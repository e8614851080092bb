package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobportal/jobportal/internal/media"
	"github.com/jobportal/jobportal/internal/platform/httpx"
)

const bcryptCost = 10

// Service wraps account business rules.
type Service struct {
	repo     Repository
	uploader media.Uploader
}

// NewService constructs a new Service.
func NewService(repo Repository, uploader media.Uploader) *Service {
	return &Service{repo: repo, uploader: uploader}
}

// Register creates an account. The duplicate check runs before any upload so
// a conflicting email never costs a round trip to the asset host; the unique
// index covers the remaining race at insert time.
func (s *Service) Register(ctx context.Context, req RegisterRequest, file *media.File) (*User, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, httpx.Errorf(httpx.ErrDuplicate, "User already exists with this email.")
	} else if !errors.Is(err, httpx.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("account: hash password: %w", err)
	}

	profile := Profile{Skills: []string{}}
	if file != nil {
		if _, err := media.ValidatePhoto(file); err != nil {
			return nil, err
		}
		url, err := s.uploader.Upload(ctx, file)
		if err != nil {
			return nil, err
		}
		profile.ProfilePhoto = url
	}

	user := &User{
		ID:           uuid.NewString(),
		FullName:     req.FullName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hash),
		Role:         req.Role,
		Profile:      profile,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, httpx.ErrDuplicate) {
			return nil, httpx.Errorf(httpx.ErrDuplicate, "User already exists with this email.")
		}
		return nil, err
	}
	return user, nil
}

// Login validates the credential triple. Unknown email and wrong password
// share one message so the response does not reveal which check failed; the
// role mismatch message is distinct, matching the portal's established
// behavior.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*User, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return nil, httpx.Errorf(httpx.ErrInvalidCredentials, "Incorrect email or password.")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, httpx.Errorf(httpx.ErrInvalidCredentials, "Incorrect email or password.")
	}
	if req.Role != user.Role {
		return nil, httpx.Errorf(httpx.ErrInvalidCredentials, "Account doesn't exist with current role.")
	}
	return user, nil
}

// UpdateProfile applies partial overwrites; only provided fields change. An
// attached file is validated and uploaded first, then routed by its kind:
// images become the profile photo, documents become the resume.
func (s *Service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest, file *media.File) (*User, error) {
	var (
		uploadedURL string
		kind        media.Kind
	)
	if file != nil {
		k, err := media.ValidateProfileUpload(file)
		if err != nil {
			return nil, err
		}
		kind = k
		url, err := s.uploader.Upload(ctx, file)
		if err != nil {
			return nil, err
		}
		uploadedURL = url
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return nil, httpx.Errorf(httpx.ErrNotFound, "User not found.")
		}
		return nil, err
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Bio != "" {
		user.Profile.Bio = req.Bio
	}
	if req.Skills != "" {
		user.Profile.Skills = SplitSkills(req.Skills)
	}

	if uploadedURL != "" {
		switch kind {
		case media.KindImage:
			user.Profile.ProfilePhoto = uploadedURL
		case media.KindDocument:
			user.Profile.Resume = uploadedURL
			if file.Name != "" {
				user.Profile.ResumeOriginalName = file.Name
			}
		}
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, httpx.ErrDuplicate) {
			return nil, httpx.Errorf(httpx.ErrDuplicate, "User already exists with this email.")
		}
		return nil, err
	}
	return user, nil
}
