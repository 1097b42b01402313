package seekerauth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hirelink/hirelink/pkg/errx"
	"github.com/hirelink/hirelink/pkg/kernel"
	"github.com/hirelink/hirelink/recruitment/seeker"
)

// AuthService registers accounts and creates sessions
type AuthService struct {
	seekerRepo   seeker.Repository
	tokenService *TokenService
}

func NewAuthService(
	seekerRepo seeker.Repository,
	tokenService *TokenService,
) *AuthService {
	return &AuthService{
		seekerRepo:   seekerRepo,
		tokenService: tokenService,
	}
}

// Register creates a new account and returns a session token
func (s *AuthService) Register(ctx context.Context, req seeker.RegisterRequest) (*seeker.AuthResponse, error) {
	if req.FullName == "" || req.Email.IsEmpty() || req.Password == "" {
		return nil, seeker.ErrInvalidRequest().WithDetail("reason", "full_name, email and password are required")
	}

	role := req.Role
	if role == "" {
		role = seeker.RoleJobSeeker
	}
	if role != seeker.RoleJobSeeker && role != seeker.RoleRecruiter {
		return nil, seeker.ErrInvalidRole().WithDetail("role", string(role))
	}

	if existing, _ := s.seekerRepo.FindByEmail(ctx, req.Email); existing != nil {
		return nil, seeker.ErrEmailAlreadyExists().WithDetail("email", req.Email.String())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}

	newSeeker := &seeker.Seeker{
		ID:           kernel.NewUserID(uuid.NewString()),
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Skills:       []string{},
		Verification: seeker.VerificationPending,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.seekerRepo.Create(ctx, newSeeker); err != nil {
		return nil, errx.Wrap(err, "failed to create account", errx.TypeInternal)
	}

	token, err := s.tokenService.Generate(newSeeker.ID, newSeeker.Role)
	if err != nil {
		return nil, errx.Wrap(err, "failed to generate session token", errx.TypeInternal)
	}

	return &seeker.AuthResponse{
		Token: token,
		User:  seeker.ToResponse(newSeeker),
	}, nil
}

// Login verifies credentials and returns a session token
func (s *AuthService) Login(ctx context.Context, req seeker.LoginRequest) (*seeker.AuthResponse, error) {
	account, err := s.seekerRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials()
	}

	token, err := s.tokenService.Generate(account.ID, account.Role)
	if err != nil {
		return nil, errx.Wrap(err, "failed to generate session token", errx.TypeInternal)
	}

	return &seeker.AuthResponse{
		Token: token,
		User:  seeker.ToResponse(account),
	}, nil
}
