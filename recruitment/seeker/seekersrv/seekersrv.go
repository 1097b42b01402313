package seekersrv

import (
	"context"
	"fmt"
	"path"

	"github.com/google/uuid"

	"github.com/hirelink/hirelink/pkg/errx"
	"github.com/hirelink/hirelink/pkg/fsx"
	"github.com/hirelink/hirelink/pkg/kernel"
	"github.com/hirelink/hirelink/recruitment/seeker"
)

// SeekerService provides profile operations for accounts
type SeekerService struct {
	seekerRepo seeker.Repository
	files      fsx.FileSystem
}

// NewSeekerService creates a new instance of the profile service
func NewSeekerService(
	seekerRepo seeker.Repository,
	files fsx.FileSystem,
) *SeekerService {
	return &SeekerService{
		seekerRepo: seekerRepo,
		files:      files,
	}
}

// GetProfile retrieves a profile by user ID
func (s *SeekerService) GetProfile(ctx context.Context, userID kernel.UserID) (*seeker.SeekerResponse, error) {
	account, err := s.seekerRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, seeker.ErrSeekerNotFound().WithDetail("user_id", userID.String())
	}

	resp := seeker.ToResponse(account)
	return &resp, nil
}

// UpdateProfile updates mutable profile fields
func (s *SeekerService) UpdateProfile(ctx context.Context, userID kernel.UserID, req seeker.UpdateProfileRequest) (*seeker.SeekerResponse, error) {
	account, err := s.seekerRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, seeker.ErrSeekerNotFound().WithDetail("user_id", userID.String())
	}

	account.UpdateProfile(req.FullName, req.Bio, req.Skills)

	if err := s.seekerRepo.Update(ctx, userID, account); err != nil {
		return nil, errx.Wrap(err, "failed to update profile", errx.TypeInternal)
	}

	resp := seeker.ToResponse(account)
	return &resp, nil
}

// UploadResume stores a resume file and records its location
func (s *SeekerService) UploadResume(ctx context.Context, userID kernel.UserID, data []byte, filename, contentType string) (*seeker.UploadResponse, error) {
	account, err := s.seekerRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, seeker.ErrSeekerNotFound().WithDetail("user_id", userID.String())
	}

	key := fmt.Sprintf("resumes/%s/%s%s", userID.String(), uuid.NewString(), path.Ext(filename))

	url, err := s.files.Put(ctx, key, data, contentType)
	if err != nil {
		return nil, seeker.ErrUploadFailed().WithCause(err)
	}

	account.AttachResume(kernel.BucketURL(url))

	if err := s.seekerRepo.Update(ctx, userID, account); err != nil {
		return nil, errx.Wrap(err, "failed to record resume", errx.TypeInternal)
	}

	return &seeker.UploadResponse{URL: account.ResumeURL}, nil
}

// UploadPhoto stores a profile photo and records its location
func (s *SeekerService) UploadPhoto(ctx context.Context, userID kernel.UserID, data []byte, filename, contentType string) (*seeker.UploadResponse, error) {
	account, err := s.seekerRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, seeker.ErrSeekerNotFound().WithDetail("user_id", userID.String())
	}

	key := fmt.Sprintf("photos/%s/%s%s", userID.String(), uuid.NewString(), path.Ext(filename))

	url, err := s.files.Put(ctx, key, data, contentType)
	if err != nil {
		return nil, seeker.ErrUploadFailed().WithCause(err)
	}

	account.AttachPhoto(kernel.BucketURL(url))

	if err := s.seekerRepo.Update(ctx, userID, account); err != nil {
		return nil, errx.Wrap(err, "failed to record photo", errx.TypeInternal)
	}

	return &seeker.UploadResponse{URL: account.PhotoURL}, nil
}

// ListSeekers retrieves accounts with pagination, for admin review
func (s *SeekerService) ListSeekers(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[seeker.SeekerResponse], error) {
	accounts, err := s.seekerRepo.List(ctx, pagination.Normalize())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list accounts", errx.TypeInternal)
	}

	responses := make([]seeker.SeekerResponse, 0, len(accounts.Items))
	for i := range accounts.Items {
		responses = append(responses, seeker.ToResponse(&accounts.Items[i]))
	}

	return &kernel.Paginated[seeker.SeekerResponse]{
		Items: responses,
		Page:  accounts.Page,
		Empty: accounts.Empty,
	}, nil
}

// SetVerification updates the admin review state of an account
func (s *SeekerService) SetVerification(ctx context.Context, userID kernel.UserID, status seeker.VerificationStatus) error {
	account, err := s.seekerRepo.FindByID(ctx, userID)
	if err != nil {
		return seeker.ErrSeekerNotFound().WithDetail("user_id", userID.String())
	}

	switch status {
	case seeker.VerificationVerified:
		account.Verify()
	case seeker.VerificationRejected:
		account.Reject()
	default:
		return seeker.ErrInvalidRequest().WithDetail("status", string(status))
	}

	if err := s.seekerRepo.Update(ctx, userID, account); err != nil {
		return errx.Wrap(err, "failed to update verification", errx.TypeInternal)
	}

	return nil
}
