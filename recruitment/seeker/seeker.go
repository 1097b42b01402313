package seeker

import (
	"strings"
	"time"

	"github.com/hirelink/hirelink/pkg/kernel"
)

// Role represents the access role of an account
type Role string

const (
	RoleJobSeeker Role = "jobseeker"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// VerificationStatus represents the admin review state of an account
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationVerified VerificationStatus = "VERIFIED"
	VerificationRejected VerificationStatus = "REJECTED"
)

type Seeker struct {
	ID           kernel.UserID      `db:"id" json:"id"`
	FullName     string             `db:"full_name" json:"full_name"`
	Email        kernel.Email       `db:"email" json:"email"`
	PasswordHash string             `db:"password_hash" json:"-"`
	Role         Role               `db:"role" json:"role"`
	Skills       []string           `db:"skills" json:"skills"`
	Bio          string             `db:"bio" json:"bio"`
	ResumeURL    kernel.BucketURL   `db:"resume_url" json:"resume_url,omitempty"`
	PhotoURL     kernel.BucketURL   `db:"photo_url" json:"photo_url,omitempty"`
	Verification VerificationStatus `db:"verification" json:"verification"`
	CreatedAt    time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsAdmin checks if the account has the admin role
func (s *Seeker) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// IsRecruiter checks if the account has the recruiter role
func (s *Seeker) IsRecruiter() bool {
	return s.Role == RoleRecruiter
}

// CanPostJobs checks if the account may create job postings
func (s *Seeker) CanPostJobs() bool {
	return s.Role == RoleRecruiter || s.Role == RoleAdmin
}

// IsVerified checks if an admin has approved the account
func (s *Seeker) IsVerified() bool {
	return s.Verification == VerificationVerified
}

// HasResume checks if a resume has been uploaded
func (s *Seeker) HasResume() bool {
	return !s.ResumeURL.IsEmpty()
}

// HasSkill checks if the profile lists a skill, ignoring case
func (s *Seeker) HasSkill(skill string) bool {
	want := strings.ToLower(strings.TrimSpace(skill))
	for _, have := range s.Skills {
		if strings.ToLower(strings.TrimSpace(have)) == want {
			return true
		}
	}
	return false
}

// MissingSkills returns the required skills absent from the profile,
// lowercased, preserving the order of the required list.
func (s *Seeker) MissingSkills(required []string) []string {
	missing := make([]string, 0, len(required))
	for _, req := range required {
		if !s.HasSkill(req) {
			missing = append(missing, strings.ToLower(strings.TrimSpace(req)))
		}
	}
	return missing
}

// UpdateProfile updates mutable profile fields, skipping nil values
func (s *Seeker) UpdateProfile(fullName, bio *string, skills *[]string) {
	if fullName != nil && *fullName != "" {
		s.FullName = *fullName
	}
	if bio != nil {
		s.Bio = *bio
	}
	if skills != nil {
		s.Skills = *skills
	}
	s.UpdatedAt = time.Now()
}

// AttachResume records an uploaded resume location
func (s *Seeker) AttachResume(url kernel.BucketURL) {
	s.ResumeURL = url
	s.UpdatedAt = time.Now()
}

// AttachPhoto records an uploaded profile photo location
func (s *Seeker) AttachPhoto(url kernel.BucketURL) {
	s.PhotoURL = url
	s.UpdatedAt = time.Now()
}

// Verify marks the account as approved by an admin
func (s *Seeker) Verify() {
	s.Verification = VerificationVerified
	s.UpdatedAt = time.Now()
}

// Reject marks the account as rejected by an admin
func (s *Seeker) Reject() {
	s.Verification = VerificationRejected
	s.UpdatedAt = time.Now()
}
