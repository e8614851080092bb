package account

import (
	"strings"
	"time"
)

// Roles an account can be created with. The role is fixed at registration;
// there is no role-change flow.
const (
	RoleApplicant = "applicant"
	RoleRecruiter = "recruiter"
)

// Profile is the mutable sub-document of a user account.
type Profile struct {
	Bio                string   `json:"bio"`
	Skills             []string `json:"skills"`
	ProfilePhoto       string   `json:"profilePhoto"`
	Resume             string   `json:"resume,omitempty"`
	ResumeOriginalName string   `json:"resumeOriginalName,omitempty"`
}

// User represents one account. PasswordHash never leaves the server.
type User struct {
	ID           string  `json:"_id"`
	FullName     string  `json:"fullname"`
	Email        string  `json:"email"`
	PhoneNumber  string  `json:"phoneNumber"`
	PasswordHash string  `json:"-"`
	Role         string  `json:"role"`
	Profile      Profile `json:"profile"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Projection is the sanitized user representation sent to clients.
type Projection struct {
	ID          string  `json:"_id"`
	FullName    string  `json:"fullname"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	Role        string  `json:"role"`
	Profile     Profile `json:"profile"`
}

// Sanitized strips everything a client must not see.
func (u *User) Sanitized() Projection {
	return Projection{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		Profile:     u.Profile,
	}
}

// SplitSkills normalizes a comma-separated skill list: trimmed, empties
// dropped, order preserved.
func SplitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
