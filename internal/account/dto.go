package account

// RegisterRequest carries the required registration fields. The phone number
// arrives as free text and is stored as-is.
type RegisterRequest struct {
	FullName    string `json:"fullname" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required"`
	Role        string `json:"role" validate:"required,oneof=applicant recruiter"`
}

// LoginRequest carries the credential triple checked at login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// UpdateProfileRequest holds optional overwrites; empty fields are left
// untouched. Skills is the raw comma-separated form.
type UpdateProfileRequest struct {
	FullName    string `json:"fullname"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber"`
	Bio         string `json:"bio"`
	Skills      string `json:"skills"`
}
