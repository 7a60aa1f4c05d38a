package contract

// Name and DOB are optional on re-issuance; the service enforces their
// presence when the email is unknown.
type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"omitempty,min=1,max=80"`
	DOB   string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
}

type VerifyOTPRequest struct {
	Email          string `json:"email" validate:"required,email"`
	OTP            string `json:"otp" validate:"required"`
	KeepMeLoggedIn bool   `json:"keepMeLoggedIn"`
}

type GoogleLoginRequest struct {
	Token string `json:"token" validate:"required"`
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	DOB       string `json:"dob,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type SessionResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// ProfileResponse is the reduced projection used by /auth/me and the
// Google login response.
type ProfileResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type GoogleLoginResponse struct {
	Token string           `json:"token"`
	User  *ProfileResponse `json:"user"`
}
