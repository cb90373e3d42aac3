package handler

// messageResponse is the envelope used for handler-level diagnostics and
// domain failures. The global error funnel uses {"error": ...} instead.
type messageResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sendEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type changePasswordRequest struct {
	Email       string `json:"email"       validate:"required,email"`
	OTP         string `json:"otp"         validate:"required,len=6"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type accountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type authResponse struct {
	Token string           `json:"token,omitempty"`
	User  *accountResponse `json:"user,omitempty"`
}
