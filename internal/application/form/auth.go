package form

// LoginForm /login.
type LoginForm struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

// RegisterForm /register.
type RegisterForm struct {
	Username        string `json:"username" form:"username" validate:"required,min=3,max=50"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"password" form:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"required,eqfield=Password"`
}

// TwoFactorForm /two-factor-auth. Código de 6 dígitos.
type TwoFactorForm struct {
	Code string `json:"code" form:"code" validate:"required,len=6,numeric"`
}

// ForgotPasswordForm /forgot-password.
type ForgotPasswordForm struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

// ResetPasswordForm /reset-password.
type ResetPasswordForm struct {
	Token           string `json:"token" form:"token" validate:"required"`
	Password        string `json:"password" form:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"required,eqfield=Password"`
}
