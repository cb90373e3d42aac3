package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peopledesk/hr-api/internal/api/metrics"
	"github.com/peopledesk/hr-api/internal/core/domain"
	"github.com/peopledesk/hr-api/internal/core/ports"
)

type AccountHandler struct {
	authService ports.AuthService
}

func NewAccountHandler(authService ports.AuthService) *AccountHandler {
	return &AccountHandler{authService: authService}
}

// Register creates a new user account.
//
// @Summary      Register a new account
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /api/account/register [post]
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	account, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountExists):
			return c.JSON(http.StatusConflict, messageResponse{Message: "Email already exists"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{User: toAccountResponse(account)})
}

// Login authenticates an account and returns a signed bearer token.
//
// @Summary      Login
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/account/login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	token, account, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Account not found"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Invalid credentials"})
		}
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: token, User: toAccountResponse(account)})
}

// GetAccount returns the account behind the presented token.
//
// @Summary      Get the authenticated account
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  authResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/account/getaccount [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	id, err := ctxUserID(c)
	if err != nil {
		return err
	}

	account, err := h.authService.GetAccount(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Account not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, authResponse{User: toAccountResponse(account)})
}

// SendEmail mints a password-reset OTP and mails it to the account.
//
// @Summary      Send a password reset OTP
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      sendEmailRequest  true  "Account email"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/account/sendemail [post]
func (h *AccountHandler) SendEmail(c echo.Context) error {
	var req sendEmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	if err := h.authService.SendPasswordOTP(c.Request().Context(), req.Email); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Account not found"})
		}
		return err
	}

	metrics.OTPIssuedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "OTP sent"})
}

// ChangePassword verifies the OTP and replaces the account password.
//
// @Summary      Change password with an OTP
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      changePasswordRequest  true  "OTP and new password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/account/changepassword [post]
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	err := h.authService.ChangePassword(c.Request().Context(), req.Email, req.OTP, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Account not found"})
		case errors.Is(err, domain.ErrInvalidOTP):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid or expired OTP"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Password updated"})
}
