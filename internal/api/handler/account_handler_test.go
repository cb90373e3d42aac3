package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	mw "github.com/peopledesk/hr-api/internal/api/middleware"
	"github.com/peopledesk/hr-api/internal/core/domain"
	"github.com/peopledesk/hr-api/internal/core/ports"
)

type stubAuthSvc struct {
	accounts   map[string]*domain.Account
	otp        string
	otpsSent   int
	loginToken string
}

func newStubAuthSvc() *stubAuthSvc {
	return &stubAuthSvc{accounts: make(map[string]*domain.Account), loginToken: "tok-1"}
}

func (s *stubAuthSvc) Register(_ context.Context, input ports.RegisterInput) (*domain.Account, error) {
	email := strings.ToLower(input.Email)
	if _, exists := s.accounts[email]; exists {
		return nil, domain.ErrAccountExists
	}
	role := domain.Role(input.Role)
	if role == "" {
		role = domain.RoleUser
	}
	a := &domain.Account{ID: "acc-1", Name: input.Name, Email: email, Role: role}
	s.accounts[email] = a
	return a, nil
}

func (s *stubAuthSvc) Login(_ context.Context, email, password string) (string, *domain.Account, error) {
	a, ok := s.accounts[strings.ToLower(email)]
	if !ok {
		return "", nil, domain.ErrAccountNotFound
	}
	if password != "goodpass" {
		return "", nil, domain.ErrInvalidCredentials
	}
	return s.loginToken, a, nil
}

func (s *stubAuthSvc) GetAccount(_ context.Context, id string) (*domain.Account, error) {
	for _, a := range s.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (s *stubAuthSvc) SendPasswordOTP(_ context.Context, email string) error {
	if _, ok := s.accounts[strings.ToLower(email)]; !ok {
		return domain.ErrAccountNotFound
	}
	s.otp = "123456"
	s.otpsSent++
	return nil
}

func (s *stubAuthSvc) ChangePassword(_ context.Context, email, otp, _ string) error {
	if _, ok := s.accounts[strings.ToLower(email)]; !ok {
		return domain.ErrAccountNotFound
	}
	if otp != s.otp || s.otp == "" {
		return domain.ErrInvalidOTP
	}
	s.otp = ""
	return nil
}

func newAccountFixture() (*echo.Echo, *AccountHandler, *stubAuthSvc) {
	e := echo.New()
	e.Validator = NewValidator()
	svc := newStubAuthSvc()
	return e, NewAccountHandler(svc), svc
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.Message
}

func TestAccountHandler_Register(t *testing.T) {
	e, h, _ := newAccountFixture()

	req := jsonRequest(http.MethodPost, "/api/account/register", `{"name":"Ann","email":"ann@x.com","password":"pass123"}`)
	rec := httptest.NewRecorder()

	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User == nil || resp.User.Email != "ann@x.com" || resp.User.Role != "user" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
	if resp.Token != "" {
		t.Fatalf("register must not mint a token")
	}
}

func TestAccountHandler_Register_Duplicate(t *testing.T) {
	e, h, _ := newAccountFixture()

	req := jsonRequest(http.MethodPost, "/api/account/register", `{"email":"ann@x.com","password":"pass123"}`)
	if err := h.Register(e.NewContext(req, httptest.NewRecorder())); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	req = jsonRequest(http.MethodPost, "/api/account/register", `{"email":"ann@x.com","password":"other12"}`)
	rec := httptest.NewRecorder()
	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Email already exists" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestAccountHandler_Register_Validation(t *testing.T) {
	e, h, _ := newAccountFixture()

	for _, body := range []string{
		`{"email":"not-an-email","password":"pass123"}`,
		`{"email":"ann@x.com","password":"short"}`,
		`{"email":"ann@x.com","password":"pass123","role":"superuser"}`,
	} {
		req := jsonRequest(http.MethodPost, "/api/account/register", body)
		rec := httptest.NewRecorder()
		if err := h.Register(e.NewContext(req, rec)); err != nil {
			t.Fatalf("Register returned error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestAccountHandler_Login(t *testing.T) {
	e, h, svc := newAccountFixture()
	svc.accounts["ann@x.com"] = &domain.Account{ID: "acc-1", Email: "ann@x.com", Role: domain.RoleAdmin}

	req := jsonRequest(http.MethodPost, "/api/account/login", `{"email":"ann@x.com","password":"goodpass"}`)
	rec := httptest.NewRecorder()

	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "tok-1" {
		t.Fatalf("unexpected token: %q", resp.Token)
	}
	if resp.User == nil || resp.User.Role != "admin" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
}

func TestAccountHandler_Login_Failures(t *testing.T) {
	e, h, svc := newAccountFixture()
	svc.accounts["ann@x.com"] = &domain.Account{ID: "acc-1", Email: "ann@x.com", Role: domain.RoleUser}

	req := jsonRequest(http.MethodPost, "/api/account/login", `{"email":"ghost@x.com","password":"goodpass"}`)
	rec := httptest.NewRecorder()
	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown account: expected 404, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Account not found" {
		t.Fatalf("unexpected message: %q", msg)
	}

	req = jsonRequest(http.MethodPost, "/api/account/login", `{"email":"ann@x.com","password":"badpass"}`)
	rec = httptest.NewRecorder()
	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad password: expected 401, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Invalid credentials" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestAccountHandler_GetAccount(t *testing.T) {
	e, h, svc := newAccountFixture()
	svc.accounts["ann@x.com"] = &domain.Account{ID: "acc-1", Email: "ann@x.com", Role: domain.RoleUser}

	req := httptest.NewRequest(http.MethodGet, "/api/account/getaccount", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(mw.CtxUserID, "acc-1")

	if err := h.GetAccount(c); err != nil {
		t.Fatalf("GetAccount returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User == nil || resp.User.ID != "acc-1" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
}

func TestAccountHandler_GetAccount_NoClaims(t *testing.T) {
	e, h, _ := newAccountFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/account/getaccount", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.GetAccount(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAccountHandler_SendEmail(t *testing.T) {
	e, h, svc := newAccountFixture()
	svc.accounts["ann@x.com"] = &domain.Account{ID: "acc-1", Email: "ann@x.com"}

	req := jsonRequest(http.MethodPost, "/api/account/sendemail", `{"email":"ann@x.com"}`)
	rec := httptest.NewRecorder()

	if err := h.SendEmail(e.NewContext(req, rec)); err != nil {
		t.Fatalf("SendEmail returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "OTP sent" {
		t.Fatalf("unexpected message: %q", msg)
	}
	if svc.otpsSent != 1 {
		t.Fatalf("expected one OTP issued, got %d", svc.otpsSent)
	}
}

func TestAccountHandler_SendEmail_UnknownAccount(t *testing.T) {
	e, h, _ := newAccountFixture()

	req := jsonRequest(http.MethodPost, "/api/account/sendemail", `{"email":"ghost@x.com"}`)
	rec := httptest.NewRecorder()

	if err := h.SendEmail(e.NewContext(req, rec)); err != nil {
		t.Fatalf("SendEmail returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAccountHandler_ChangePassword(t *testing.T) {
	e, h, svc := newAccountFixture()
	svc.accounts["ann@x.com"] = &domain.Account{ID: "acc-1", Email: "ann@x.com"}
	svc.otp = "123456"

	req := jsonRequest(http.MethodPost, "/api/account/changepassword", `{"email":"ann@x.com","otp":"123456","newPassword":"newpass"}`)
	rec := httptest.NewRecorder()

	if err := h.ChangePassword(e.NewContext(req, rec)); err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if msg := decodeMessage(t, rec); msg != "Password updated" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestAccountHandler_ChangePassword_BadOTP(t *testing.T) {
	e, h, svc := newAccountFixture()
	svc.accounts["ann@x.com"] = &domain.Account{ID: "acc-1", Email: "ann@x.com"}
	svc.otp = "123456"

	req := jsonRequest(http.MethodPost, "/api/account/changepassword", `{"email":"ann@x.com","otp":"654321","newPassword":"newpass"}`)
	rec := httptest.NewRecorder()

	if err := h.ChangePassword(e.NewContext(req, rec)); err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Invalid or expired OTP" {
		t.Fatalf("unexpected message: %q", msg)
	}
}
