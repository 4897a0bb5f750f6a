package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appmiddleware "evently/internal/delivery/http/middleware"
	"evently/internal/delivery/http/validator"
	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthOutput), args.Error(1)
}

func (m *mockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthOutput), args.Error(1)
}

type mockProfileUsecase struct {
	mock.Mock
}

func (m *mockProfileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.SanitizedUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.SanitizedUser), args.Error(1)
}

func (m *mockProfileUsecase) GetTicketQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

// newTestServer wires a minimal echo instance the way the real server does:
// validator plus the central error handler.
func newTestServer(t *testing.T) (*echo.Echo, *mockAuthUsecase, *mockProfileUsecase) {
	t.Helper()

	authUC := new(mockAuthUsecase)
	profileUC := new(mockProfileUsecase)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = appmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewAuthHandler(authUC, profileUC, logger)
	e.POST("/api/auth/register", h.Register)
	e.POST("/api/auth/login", h.Login)
	e.GET("/api/auth/profile", h.GetProfile)
	e.GET("/api/auth/profile/ticket", h.GetTicket)

	return e, authUC, profileUC
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e, authUC, _ := newTestServer(t)

	userID := uuid.New()
	authUC.On("RegisterUser", mock.Anything, mock.MatchedBy(func(input *usecase.RegisterUserInput) bool {
		return input.Name == "Ana" && input.Email == "a@x.com" && input.Role == entity.RoleUser
	})).Return(&usecase.AuthOutput{
		User: &entity.SanitizedUser{
			ID:    userID,
			Name:  "Ana",
			Email: "a@x.com",
			Role:  entity.RoleUser,
		},
		Token: "signed_token",
	}, nil)

	payload := `{"name":"Ana","email":"a@x.com","password":"Password123!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "User registered successfully!", body["message"])
	assert.Equal(t, "signed_token", body["token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", user["email"])
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Register_Multipart(t *testing.T) {
	e, authUC, _ := newTestServer(t)

	authUC.On("RegisterUser", mock.Anything, mock.MatchedBy(func(input *usecase.RegisterUserInput) bool {
		return input.Image != nil && input.Image.Filename == "avatar.png"
	})).Return(&usecase.AuthOutput{
		User: &entity.SanitizedUser{
			ID:    uuid.New(),
			Name:  "Ana",
			Email: "a@x.com",
			Role:  entity.RoleUser,
			Image: "https://cdn.example.com/avatars/abc.png",
		},
		Token: "signed_token",
	}, nil)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("name", "Ana"))
	require.NoError(t, writer.WriteField("email", "a@x.com"))
	require.NoError(t, writer.WriteField("password", "Password123!"))
	part, err := writer.CreateFormFile("image", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/avatars/abc.png", user["image"])
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	e, authUC, _ := newTestServer(t)

	authUC.On("RegisterUser", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("user registration failed"))

	payload := `{"name":"Ana","email":"a@x.com","password":"Password123!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Email is already registered!", body["message"])
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	e, authUC, _ := newTestServer(t)

	tests := []struct {
		name    string
		payload string
	}{
		{"Missing name", `{"email":"a@x.com","password":"Password123!"}`},
		{"Malformed email", `{"name":"Ana","email":"not-an-email","password":"Password123!"}`},
		{"Short password", `{"name":"Ana","email":"a@x.com","password":"abc"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.payload))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	authUC.AssertNotCalled(t, "RegisterUser", mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_UploadFailure(t *testing.T) {
	e, authUC, _ := newTestServer(t)

	authUC.On("RegisterUser", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrImageUploadFailed.WrapMessage("user registration failed"))

	payload := `{"name":"Ana","email":"a@x.com","password":"Password123!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Image upload failed!", body["message"])
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e, authUC, _ := newTestServer(t)

	authUC.On("Login", mock.Anything, &usecase.LoginInput{Email: "a@x.com", Password: "Password123!"}).
		Return(&usecase.AuthOutput{
			User: &entity.SanitizedUser{
				ID:    uuid.New(),
				Name:  "Ana",
				Email: "a@x.com",
				Role:  entity.RoleUser,
			},
			Token: "signed_token",
		}, nil)

	payload := `{"email":"a@x.com","password":"Password123!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Login successful!", body["message"])
	assert.Equal(t, "signed_token", body["token"])
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e, authUC, _ := newTestServer(t)

	authUC.On("Login", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed"))

	payload := `{"email":"a@x.com","password":"WrongPass1!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid credentials!", body["message"])
}

func TestAuthHandler_GetProfile_Success(t *testing.T) {
	e, _, profileUC := newTestServer(t)

	userID := uuid.New()
	profileUC.On("GetProfile", mock.Anything, userID).Return(&entity.SanitizedUser{
		ID:    userID,
		Name:  "Ana",
		Email: "a@x.com",
		Role:  entity.RoleUser,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(appmiddleware.ContextKeyUserID, userID)

	h := NewAuthHandler(nil, profileUC, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, h.GetProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", user["email"])
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_GetProfile_NotFound(t *testing.T) {
	e, _, profileUC := newTestServer(t)

	userID := uuid.New()
	profileUC.On("GetProfile", mock.Anything, userID).
		Return(nil, domainerrors.ErrUserNotFound.WrapMessage("profile lookup failed"))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(appmiddleware.ContextKeyUserID, userID)

	h := NewAuthHandler(nil, profileUC, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := h.GetProfile(c)
	require.Error(t, err)

	e.HTTPErrorHandler(err, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "User not found!", body["message"])
}

func TestAuthHandler_GetProfile_MissingUserID(t *testing.T) {
	e, _, profileUC := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAuthHandler(nil, profileUC, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, h.GetProfile(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	profileUC.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
}

func TestAuthHandler_GetTicket_Success(t *testing.T) {
	e, _, profileUC := newTestServer(t)

	userID := uuid.New()
	pngBytes := []byte{0x89, 'P', 'N', 'G'}
	profileUC.On("GetTicketQR", mock.Anything, userID).Return(pngBytes, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile/ticket", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(appmiddleware.ContextKeyUserID, userID)

	h := NewAuthHandler(nil, profileUC, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, h.GetTicket(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, pngBytes, rec.Body.Bytes())
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
