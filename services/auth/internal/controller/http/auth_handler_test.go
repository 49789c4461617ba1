package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"muse-studio/services/auth/internal/entity"
	"muse-studio/services/auth/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthUseCase is a mock implementation of AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(email, username, password string) (*entity.User, string, error) {
	args := m.Called(email, username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Login(email, password string) (*entity.User, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) GetUser(userID string) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestRegister_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/register", handler.Register)

	mockUser := &entity.User{
		ID:       "user-123",
		Email:    "new@example.com",
		Username: "newuser",
		Role:     entity.RoleUser,
		IsActive: true,
	}
	mockUseCase.On("Register", "new@example.com", "newuser", "secret123").Return(mockUser, "token-abc", nil)

	body := `{"email":"new@example.com","username":"newuser","password":"secret123"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response AuthResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "token-abc", response.Token)
	assert.Equal(t, "user-123", response.User.ID)

	mockUseCase.AssertExpectations(t)
}

func TestRegister_EmailTaken(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/register", handler.Register)

	mockUseCase.On("Register", "taken@example.com", "newuser", "secret123").Return(nil, "", usecase.ErrEmailTaken)

	body := `{"email":"taken@example.com","username":"newuser","password":"secret123"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestRegister_InvalidEmail(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/register", handler.Register)

	body := `{"email":"not-an-email","username":"newuser","password":"secret123"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/login", handler.Login)

	mockUser := &entity.User{
		ID:       "user-123",
		Email:    "user@example.com",
		Username: "someuser",
		Role:     entity.RoleUser,
		IsActive: true,
	}
	mockUseCase.On("Login", "user@example.com", "secret123").Return(mockUser, "token-abc", nil)

	body := `{"email":"user@example.com","password":"secret123"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response AuthResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "token-abc", response.Token)

	mockUseCase.AssertExpectations(t)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/login", handler.Login)

	mockUseCase.On("Login", "user@example.com", "wrong").Return(nil, "", usecase.ErrInvalidCredentials)

	body := `{"email":"user@example.com","password":"wrong"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestLogin_AccountDeactivated(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/login", handler.Login)

	mockUseCase.On("Login", "gone@example.com", "secret123").Return(nil, "", usecase.ErrAccountDeactivated)

	body := `{"email":"gone@example.com","password":"secret123"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestMe_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/me", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.Me(c)
	})

	mockUser := &entity.User{
		ID:       "user-123",
		Email:    "user@example.com",
		Username: "someuser",
		Role:     entity.RoleUser,
		IsActive: true,
	}
	mockUseCase.On("GetUser", "user-123").Return(mockUser, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response entity.User
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "user-123", response.ID)

	mockUseCase.AssertExpectations(t)
}

func TestMe_NoUserInContext(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/me", handler.Me)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockUseCase.AssertNotCalled(t, "GetUser", mock.Anything)
}
