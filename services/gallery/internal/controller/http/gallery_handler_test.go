package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"muse-studio/pkg/logger"
	"muse-studio/services/gallery/internal/entity"
	"muse-studio/services/gallery/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockGalleryUseCase is a mock implementation of GalleryUseCase
type MockGalleryUseCase struct {
	mock.Mock
}

func (m *MockGalleryUseCase) ListPosts() ([]*entity.Post, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockGalleryUseCase) GetPost(postID string) (*entity.Post, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockGalleryUseCase) PublishPost(userID, projectID, title, description, thumbnail, mediaURL string) (*entity.Post, error) {
	args := m.Called(userID, projectID, title, description, thumbnail, mediaURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockGalleryUseCase) ToggleLike(userID, postID string) (bool, int, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Int(1), args.Error(2)
}

func (m *MockGalleryUseCase) IsLiked(userID, postID string) (bool, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGalleryUseCase) GetLikeCount(postID string) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGalleryUseCase) DeletePost(postID, userID string) error {
	args := m.Called(postID, userID)
	return args.Error(0)
}

var _ usecase.GalleryUseCase = (*MockGalleryUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestListPosts_Success(t *testing.T) {
	mockUseCase := new(MockGalleryUseCase)
	logger := logger.New()
	handler := NewGalleryHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.GET("/posts", handler.ListPosts)

	mockPosts := []*entity.Post{
		{ID: "post-1", UserID: "user-1", Title: "First Track", Likes: 5, Plays: 100},
		{ID: "post-2", UserID: "user-2", Title: "Second Track", Likes: 3, Plays: 40},
	}
	mockUseCase.On("ListPosts").Return(mockPosts, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	posts := response["posts"].([]interface{})
	assert.Equal(t, 2, len(posts))

	mockUseCase.AssertExpectations(t)
}

func TestGetPost_Success(t *testing.T) {
	mockUseCase := new(MockGalleryUseCase)
	logger := logger.New()
	handler := NewGalleryHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.GET("/posts/:id", handler.GetPost)

	mockPost := &entity.Post{ID: "post-123", UserID: "user-1", Title: "My Track", Plays: 11}
	mockUseCase.On("GetPost", "post-123").Return(mockPost, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/post-123", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	post := response["post"].(map[string]interface{})
	assert.Equal(t, "post-123", post["id"])
	assert.Equal(t, float64(11), post["plays"])

	mockUseCase.AssertExpectations(t)
}

func TestGetPost_NotFound(t *testing.T) {
	mockUseCase := new(MockGalleryUseCase)
	logger := logger.New()
	handler := NewGalleryHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.GET("/posts/:id", handler.GetPost)

	mockUseCase.On("GetPost", "missing").Return(nil, usecase.ErrPostNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestPublishPost_Success(t *testing.T) {
	mockUseCase := new(MockGalleryUseCase)
	logger := logger.New()
	handler := NewGalleryHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/posts", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.PublishPost(c)
	})

	mockPost := &entity.Post{
		ID:        "post-123",
		UserID:    "user-123",
		ProjectID: "project-123",
		Title:     "My Track",
	}
	mockUseCase.On("PublishPost", "user-123", "project-123", "My Track", "", "", "").Return(mockPost, nil)

	body := `{"project_id":"project-123","title":"My Track"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestPublishPost_Forbidden(t *testing.T) {
	mockUseCase := new(MockGalleryUseCase)
	logger := logger.New()
	handler := NewGalleryHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/posts", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.PublishPost(c)
	})

	mockUseCase.On("PublishPost", "user-123", "project-456", "Stolen", "", "", "").Return(nil, usecase.ErrForbidden)

	body := `{"project_id":"project-456","title":"Stolen"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestPublishPost_MissingProjectID(t *testing.T) {
	mockUseCase := new(MockGalleryUseCase)
	logger := logger.New()
	handler := NewGalleryHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/posts", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.PublishPost(c)
	})

	body := `{"title":"No Project"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "PublishPost", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleLike_Like(t *testing.T) {
	mockUseCase := new(MockGalleryUseCase)
	logger := logger.New()
	handler := NewGalleryHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/posts/:id/like", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.ToggleLike(c)
	})

	mockUseCase.On("ToggleLike", "user-123", "post-123").Return(true, 6, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-123/like", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Post liked", response["message"])
	assert.Equal(t, true, response["liked"])
	assert.Equal(t, float64(6), response["likes"])

	mockUseCase.AssertExpectations(t)
}

func TestToggleLike_Unlike(t *testing.T) {
	mockUseCase := new(MockGalleryUseCase)
	logger := logger.New()
	handler := NewGalleryHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/posts/:id/like", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.ToggleLike(c)
	})

	mockUseCase.On("ToggleLike", "user-123", "post-123").Return(false, 5, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-123/like", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Post unliked", response["message"])
	assert.Equal(t, false, response["liked"])
	assert.Equal(t, float64(5), response["likes"])

	mockUseCase.AssertExpectations(t)
}

func TestToggleLike_PostNotFound(t *testing.T) {
	mockUseCase := new(MockGalleryUseCase)
	logger := logger.New()
	handler := NewGalleryHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/posts/:id/like", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.ToggleLike(c)
	})

	mockUseCase.On("ToggleLike", "user-123", "missing").Return(false, 0, usecase.ErrPostNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/missing/like", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestIsLiked_Success(t *testing.T) {
	mockUseCase := new(MockGalleryUseCase)
	logger := logger.New()
	handler := NewGalleryHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.GET("/posts/:id/liked", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.IsLiked(c)
	})

	mockUseCase.On("IsLiked", "user-123", "post-123").Return(true, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/post-123/liked", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["liked"])

	mockUseCase.AssertExpectations(t)
}

func TestDeletePost_Success(t *testing.T) {
	mockUseCase := new(MockGalleryUseCase)
	logger := logger.New()
	handler := NewGalleryHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.DELETE("/posts/:id", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.DeletePost(c)
	})

	mockUseCase.On("DeletePost", "post-123", "user-123").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/posts/post-123", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["success"])

	mockUseCase.AssertExpectations(t)
}

func TestDeletePost_Forbidden(t *testing.T) {
	mockUseCase := new(MockGalleryUseCase)
	logger := logger.New()
	handler := NewGalleryHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.DELETE("/posts/:id", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.DeletePost(c)
	})

	mockUseCase.On("DeletePost", "post-123", "user-123").Return(usecase.ErrForbidden)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/posts/post-123", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestNewGalleryHandler(t *testing.T) {
	mockUseCase := new(MockGalleryUseCase)
	logger := logger.New()
	handler := NewGalleryHandler(mockUseCase, logger)

	assert.NotNil(t, handler)
}
