package controllers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gin-bookreview/models"
	"gin-bookreview/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAuthService struct {
	refreshPair *services.TokenPair
	refreshErr  error
}

func (s *stubAuthService) Register(email string, password string) (*models.User, error) {
	return nil, nil
}

func (s *stubAuthService) Login(email string, password string) (*services.TokenPair, error) {
	return nil, nil
}

func (s *stubAuthService) Refresh(refreshToken string) (*services.TokenPair, error) {
	return s.refreshPair, s.refreshErr
}

func (s *stubAuthService) Logout(tokenString string) error {
	return nil
}

func (s *stubAuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	return nil, nil
}

func postRefresh(t *testing.T, service services.IAuthService) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	controller := NewAuthController(service)
	r.POST("/api/users/refresh/", controller.Refresh)

	req := httptest.NewRequest(http.MethodPost, "/api/users/refresh/",
		bytes.NewReader([]byte(`{"refresh":"some-token"}`)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRefreshInvalidTokenIsUnauthorized(t *testing.T) {
	w := postRefresh(t, &stubAuthService{refreshErr: services.ErrInvalidToken})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshStoreFailureIsInternalError(t *testing.T) {
	// A token-store outage is not the client's fault.
	w := postRefresh(t, &stubAuthService{refreshErr: errors.New("database is locked")})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRefreshSuccess(t *testing.T) {
	w := postRefresh(t, &stubAuthService{refreshPair: &services.TokenPair{
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
	}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "new-access")
}
