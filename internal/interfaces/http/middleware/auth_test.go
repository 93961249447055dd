package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjcichra/tira-backend/internal/application/auth/usecases"
	"github.com/tjcichra/tira-backend/internal/domain/user"
	"github.com/tjcichra/tira-backend/internal/shared/errors"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

type stubSessionRepo struct {
	session    *user.Session
	getErr     error
	deleteRows int64
	deleted    []string
}

func (s *stubSessionRepo) Create(ctx context.Context, sess *user.Session) error { return nil }

func (s *stubSessionRepo) GetByToken(ctx context.Context, token string) (*user.Session, error) {
	return s.session, s.getErr
}

func (s *stubSessionRepo) DeleteByToken(ctx context.Context, token string) (int64, error) {
	s.deleted = append(s.deleted, token)
	return s.deleteRows, nil
}

func (s *stubSessionRepo) DeleteByUserIDAndToken(ctx context.Context, userID int64, token string) (int64, error) {
	return s.deleteRows, nil
}

func newGateRouter(sessions user.SessionRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	mw := NewAuthMiddleware(usecases.NewAuthenticateUseCase(sessions, log), log)

	r := gin.New()
	r.GET("/tickets", mw.RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func notFound() error {
	return errors.NewNotFoundError("session not found")
}

func performRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/tickets", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "tirauth", Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_ValidSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sess, err := user.NewSession("token-1", 7, nil)
	require.NoError(t, err)
	sessions := &stubSessionRepo{session: sess}

	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	mw := NewAuthMiddleware(usecases.NewAuthenticateUseCase(sessions, log), log)

	var gotUserID int64
	var gotToken string
	r := gin.New()
	r.GET("/tickets", mw.RequireAuth(), func(c *gin.Context) {
		gotUserID = CurrentUserID(c)
		gotToken = CurrentSessionToken(c)
		c.Status(http.StatusOK)
	})

	w := performRequest(r, "token-1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), gotUserID)
	assert.Equal(t, "token-1", gotToken)
}

func TestRequireAuth_MissingCookie(t *testing.T) {
	r := newGateRouter(&stubSessionRepo{})

	w := performRequest(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthenticated")
}

func TestRequireAuth_UnknownToken(t *testing.T) {
	sessions := &stubSessionRepo{getErr: notFound()}
	r := newGateRouter(sessions)

	w := performRequest(r, "bogus")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthenticated")
}

func TestRequireAuth_ExpiredSessionDeletedAndRejected(t *testing.T) {
	past := time.Now().UTC().Add(-time.Hour)
	sess, err := user.NewSession("stale", 7, &past)
	require.NoError(t, err)
	sessions := &stubSessionRepo{session: sess, deleteRows: 1}

	r := newGateRouter(sessions)

	w := performRequest(r, "stale")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "session_expired")
	assert.Equal(t, []string{"stale"}, sessions.deleted)
}
