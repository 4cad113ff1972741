package middleware

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/invoiceapp/invoice-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeIdempotencyRepo is an in-memory IdempotencyRepository whose
// writes can be made to fail.
type fakeIdempotencyRepo struct {
	keys      map[string]*entity.IdempotencyKey
	createErr error
}

func newFakeIdempotencyRepo() *fakeIdempotencyRepo {
	return &fakeIdempotencyRepo{keys: make(map[string]*entity.IdempotencyKey)}
}

func (f *fakeIdempotencyRepo) GetByKey(_ context.Context, key string, _ uuid.UUID) (*entity.IdempotencyKey, error) {
	return f.keys[key], nil
}

func (f *fakeIdempotencyRepo) Create(_ context.Context, ikey *entity.IdempotencyKey) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.keys[ikey.Key] = ikey
	return nil
}

func (f *fakeIdempotencyRepo) DeleteExpired(_ context.Context) error {
	return nil
}

func idempotencyRouter(repo *fakeIdempotencyRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/invoices",
		func(c *gin.Context) { c.Set("user_id", uuid.New()) },
		IdempotencyRequired(IdempotencyConfig{Repo: repo}),
		func(c *gin.Context) { c.JSON(201, gin.H{"success": true}) },
	)
	return router
}

func TestIdempotencyStoresAndReplays(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	router := idempotencyRouter(repo)

	req := httptest.NewRequest(http.MethodPost, "/invoices", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, 201, w.Code)
	require.Contains(t, repo.keys, "key-1")
	assert.Equal(t, 201, repo.keys["key-1"].ResponseCode)
}

func TestIdempotencyRequiresKeyHeader(t *testing.T) {
	router := idempotencyRouter(newFakeIdempotencyRepo())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/invoices", nil))

	assert.Equal(t, 400, w.Code)
}

func TestIdempotencyStoreFailureIsLoggedNotFatal(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	repo.createErr = errors.New("connection reset")
	router := idempotencyRouter(repo)

	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	req := httptest.NewRequest(http.MethodPost, "/invoices", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-2")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// the client still gets its response, and the failure is visible
	assert.Equal(t, 201, w.Code)
	assert.Contains(t, logs.String(), "Failed to store idempotency key")
	assert.Contains(t, logs.String(), "connection reset")
}
