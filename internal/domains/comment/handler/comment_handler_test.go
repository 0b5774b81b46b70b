package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voidspace-backend/internal/domains/comment/model"
)

// stubCommentService returns canned results; status mapping is what is
// under test here, not business logic.
type stubCommentService struct {
	submitErr     error
	moderationErr error
	approved      []model.PublicComment
}

func (s *stubCommentService) Submit(ctx context.Context, req *model.SubmitCommentRequest, ip string) (*model.SubmitCommentResponse, error) {
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	return &model.SubmitCommentResponse{CommentID: uuid.New(), Message: "ok"}, nil
}

func (s *stubCommentService) ListApprovedByPostSlug(ctx context.Context, slug string) ([]model.PublicComment, error) {
	return s.approved, nil
}

func (s *stubCommentService) ListPending(ctx context.Context) ([]model.PendingComment, error) {
	return nil, nil
}

func (s *stubCommentService) ListAll(ctx context.Context) ([]model.AdminComment, error) {
	return nil, nil
}

func (s *stubCommentService) Approve(ctx context.Context, id uuid.UUID) error {
	return s.moderationErr
}

func (s *stubCommentService) Reject(ctx context.Context, id uuid.UUID) error {
	return s.moderationErr
}

func (s *stubCommentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.moderationErr
}

func commentTestRouter(svc *stubCommentService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewCommentHandler(svc)
	router := gin.New()
	router.POST("/comments", h.Submit)
	router.GET("/comments/:slug", h.ListByPost)
	router.POST("/admin/comments/:id/approve", h.Approve)
	router.POST("/admin/comments/:id/reject", h.Reject)
	router.DELETE("/admin/comments/:id/delete", h.Delete)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCommentHandler_Submit_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		submitErr  error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "success",
			wantStatus: http.StatusOK,
		},
		{
			name:       "validation error",
			submitErr:  model.NewValidationError("Name is required"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Name is required",
		},
		{
			name:       "unknown post",
			submitErr:  model.ErrPostNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Post not found",
		},
		{
			name:       "rate limited",
			submitErr:  model.ErrRateLimited,
			wantStatus: http.StatusTooManyRequests,
			wantMsg:    "You're commenting too frequently. Please wait a moment.",
		},
		{
			name:       "store failure is opaque",
			submitErr:  assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Failed to submit comment. Please try again.",
		},
	}

	body := `{"postSlug":"my-first-post","guestName":"Alice","content":"hi"}`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := commentTestRouter(&stubCommentService{submitErr: tt.submitErr})

			w := doJSON(router, http.MethodPost, "/comments", body)
			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantMsg != "" {
				var resp struct {
					Success bool `json:"success"`
					Error   struct {
						Message string `json:"message"`
					} `json:"error"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.False(t, resp.Success)
				assert.Equal(t, tt.wantMsg, resp.Error.Message)
			}
		})
	}
}

func TestCommentHandler_Submit_MalformedBody(t *testing.T) {
	router := commentTestRouter(&stubCommentService{})

	w := doJSON(router, http.MethodPost, "/comments", `{"postSlug":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommentHandler_ListByPost_EmptyIsNotNull(t *testing.T) {
	router := commentTestRouter(&stubCommentService{})

	w := doJSON(router, http.MethodGet, "/comments/my-first-post", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Comments []model.PublicComment `json:"comments"`
			Count    int                   `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Data.Comments)
	assert.Zero(t, resp.Data.Count)
	assert.Contains(t, w.Body.String(), `"comments":[]`)
}

func TestCommentHandler_Moderation_StatusMapping(t *testing.T) {
	id := uuid.New().String()

	paths := map[string]string{
		http.MethodPost:   "/admin/comments/" + id + "/approve",
		http.MethodDelete: "/admin/comments/" + id + "/delete",
	}

	for method, path := range paths {
		t.Run(method+" not found", func(t *testing.T) {
			router := commentTestRouter(&stubCommentService{moderationErr: model.ErrCommentNotFound})

			w := doJSON(router, method, path, "")
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Contains(t, w.Body.String(), "Comment not found or already moderated")
		})

		t.Run(method+" success", func(t *testing.T) {
			router := commentTestRouter(&stubCommentService{})

			w := doJSON(router, method, path, "")
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestCommentHandler_Moderation_InvalidID(t *testing.T) {
	router := commentTestRouter(&stubCommentService{})

	w := doJSON(router, http.MethodPost, "/admin/comments/not-a-uuid/approve", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Comment ID is invalid")
}
