package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/dochouse/doc-house-server/internal/models"
	"github.com/dochouse/doc-house-server/internal/utils"
)

var testSecret = []byte("test-secret")

func authRouter(t *testing.T, extra ...gin.HandlerFunc) (*gin.Engine, *string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seenEmail string
	r := gin.New()
	chain := append([]gin.HandlerFunc{RequireAuth(testSecret)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		seenEmail = c.GetString(ContextEmailKey)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/protected", chain...)
	return r, &seenEmail
}

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) (bool, string) {
	t.Helper()
	var body struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body %q: %v", w.Body.String(), err)
	}
	return body.Error, body.Message
}

func TestRequireAuthMissingHeader(t *testing.T) {
	r, _ := authRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/protected", nil))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if errFlag, msg := decodeErrorBody(t, w); !errFlag || msg != "unauthorized access" {
		t.Fatalf("unexpected body: error=%v message=%q", errFlag, msg)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	r, _ := authRouter(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if errFlag, msg := decodeErrorBody(t, w); !errFlag || msg != "unauthorized access" {
		t.Fatalf("unexpected body: error=%v message=%q", errFlag, msg)
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	r, seenEmail := authRouter(t)

	token, err := utils.GenerateToken(testSecret, map[string]any{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if *seenEmail != "a@x.com" {
		t.Fatalf("expected email a@x.com in context, got %q", *seenEmail)
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name     string
		lookup   RoleLookup
		wantCode int
	}{
		{
			name: "admin passes",
			lookup: func(ctx context.Context, email string) (models.Role, error) {
				return models.RoleAdmin, nil
			},
			wantCode: http.StatusOK,
		},
		{
			name: "regular user rejected",
			lookup: func(ctx context.Context, email string) (models.Role, error) {
				return models.RoleUnset, nil
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "lookup failure rejected",
			lookup: func(ctx context.Context, email string) (models.Role, error) {
				return models.RoleUnset, errors.New("store down")
			},
			wantCode: http.StatusForbidden,
		},
	}

	token, err := utils.GenerateToken(testSecret, map[string]any{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := authRouter(t, RequireAdmin(tt.lookup))

			req := httptest.NewRequest("GET", "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d (%s)", tt.wantCode, w.Code, w.Body.String())
			}
			if tt.wantCode == http.StatusForbidden {
				if errFlag, msg := decodeErrorBody(t, w); !errFlag || msg != "forbidden access" {
					t.Fatalf("unexpected body: error=%v message=%q", errFlag, msg)
				}
			}
		})
	}
}
