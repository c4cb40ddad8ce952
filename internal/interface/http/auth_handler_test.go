package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devfood/foodcourt/internal/application"
	"github.com/devfood/foodcourt/internal/domain/entity"
	"github.com/devfood/foodcourt/pkg/helpers"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	repo := newMemUserRepo()
	hash, err := helpers.HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	err = repo.Create(context.Background(), &entity.User{
		Email:    "admin@example.com",
		Password: hash,
		Name:     "Admin",
		Role:     entity.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	tokens := helpers.NewTokenManager("test-secret", time.Hour)
	svc := application.NewAuthService(repo, tokens, nil, nil)
	h := NewAuthHandler(svc, nil, "localhost", false)

	r := gin.New()
	r.POST("/api/login", h.Login)
	r.GET("/api/verify", h.Verify)
	return r
}

func TestLoginEndpointSetsCookie(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/login", `{"email":"admin@example.com","password":"hunter22"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}

	var env struct {
		Data struct {
			Email string `json:"email"`
			Role  string `json:"role"`
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.Token == "" {
		t.Fatal("no token in response")
	}
	if env.Data.Role != "admin" {
		t.Errorf("role = %q", env.Data.Role)
	}

	var found bool
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "access_token" && ck.Value != "" {
			found = true
			if !ck.HttpOnly {
				t.Error("access_token cookie not HttpOnly")
			}
		}
	}
	if !found {
		t.Error("access_token cookie not set")
	}

	// Token round-trips through verify.
	v := doJSON(t, r, http.MethodGet, "/api/verify?token="+env.Data.Token, "")
	if v.Code != http.StatusOK {
		t.Errorf("verify status = %d", v.Code)
	}
}

func TestLoginEndpointRejectsBadCredentials(t *testing.T) {
	r := newAuthRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"wrong password", `{"email":"admin@example.com","password":"wrong-pw"}`},
		{"unknown user", `{"email":"ghost@example.com","password":"whatever1"}`},
	}
	for _, c := range cases {
		w := doJSON(t, r, http.MethodPost, "/api/login", c.body)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", c.name, w.Code)
		}
	}
}

func TestVerifyEndpointRejectsMissingAndGarbageTokens(t *testing.T) {
	r := newAuthRouter(t)

	if w := doJSON(t, r, http.MethodGet, "/api/verify", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("missing token status = %d, want 401", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/verify?token=garbage", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token status = %d, want 401", w.Code)
	}
}
