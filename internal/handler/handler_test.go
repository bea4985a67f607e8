package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/daxp472/CMS/internal/audit"
	"github.com/daxp472/CMS/internal/auth"
	"github.com/daxp472/CMS/internal/service"
	"github.com/daxp472/CMS/internal/store/memory"
	"github.com/daxp472/CMS/internal/store/seed"
)

type HandlerSuite struct {
	suite.Suite
	router http.Handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupSuite() {
	store := memory.New()
	s.Require().NoError(seed.Apply(context.Background(), store))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	jwtSvc := auth.NewJWTService("test-signing-key", "cms", time.Hour)
	authSvc := auth.NewService(store, jwtSvc, auth.NewMemoryRevocationList(), log)

	svc := service.New(service.Deps{
		Store:    store,
		Tx:       store,
		Recorder: audit.NewRecorder(store),
		Logger:   log,
	})
	s.router = New(svc, authSvc, log, nil).Routes()
}

func (s *HandlerSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) login(email string) string {
	rec := s.do(http.MethodPost, "/auth/login", "", map[string]string{
		"email":    email,
		"password": seed.DevPassword,
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var res struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	s.Require().Equal("Bearer", res.TokenType)
	return res.AccessToken
}

func (s *HandlerSuite) registerFIR(token string) (firID, caseID string) {
	rec := s.do(http.MethodPost, "/api/v1/firs", token, map[string]any{
		"complainant_name":     "Asha Verma",
		"incident_date":        "2026-03-13T20:00:00Z",
		"incident_description": "Shop burglary reported overnight",
		"category":             "CRIMINAL",
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var res struct {
		FIR struct {
			ID        string `json:"id"`
			FIRNumber string `json:"fir_number"`
		} `json:"fir"`
		Case struct {
			ID    string `json:"id"`
			State string `json:"state"`
		} `json:"case"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	s.Regexp(`^PS-CENTRAL/\d{4}/\d{4}$`, res.FIR.FIRNumber)
	s.Equal("FIR_REGISTERED", res.Case.State)
	return res.FIR.ID, res.Case.ID
}

func (s *HandlerSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/healthz", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok"}`, rec.Body.String())
}

func (s *HandlerSuite) TestLogin() {
	s.Run("valid credentials", func() {
		token := s.login("sho@central.police")
		s.NotEmpty(token)
	})

	s.Run("bad credentials", func() {
		rec := s.do(http.MethodPost, "/auth/login", "", map[string]string{
			"email":    "sho@central.police",
			"password": "wrong",
		})
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("unknown body field", func() {
		rec := s.do(http.MethodPost, "/auth/login", "", map[string]string{
			"email":    "sho@central.police",
			"password": seed.DevPassword,
			"remember": "yes",
		})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *HandlerSuite) TestAuthRequired() {
	rec := s.do(http.MethodGet, "/api/v1/cases", "", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/cases", "not-a-token", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HandlerSuite) TestFIRFlow() {
	token := s.login("sho@central.police")
	firID, caseID := s.registerFIR(token)

	s.Run("get fir by id", func() {
		rec := s.do(http.MethodGet, "/api/v1/firs/"+firID, token, nil)
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("get case with state", func() {
		rec := s.do(http.MethodGet, "/api/v1/cases/"+caseID, token, nil)
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

		var res struct {
			State           string `json:"state"`
			DocumentsLocked bool   `json:"documents_locked"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
		s.Equal("FIR_REGISTERED", res.State)
		s.False(res.DocumentsLocked)
	})

	s.Run("court principal denied", func() {
		clerkToken := s.login("clerk@district.court")
		rec := s.do(http.MethodGet, "/api/v1/cases/"+caseID, clerkToken, nil)
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("malformed case id", func() {
		rec := s.do(http.MethodGet, "/api/v1/cases/not-a-uuid", token, nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("audit trail records the registration", func() {
		rec := s.do(http.MethodGet, fmt.Sprintf("/api/v1/cases/%s/audit-log", caseID), token, nil)
		s.Require().Equal(http.StatusOK, rec.Code)

		var entries []struct {
			Action string `json:"action"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &entries))
		s.Require().Len(entries, 1)
		s.Equal("FIR_REGISTERED", entries[0].Action)
	})
}

func (s *HandlerSuite) TestLogout() {
	token := s.login("officer@central.police")

	rec := s.do(http.MethodGet, "/api/v1/cases", token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/auth/logout", token, nil)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/cases", token, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HandlerSuite) TestMe() {
	token := s.login("judge@district.court")
	rec := s.do(http.MethodGet, "/auth/me", token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var res struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	s.Equal("judge@district.court", res.Email)
	s.Equal("JUDGE", res.Role)
}
