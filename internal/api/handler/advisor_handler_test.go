package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/matchfit/matchfit-api/internal/core/domain"
	"github.com/matchfit/matchfit-api/internal/core/ports"
)

type stubAdvisorService struct {
	lastFace ports.FaceInput
	face     *domain.FaceAnalysis
	faceErr  error
}

func (s *stubAdvisorService) InvitationCopy(context.Context, ports.InvitationCopyInput) (string, error) {
	return "", nil
}

func (s *stubAdvisorService) AnalyzeFashion(context.Context, ports.FashionInput) (*domain.FashionAnalysis, error) {
	return nil, nil
}

func (s *stubAdvisorService) AnalyzeFace(_ context.Context, input ports.FaceInput) (*domain.FaceAnalysis, error) {
	s.lastFace = input
	return s.face, s.faceErr
}

func postAdvisorFace(e *echo.Echo, h *AdvisorHandler, body string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodPost, "/v1/advisor/face", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, h.Face(e.NewContext(req, rec))
}

func TestAdvisorHandler_Face(t *testing.T) {
	e := newTestEcho()
	stub := &stubAdvisorService{face: &domain.FaceAnalysis{FaceShape: "Oval"}}
	handler := NewAdvisorHandler(stub)

	rec, err := postAdvisorFace(e, handler, `{"image":"aW1n","skin_type":"Oily","concerns":["acne"]}`)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.lastFace.SkinType != domain.SkinOily {
		t.Fatalf("skin type not forwarded: %q", stub.lastFace.SkinType)
	}
}

func TestAdvisorHandler_Face_SkinTypeRequired(t *testing.T) {
	e := newTestEcho()
	stub := &stubAdvisorService{face: &domain.FaceAnalysis{}}
	handler := NewAdvisorHandler(stub)

	for name, body := range map[string]string{
		"missing": `{"image":"aW1n","concerns":["acne"]}`,
		"unknown": `{"image":"aW1n","skin_type":"Greasy"}`,
	} {
		_, err := postAdvisorFace(e, handler, body)
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("%s skin type: expected 400, got %v", name, err)
		}
		if stub.lastFace.ImageData != "" {
			t.Fatalf("%s skin type: request reached the service", name)
		}
	}
}
