package transcript

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/PedroHSGuimaraes/youtube-transcript-api/internal/logger"
)

func newTestRouter(p Provider, cfg Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	log := logger.NewDefault("test")
	NewHandler(NewService(p, cfg, log), log).RegisterRoutes(engine)
	return engine
}

func postTranscribe(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/transcribe", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestHandler_Transcribe_Success(t *testing.T) {
	fake := &fakeProvider{text: "ola mundo"}
	engine := newTestRouter(fake, Config{})

	w := postTranscribe(t, engine, `{"url": "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "language": "pt"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp TranscribeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Transcription != "ola mundo" {
		t.Errorf("expected transcript text, got %q", resp.Transcription)
	}
}

func TestHandler_Transcribe_MalformedJSON(t *testing.T) {
	fake := &fakeProvider{text: "never"}
	engine := newTestRouter(fake, Config{})

	w := postTranscribe(t, engine, `{"url": `)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if fake.calls != 0 {
		t.Error("provider must not be called for a malformed body")
	}
}

func TestHandler_Transcribe_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"missing language", `{"url": "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}`},
		{"missing url", `{"language": "pt"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeProvider{text: "never"}
			engine := newTestRouter(fake, Config{})

			w := postTranscribe(t, engine, tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			if fake.calls != 0 {
				t.Error("provider must not be called when validation fails")
			}

			var resp struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid error body: %v", err)
			}
			if resp.Error.Code != "INVALID_INPUT" {
				t.Errorf("expected INVALID_INPUT, got %q", resp.Error.Code)
			}
		})
	}
}

func TestHandler_Transcribe_NotFound(t *testing.T) {
	fake := &fakeProvider{text: ""}
	engine := newTestRouter(fake, Config{})

	w := postTranscribe(t, engine, `{"url": "dQw4w9WgXcQ", "language": "pt"}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHandler_GetTranscript_DefaultLanguage(t *testing.T) {
	fake := &fakeProvider{text: "texto"}
	engine := newTestRouter(fake, Config{DefaultLanguage: "pt"})

	req := httptest.NewRequest(http.MethodGet, "/transcripts/dQw4w9WgXcQ", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(fake.lastReq.Languages) == 0 || fake.lastReq.Languages[0] != "pt" {
		t.Errorf("expected default language first, got %v", fake.lastReq.Languages)
	}
}

func TestHandler_GetTranscript_ExplicitLanguage(t *testing.T) {
	fake := &fakeProvider{text: "text"}
	engine := newTestRouter(fake, Config{DefaultLanguage: "pt"})

	req := httptest.NewRequest(http.MethodGet, "/transcripts/dQw4w9WgXcQ?language=en", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(fake.lastReq.Languages) == 0 || fake.lastReq.Languages[0] != "en" {
		t.Errorf("expected requested language first, got %v", fake.lastReq.Languages)
	}
}
