package transcript

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/PedroHSGuimaraes/youtube-transcript-api/internal/errors"
	"github.com/PedroHSGuimaraes/youtube-transcript-api/internal/logger"
)

// Service orchestrates transcript retrieval: it extracts the video ID,
// builds the language preference chain, applies the fetch deadline, and
// classifies provider failures into the API error taxonomy.
type Service struct {
	provider Provider
	cfg      Config
	log      *logger.Logger
}

// NewService creates a transcript service backed by the given provider.
func NewService(provider Provider, cfg Config, log *logger.Logger) *Service {
	cfg.ApplyDefaults()
	return &Service{
		provider: provider,
		cfg:      cfg,
		log:      log.WithComponent("transcript"),
	}
}

// DefaultLanguage returns the configured default caption language.
func (s *Service) DefaultLanguage() string {
	return s.cfg.DefaultLanguage
}

// Transcribe fetches the transcript for a YouTube URL (or bare video ID) in
// the requested language, falling back to the configured fallback languages.
func (s *Service) Transcribe(ctx context.Context, url, language string) (string, error) {
	videoID, ok := ExtractVideoID(url)
	if !ok {
		return "", errors.InvalidFormat("url", "a YouTube video URL or 11-character video ID")
	}

	languages := s.languageChain(language)

	s.log.Debug("Fetching transcript", map[string]interface{}{
		logger.FieldVideoID:  videoID,
		logger.FieldLanguage: language,
		"languages":          languages,
	})

	fetchCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.FetchTimeout)*time.Second)
	defer cancel()

	start := time.Now()
	text, err := s.provider.Fetch(fetchCtx, FetchRequest{
		VideoID:   videoID,
		Languages: languages,
	})
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			s.log.Warn("Transcript fetch timed out", map[string]interface{}{
				logger.FieldVideoID: videoID,
				"timeout_s":         s.cfg.FetchTimeout,
			})
			return "", errors.Timeout("transcript fetch").WithDetail("video_id", videoID)
		}
		s.log.Error("Transcript fetch failed", logger.ErrorFields("fetch", err))
		return "", errors.ExternalServiceError("YouTube transcript", err).
			WithDetail("video_id", videoID)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.NotFound("transcript", videoID).
			WithDetail("language", language)
	}

	s.log.Info("Transcript fetched", map[string]interface{}{
		logger.FieldVideoID:  videoID,
		logger.FieldLanguage: language,
		logger.FieldDuration: time.Since(start).Milliseconds(),
		"chars":              len(text),
	})
	return text, nil
}

// languageChain returns the requested language followed by the configured
// fallbacks, duplicates removed, order preserved.
func (s *Service) languageChain(language string) []string {
	chain := make([]string, 0, 1+len(s.cfg.FallbackLanguages))
	seen := make(map[string]bool, 1+len(s.cfg.FallbackLanguages))
	for _, lang := range append([]string{language}, s.cfg.FallbackLanguages...) {
		lang = strings.TrimSpace(lang)
		if lang == "" || seen[lang] {
			continue
		}
		seen[lang] = true
		chain = append(chain, lang)
	}
	return chain
}
