// Package youtube implements transcript.Provider on top of the
// youtube-transcript-api-go library, which owns all caption retrieval
// and parsing.
package youtube

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript"
	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_formatters"

	"github.com/PedroHSGuimaraes/youtube-transcript-api/internal/transcript"
)

const (
	// ProviderName is the registered name for the YouTube provider.
	ProviderName = "youtube"

	probeURL            = "https://www.youtube.com/"
	defaultProbeTimeout = 5 * time.Second
)

// Config holds configuration for the YouTube transcript provider.
type Config struct {
	// PreserveFormatting keeps caption markup in the fetched text.
	PreserveFormatting bool `yaml:"preserve_formatting" mapstructure:"preserve_formatting"`
	// ProbeTimeout bounds the availability reachability check.
	ProbeTimeout time.Duration `yaml:"probe_timeout" mapstructure:"probe_timeout"`
}

// transcriptClient is the surface of the collaborator library the provider
// uses; narrowed to an interface so tests can substitute a fake.
type transcriptClient interface {
	GetFormattedTranscripts(videoID string, languages []string, preserveFormatting bool) (string, error)
}

// Provider implements transcript.Provider using the collaborator library's
// plain-text formatter, so segment joining happens inside the library.
type Provider struct {
	cfg    Config
	client transcriptClient
	probe  *http.Client
}

// NewProvider creates a new YouTube transcript provider.
func NewProvider(cfg Config) *Provider {
	if cfg.ProbeTimeout == 0 {
		cfg.ProbeTimeout = defaultProbeTimeout
	}

	formatter := yt_transcript_formatters.NewTextFormatter(
		yt_transcript_formatters.WithTimestamps(false),
		yt_transcript_formatters.WithLanguageCode(false),
	)

	return &Provider{
		cfg:    cfg,
		client: yt_transcript.NewClient(yt_transcript.WithFormatter(formatter)),
		probe: &http.Client{
			Timeout: cfg.ProbeTimeout,
		},
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable checks that YouTube is reachable from this process.
func (p *Provider) IsAvailable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, probeURL, nil)
	if err != nil {
		return false
	}
	resp, err := p.probe.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode < http.StatusInternalServerError
}

// Fetch retrieves the transcript text for a video. The collaborator API is
// not context-aware, so the call runs in a goroutine and the context deadline
// is enforced here.
func (p *Provider) Fetch(ctx context.Context, req transcript.FetchRequest) (string, error) {
	type result struct {
		text string
		err  error
	}
	ch := make(chan result, 1)

	go func() {
		text, err := p.client.GetFormattedTranscripts(req.VideoID, req.Languages, p.cfg.PreserveFormatting)
		ch <- result{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if r.err != nil {
			return "", fmt.Errorf("fetch transcript for %s: %w", req.VideoID, r.err)
		}
		return r.text, nil
	}
}
