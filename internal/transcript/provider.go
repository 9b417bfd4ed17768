// Package transcript implements the transcript retrieval domain: video-ID
// extraction, language fallback, provider delegation, and the HTTP contract
// of the /transcribe endpoint.
package transcript

import "context"

// Provider is the interface transcript backends must implement. The actual
// caption retrieval is delegated to a third-party library behind this seam.
type Provider interface {
	// Name returns the provider's unique name.
	Name() string
	// IsAvailable checks if the provider is ready to handle requests.
	IsAvailable(ctx context.Context) bool
	// Fetch retrieves the transcript text for a video, trying the given
	// languages in order.
	Fetch(ctx context.Context, req FetchRequest) (string, error)
}
