package transcript

// TranscribeRequest is the body accepted by POST /transcribe.
type TranscribeRequest struct {
	// URL is a YouTube video URL or bare 11-character video ID.
	URL string `json:"url" validate:"required"`
	// Language is the caption language to fetch (e.g. "pt", "en").
	Language string `json:"language" validate:"required"`
}

// TranscribeResponse holds the transcript text returned to the client.
type TranscribeResponse struct {
	Transcription string `json:"transcription"`
}

// FetchRequest holds parameters for a provider fetch.
type FetchRequest struct {
	// VideoID is the 11-character YouTube video ID.
	VideoID string `json:"video_id"`
	// Languages is the ordered language preference chain.
	Languages []string `json:"languages"`
}
