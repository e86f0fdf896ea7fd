package ingestion

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the posting could not be fetched
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when no text could be pulled
	// from the fetched HTML
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// JobPosting is a fetched and cleaned job posting.
type JobPosting struct {
	URL      string
	Platform fetch.Platform
	Text     string
}

// JobFromURL fetches a job posting, strips board chrome using
// platform-specific selectors, and returns the cleaned text.
func JobFromURL(ctx context.Context, urlStr string, log *zap.Logger) (*JobPosting, error) {
	if log == nil {
		log = zap.NewNop()
	}

	platform := fetch.DetectPlatform(urlStr)
	log.Debug("fetching job posting",
		zap.String("url", urlStr),
		zap.String("platform", string(platform)))

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	text, err := fetch.ExtractPostingText(result.HTML,
		fetch.ContentSelectors(platform),
		fetch.NoiseSelectors(platform)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: page yielded no text content", ErrContentExtractionFailed)
	}
	log.Debug("job posting extracted", zap.Int("chars", len(cleaned)))

	return &JobPosting{
		URL:      urlStr,
		Platform: platform,
		Text:     cleaned,
	}, nil
}
