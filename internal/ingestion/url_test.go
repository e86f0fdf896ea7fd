package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/fetch"
)

func TestJobFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>
			<nav>Jobs | About</nav>
			<main>
				<h1>Senior Go Engineer</h1>
				<p>Build distributed systems in Go. 5+ years of experience required.</p>
				<div class="eeo-statement">We are an equal opportunity employer.</div>
			</main>
		</body></html>`))
	}))
	defer server.Close()

	posting, err := JobFromURL(context.Background(), server.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, server.URL, posting.URL)
	assert.Equal(t, fetch.PlatformUnknown, posting.Platform)
	assert.Contains(t, posting.Text, "Senior Go Engineer")
	assert.Contains(t, posting.Text, "5+ years of experience required.")
	assert.NotContains(t, posting.Text, "equal opportunity")
	assert.NotContains(t, posting.Text, "Jobs | About")
}

func TestJobFromURLFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := JobFromURL(context.Background(), server.URL, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTPRequestFailed)
}

func TestJobFromURLEmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><script>app()</script></body></html>`))
	}))
	defer server.Close()

	_, err := JobFromURL(context.Background(), server.URL, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrContentExtractionFailed)
}
