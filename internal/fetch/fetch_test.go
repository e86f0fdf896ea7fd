package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLFetchesPosting(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><main>Senior Go Engineer</main></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Senior Go Engineer")
	assert.Contains(t, result.ContentType, "text/html")
}

func TestURLRejectsInvalidURL(t *testing.T) {
	for _, bad := range []string{"", "not-a-url", "/relative/path"} {
		_, err := URL(context.Background(), bad, nil)
		require.Error(t, err, "url: %q", bad)

		var fetchErr *Error
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, bad, fetchErr.URL)
	}
}

func TestURLReportsHTTPStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestExtractPostingTextUsesContentSelector(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs</nav>
		<div class="job-description"><p>Build Go services.</p><p>5+ years required.</p></div>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractPostingText(html, []string{".job-description"})

	require.NoError(t, err)
	assert.Contains(t, text, "Build Go services.")
	assert.Contains(t, text, "5+ years required.")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "Home | Jobs")
}

func TestExtractPostingTextRemovesNoise(t *testing.T) {
	html := `<html><body><main>
		<p>Great role.</p>
		<div class="eeo-statement">Equal opportunity employer.</div>
		<form id="application-form">Apply here</form>
	</main></body></html>`

	text, err := ExtractPostingText(html, []string{"main"}, ".eeo-statement", "form")

	require.NoError(t, err)
	assert.Contains(t, text, "Great role.")
	assert.NotContains(t, text, "Equal opportunity")
	assert.NotContains(t, text, "Apply here")
}

func TestExtractPostingTextFallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting text.</p></body></html>`

	text, err := ExtractPostingText(html, []string{".does-not-exist"})

	require.NoError(t, err)
	assert.Contains(t, text, "Plain posting text.")
}
