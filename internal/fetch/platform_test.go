package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://boards.greenhouse.io/acme/jobs/123", PlatformGreenhouse},
		{"https://job-boards.greenhouse.io/acme/jobs/456", PlatformGreenhouse},
		{"https://jobs.lever.co/acme/abc-def", PlatformLever},
		{"https://acme.wd5.myworkdayjobs.com/en-US/careers/job/123", PlatformWorkday},
		{"https://careers.workday.com/job/123", PlatformWorkday},
		{"https://example.com/careers/engineer", PlatformUnknown},
		{"://bad", PlatformUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DetectPlatform(tt.url), "url: %s", tt.url)
	}
}

func TestContentSelectorsPerPlatform(t *testing.T) {
	assert.Contains(t, ContentSelectors(PlatformGreenhouse), ".job__description")
	assert.Contains(t, ContentSelectors(PlatformLever), ".posting-description")
	assert.Contains(t, ContentSelectors(PlatformWorkday), "[data-automation-id='jobDescription']")
	assert.Contains(t, ContentSelectors(PlatformUnknown), ".job-description")
}

func TestNoiseSelectorsIncludeCommonNoise(t *testing.T) {
	for _, platform := range []Platform{PlatformGreenhouse, PlatformLever, PlatformWorkday, PlatformUnknown} {
		noise := NoiseSelectors(platform)
		assert.Contains(t, noise, "form", "platform: %s", platform)
		assert.Contains(t, noise, ".eeo-statement", "platform: %s", platform)
	}

	assert.Contains(t, NoiseSelectors(PlatformGreenhouse), ".post-apply")
	assert.Contains(t, NoiseSelectors(PlatformLever), ".posting-apply")
}
