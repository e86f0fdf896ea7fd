package fetch

import (
	"net/url"
	"strings"
)

// Platform is a recognized applicant-tracking-system job board.
type Platform string

const (
	// PlatformGreenhouse is the Greenhouse ATS
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever is the Lever ATS
	PlatformLever Platform = "lever"
	// PlatformWorkday is the Workday ATS
	PlatformWorkday Platform = "workday"
	// PlatformUnknown is an unrecognized board
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the job board from a posting URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	switch {
	case strings.Contains(host, "greenhouse.io"):
		return PlatformGreenhouse
	case strings.Contains(host, "lever.co"):
		return PlatformLever
	case strings.Contains(host, "workday.com"), strings.Contains(host, "myworkdayjobs.com"):
		return PlatformWorkday
	}
	return PlatformUnknown
}

// genericPostingSelectors cover job boards with no platform-specific markup.
var genericPostingSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// ContentSelectors returns the content selectors for a platform, most
// specific first.
func ContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformGreenhouse:
		return []string{
			".job__description.body",
			".job__description",
			".job-description__content",
			"#content",
			".job-post-container",
		}
	case PlatformLever:
		return []string{
			".posting-page",
			".section-wrapper.page-full-width",
			".posting-description",
			".content",
		}
	case PlatformWorkday:
		return []string{
			"[data-automation-id='jobDescription']",
			".WDXK",
			".gwt-HTML",
			".job-description",
		}
	default:
		return genericPostingSelectors
	}
}

// NoiseSelectors returns elements to strip before text extraction:
// application forms, EEO boilerplate, share widgets, consent banners.
func NoiseSelectors(platform Platform) []string {
	common := []string{
		"form",
		"#application-form",
		".application-form",
		".application--container",
		".apply-button-container",
		"[data-testid='application-form']",

		".voluntary-disclosure",
		".eeo-statement",
		".eeo-section",
		"[data-testid='eeo']",
		".legal-disclosure",
		".self-identification",

		".social-share",
		".share-buttons",
		".social-links",

		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",
	}

	switch platform {
	case PlatformGreenhouse:
		return append(common,
			".application--wrapper",
			".voluntary-self-id",
			".voluntary-self-id-wrapper",
			"#usa_self_id_section",
			".post-apply",
		)
	case PlatformLever:
		return append(common,
			".apply-section",
			".lever-application-form",
			".posting-apply",
		)
	case PlatformWorkday:
		return append(common,
			"[data-automation-id='applyButton']",
			".application-section",
			".WDAF",
		)
	default:
		return common
	}
}
