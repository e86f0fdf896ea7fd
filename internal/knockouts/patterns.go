package knockouts

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// labelFunc turns a regex match (full match + captures) into a human label.
// Paraphrased postings that generate the same label collapse into one item.
type labelFunc func(match []string) string

func staticLabel(label string) labelFunc {
	return func([]string) string { return label }
}

// pattern is one disqualifier-style phrasing to test against job text
type pattern struct {
	re    *regexp.Regexp
	label labelFunc
}

// patternGroup collects every pattern for one knockout category
type patternGroup struct {
	category types.KnockoutCategory
	patterns []pattern
}

var patternGroups = []patternGroup{
	{
		category: types.KnockoutAuthorization,
		patterns: []pattern{
			{
				re:    regexp.MustCompile(`(?i)\b(?:must be|applicants? must be|only)\s+(?:a\s+)?(?:u\.?s\.?|united states)\s+citizens?\b`),
				label: staticLabel("U.S. citizenship required"),
			},
			{
				re:    regexp.MustCompile(`(?i)\b(?:must be\s+)?(?:legally\s+)?authorized to work\b`),
				label: staticLabel("Work authorization required"),
			},
			{
				re:    regexp.MustCompile(`(?i)\b(?:no|without|not able to provide|unable to (?:provide|offer))\s+(?:visa\s+)?sponsorship\b|\bsponsorship (?:is )?not available\b`),
				label: staticLabel("No visa sponsorship offered"),
			},
			{
				re:    regexp.MustCompile(`(?i)\b(?:active\s+)?(?:top secret|ts/sci|secret|security)\s+clearance\b`),
				label: staticLabel("Security clearance required"),
			},
			{
				re:    regexp.MustCompile(`(?i)\bgreen card (?:holders? )?(?:required|only)\b`),
				label: staticLabel("Permanent residency required"),
			},
		},
	},
	{
		category: types.KnockoutLocation,
		patterns: []pattern{
			{
				re: regexp.MustCompile(`(?i)\bmust (?:live|reside|be located|be based) (?:in|within|near)\s+([A-Za-z][A-Za-z .,-]{2,40}?)(?:[.;\n]|$)`),
				label: func(m []string) string {
					return fmt.Sprintf("Must be located in %s", strings.TrimSpace(strings.Trim(m[1], " .,")))
				},
			},
			{
				re:    regexp.MustCompile(`(?i)\b(?:fully\s+)?on-?site\b`),
				label: staticLabel("On-site work required"),
			},
			{
				re:    regexp.MustCompile(`(?i)\bhybrid\b`),
				label: staticLabel("Hybrid schedule (partial on-site)"),
			},
			{
				re:    regexp.MustCompile(`(?i)\b(?:willing(?:ness)? to\s+)?relocat(?:e|ion)\b`),
				label: staticLabel("Relocation expected"),
			},
		},
	},
	{
		category: types.KnockoutSchedule,
		patterns: []pattern{
			{
				re: regexp.MustCompile(`(?i)\btravel(?:ing)?\s*(?:up to\s*|of\s*)?(\d{1,3})\s*%`),
				label: func(m []string) string {
					return fmt.Sprintf("Travel up to %s%% of the time", m[1])
				},
			},
			{
				re:    regexp.MustCompile(`(?i)\b(?:nights?|weekends?|evenings?|holidays?) (?:and (?:nights?|weekends?|evenings?|holidays?) )?(?:work |shifts? )?(?:are |is |will be )?required\b`),
				label: staticLabel("Night/weekend work required"),
			},
			{
				re:    regexp.MustCompile(`(?i)\bon-?call\b`),
				label: staticLabel("On-call rotation"),
			},
			{
				re:    regexp.MustCompile(`(?i)\b(?:night|overnight|rotating|swing)\s+shifts?\b|\bshift work\b`),
				label: staticLabel("Shift work required"),
			},
		},
	},
	{
		category: types.KnockoutPhysical,
		patterns: []pattern{
			{
				re: regexp.MustCompile(`(?i)\blift(?:ing)?\s*(?:up to\s*)?(\d{1,3})\s*(?:lbs?\.?|pounds)`),
				label: func(m []string) string {
					return fmt.Sprintf("Must lift up to %s lbs", m[1])
				},
			},
			{
				re:    regexp.MustCompile(`(?i)\bstand(?:ing)?(?: or walk(?:ing)?)? for (?:long|extended|prolonged) periods\b`),
				label: staticLabel("Prolonged standing required"),
			},
			{
				re:    regexp.MustCompile(`(?i)\bphysical(?:ly)?\s+demand(?:s|ing)\b`),
				label: staticLabel("Physically demanding role"),
			},
		},
	},
	{
		category: types.KnockoutLicense,
		patterns: []pattern{
			{
				re:    regexp.MustCompile(`(?i)\b(?:valid\s+)?driver'?s licen[sc]e\b`),
				label: staticLabel("Valid driver's license required"),
			},
			{
				re: regexp.MustCompile(`(?i)\b(CDL|RN|LPN|PE|CPA|PMP|CISSP|Series 7|Series 63)\b[ a-z]{0,20}?\b(?:licen[sc]e|certification|certified|credential)\b`),
				label: func(m []string) string {
					return fmt.Sprintf("%s license or certification required", strings.ToUpper(m[1]))
				},
			},
			{
				re: regexp.MustCompile(`(?i)\b(?:licen[sc]e|certification) (?:in|as an?)\s+([A-Za-z][A-Za-z .,-]{2,40}?)\s+(?:is )?required\b`),
				label: func(m []string) string {
					return fmt.Sprintf("License required: %s", strings.TrimSpace(m[1]))
				},
			},
		},
	},
	{
		category: types.KnockoutDegree,
		patterns: []pattern{
			{
				re: regexp.MustCompile(`(?i)\b(bachelor|master|ph\.?d|doctorate|associate)(?:'s|s)?\s*(?:degree)?\b[^.\n]{0,60}?\b(?:required|must)\b`),
				label: func(m []string) string {
					return fmt.Sprintf("%s degree required", degreeDisplay(m[1]))
				},
			},
			{
				re: regexp.MustCompile(`(?i)\brequires?\s+(?:a\s+)?(bachelor|master|ph\.?d|doctorate|associate)(?:'s|s)?\s*(?:degree)?\b`),
				label: func(m []string) string {
					return fmt.Sprintf("%s degree required", degreeDisplay(m[1]))
				},
			},
			{
				re:    regexp.MustCompile(`(?i)\bhigh school diploma\b[^.\n]{0,40}?\brequired\b`),
				label: staticLabel("High school diploma required"),
			},
		},
	},
}

// degreeDisplay renders a captured degree token as its display form.
func degreeDisplay(token string) string {
	switch strings.ToLower(strings.ReplaceAll(token, ".", "")) {
	case "phd", "doctorate":
		return "Doctoral"
	case "master", "masters":
		return "Master's"
	case "bachelor", "bachelors":
		return "Bachelor's"
	case "associate", "associates":
		return "Associate"
	default:
		return strings.Title(strings.ToLower(token)) //nolint:staticcheck // ASCII degree tokens only
	}
}
