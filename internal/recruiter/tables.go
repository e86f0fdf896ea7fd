package recruiter

import (
	"sort"

	"github.com/jonathan/resume-analyzer/internal/textnorm"
)

// titleSynonyms maps canonical target titles to spellings recruiters search
// for interchangeably.
var titleSynonyms = map[string][]string{
	"software engineer":  {"software developer", "swe", "programmer", "application developer"},
	"backend engineer":   {"back end engineer", "back-end engineer", "backend developer", "server-side engineer"},
	"frontend engineer":  {"front end engineer", "front-end engineer", "frontend developer", "ui engineer"},
	"full stack engineer": {"full-stack engineer", "full stack developer", "fullstack engineer"},
	"data scientist":     {"machine learning scientist", "ml scientist"},
	"data engineer":      {"big data engineer", "etl developer"},
	"data analyst":       {"business analyst", "analytics specialist", "bi analyst"},
	"devops engineer":    {"site reliability engineer", "sre", "platform engineer", "infrastructure engineer"},
	"product manager":    {"product owner", "pm"},
	"project manager":    {"program manager", "delivery manager"},
	"engineering manager": {"software engineering manager", "development manager"},
	"marketing manager":  {"digital marketing manager", "growth manager"},
	"financial analyst":  {"finance analyst", "fp&a analyst"},
	"accountant":         {"staff accountant", "senior accountant", "cpa"},
	"account manager":    {"client manager", "customer success manager", "account executive"},
	"registered nurse":   {"rn", "staff nurse"},
	"graphic designer":   {"visual designer", "brand designer"},
	"ux designer":        {"user experience designer", "product designer", "ui/ux designer"},
	"recruiter":          {"talent acquisition specialist", "technical recruiter"},
	"sales representative": {"sales rep", "sales executive", "account representative"},
}

// canonicalTitles is the deterministic scan order over titleSynonyms
var canonicalTitles = func() []string {
	titles := make([]string, 0, len(titleSynonyms))
	for t := range titleSynonyms {
		titles = append(titles, t)
	}
	sort.Strings(titles)
	return titles
}()

// seniorityLadder orders seniority tokens from junior to executive. Index
// distance drives the 0/5/10 proximity bonus.
var seniorityLadder = []string{
	"intern",
	"junior",
	"associate",
	"mid-level",
	"senior",
	"staff",
	"principal",
	"lead",
	"manager",
	"director",
	"vp",
}

// industryTermBags map an industry to the vocabulary recruiters filter on.
// A JD needs at least two hits in a bag before that industry counts as
// dominant.
var industryTermBags = map[string][]string{
	"technology": {
		"saas", "api", "cloud", "software", "agile", "devops",
		"backend", "frontend", "microservices", "deployment",
	},
	"finance": {
		"portfolio", "trading", "compliance", "audit", "banking",
		"securities", "underwriting", "ledger", "gaap", "fintech",
	},
	"healthcare": {
		"patient", "clinical", "hipaa", "ehr", "medical",
		"nursing", "pharmacy", "diagnosis", "provider", "telehealth",
	},
	"marketing": {
		"campaign", "seo", "branding", "conversion", "engagement",
		"analytics", "copywriting", "social media", "funnel", "crm",
	},
	"manufacturing": {
		"assembly", "lean", "six sigma", "quality control", "supply chain",
		"fabrication", "logistics", "inventory", "osha", "production line",
	},
	"education": {
		"curriculum", "instruction", "classroom", "pedagogy", "assessment",
		"students", "learning outcomes", "accreditation", "tutoring", "lesson",
	},
	"retail": {
		"merchandising", "point of sale", "inventory", "e-commerce", "storefront",
		"customer service", "loss prevention", "planogram", "omnichannel", "sku",
	},
	"legal": {
		"litigation", "paralegal", "contracts", "compliance", "counsel",
		"discovery", "deposition", "regulatory", "intellectual property", "briefs",
	},
}

// DominantIndustry classifies normalized job text by counting term-bag hits.
// Returns false when no industry reaches the two-hit threshold; ties break
// to the lexicographically smallest industry for determinism.
func DominantIndustry(jobNorm string) (string, bool) {
	dominant := ""
	dominantHits := 0
	for industry, terms := range industryTermBags {
		hits := 0
		for _, term := range terms {
			if textnorm.ContainsWord(jobNorm, term) {
				hits++
			}
		}
		if hits > dominantHits || (hits == dominantHits && hits > 0 && industry < dominant) {
			dominant = industry
			dominantHits = hits
		}
	}
	if dominantHits < dominantIndustryMinHits {
		return "", false
	}
	return dominant, true
}

// IndustryTerms returns the recruiter-search vocabulary for an industry.
func IndustryTerms(industry string) []string {
	return industryTermBags[industry]
}

// componentSuggestions keys a templated improvement suggestion to whichever
// component scored lowest.
var componentSuggestions = map[string]string{
	"keyword_match":   "Mirror more of the posting's critical keywords in your bullet points so recruiter keyword searches surface your resume.",
	"title_alignment": "Use the posting's exact job title (or a standard synonym) in your headline and most recent role.",
	"skills_coverage": "List concrete tools and skills verbatim in a dedicated skills section; recruiters search for exact terms.",
	"industry_terms":  "Weave in the vocabulary of this industry so you appear in industry-filtered searches.",
}
