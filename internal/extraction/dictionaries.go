package extraction

// dictionary pairs a canonical-term list with the base score its matches earn.
// Compound phrases outscore single tools so that, after subset suppression,
// the phrase survives over its components.
type dictionary struct {
	name      string
	baseScore float64
	terms     []string
}

var dictionaries = []dictionary{
	{
		name:      "compound_phrases",
		baseScore: 12,
		terms: []string{
			"machine learning", "deep learning", "natural language processing",
			"data engineering", "data science", "data analysis",
			"distributed systems", "microservices architecture",
			"cloud infrastructure", "cloud computing",
			"continuous integration", "continuous delivery", "ci/cd",
			"test driven development", "infrastructure as code",
			"rest api", "restful api", "api design",
			"project management", "product management",
			"agile methodologies", "scrum master",
			"customer relationship management", "supply chain management",
			"business intelligence", "digital marketing",
			"search engine optimization", "financial modeling",
			"quality assurance", "technical writing",
			"full stack development", "front end development", "back end development",
			"version control", "site reliability engineering",
			"object oriented programming",
		},
	},
	{
		name:      "tools",
		baseScore: 10,
		terms: []string{
			"kubernetes", "docker", "terraform", "ansible", "jenkins",
			"git", "github", "gitlab", "jira", "confluence",
			"postgresql", "mysql", "mongodb", "redis", "elasticsearch",
			"kafka", "rabbitmq", "spark", "hadoop", "airflow",
			"snowflake", "databricks", "tableau", "power bi", "looker",
			"excel", "salesforce", "sap", "hubspot", "figma",
			"aws", "azure", "gcp", "grafana", "prometheus", "datadog",
			"react", "angular", "vue", "node.js", "django", "flask",
			"spring boot", "rails", "graphql", "grpc",
		},
	},
	{
		name:      "tech_skills",
		baseScore: 9,
		terms: []string{
			"python", "java", "javascript", "typescript", "golang", "go",
			"c++", "c#", "ruby", "php", "scala", "rust", "kotlin", "swift",
			"sql", "nosql", "html", "css", "bash", "linux",
			"etl", "devops", "mlops", "api", "saas", "oauth",
			"security", "networking", "automation", "analytics",
			"accounting", "auditing", "forecasting", "budgeting",
			"copywriting", "recruiting", "onboarding", "procurement",
		},
	},
	{
		name:      "certifications",
		baseScore: 11,
		terms: []string{
			"pmp", "cpa", "cfa", "cisa", "cissp", "ccna", "cspo",
			"aws certified", "azure certified", "comptia security+",
			"certified scrum master", "six sigma", "itil",
			"series 7", "series 63", "shrm-cp", "phr",
		},
	},
	{
		name:      "soft_skills",
		baseScore: 5,
		terms: []string{
			"communication", "leadership", "collaboration", "teamwork",
			"problem solving", "critical thinking", "time management",
			"adaptability", "attention to detail", "stakeholder management",
			"mentoring", "negotiation", "presentation", "cross-functional",
		},
	},
}

// canonicalForms maps normalized terms to their display capitalization.
// Anything absent falls back to title case.
var canonicalForms = map[string]string{
	"aws":           "AWS",
	"gcp":           "GCP",
	"azure":         "Azure",
	"sql":           "SQL",
	"nosql":         "NoSQL",
	"html":          "HTML",
	"css":           "CSS",
	"api":           "API",
	"rest api":      "REST API",
	"restful api":   "RESTful API",
	"api design":    "API Design",
	"ci/cd":         "CI/CD",
	"etl":           "ETL",
	"saas":          "SaaS",
	"oauth":         "OAuth",
	"devops":        "DevOps",
	"mlops":         "MLOps",
	"php":           "PHP",
	"pmp":           "PMP",
	"cpa":           "CPA",
	"cfa":           "CFA",
	"cisa":          "CISA",
	"cissp":         "CISSP",
	"ccna":          "CCNA",
	"cspo":          "CSPO",
	"itil":          "ITIL",
	"shrm-cp":       "SHRM-CP",
	"phr":           "PHR",
	"sap":           "SAP",
	"ibm":           "IBM",
	"node.js":       "Node.js",
	"vue":           "Vue",
	"react":         "React",
	"javascript":    "JavaScript",
	"typescript":    "TypeScript",
	"golang":        "Go",
	"c++":           "C++",
	"c#":            "C#",
	"power bi":      "Power BI",
	"github":        "GitHub",
	"gitlab":        "GitLab",
	"postgresql":    "PostgreSQL",
	"mysql":         "MySQL",
	"mongodb":       "MongoDB",
	"grpc":          "gRPC",
	"graphql":       "GraphQL",
	"hubspot":       "HubSpot",
	"aws certified": "AWS Certified",
	"comptia security+": "CompTIA Security+",
}

// requirementIndicators mark the start of a requirement zone: any keyword
// first seen within requirementZoneWidth characters after one of these
// phrases gets a score boost.
var requirementIndicators = []string{
	"required",
	"requirements",
	"must have",
	"must-have",
	"you must",
	"we require",
	"minimum qualifications",
	"qualifications",
	"experience with",
	"experience in",
	"proficiency in",
	"proficient in",
	"strong knowledge of",
	"expertise in",
}
