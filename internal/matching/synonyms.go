package matching

// synonymTable maps normalized keywords to spellings that count as the same
// skill on a resume. Bidirectionality is handled at lookup time.
var synonymTable = map[string][]string{
	"golang":           {"go"},
	"javascript":       {"js", "ecmascript"},
	"typescript":       {"ts"},
	"kubernetes":       {"k8s"},
	"postgresql":       {"postgres"},
	"amazon web services": {"aws"},
	"google cloud":     {"gcp", "google cloud platform"},
	"microsoft azure":  {"azure"},
	"node.js":          {"nodejs", "node js", "node"},
	"react":            {"react.js", "reactjs"},
	"vue":              {"vue.js", "vuejs"},
	"ci/cd":            {"continuous integration", "continuous delivery", "cicd"},
	"machine learning": {"ml"},
	"artificial intelligence": {"ai"},
	"natural language processing": {"nlp"},
	"business intelligence":       {"bi"},
	"search engine optimization":  {"seo"},
	"customer relationship management": {"crm"},
	"quality assurance":   {"qa"},
	"user experience":     {"ux"},
	"user interface":      {"ui"},
	"infrastructure as code": {"iac"},
	"test driven development": {"tdd"},
	"object oriented programming": {"oop", "object-oriented programming"},
	"site reliability engineering": {"sre"},
	"project management":  {"pm"},
	"communication":       {"communicating", "communicator"},
	"leadership":          {"leading teams", "led a team", "team lead"},
	"problem solving":     {"problem-solving", "problem solver"},
}

// reverse index built once at init so synonym lookup works both directions
var reverseSynonyms = func() map[string][]string {
	rev := map[string][]string{}
	for canonical, syns := range synonymTable {
		for _, s := range syns {
			rev[s] = append(rev[s], canonical)
		}
	}
	return rev
}()

// synonymsFor returns every alternative spelling for a normalized term.
func synonymsFor(term string) []string {
	var out []string
	out = append(out, synonymTable[term]...)
	out = append(out, reverseSynonyms[term]...)
	return out
}
