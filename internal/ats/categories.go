package ats

// Category classifies a job keyword for weighting purposes.
type Category string

const (
	CategoryTechnical     Category = "technical"
	CategoryTool          Category = "tool"
	CategorySoftSkill     Category = "softSkill"
	CategoryCertification Category = "certification"
	CategoryIndustry      Category = "industry"
	CategoryGeneric       Category = "generic"
)

// Point weight per category. Technical terms carry the most signal for
// applicant tracking systems; generic words the least.
var categoryWeights = map[Category]int{
	CategoryTechnical:     3,
	CategoryTool:          2,
	CategoryCertification: 2,
	CategorySoftSkill:     1,
	CategoryIndustry:      1,
	CategoryGeneric:       1,
}

// Weight returns the matcher point weight for a category.
func Weight(c Category) int {
	if w, ok := categoryWeights[c]; ok {
		return w
	}
	return categoryWeights[CategoryGeneric]
}

// The category dictionaries are plain data so they can be extended without
// touching the scoring algorithm. All entries are lowercase; multi-word
// entries are matched as whole terms against raw text.

var technicalTerms = []string{
	"python", "javascript", "typescript", "java", "c++", "c#", "golang",
	"react", "node", "angular", "vue",
	"aws", "azure", "gcp",
	"docker", "kubernetes",
	"sql", "nosql", "postgresql", "mysql", "mongodb", "redis",
	"api", "rest", "graphql", "grpc",
	"ci/cd", "git", "github", "gitlab", "jenkins", "terraform", "ansible",
	"linux", "unix",
	"agile", "scrum", "kanban", "devops", "microservices",
	"machine learning", "data science", "blockchain",
}

var toolTerms = []string{
	"jira", "confluence", "slack", "teams",
	"figma", "sketch", "adobe", "photoshop",
	"excel", "powerpoint", "word",
	"tableau", "power bi", "looker",
	"salesforce", "hubspot", "sap", "erp", "crm", "quickbooks",
	"asana", "trello", "notion",
}

var certificationTerms = []string{
	"pmp", "prince2",
	"aws certified", "azure certified", "google cloud certified",
	"scrum master", "csm", "psm",
	"six sigma", "lean",
	"cpa", "cfa", "mba", "phd",
	"cissp", "cism", "comptia", "itil",
}

var softSkillTerms = []string{
	"leadership", "communication", "teamwork",
	"problem solving", "problem-solving",
	"analytical", "creative", "adaptable", "collaborative", "strategic",
	"organizational",
	"time management", "critical thinking", "conflict resolution",
	"negotiation", "mentoring",
}

var industryTerms = []string{
	"saas", "paas", "fintech", "ecommerce", "e-commerce",
	"b2b", "b2c", "marketplace", "startup", "enterprise",
	"manufacturing", "retail", "healthcare", "finance", "insurance",
	"telecommunications", "energy", "logistics", "consulting",
}

var (
	technicalSet     = toSet(technicalTerms)
	toolSet          = toSet(toolTerms)
	certificationSet = toSet(certificationTerms)
	softSkillSet     = toSet(softSkillTerms)
	industrySet      = toSet(industryTerms)
)

func toSet(terms []string) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, term := range terms {
		set[term] = true
	}
	return set
}

// IsTechnical reports dictionary membership for the technical category.
func IsTechnical(keyword string) bool { return technicalSet[keyword] }

// IsTool reports dictionary membership for the tool category.
func IsTool(keyword string) bool { return toolSet[keyword] }

// IsCertification reports dictionary membership for the certification category.
func IsCertification(keyword string) bool { return certificationSet[keyword] }

// IsSoftSkill reports dictionary membership for the soft-skill category.
func IsSoftSkill(keyword string) bool { return softSkillSet[keyword] }

// IsIndustry reports dictionary membership for the industry category.
func IsIndustry(keyword string) bool { return industrySet[keyword] }

// Classify returns exactly one category for a lowercase keyword. The
// dictionaries are checked in a fixed priority order so a term present in
// several is classified by the first match. Anything unmatched is generic.
func Classify(keyword string) Category {
	switch {
	case IsTechnical(keyword):
		return CategoryTechnical
	case IsTool(keyword):
		return CategoryTool
	case IsCertification(keyword):
		return CategoryCertification
	case IsSoftSkill(keyword):
		return CategorySoftSkill
	case IsIndustry(keyword):
		return CategoryIndustry
	default:
		return CategoryGeneric
	}
}

// domainTerms returns the technical and tool dictionaries, in order. These
// are the terms the extractor force-includes even at frequency one: a named
// language or platform is valuable signal even when a posting mentions it
// just once, unlike generic words which need repetition to matter.
func domainTerms() []string {
	terms := make([]string, 0, len(technicalTerms)+len(toolTerms))
	terms = append(terms, technicalTerms...)
	terms = append(terms, toolTerms...)
	return terms
}
