package usecase

import (
	"regexp"
	"strings"
)

// skillDictionary lists the technical and soft skills recognised by the
// heuristic paths. Matching is case-insensitive on word boundaries.
var skillDictionary = []string{
	"Go", "Golang", "Python", "Java", "JavaScript", "TypeScript", "Ruby", "PHP", "C#", "C++", "Rust", "Kotlin", "Swift", "Scala",
	"React", "Angular", "Vue", "Next.js", "Node.js", "Django", "Flask", "Rails", "Spring", "Laravel", ".NET",
	"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch", "Kafka", "RabbitMQ",
	"AWS", "Azure", "GCP", "Google Cloud", "Docker", "Kubernetes", "Terraform", "Linux", "CI/CD", "Git",
	"REST", "GraphQL", "gRPC", "Microservices",
	"Machine Learning", "Deep Learning", "NLP", "LLM", "TensorFlow", "PyTorch", "Data Analysis", "Pandas",
	"Excel", "Power BI", "Tableau", "Figma", "Photoshop", "SEO", "Salesforce", "SAP", "Jira",
	"Agile", "Scrum", "Project Management", "Product Management",
	"Communication", "Leadership", "Teamwork", "Problem Solving", "Negotiation", "Customer Service", "Mentoring",
}

var traitDictionary = []string{
	"self-motivated", "detail-oriented", "proactive", "collaborative", "curious", "adaptable",
	"analytical", "creative", "organized", "independent", "passionate", "ownership",
}

var valueDictionary = []string{
	"innovation", "diversity", "inclusion", "integrity", "transparency", "customer focus",
	"quality", "sustainability", "growth", "respect", "excellence",
}

var industryKeywords = []struct {
	industry     string
	businessType string
	keywords     []string
}{
	{"Fintech", "Financial services", []string{"fintech", "payment", "banking", "bank", "lending", "insurance", "trading"}},
	{"Healthcare", "Healthcare provider", []string{"health", "medical", "clinic", "hospital", "patient", "pharma"}},
	{"E-commerce", "Online retail", []string{"e-commerce", "ecommerce", "marketplace", "retail", "shop"}},
	{"Education", "Education provider", []string{"education", "edtech", "learning platform", "school", "university"}},
	{"Logistics", "Logistics and supply chain", []string{"logistics", "supply chain", "shipping", "delivery", "warehouse"}},
	{"Consulting", "Professional services", []string{"consulting", "consultancy", "clients", "agency"}},
	{"Software", "Technology company", []string{"saas", "software", "platform", "cloud", "startup", "engineering"}},
}

var seniorityLevels = []struct {
	level    string
	keywords []string
}{
	{"Executive", []string{"chief", "vp ", "vice president", "head of", "director"}},
	{"Lead", []string{"lead", "principal", "staff", "architect"}},
	{"Senior", []string{"senior", "sr.", "5+ years", "6+ years", "7+ years", "8+ years"}},
	{"Mid-level", []string{"mid-level", "3+ years", "4+ years", "intermediate"}},
	{"Junior", []string{"junior", "jr.", "entry level", "entry-level", "graduate", "intern", "1+ years"}},
}

var educationKeywords = []string{"phd", "doctorate", "master", "mba", "bachelor", "degree", "diploma"}

var wordPattern = regexp.MustCompile(`[A-Za-z][A-Za-z0-9+#.\-/]*`)

// containsTerm reports whether term appears in text as a whole word,
// ignoring case.
func containsTerm(text, term string) bool {
	lowerText := strings.ToLower(text)
	lowerTerm := strings.ToLower(term)
	idx := 0
	for {
		i := strings.Index(lowerText[idx:], lowerTerm)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(lowerTerm)
		if isBoundary(lowerText, start-1) && isBoundary(lowerText, end) {
			return true
		}
		idx = start + 1
	}
}

func isBoundary(text string, i int) bool {
	if i < 0 || i >= len(text) {
		return true
	}
	c := text[i]
	return !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '+' || c == '#')
}

// findTerms returns the dictionary entries present in text, in dictionary order.
func findTerms(text string, dictionary []string) []string {
	found := []string{}
	for _, term := range dictionary {
		if containsTerm(text, term) {
			found = append(found, term)
		}
	}
	return found
}

// significantWords returns the lower-cased words longer than four characters.
func significantWords(text string) []string {
	words := []string{}
	seen := map[string]bool{}
	for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		w = strings.Trim(w, ".-/")
		if len(w) <= 4 || seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	return words
}
