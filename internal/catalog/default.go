package catalog

import "github.com/jonathan/ats-checker/internal/types"

func skill(key, name string, category types.Category, weight int, synonyms ...string) types.SkillDescriptor {
	if synonyms == nil {
		synonyms = []string{}
	}
	return types.SkillDescriptor{
		Key:         key,
		DisplayName: name,
		Category:    category,
		Synonyms:    synonyms,
		Weight:      weight,
	}
}

// DefaultEntries returns the built-in skill vocabulary in declaration order.
// Declaration order is the tie-break order for lookups.
func DefaultEntries() []types.SkillDescriptor {
	return []types.SkillDescriptor{
		// Languages
		skill("javascript", "JavaScript", types.CategoryLanguages, 3, "js", "es6", "es2015", "ecmascript"),
		skill("typescript", "TypeScript", types.CategoryLanguages, 3, "ts"),
		skill("python", "Python", types.CategoryLanguages, 3, "py"),
		skill("java", "Java", types.CategoryLanguages, 3),
		skill("c#", "C#", types.CategoryLanguages, 2, "csharp", ".net"),
		skill("c++", "C++", types.CategoryLanguages, 2, "cpp"),
		skill("go", "Go", types.CategoryLanguages, 2, "golang"),
		skill("rust", "Rust", types.CategoryLanguages, 2),
		skill("php", "PHP", types.CategoryLanguages, 2),
		skill("ruby", "Ruby", types.CategoryLanguages, 2),
		skill("swift", "Swift", types.CategoryLanguages, 2),
		skill("kotlin", "Kotlin", types.CategoryLanguages, 2),
		skill("sql", "SQL", types.CategoryLanguages, 3, "structured query language"),
		skill("html", "HTML", types.CategoryFrontend, 2, "html5"),
		skill("css", "CSS", types.CategoryFrontend, 2, "css3"),

		// Frontend
		skill("react", "React", types.CategoryFrontend, 3, "reactjs", "react.js"),
		skill("vue", "Vue.js", types.CategoryFrontend, 2, "vuejs", "vue"),
		skill("angular", "Angular", types.CategoryFrontend, 2, "angularjs"),
		skill("next.js", "Next.js", types.CategoryFrontend, 3, "nextjs"),
		skill("redux", "Redux", types.CategoryFrontend, 2),
		skill("tailwind", "Tailwind CSS", types.CategoryFrontend, 2, "tailwindcss"),
		skill("bootstrap", "Bootstrap", types.CategoryFrontend, 1),
		skill("sass", "Sass", types.CategoryFrontend, 1, "scss"),
		skill("material ui", "Material UI", types.CategoryFrontend, 1, "mui"),

		// Backend
		skill("node.js", "Node.js", types.CategoryBackend, 3, "node", "nodejs"),
		skill("express", "Express.js", types.CategoryBackend, 2, "expressjs"),
		skill("django", "Django", types.CategoryBackend, 2),
		skill("flask", "Flask", types.CategoryBackend, 2),
		skill("spring", "Spring Boot", types.CategoryBackend, 3, "spring boot", "springboot"),
		skill("graphql", "GraphQL", types.CategoryBackend, 2, "gql"),
		skill("rest api", "REST API", types.CategoryBackend, 2, "restful", "rest"),

		// Database
		skill("postgresql", "PostgreSQL", types.CategoryDatabase, 3, "postgres"),
		skill("mysql", "MySQL", types.CategoryDatabase, 2),
		skill("mongodb", "MongoDB", types.CategoryDatabase, 2, "mongo"),
		skill("redis", "Redis", types.CategoryDatabase, 2),
		skill("firebase", "Firebase", types.CategoryDatabase, 2, "firestore"),
		skill("supabase", "Supabase", types.CategoryDatabase, 2),
		skill("elasticsearch", "Elasticsearch", types.CategoryDatabase, 2),

		// DevOps & cloud
		skill("aws", "AWS", types.CategoryDevOps, 3, "amazon web services"),
		skill("azure", "Azure", types.CategoryDevOps, 2),
		skill("gcp", "Google Cloud", types.CategoryDevOps, 2, "google cloud platform"),
		skill("docker", "Docker", types.CategoryDevOps, 3),
		skill("kubernetes", "Kubernetes", types.CategoryDevOps, 3, "k8s"),
		skill("jenkins", "Jenkins", types.CategoryDevOps, 2),
		skill("github actions", "GitHub Actions", types.CategoryDevOps, 2, "gh actions"),
		skill("git", "Git", types.CategoryTools, 3),
		skill("linux", "Linux", types.CategoryDevOps, 2),
		skill("ci/cd", "CI/CD", types.CategoryDevOps, 2, "continuous integration", "continuous deployment"),

		// Data science & AI
		skill("machine learning", "Machine Learning", types.CategoryDataScience, 3, "ml"),
		skill("deep learning", "Deep Learning", types.CategoryDataScience, 3, "dl"),
		skill("tensorflow", "TensorFlow", types.CategoryDataScience, 2, "tf"),
		skill("pytorch", "PyTorch", types.CategoryDataScience, 2),
		skill("pandas", "Pandas", types.CategoryDataScience, 2),
		skill("numpy", "NumPy", types.CategoryDataScience, 2),
		skill("scikit-learn", "Scikit-Learn", types.CategoryDataScience, 2, "sklearn"),
		skill("nlp", "NLP", types.CategoryDataScience, 2, "natural language processing"),

		// Soft skills
		skill("leadership", "Leadership", types.CategorySoft, 2, "leading teams", "team lead"),
		skill("communication", "Communication", types.CategorySoft, 2, "written communication", "verbal communication"),
		skill("problem solving", "Problem Solving", types.CategorySoft, 2, "troubleshooting"),
		skill("agile", "Agile", types.CategorySoft, 2, "scrum", "kanban"),
		skill("mentoring", "Mentoring", types.CategorySoft, 2, "mentored"),
	}
}
