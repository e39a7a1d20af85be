// Package sections detects which expected resume sections are present in resume text.
package sections

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-checker/internal/types"
)

// Section names
const (
	Contact    = "contact"
	Experience = "experience"
	Education  = "education"
	Skills     = "skills"
	Projects   = "projects"
)

// Probes are applied to lowercased text; each one is independent of the others.
var (
	contactRe    = regexp.MustCompile(`email|phone|address|linkedin|github|contact`)
	experienceRe = regexp.MustCompile(`experience|work history|employment|positions|professional history`)
	educationRe  = regexp.MustCompile(`education|degree|university|college|school|academic`)
	skillsRe     = regexp.MustCompile(`skills|technologies|proficiencies|expertise|technical stack`)
	projectsRe   = regexp.MustCompile(`projects|portfolio|personal projects`)
)

// Detect reports which of the five expected sections appear anywhere in text, case-insensitively.
func Detect(text string) types.SectionFlags {
	lower := strings.ToLower(text)
	return types.SectionFlags{
		HasContact:    contactRe.MatchString(lower),
		HasExperience: experienceRe.MatchString(lower),
		HasEducation:  educationRe.MatchString(lower),
		HasSkills:     skillsRe.MatchString(lower),
		HasProjects:   projectsRe.MatchString(lower),
	}
}

// Missing returns the names of sections not present in flags.
func Missing(flags types.SectionFlags) []string {
	var missing []string
	if !flags.HasContact {
		missing = append(missing, Contact)
	}
	if !flags.HasExperience {
		missing = append(missing, Experience)
	}
	if !flags.HasEducation {
		missing = append(missing, Education)
	}
	if !flags.HasSkills {
		missing = append(missing, Skills)
	}
	if !flags.HasProjects {
		missing = append(missing, Projects)
	}
	return missing
}
