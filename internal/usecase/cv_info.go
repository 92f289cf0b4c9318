package usecase

import (
	"regexp"
	"strings"

	"github.com/fadilmartias/cv-assistant/internal/model"
)

var (
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern    = regexp.MustCompile(`\+?\d[\d\s().\-]{7,}\d`)
	linkedinPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:[a-z]{2,3}\.)?linkedin\.com/in/[A-Za-z0-9_\-%]+/?`)
	namePattern     = regexp.MustCompile(`^[A-Z][a-zA-Z'\-]+(?:\s+[A-Z][a-zA-Z'\-]+){1,3}$`)

	experienceMarkers = []string{"experience", "employment", "work history", "worked at", "years of", "engineer at", "manager at", "developer at"}
	educationMarkers  = []string{"education", "university", "college", "bachelor", "master", "degree", "diploma", "school", "phd"}
	skillsMarkers     = []string{"skills", "technologies", "tech stack", "competencies", "proficient"}
)

// ExtractCVInfo detects which kinds of information a CV already contains.
// It only looks at the text: no provider call is made.
func ExtractCVInfo(text string) model.ExtractedCVInfo {
	info := model.ExtractedCVInfo{Skills: []string{}}
	if strings.TrimSpace(text) == "" {
		return info
	}

	info.PersonalInfo.Email = emailPattern.FindString(text)
	info.PersonalInfo.LinkedIn = linkedinPattern.FindString(text)
	if phone := phonePattern.FindString(text); phone != "" && !strings.Contains(info.PersonalInfo.Email, phone) {
		info.PersonalInfo.Phone = strings.TrimSpace(phone)
	}
	info.PersonalInfo.FullName = detectName(text)

	info.Skills = findTerms(text, skillDictionary)

	lower := strings.ToLower(text)
	info.HasPersonalInfo = info.PersonalInfo.Email != "" || info.PersonalInfo.Phone != ""
	info.HasExperience = containsAny(lower, experienceMarkers)
	info.HasEducation = containsAny(lower, educationMarkers)
	info.HasSkills = len(info.Skills) > 0 || containsAny(lower, skillsMarkers)
	return info
}

// detectName takes the first short line that looks like a capitalised
// personal name within the first few lines.
func detectName(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i >= 5 {
			break
		}
		line = strings.TrimSpace(line)
		if namePattern.MatchString(line) && !containsAny(strings.ToLower(line), skillsMarkers) {
			return line
		}
	}
	return ""
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
