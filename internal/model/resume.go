package model

// ExperienceLevel buckets a candidate by years of experience.
type ExperienceLevel string

const (
	LevelEntry  ExperienceLevel = "entry"
	LevelMid    ExperienceLevel = "mid"
	LevelSenior ExperienceLevel = "senior"
)

// ResumeProfile holds the structured fields extracted from a resume.
type ResumeProfile struct {
	Skills            string `json:"skills"`
	Experience        string `json:"experience"`
	Education         string `json:"education"`
	Certifications    string `json:"certifications"`
	YearsOfExperience int    `json:"years_of_experience"`
	NumCertifications int    `json:"num_certifications"`
}

// Level derives the experience bucket: <2 years entry, <5 mid, else senior.
func (p *ResumeProfile) Level() ExperienceLevel {
	switch {
	case p.YearsOfExperience < 2:
		return LevelEntry
	case p.YearsOfExperience < 5:
		return LevelMid
	default:
		return LevelSenior
	}
}
