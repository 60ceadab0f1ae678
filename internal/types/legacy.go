package types

// Legacy resume types. Older exports used fixed section shapes with no
// schema version; they are converted to dynamic documents on load (see
// internal/migration) and never written back in this form.

// LegacyResume is the fixed-shape resume model that predates dynamic
// sections.
type LegacyResume struct {
	PersonalDetails map[string]string  `json:"personal_details"`
	Summary         string             `json:"summary,omitempty"`
	Experience      []LegacyExperience `json:"experience,omitempty"`
	Education       []LegacyEducation  `json:"education,omitempty"`
	Skills          []string           `json:"skills,omitempty"`
	Projects        []LegacyProject    `json:"projects,omitempty"`
	Template        string             `json:"template,omitempty"`
}

// LegacyExperience is one fixed-shape work entry.
type LegacyExperience struct {
	JobTitle    string `json:"job_title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// LegacyEducation is one fixed-shape education entry.
type LegacyEducation struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// LegacyProject is one fixed-shape project entry.
type LegacyProject struct {
	Name        string `json:"name"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}
