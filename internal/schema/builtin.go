package schema

import "github.com/jonathan/resume-studio/internal/aicontext"

// BuiltinSchemas returns the section schemas the engine ships with. Custom
// schemas registered by the host application live alongside these in the
// same catalog.
func BuiltinSchemas() []*SectionSchema {
	return []*SectionSchema{
		experienceSchema(),
		educationSchema(),
		skillsSchema(),
		projectsSchema(),
		certificationsSchema(),
		languagesSchema(),
		summarySchema(),
	}
}

func experienceSchema() *SectionSchema {
	return &SectionSchema{
		ID:          "experience",
		DisplayName: "Work Experience",
		Cardinality: CardinalityList,
		AI: AIContext{
			SectionBuilder: aicontext.BuilderExperienceSection,
			ItemBuilder:    aicontext.BuilderExperienceItem,
			BatchImprove:   true,
		},
		UI: UIHints{Icon: "briefcase", AddLabel: "Add position", Sortable: true},
		Fields: []FieldSchema{
			{
				ID: "job_title", Label: "Job Title", Type: TypeShortText, Required: true,
				Rules: []ValidationRule{
					{Kind: RuleMaxLength, Param: "120", Message: "Job title must be at most 120 characters"},
				},
				AI: AIHints{
					ImproveBuilder:      aicontext.BuilderExperienceItem,
					AutocompleteBuilder: aicontext.BuilderExperienceItem,
					Autocomplete:        true,
					Priority:            80,
				},
			},
			{
				ID: "company", Label: "Company", Type: TypeShortText, Required: true,
				Rules: []ValidationRule{
					{Kind: RuleMaxLength, Param: "120", Message: "Company must be at most 120 characters"},
				},
				AI: AIHints{Priority: 70},
			},
			{ID: "location", Label: "Location", Type: TypeShortText},
			{
				ID: "start_date", Label: "Start Date", Type: TypeDate,
				Rules: []ValidationRule{
					{Kind: RuleDateFormat, Param: "2006-01", Message: "Start date must be YYYY-MM"},
				},
			},
			{
				ID: "end_date", Label: "End Date", Type: TypeDate,
				Rules: []ValidationRule{
					{Kind: RuleDateFormat, Param: "2006-01", Message: "End date must be YYYY-MM"},
				},
			},
			{
				ID: "description", Label: "Description", Type: TypeLongText, Markdown: true,
				Rules: []ValidationRule{
					{Kind: RuleMaxLength, Param: "2000", Message: "Description must be at most 2000 characters"},
				},
				AI: AIHints{
					ImproveBuilder:      aicontext.BuilderExperienceItem,
					AutocompleteBuilder: aicontext.BuilderExperienceItem,
					Autocomplete:        true,
					Priority:            100,
					PromptSuggestions: []string{
						"Lead with measurable impact",
						"Use strong action verbs",
						"Mention team size and scope",
					},
				},
			},
			{ID: "skills", Label: "Skills Used", Type: TypeArray},
		},
	}
}

func educationSchema() *SectionSchema {
	return &SectionSchema{
		ID:          "education",
		DisplayName: "Education",
		Cardinality: CardinalityList,
		AI: AIContext{
			SectionBuilder: aicontext.BuilderEducationSection,
			ItemBuilder:    aicontext.BuilderEducationItem,
			BatchImprove:   true,
		},
		UI: UIHints{Icon: "graduation-cap", AddLabel: "Add education", Sortable: true},
		Fields: []FieldSchema{
			{ID: "degree", Label: "Degree", Type: TypeShortText, Required: true},
			{ID: "institution", Label: "Institution", Type: TypeShortText, Required: true},
			{ID: "location", Label: "Location", Type: TypeShortText},
			{
				ID: "start_date", Label: "Start Date", Type: TypeDate,
				Rules: []ValidationRule{
					{Kind: RuleDateFormat, Param: "2006-01", Message: "Start date must be YYYY-MM"},
				},
			},
			{
				ID: "end_date", Label: "End Date", Type: TypeDate,
				Rules: []ValidationRule{
					{Kind: RuleDateFormat, Param: "2006-01", Message: "End date must be YYYY-MM"},
				},
			},
			{
				ID: "description", Label: "Description", Type: TypeLongText, Markdown: true,
				AI: AIHints{
					ImproveBuilder: aicontext.BuilderEducationItem,
					Priority:       100,
					PromptSuggestions: []string{
						"Highlight relevant coursework",
						"Mention honors and awards",
					},
				},
			},
		},
	}
}

func skillsSchema() *SectionSchema {
	return &SectionSchema{
		ID:          "skills",
		DisplayName: "Skills",
		Cardinality: CardinalityList,
		AI: AIContext{
			SectionBuilder: aicontext.BuilderSkillsSection,
			ItemBuilder:    aicontext.BuilderSkillsItem,
		},
		UI: UIHints{Icon: "wrench", AddLabel: "Add skill", Sortable: true},
		Fields: []FieldSchema{
			{ID: "name", Label: "Skill", Type: TypeShortText, Required: true},
			{
				ID: "level", Label: "Level", Type: TypeSelect,
				Options: []string{"Beginner", "Intermediate", "Advanced", "Expert"},
			},
			{ID: "keywords", Label: "Keywords", Type: TypeArray},
		},
	}
}

func projectsSchema() *SectionSchema {
	return &SectionSchema{
		ID:          "projects",
		DisplayName: "Projects",
		Cardinality: CardinalityList,
		AI: AIContext{
			SectionBuilder: aicontext.BuilderProjectSection,
			ItemBuilder:    aicontext.BuilderProjectItem,
			BatchImprove:   true,
		},
		UI: UIHints{Icon: "rocket", AddLabel: "Add project", Sortable: true},
		Fields: []FieldSchema{
			{ID: "name", Label: "Project Name", Type: TypeShortText, Required: true},
			{ID: "url", Label: "URL", Type: TypeURL},
			{
				ID: "start_date", Label: "Start Date", Type: TypeDate,
				Rules: []ValidationRule{
					{Kind: RuleDateFormat, Param: "2006-01", Message: "Start date must be YYYY-MM"},
				},
			},
			{
				ID: "end_date", Label: "End Date", Type: TypeDate,
				Rules: []ValidationRule{
					{Kind: RuleDateFormat, Param: "2006-01", Message: "End date must be YYYY-MM"},
				},
			},
			{
				ID: "description", Label: "Description", Type: TypeLongText, Markdown: true,
				AI: AIHints{
					ImproveBuilder:      aicontext.BuilderProjectItem,
					AutocompleteBuilder: aicontext.BuilderProjectItem,
					Autocomplete:        true,
					Priority:            100,
					PromptSuggestions: []string{
						"Explain the problem the project solves",
						"Quantify users or performance",
					},
				},
			},
			{ID: "technologies", Label: "Technologies", Type: TypeArray},
		},
	}
}

func certificationsSchema() *SectionSchema {
	return &SectionSchema{
		ID:          "certifications",
		DisplayName: "Certifications",
		Cardinality: CardinalityList,
		AI: AIContext{
			SectionBuilder: aicontext.BuilderCertSection,
			ItemBuilder:    aicontext.BuilderCertificationItem,
		},
		UI: UIHints{Icon: "certificate", AddLabel: "Add certification", Sortable: true},
		Fields: []FieldSchema{
			{ID: "name", Label: "Certification", Type: TypeShortText, Required: true},
			{ID: "issuer", Label: "Issuer", Type: TypeShortText},
			{
				ID: "date", Label: "Date", Type: TypeDate,
				Rules: []ValidationRule{
					{Kind: RuleDateFormat, Param: "2006-01", Message: "Date must be YYYY-MM"},
				},
			},
			{ID: "url", Label: "URL", Type: TypeURL},
			{ID: "credential_id", Label: "Credential ID", Type: TypeShortText},
		},
	}
}

func languagesSchema() *SectionSchema {
	return &SectionSchema{
		ID:          "languages",
		DisplayName: "Languages",
		Cardinality: CardinalityList,
		AI: AIContext{
			SectionBuilder: aicontext.BuilderLanguageSection,
			ItemBuilder:    aicontext.BuilderLanguageItem,
		},
		UI: UIHints{Icon: "globe", AddLabel: "Add language", Sortable: true},
		Fields: []FieldSchema{
			{ID: "language", Label: "Language", Type: TypeShortText, Required: true},
			{
				ID: "proficiency", Label: "Proficiency", Type: TypeSelect,
				Options: []string{"Basic", "Conversational", "Fluent", "Native"},
			},
		},
	}
}

func summarySchema() *SectionSchema {
	return &SectionSchema{
		ID:          "summary",
		DisplayName: "Professional Summary",
		Cardinality: CardinalitySingle,
		AI: AIContext{
			SectionBuilder: aicontext.BuilderSummarySection,
			ItemBuilder:    aicontext.BuilderSummaryItem,
		},
		UI: UIHints{Icon: "user"},
		Fields: []FieldSchema{
			{
				ID: "content", Label: "Summary", Type: TypeLongText, Required: true, Markdown: true,
				Rules: []ValidationRule{
					{Kind: RuleMaxLength, Param: "1200", Message: "Summary must be at most 1200 characters"},
				},
				AI: AIHints{
					ImproveBuilder:      aicontext.BuilderSummaryItem,
					AutocompleteBuilder: aicontext.BuilderSummaryItem,
					Autocomplete:        true,
					Priority:            100,
					PromptSuggestions: []string{
						"Open with years of experience and specialty",
						"Tailor the closing line to the target role",
					},
				},
			},
		},
	}
}
