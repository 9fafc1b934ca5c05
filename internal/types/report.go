package types

// Report is the result of a full heuristic ATS parse of one resume
type Report struct {
	ID                string         `json:"id,omitempty"`
	ContactInfo       ContactInfo    `json:"contact_info"`
	WorkExperience    WorkExperience `json:"work_experience"`
	Education         Education      `json:"education"`
	Skills            Skills         `json:"skills"`
	ATSIssues         []string       `json:"ats_issues"`
	OptimizationScore int            `json:"optimization_score"`
	OptimizedText     string         `json:"optimized_text,omitempty"`
	Error             string         `json:"error,omitempty"`
}

// FileInfo holds basic facts about the input PDF
type FileInfo struct {
	Pages      int     `json:"pages"`
	Encrypted  bool    `json:"encrypted"`
	FileSizeMB float64 `json:"file_size_mb"`
}

// ExtractionQuality compares the output of the two PDF extraction paths
type ExtractionQuality struct {
	PrimaryLength         int  `json:"primary_length"`
	SecondaryLength       int  `json:"secondary_length"`
	TextDifference        int  `json:"text_difference"`
	ExtractionConsistency bool `json:"extraction_consistency"`
	HasMeaningfulContent  bool `json:"has_meaningful_content"`
}

// TextStructure summarizes the line structure and section presence of extracted text
type TextStructure struct {
	TotalLines        int     `json:"total_lines"`
	NonEmptyLines     int     `json:"non_empty_lines"`
	AverageLineLength float64 `json:"average_line_length"`
	HasContactInfo    bool    `json:"has_contact_info"`
	HasWorkExperience bool    `json:"has_work_experience"`
	HasEducation      bool    `json:"has_education"`
	HasSkills         bool    `json:"has_skills"`
}

// TextReadability holds ATS readability metrics
type TextReadability struct {
	TotalWords              int     `json:"total_words"`
	AverageWordsPerLine     float64 `json:"average_words_per_line"`
	HasConsistentFormatting bool    `json:"has_consistent_formatting"`
	SpecialCharacters       int     `json:"special_characters"`
	UnicodeIssues           bool    `json:"unicode_issues"`
}

// KeywordDensity holds counts of common resume keywords
type KeywordDensity struct {
	KeywordCounts  map[string]int `json:"keyword_counts"`
	TotalKeywords  int            `json:"total_keywords"`
	KeywordDensity float64        `json:"keyword_density"`
}

// VisualStructure summarizes formatting elements relevant to human readers
type VisualStructure struct {
	SectionBreaks     int  `json:"section_breaks"`
	BulletPoints      int  `json:"bullet_points"`
	BoldSections      int  `json:"bold_sections"`
	ConsistentSpacing bool `json:"consistent_spacing"`
}

// ContentOrganization summarizes how content is ordered and grouped
type ContentOrganization struct {
	TotalSections      int   `json:"total_sections"`
	SectionLengths     []int `json:"section_lengths"`
	HasClearHeadings   bool  `json:"has_clear_headings"`
	ChronologicalOrder bool  `json:"chronological_order"`
}

// ProfessionalPresentation summarizes content quality signals
type ProfessionalPresentation struct {
	HasContactInfo            bool `json:"has_contact_info"`
	HasQuantifiedAchievements bool `json:"has_quantified_achievements"`
	ActionVerbs               int  `json:"action_verbs"`
	ProfessionalTone          bool `json:"professional_tone"`
}

// ATSCompatibility groups the ATS-facing audit metrics
type ATSCompatibility struct {
	TextReadability  TextReadability `json:"text_readability"`
	KeywordDensity   KeywordDensity  `json:"keyword_density"`
	FormattingIssues []string        `json:"formatting_issues"`
	ATSFriendlyScore int             `json:"ats_friendly_score"`
}

// HumanReadability groups the human-facing audit metrics
type HumanReadability struct {
	VisualStructure          VisualStructure          `json:"visual_structure"`
	ContentOrganization      ContentOrganization      `json:"content_organization"`
	ProfessionalPresentation ProfessionalPresentation `json:"professional_presentation"`
}

// TextExtraction groups extraction output and derived structure metrics
type TextExtraction struct {
	PrimaryText       string            `json:"primary_text,omitempty"`
	SecondaryText     string            `json:"secondary_text,omitempty"`
	ExtractionQuality ExtractionQuality `json:"extraction_quality"`
	TextStructure     TextStructure     `json:"text_structure"`
}

// AuditReport is the result of the full extraction/compatibility/readability audit
type AuditReport struct {
	ID               string           `json:"id,omitempty"`
	FileInfo         FileInfo         `json:"file_info"`
	TextExtraction   TextExtraction   `json:"text_extraction"`
	ATSCompatibility ATSCompatibility `json:"ats_compatibility"`
	HumanReadability HumanReadability `json:"human_readability"`
	Recommendations  []string         `json:"recommendations"`
	Error            string           `json:"error,omitempty"`
}

// QuickAnalysis is the lightweight per-PDF analysis used by the diff command
type QuickAnalysis struct {
	TextLength        int  `json:"text_length"`
	WordCount         int  `json:"word_count"`
	SpecialChars      int  `json:"special_chars"`
	HasAmpersands     bool `json:"has_ampersands"`
	HasSpecialBullets bool `json:"has_special_bullets"`
	HasNonASCII       bool `json:"has_non_ascii"`
	HasEmail          bool `json:"has_email"`
	HasPhone          bool `json:"has_phone"`
	SectionsFound     int  `json:"sections_found"`
	ATSScore          int  `json:"ats_score"`
}
