package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MistakeSeverity classifies a flagged resume mistake.
type MistakeSeverity string

const (
	SeverityCritical   MistakeSeverity = "critical"
	SeverityWarning    MistakeSeverity = "warning"
	SeveritySuggestion MistakeSeverity = "suggestion"
)

func (s MistakeSeverity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityWarning, SeveritySuggestion:
		return true
	}
	return false
}

// QuestionCategory classifies a generated interview question.
type QuestionCategory string

const (
	CategoryTechnical   QuestionCategory = "Technical"
	CategoryBehavioral  QuestionCategory = "Behavioral"
	CategorySituational QuestionCategory = "Situational"
	CategoryCultureFit  QuestionCategory = "Culture Fit"
)

func (c QuestionCategory) Valid() bool {
	switch c {
	case CategoryTechnical, CategoryBehavioral, CategorySituational, CategoryCultureFit:
		return true
	}
	return false
}

// AnalysisResult is the normalized model output persisted with each scan.
// Field names are the wire contract the frontend depends on. Every numeric
// field is in [0,100] once the normalizer has run.
type AnalysisResult struct {
	ATSScore               int                     `json:"ats_score"`
	ATSBreakdown           ATSBreakdown            `json:"ats_breakdown"`
	ResumeMistakes         []ResumeMistake         `json:"resume_mistakes,omitempty"`
	ImprovementSuggestions *ImprovementSuggestions `json:"improvement_suggestions,omitempty"`
	JDMatch                *JDMatch                `json:"jd_match,omitempty"`
	CareerRecommendations  []CareerRecommendation  `json:"career_recommendations,omitempty"`
	ExistingSkills         []string                `json:"existing_skills,omitempty"`
	MissingSkills          []string                `json:"missing_skills,omitempty"`
	InterviewQuestions     []InterviewQuestion     `json:"interview_questions,omitempty"`
	Strengths              []string                `json:"strengths,omitempty"`
	OneLineVerdict         string                  `json:"one_line_verdict,omitempty"`
}

type ATSBreakdown struct {
	KeywordMatch        int `json:"keyword_match"`
	FormatCompatibility int `json:"format_compatibility"`
	SectionCompleteness int `json:"section_completeness"`
	QuantifiedImpact    int `json:"quantified_impact"`
	Readability         int `json:"readability"`
}

type ResumeMistake struct {
	Type  MistakeSeverity `json:"type"`
	Issue string          `json:"issue"`
	Fix   string          `json:"fix"`
}

type ImprovementSuggestions struct {
	AddThese     []string `json:"add_these,omitempty"`
	RemoveThese  []string `json:"remove_these,omitempty"`
	RewriteThese []string `json:"rewrite_these,omitempty"`
}

type JDMatch struct {
	MatchPercentage int      `json:"match_percentage"`
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
	MissingKeywords []string `json:"missing_keywords,omitempty"`
	GapSummary      string   `json:"gap_summary,omitempty"`
}

type CareerRecommendation struct {
	Title  string   `json:"title"`
	Match  int      `json:"match"`
	Reason string   `json:"reason,omitempty"`
	Growth string   `json:"growth,omitempty"`
	FindAt []string `json:"find_at,omitempty"`
	Search string   `json:"search,omitempty"`
}

type InterviewQuestion struct {
	Category QuestionCategory `json:"category"`
	Question string           `json:"question"`
	Tip      string           `json:"tip,omitempty"`
}

// Value serializes the result into a jsonb column.
func (r AnalysisResult) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// Scan deserializes the jsonb column back into the struct.
func (r *AnalysisResult) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported type for AnalysisResult: %T", src)
	}
}
