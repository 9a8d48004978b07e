package services

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"skillbridge/backend/internal/models"
)

// Normalizer turns the untrusted raw model output into a validated
// AnalysisResult. Every numeric contract the dashboard depends on is
// enforced here, once, instead of by every reader.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

var codeFenceRe = regexp.MustCompile("```(?:json)?")

// Raw decode targets. Score fields are pointers so that a missing field
// is distinguishable from an explicit zero: clamping a missing score is
// undefined and gets rejected rather than silently treated as 0.
type rawAnalysis struct {
	ATSScore               *float64                        `json:"ats_score"`
	ATSBreakdown           *rawBreakdown                   `json:"ats_breakdown"`
	ResumeMistakes         []rawMistake                    `json:"resume_mistakes"`
	ImprovementSuggestions *models.ImprovementSuggestions  `json:"improvement_suggestions"`
	JDMatch                *rawJDMatch                     `json:"jd_match"`
	CareerRecommendations  []rawRecommendation             `json:"career_recommendations"`
	ExistingSkills         []string                        `json:"existing_skills"`
	MissingSkills          []string                        `json:"missing_skills"`
	InterviewQuestions     []rawQuestion                   `json:"interview_questions"`
	Strengths              []string                        `json:"strengths"`
	OneLineVerdict         string                          `json:"one_line_verdict"`
}

type rawBreakdown struct {
	KeywordMatch        *float64 `json:"keyword_match"`
	FormatCompatibility *float64 `json:"format_compatibility"`
	SectionCompleteness *float64 `json:"section_completeness"`
	QuantifiedImpact    *float64 `json:"quantified_impact"`
	Readability         *float64 `json:"readability"`
}

type rawMistake struct {
	Type  string `json:"type"`
	Issue string `json:"issue"`
	Fix   string `json:"fix"`
}

type rawJDMatch struct {
	MatchPercentage *float64 `json:"match_percentage"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	GapSummary      string   `json:"gap_summary"`
}

type rawRecommendation struct {
	Title  string   `json:"title"`
	Match  float64  `json:"match"`
	Reason string   `json:"reason"`
	Growth string   `json:"growth"`
	FindAt []string `json:"find_at"`
	Search string   `json:"search"`
}

type rawQuestion struct {
	Category string `json:"category"`
	Question string `json:"question"`
	Tip      string `json:"tip"`
}

// Normalize strips markdown fencing, extracts the outermost JSON object,
// parses it, and clamps every declared numeric field into [0,100].
func (n *Normalizer) Normalize(response string) (*models.AnalysisResult, error) {
	cleaned := codeFenceRe.ReplaceAllString(response, "")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.Trim(cleaned, "`")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return nil, models.ErrNoJSONFound
	}

	var raw rawAnalysis
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedJSON, err)
	}

	if raw.ATSScore == nil {
		return nil, fmt.Errorf("%w: ats_score missing", models.ErrMalformedJSON)
	}
	if raw.ATSBreakdown == nil {
		return nil, fmt.Errorf("%w: ats_breakdown missing", models.ErrMalformedJSON)
	}

	breakdown, err := normalizeBreakdown(raw.ATSBreakdown)
	if err != nil {
		return nil, err
	}

	result := &models.AnalysisResult{
		ATSScore:               clamp100(*raw.ATSScore),
		ATSBreakdown:           *breakdown,
		ImprovementSuggestions: raw.ImprovementSuggestions,
		ExistingSkills:         raw.ExistingSkills,
		MissingSkills:          raw.MissingSkills,
		Strengths:              raw.Strengths,
		OneLineVerdict:         raw.OneLineVerdict,
	}

	for _, m := range raw.ResumeMistakes {
		result.ResumeMistakes = append(result.ResumeMistakes, models.ResumeMistake{
			Type:  normalizeSeverity(m.Type),
			Issue: m.Issue,
			Fix:   m.Fix,
		})
	}

	if raw.JDMatch != nil {
		jd := &models.JDMatch{
			MatchedKeywords: raw.JDMatch.MatchedKeywords,
			MissingKeywords: raw.JDMatch.MissingKeywords,
			GapSummary:      raw.JDMatch.GapSummary,
		}
		if raw.JDMatch.MatchPercentage != nil {
			jd.MatchPercentage = clamp100(*raw.JDMatch.MatchPercentage)
		}
		result.JDMatch = jd
	}

	for _, rec := range raw.CareerRecommendations {
		result.CareerRecommendations = append(result.CareerRecommendations, models.CareerRecommendation{
			Title:  rec.Title,
			Match:  clamp100(rec.Match),
			Reason: rec.Reason,
			Growth: rec.Growth,
			FindAt: rec.FindAt,
			Search: rec.Search,
		})
	}

	for _, q := range raw.InterviewQuestions {
		result.InterviewQuestions = append(result.InterviewQuestions, models.InterviewQuestion{
			Category: normalizeCategory(q.Category),
			Question: q.Question,
			Tip:      q.Tip,
		})
	}

	return result, nil
}

func normalizeBreakdown(raw *rawBreakdown) (*models.ATSBreakdown, error) {
	required := map[string]*float64{
		"keyword_match":        raw.KeywordMatch,
		"format_compatibility": raw.FormatCompatibility,
		"section_completeness": raw.SectionCompleteness,
		"quantified_impact":    raw.QuantifiedImpact,
		"readability":          raw.Readability,
	}
	for key, val := range required {
		if val == nil {
			return nil, fmt.Errorf("%w: ats_breakdown.%s missing", models.ErrMalformedJSON, key)
		}
	}

	return &models.ATSBreakdown{
		KeywordMatch:        clamp100(*raw.KeywordMatch),
		FormatCompatibility: clamp100(*raw.FormatCompatibility),
		SectionCompleteness: clamp100(*raw.SectionCompleteness),
		QuantifiedImpact:    clamp100(*raw.QuantifiedImpact),
		Readability:         clamp100(*raw.Readability),
	}, nil
}

// clamp100 coerces to the nearest integer, then clamps into [0,100].
func clamp100(v float64) int {
	i := int(math.Round(v))
	if i < 0 {
		return 0
	}
	if i > 100 {
		return 100
	}
	return i
}

// normalizeSeverity lowercases the model's severity tag. Unknown values
// land on "suggestion" so a typo never promotes itself to critical.
func normalizeSeverity(s string) models.MistakeSeverity {
	sev := models.MistakeSeverity(strings.ToLower(strings.TrimSpace(s)))
	if sev.Valid() {
		return sev
	}
	return models.SeveritySuggestion
}

// normalizeCategory canonicalizes the question category against the four
// known values. Unknown categories pass through verbatim; nothing
// downstream branches on them.
func normalizeCategory(s string) models.QuestionCategory {
	trimmed := strings.TrimSpace(s)
	for _, known := range []models.QuestionCategory{
		models.CategoryTechnical,
		models.CategoryBehavioral,
		models.CategorySituational,
		models.CategoryCultureFit,
	} {
		if strings.EqualFold(trimmed, string(known)) {
			return known
		}
	}
	return models.QuestionCategory(trimmed)
}
