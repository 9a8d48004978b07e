package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillbridge/backend/internal/models"
	"skillbridge/backend/internal/services"
)

func validPayload() string {
	return `{
		"ats_score": 82,
		"ats_breakdown": {
			"keyword_match": 75,
			"format_compatibility": 90,
			"section_completeness": 80,
			"quantified_impact": 60,
			"readability": 85
		},
		"resume_mistakes": [
			{"type": "critical", "issue": "No contact info", "fix": "Add an email address"}
		],
		"jd_match": {
			"match_percentage": 70,
			"matched_keywords": ["go", "sql"],
			"missing_keywords": ["kubernetes"],
			"gap_summary": "Missing infra experience."
		},
		"career_recommendations": [
			{"title": "Backend Engineer", "match": 88, "reason": "Strong fit", "growth": "Senior track", "find_at": ["LinkedIn"], "search": "backend engineer go"}
		],
		"existing_skills": ["Go"],
		"missing_skills": ["Kubernetes"],
		"interview_questions": [
			{"category": "Technical", "question": "Explain goroutines.", "tip": "Mention the scheduler"}
		],
		"strengths": ["Concise"],
		"one_line_verdict": "Solid resume."
	}`
}

func TestNormalize_ValidResponse(t *testing.T) {
	n := services.NewNormalizer()

	result, err := n.Normalize(validPayload())
	require.NoError(t, err)

	assert.Equal(t, 82, result.ATSScore)
	assert.Equal(t, 75, result.ATSBreakdown.KeywordMatch)
	require.NotNil(t, result.JDMatch)
	assert.Equal(t, 70, result.JDMatch.MatchPercentage)
	assert.Equal(t, "Solid resume.", result.OneLineVerdict)
}

func TestNormalize_StripsCodeFences(t *testing.T) {
	n := services.NewNormalizer()

	for _, fenced := range []string{
		"```json\n" + validPayload() + "\n```",
		"```\n" + validPayload() + "\n```",
		"  ```json " + validPayload() + " ``` ",
	} {
		result, err := n.Normalize(fenced)
		require.NoError(t, err)
		assert.Equal(t, 82, result.ATSScore)
	}
}

func TestNormalize_ClampsOutOfRangeScores(t *testing.T) {
	n := services.NewNormalizer()

	raw := "```json\n" + `{
		"ats_score": 150,
		"ats_breakdown": {
			"keyword_match": -5,
			"format_compatibility": 101,
			"section_completeness": 50,
			"quantified_impact": 0,
			"readability": 100
		},
		"jd_match": {"match_percentage": 250},
		"career_recommendations": [{"title": "Dev", "match": -10}]
	}` + "\n```"

	result, err := n.Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, 100, result.ATSScore)
	assert.Equal(t, 0, result.ATSBreakdown.KeywordMatch)
	assert.Equal(t, 100, result.ATSBreakdown.FormatCompatibility)
	assert.Equal(t, 100, result.JDMatch.MatchPercentage)
	assert.Equal(t, 0, result.CareerRecommendations[0].Match)
}

func TestNormalize_CoercesNonIntegerScores(t *testing.T) {
	n := services.NewNormalizer()

	raw := `{
		"ats_score": 82.6,
		"ats_breakdown": {
			"keyword_match": 74.4,
			"format_compatibility": 89.5,
			"section_completeness": 80.0,
			"quantified_impact": 60.49,
			"readability": 85
		}
	}`

	result, err := n.Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, 83, result.ATSScore)
	assert.Equal(t, 74, result.ATSBreakdown.KeywordMatch)
	assert.Equal(t, 90, result.ATSBreakdown.FormatCompatibility)
	assert.Equal(t, 60, result.ATSBreakdown.QuantifiedImpact)
}

func TestNormalize_NoJSONFound(t *testing.T) {
	n := services.NewNormalizer()

	for _, raw := range []string{
		"",
		"the model refused to answer",
		"``` nothing here ```",
		"} backwards {",
	} {
		_, err := n.Normalize(raw)
		assert.ErrorIs(t, err, models.ErrNoJSONFound, "input: %q", raw)
	}
}

func TestNormalize_MalformedJSON(t *testing.T) {
	n := services.NewNormalizer()

	_, err := n.Normalize(`{"ats_score": 80, "ats_breakdown": {oops}}`)
	assert.ErrorIs(t, err, models.ErrMalformedJSON)
}

func TestNormalize_MissingScoreFieldsRejected(t *testing.T) {
	n := services.NewNormalizer()

	_, err := n.Normalize(`{"one_line_verdict": "nice"}`)
	require.ErrorIs(t, err, models.ErrMalformedJSON)
	assert.Contains(t, err.Error(), "ats_score")

	_, err = n.Normalize(`{"ats_score": 80}`)
	require.ErrorIs(t, err, models.ErrMalformedJSON)
	assert.Contains(t, err.Error(), "ats_breakdown")

	_, err = n.Normalize(`{
		"ats_score": 80,
		"ats_breakdown": {
			"keyword_match": 75,
			"format_compatibility": 90,
			"section_completeness": 80,
			"quantified_impact": 60
		}
	}`)
	require.ErrorIs(t, err, models.ErrMalformedJSON)
	assert.Contains(t, err.Error(), "readability")
}

func TestNormalize_OptionalFieldsStayAbsent(t *testing.T) {
	n := services.NewNormalizer()

	result, err := n.Normalize(`{
		"ats_score": 80,
		"ats_breakdown": {
			"keyword_match": 75,
			"format_compatibility": 90,
			"section_completeness": 80,
			"quantified_impact": 60,
			"readability": 85
		}
	}`)
	require.NoError(t, err)

	assert.Nil(t, result.JDMatch)
	assert.Nil(t, result.ImprovementSuggestions)
	assert.Empty(t, result.ResumeMistakes)
	assert.Empty(t, result.CareerRecommendations)
}

func TestNormalize_SeverityAndCategoryCoercion(t *testing.T) {
	n := services.NewNormalizer()

	raw := `{
		"ats_score": 80,
		"ats_breakdown": {
			"keyword_match": 75,
			"format_compatibility": 90,
			"section_completeness": 80,
			"quantified_impact": 60,
			"readability": 85
		},
		"resume_mistakes": [
			{"type": "CRITICAL", "issue": "a", "fix": "b"},
			{"type": "Warning", "issue": "c", "fix": "d"},
			{"type": "blocker", "issue": "e", "fix": "f"}
		],
		"interview_questions": [
			{"category": "technical", "question": "q1", "tip": "t1"},
			{"category": "culture fit", "question": "q2", "tip": "t2"},
			{"category": "Brain Teaser", "question": "q3", "tip": "t3"}
		]
	}`

	result, err := n.Normalize(raw)
	require.NoError(t, err)

	require.Len(t, result.ResumeMistakes, 3)
	assert.Equal(t, models.SeverityCritical, result.ResumeMistakes[0].Type)
	assert.Equal(t, models.SeverityWarning, result.ResumeMistakes[1].Type)
	assert.Equal(t, models.SeveritySuggestion, result.ResumeMistakes[2].Type)

	require.Len(t, result.InterviewQuestions, 3)
	assert.Equal(t, models.CategoryTechnical, result.InterviewQuestions[0].Category)
	assert.Equal(t, models.CategoryCultureFit, result.InterviewQuestions[1].Category)
	assert.Equal(t, models.QuestionCategory("Brain Teaser"), result.InterviewQuestions[2].Category)
}
