package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildAnalysisPrompt renders the resume, target role and optional job
// description into the single analysis prompt. Pure function of its
// inputs; the schema literal is the contract the normalizer and the
// frontend both depend on.
func (pb *PromptBuilder) BuildAnalysisPrompt(resume, jobRole, jobDescription string) string {
	jdSection := ""
	if jobDescription != "" {
		jdSection = fmt.Sprintf("\nJob Description:\n%s", jobDescription)
	}

	return fmt.Sprintf(`You are an elite AI career coach, ATS expert, and hiring manager.
Analyze the resume below comprehensively for the target job role.
Return ONLY a single valid JSON object. No markdown. No explanation. No extra text.

Resume:
%s

Target Job Role: %s%s

Return this exact JSON:
{
  "ats_score": <integer 0-100>,
  "ats_breakdown": {
    "keyword_match":      <0-100>,
    "format_compatibility": <0-100>,
    "section_completeness": <0-100>,
    "quantified_impact":  <0-100>,
    "readability":        <0-100>
  },
  "resume_mistakes": [
    {"type": "critical|warning|suggestion", "issue": "Describe the problem", "fix": "How to fix it"},
    {"type": "critical|warning|suggestion", "issue": "...", "fix": "..."}
  ],
  "improvement_suggestions": {
    "add_these":    ["concrete item to add", "another item"],
    "remove_these": ["item to remove"],
    "rewrite_these": ["phrase → better version"]
  },
  "jd_match": {
    "match_percentage": <0-100>,
    "matched_keywords":  ["kw1", "kw2"],
    "missing_keywords":  ["kw1", "kw2"],
    "gap_summary": "One paragraph summary of the gap"
  },
  "career_recommendations": [
    {
      "title": "Job Title",
      "match": <0-100>,
      "reason": "Why this fits",
      "growth": "Career growth path",
      "find_at": ["LinkedIn", "Indeed"],
      "search": "exact search phrase"
    }
  ],
  "existing_skills":      ["skill1", "skill2"],
  "missing_skills":       ["skill1", "skill2"],
  "interview_questions":  [
    {"category": "Technical",   "question": "Q?", "tip": "Tip"},
    {"category": "Behavioral",  "question": "Q?", "tip": "Tip"},
    {"category": "Situational", "question": "Q?", "tip": "Tip"},
    {"category": "Technical",   "question": "Q?", "tip": "Tip"},
    {"category": "Culture Fit", "question": "Q?", "tip": "Tip"}
  ],
  "strengths": ["strength 1", "strength 2", "strength 3"],
  "one_line_verdict": "One sentence overall assessment of this resume"
}`, resume, jobRole, jdSection)
}
