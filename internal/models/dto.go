package models

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AnalyzeRequest struct {
	Resume         string `json:"resume" validate:"required"`
	JobRole        string `json:"job_role" validate:"required"`
	JobDescription string `json:"job_description"`
}

type AnalyzeResponse struct {
	ScanID string `json:"scan_id"`
	AnalysisResult
}

type ExtractResponse struct {
	Text  string `json:"text"`
	Pages int    `json:"pages"`
}

type TrendPoint struct {
	Role  string `json:"role"`
	Score int    `json:"score"`
	Date  string `json:"date"`
}

type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

type DashboardResponse struct {
	User             *User         `json:"user"`
	TotalScans       int           `json:"total_scans"`
	AvgATS           int           `json:"avg_ats"`
	RecentScans      []ScanSummary `json:"recent_scans"`
	ATSTrend         []TrendPoint  `json:"ats_trend"`
	RoleDistribution []RoleCount   `json:"role_distribution"`
}
