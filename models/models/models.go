// Package models holds the request/response shapes of the HTTP surface and
// their validation rules. A payload that fails Validate never reaches the
// service layer.
package models

import (
	"errors"
	"regexp"
	"time"

	"deepcheck_api/models/tables"
)

type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

var (
	ErrEmailFormat    = errors.New("email must be a valid email address")
	ErrEmailRequired  = errors.New("email is required")
	ErrPasswordLength = errors.New("password must be between 8 and 48 characters")
	ErrNameLength     = errors.New("name must be at least 3 characters")
)

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (r SignupRequest) Validate() error {
	if r.Email == "" {
		return ErrEmailRequired
	}
	if !emailRe.MatchString(r.Email) {
		return ErrEmailFormat
	}
	if len(r.Password) < 8 || len(r.Password) > 48 {
		return ErrPasswordLength
	}
	if len(r.Name) < 3 {
		return ErrNameLength
	}
	return nil
}

// SigninRequest is the email/password subset of the signup payload; only
// presence is checked, the provider decides whether credentials match.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r SigninRequest) Validate() error {
	if r.Email == "" {
		return errors.New("email is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type AuthResponse struct {
	User  *tables.User `json:"user"`
	Token string       `json:"token,omitempty"`
}

type WebhookRequest struct {
	URL    string   `json:"url"`
	Events []string `json:"events"`
}

func (r WebhookRequest) Validate() error {
	if r.URL == "" {
		return errors.New("url is required")
	}
	if len(r.Events) == 0 {
		return errors.New("at least one event is required")
	}
	return nil
}

type ApiKeyCreateRequest struct {
	Name      string     `json:"name"`
	Scopes    []string   `json:"scopes"`
	RateLimit int        `json:"rate_limit"`
	ExpiresAt *time.Time `json:"expires_at"`
}

func (r ApiKeyCreateRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

// ApiKeyCreated carries the plaintext secret exactly once, at creation.
type ApiKeyCreated struct {
	Key    string        `json:"key"`
	ApiKey tables.ApiKey `json:"api_key"`
}

type ReportCreateRequest struct {
	DetectionResultID string            `json:"detection_result_id,omitempty"`
	ReportType        tables.ReportType `json:"report_type"`
	Description       string            `json:"description"`
}

func (r ReportCreateRequest) Validate() error {
	if !tables.ValidReportType(r.ReportType) {
		return errors.New("report_type must be one of false_positive, false_negative, bug, other")
	}
	if r.Description == "" {
		return errors.New("description is required")
	}
	return nil
}

type ReportModerateRequest struct {
	Status     tables.ReportStatus `json:"status"`
	AdminNotes string              `json:"admin_notes"`
}

func (r ReportModerateRequest) Validate() error {
	switch r.Status {
	case tables.ReportPending, tables.ReportReviewed, tables.ReportResolved, tables.ReportDismissed:
		return nil
	}
	return errors.New("status must be one of pending, reviewed, resolved, dismissed")
}

// DetectionAnnotateRequest updates the user-owned fields of a detection.
// Pointers distinguish "leave alone" from "set to zero value".
type DetectionAnnotateRequest struct {
	UserFeedback *string `json:"user_feedback"`
	UserNotes    *string `json:"user_notes"`
	IsBookmarked *bool   `json:"is_bookmarked"`
	IsArchived   *bool   `json:"is_archived"`
}

type FrameIngest struct {
	FrameNumber         int                    `json:"frame_number"`
	FrameHash           string                 `json:"frame_hash"`
	FrameTimestampMs    int                    `json:"frame_timestamp_ms"`
	AuthenticityScore   float64                `json:"authenticity_score"`
	AIProbability       float64                `json:"ai_probability"`
	ProviderResults     map[string]interface{} `json:"provider_results"`
	DetectedArtifacts   []string               `json:"detected_artifacts"`
	ReverseImageMatches []string               `json:"reverse_image_matches"`
	AnalysisMethod      map[string]interface{} `json:"analysis_method"`
	ProcessingTimeMs    int                    `json:"processing_time_ms"`
}

// DetectionIngestRequest is the payload the external analysis service posts
// once a run finishes. This repository stores the result; it never runs the
// analysis itself.
type DetectionIngestRequest struct {
	VideoURL      string `json:"video_url"`
	VideoTitle    string `json:"video_title"`
	VideoPlatform string `json:"video_platform"`
	PageURL       string `json:"page_url"`
	VideoHash     string `json:"video_hash"`

	Status            tables.DetectionStatus `json:"status"`
	OverallConfidence float64                `json:"overall_confidence"`
	AuthenticityScore float64                `json:"authenticity_score"`
	IsLikelyAI        bool                   `json:"is_likely_ai"`
	ConfidenceLevel   tables.ConfidenceLevel `json:"confidence_level"`

	DetectionMethodsUsed []string               `json:"detection_methods_used"`
	DetailedResults      map[string]interface{} `json:"detailed_results"`
	WarningFlags         []string               `json:"warning_flags"`
	ProcessingTimeMs     int                    `json:"processing_time_ms"`
	ApiCosts             float64                `json:"api_costs"`

	Frames []FrameIngest `json:"frames"`
}

func (r DetectionIngestRequest) Validate() error {
	if !tables.ValidDetectionStatus(r.Status) {
		return errors.New("status must be one of processing, completed, failed")
	}
	switch r.ConfidenceLevel {
	case tables.ConfidenceLow, tables.ConfidenceMedium, tables.ConfidenceHigh, tables.ConfidenceVeryHigh:
	default:
		return errors.New("confidence_level must be one of low, medium, high, very_high")
	}
	for _, f := range r.Frames {
		if f.FrameHash == "" {
			return errors.New("every frame needs a frame_hash")
		}
	}
	return nil
}

type UsageResponse struct {
	Tier              tables.UserTier `json:"tier"`
	DailyChecksUsed   int             `json:"daily_checks_used"`
	DailyChecksLimit  int             `json:"daily_checks_limit"`
	MonthlyChecksUsed int             `json:"monthly_checks_used"`
	MonthlyLimit      int             `json:"monthly_limit"`
	LastResetAt       time.Time       `json:"last_reset_at"`
}

type PlanResponse struct {
	Plan         *tables.PricingPlan  `json:"plan"`
	Subscription *tables.Subscription `json:"subscription,omitempty"`
}
