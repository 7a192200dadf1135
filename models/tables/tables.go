// Package tables holds the row structs for every table in the deepcheck
// schema. Enum value sets, unique indexes and the per-relation delete policy
// (cascade vs set-null, enforced by pkg/store) are the persistence contract.
package tables

import "time"

type UserTier string

const (
	TierFree       UserTier = "free"
	TierPremium    UserTier = "premium"
	TierEnterprise UserTier = "enterprise"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionTrialing SubscriptionStatus = "trialing"
)

type DetectionStatus string

const (
	DetectionProcessing DetectionStatus = "processing"
	DetectionCompleted  DetectionStatus = "completed"
	DetectionFailed     DetectionStatus = "failed"
)

type ConfidenceLevel string

const (
	ConfidenceLow      ConfidenceLevel = "low"
	ConfidenceMedium   ConfidenceLevel = "medium"
	ConfidenceHigh     ConfidenceLevel = "high"
	ConfidenceVeryHigh ConfidenceLevel = "very_high"
)

type AuthProvider string

const (
	ProviderEmail     AuthProvider = "email"
	ProviderGoogle    AuthProvider = "google"
	ProviderGithub    AuthProvider = "github"
	ProviderMicrosoft AuthProvider = "microsoft"
)

type UsageAction string

const (
	ActionDetection UsageAction = "detection"
	ActionApiCall   UsageAction = "api_call"
	ActionExport    UsageAction = "export"
	ActionShare     UsageAction = "share"
)

type ReportType string

const (
	ReportFalsePositive ReportType = "false_positive"
	ReportFalseNegative ReportType = "false_negative"
	ReportBug           ReportType = "bug"
	ReportOther         ReportType = "other"
)

type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportReviewed  ReportStatus = "reviewed"
	ReportResolved  ReportStatus = "resolved"
	ReportDismissed ReportStatus = "dismissed"
)

type PaymentProvider string

const (
	PaymentProviderStripe PaymentProvider = "stripe"
	PaymentProviderPaypal PaymentProvider = "paypal"
	PaymentProviderPaddle PaymentProvider = "paddle"
)

type SubscriptionInterval string

const (
	IntervalMonth SubscriptionInterval = "month"
	IntervalYear  SubscriptionInterval = "year"
)

type InvoiceStatus string

const (
	InvoiceDraft         InvoiceStatus = "draft"
	InvoiceOpen          InvoiceStatus = "open"
	InvoicePaid          InvoiceStatus = "paid"
	InvoiceVoid          InvoiceStatus = "void"
	InvoiceUncollectible InvoiceStatus = "uncollectible"
)

type PaymentStatus string

const (
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentPending   PaymentStatus = "pending"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
	PaymentCanceled  PaymentStatus = "canceled"
)

func ValidReportType(t ReportType) bool {
	switch t {
	case ReportFalsePositive, ReportFalseNegative, ReportBug, ReportOther:
		return true
	}
	return false
}

func ValidUsageAction(a UsageAction) bool {
	switch a {
	case ActionDetection, ActionApiCall, ActionExport, ActionShare:
		return true
	}
	return false
}

func ValidDetectionStatus(s DetectionStatus) bool {
	switch s {
	case DetectionProcessing, DetectionCompleted, DetectionFailed:
		return true
	}
	return false
}

type User struct {
	ID            string `xorm:"pk varchar(36) 'id'" json:"id"`
	Email         string `xorm:"varchar(255) notnull unique 'email'" json:"email"`
	EmailVerified bool   `xorm:"notnull 'email_verified'" json:"email_verified"`
	Name          string `xorm:"varchar(255) 'name'" json:"name"`
	AvatarURL     string `xorm:"text 'avatar_url'" json:"avatar_url"`

	// Subscription
	Tier                  UserTier            `xorm:"varchar(20) notnull index 'tier'" json:"tier"`
	SubscriptionStatus    *SubscriptionStatus `xorm:"varchar(20) 'subscription_status'" json:"subscription_status"`
	SubscriptionID        string              `xorm:"varchar(255) 'subscription_id'" json:"subscription_id"`
	SubscriptionExpiresAt *time.Time          `xorm:"'subscription_expires_at'" json:"subscription_expires_at"`

	// Usage tracking. Daily/monthly counters are reset by a scheduler that
	// lives outside this repository; this schema only records them.
	DailyChecksUsed   int       `xorm:"notnull 'daily_checks_used'" json:"daily_checks_used"`
	DailyChecksLimit  int       `xorm:"notnull 'daily_checks_limit'" json:"daily_checks_limit"`
	MonthlyChecksUsed int       `xorm:"notnull 'monthly_checks_used'" json:"monthly_checks_used"`
	LastResetAt       time.Time `xorm:"notnull 'last_reset_at'" json:"last_reset_at"`

	Preferences map[string]interface{} `xorm:"json 'preferences'" json:"preferences"`
	Timezone    string                 `xorm:"varchar(50) 'timezone'" json:"timezone"`

	CreatedAt   time.Time  `xorm:"created 'created_at'" json:"created_at"`
	UpdatedAt   time.Time  `xorm:"updated 'updated_at'" json:"updated_at"`
	LastLoginAt *time.Time `xorm:"'last_login_at'" json:"last_login_at"`
}

func (User) TableName() string { return "users" }

// Account links a user to an identity provider. For the email provider the
// row carries the bcrypt password hash; SSO providers carry tokens instead.
type Account struct {
	ID                string       `xorm:"pk varchar(36) 'id'" json:"id"`
	UserID            string       `xorm:"varchar(36) notnull index 'user_id'" json:"user_id"`
	Provider          AuthProvider `xorm:"varchar(20) unique(provider_account) 'provider'" json:"provider"`
	ProviderAccountID string       `xorm:"varchar(255) unique(provider_account) 'provider_account_id'" json:"provider_account_id"`
	Password          string       `xorm:"text 'password'" json:"-"`
	IDToken           string       `xorm:"text 'id_token'" json:"-"`
	AccessToken       string       `xorm:"text 'access_token'" json:"-"`
	RefreshToken      string       `xorm:"text 'refresh_token'" json:"-"`
	ExpiresAt         *time.Time   `xorm:"'expires_at'" json:"expires_at"`

	CreatedAt time.Time `xorm:"created 'created_at'" json:"created_at"`
	UpdatedAt time.Time `xorm:"updated 'updated_at'" json:"updated_at"`
}

func (Account) TableName() string { return "accounts" }

type Session struct {
	ID        string    `xorm:"pk varchar(36) 'id'" json:"id"`
	UserID    string    `xorm:"varchar(36) notnull index 'user_id'" json:"user_id"`
	Token     string    `xorm:"varchar(255) notnull unique 'token'" json:"token"`
	ExpiresAt time.Time `xorm:"notnull index 'expires_at'" json:"expires_at"`
	IPAddress string    `xorm:"varchar(45) 'ip_address'" json:"ip_address"`
	UserAgent string    `xorm:"text 'user_agent'" json:"user_agent"`

	CreatedAt time.Time `xorm:"created 'created_at'" json:"created_at"`
	UpdatedAt time.Time `xorm:"updated 'updated_at'" json:"updated_at"`
}

func (Session) TableName() string { return "sessions" }

type DetectionResult struct {
	ID     string `xorm:"pk varchar(36) 'id'" json:"id"`
	UserID string `xorm:"varchar(36) notnull index(user_created) 'user_id'" json:"user_id"`

	// Source
	VideoURL      string `xorm:"text 'video_url'" json:"video_url"`
	VideoTitle    string `xorm:"text 'video_title'" json:"video_title"`
	VideoPlatform string `xorm:"varchar(50) 'video_platform'" json:"video_platform"`
	PageURL       string `xorm:"text 'page_url'" json:"page_url"`

	OverallConfidence float64         `xorm:"notnull 'overall_confidence'" json:"overall_confidence"`
	AuthenticityScore float64         `xorm:"notnull 'authenticity_score'" json:"authenticity_score"`
	Status            DetectionStatus `xorm:"varchar(20) notnull index 'status'" json:"status"`

	FramesAnalyzed       int                    `xorm:"notnull 'frames_analyzed'" json:"frames_analyzed"`
	DetectionMethodsUsed []string               `xorm:"json 'detection_methods_used'" json:"detection_methods_used"`
	DetailedResults      map[string]interface{} `xorm:"json 'detailed_results'" json:"detailed_results"`

	IsLikelyAI      bool            `xorm:"notnull 'is_likely_ai'" json:"is_likely_ai"`
	ConfidenceLevel ConfidenceLevel `xorm:"varchar(20) notnull 'confidence_level'" json:"confidence_level"`
	WarningFlags    []string        `xorm:"json 'warning_flags'" json:"warning_flags"`

	ProcessingTimeMs int     `xorm:"notnull 'processing_time_ms'" json:"processing_time_ms"`
	ApiCosts         float64 `xorm:"'api_costs'" json:"api_costs"`

	// User annotations
	UserFeedback string `xorm:"varchar(50) 'user_feedback'" json:"user_feedback"`
	UserNotes    string `xorm:"text 'user_notes'" json:"user_notes"`
	IsBookmarked bool   `xorm:"notnull 'is_bookmarked'" json:"is_bookmarked"`
	IsArchived   bool   `xorm:"notnull 'is_archived'" json:"is_archived"`

	CreatedAt time.Time `xorm:"created index(user_created) 'created_at'" json:"created_at"`
	UpdatedAt time.Time `xorm:"updated 'updated_at'" json:"updated_at"`
}

func (DetectionResult) TableName() string { return "detection_results" }

type FrameAnalysis struct {
	ID                string `xorm:"pk varchar(36) 'id'" json:"id"`
	DetectionResultID string `xorm:"varchar(36) notnull index 'detection_result_id'" json:"detection_result_id"`

	FrameNumber      int    `xorm:"notnull 'frame_number'" json:"frame_number"`
	FrameHash        string `xorm:"varchar(64) notnull index 'frame_hash'" json:"frame_hash"`
	FrameTimestampMs int    `xorm:"notnull 'frame_timestamp_ms'" json:"frame_timestamp_ms"`

	AuthenticityScore float64 `xorm:"notnull 'authenticity_score'" json:"authenticity_score"`
	AIProbability     float64 `xorm:"notnull 'ai_probability'" json:"ai_probability"`

	ProviderResults     map[string]interface{} `xorm:"json 'provider_results'" json:"provider_results"`
	DetectedArtifacts   []string               `xorm:"json 'detected_artifacts'" json:"detected_artifacts"`
	ReverseImageMatches []string               `xorm:"json 'reverse_image_matches'" json:"reverse_image_matches"`

	AnalysisMethod   map[string]interface{} `xorm:"json 'analysis_method'" json:"analysis_method"`
	ProcessingTimeMs int                    `xorm:"notnull 'processing_time_ms'" json:"processing_time_ms"`

	CreatedAt time.Time `xorm:"created 'created_at'" json:"created_at"`
}

func (FrameAnalysis) TableName() string { return "frame_analyses" }

// UsageLog is append-only: rows are never updated or individually deleted,
// only cascaded away with their owner.
type UsageLog struct {
	ID     string `xorm:"pk varchar(36) 'id'" json:"id"`
	UserID string `xorm:"varchar(36) notnull index(user_created) 'user_id'" json:"user_id"`

	Action       UsageAction `xorm:"varchar(20) notnull index 'action'" json:"action"`
	ResourceType string      `xorm:"varchar(50) 'resource_type'" json:"resource_type"`
	ResourceID   string      `xorm:"varchar(36) 'resource_id'" json:"resource_id"`

	IPAddress string `xorm:"varchar(45) notnull 'ip_address'" json:"ip_address"`
	UserAgent string `xorm:"text 'user_agent'" json:"user_agent"`
	Endpoint  string `xorm:"varchar(255) 'endpoint'" json:"endpoint"`

	CreditsUsed int     `xorm:"notnull 'credits_used'" json:"credits_used"`
	ApiCost     float64 `xorm:"'api_cost'" json:"api_cost"`

	CreatedAt time.Time `xorm:"created index(user_created) 'created_at'" json:"created_at"`
}

func (UsageLog) TableName() string { return "usage_logs" }

type ApiKey struct {
	ID     string `xorm:"pk varchar(36) 'id'" json:"id"`
	UserID string `xorm:"varchar(36) notnull index 'user_id'" json:"user_id"`

	// Only the sha256 of the secret is stored; the prefix is kept for display.
	KeyHash   string `xorm:"varchar(255) notnull unique 'key_hash'" json:"-"`
	KeyPrefix string `xorm:"varchar(20) notnull 'key_prefix'" json:"key_prefix"`
	Name      string `xorm:"varchar(100) notnull 'name'" json:"name"`

	Scopes    []string `xorm:"json 'scopes'" json:"scopes"`
	RateLimit int      `xorm:"notnull 'rate_limit'" json:"rate_limit"`

	LastUsedAt    *time.Time `xorm:"'last_used_at'" json:"last_used_at"`
	RequestsCount int        `xorm:"notnull 'requests_count'" json:"requests_count"`

	IsActive  bool       `xorm:"notnull 'is_active'" json:"is_active"`
	ExpiresAt *time.Time `xorm:"'expires_at'" json:"expires_at"`

	CreatedAt time.Time `xorm:"created 'created_at'" json:"created_at"`
	UpdatedAt time.Time `xorm:"updated 'updated_at'" json:"updated_at"`
}

func (ApiKey) TableName() string { return "api_keys" }

// DetectionCache memoizes per-frame outcomes in the database, keyed by frame
// hash. It is a TTL table, not an in-process cache.
type DetectionCache struct {
	ID        string `xorm:"pk varchar(36) 'id'" json:"id"`
	FrameHash string `xorm:"varchar(64) notnull unique 'frame_hash'" json:"frame_hash"`
	VideoHash string `xorm:"varchar(64) index 'video_hash'" json:"video_hash"`

	AuthenticityScore float64                `xorm:"notnull 'authenticity_score'" json:"authenticity_score"`
	AIProbability     float64                `xorm:"notnull 'ai_probability'" json:"ai_probability"`
	DetectionMethods  []string               `xorm:"json 'detection_methods'" json:"detection_methods"`
	DetailedResults   map[string]interface{} `xorm:"json 'detailed_results'" json:"detailed_results"`

	TimesAccessed  int       `xorm:"notnull 'times_accessed'" json:"times_accessed"`
	LastAccessedAt time.Time `xorm:"notnull 'last_accessed_at'" json:"last_accessed_at"`

	ExpiresAt time.Time `xorm:"notnull index 'expires_at'" json:"expires_at"`
	CreatedAt time.Time `xorm:"created 'created_at'" json:"created_at"`
}

func (DetectionCache) TableName() string { return "detection_cache" }

type Webhook struct {
	ID     string `xorm:"pk varchar(36) 'id'" json:"id"`
	UserID string `xorm:"varchar(36) notnull index 'user_id'" json:"user_id"`

	URL    string   `xorm:"text notnull 'url'" json:"url"`
	Events []string `xorm:"json 'events'" json:"events"`
	Secret string   `xorm:"varchar(255) notnull 'secret'" json:"-"`

	IsActive        bool       `xorm:"notnull 'is_active'" json:"is_active"`
	LastTriggeredAt *time.Time `xorm:"'last_triggered_at'" json:"last_triggered_at"`
	FailureCount    int        `xorm:"notnull 'failure_count'" json:"failure_count"`

	CreatedAt time.Time `xorm:"created 'created_at'" json:"created_at"`
	UpdatedAt time.Time `xorm:"updated 'updated_at'" json:"updated_at"`
}

func (Webhook) TableName() string { return "webhooks" }

// Report is a user-filed issue against a detection. DetectionResultID is
// nulled, not deleted, when the detection goes away.
type Report struct {
	ID                string  `xorm:"pk varchar(36) 'id'" json:"id"`
	UserID            string  `xorm:"varchar(36) notnull index 'user_id'" json:"user_id"`
	DetectionResultID *string `xorm:"varchar(36) 'detection_result_id'" json:"detection_result_id"`

	ReportType  ReportType `xorm:"varchar(20) notnull 'report_type'" json:"report_type"`
	Description string     `xorm:"text notnull 'description'" json:"description"`

	Status     ReportStatus `xorm:"varchar(20) notnull index 'status'" json:"status"`
	AdminNotes string       `xorm:"text 'admin_notes'" json:"admin_notes"`

	CreatedAt time.Time `xorm:"created 'created_at'" json:"created_at"`
	UpdatedAt time.Time `xorm:"updated 'updated_at'" json:"updated_at"`
}

func (Report) TableName() string { return "reports" }

type Subscription struct {
	ID     string `xorm:"pk varchar(36) 'id'" json:"id"`
	UserID string `xorm:"varchar(36) notnull index 'user_id'" json:"user_id"`

	Provider               PaymentProvider `xorm:"varchar(20) notnull 'provider'" json:"provider"`
	ProviderSubscriptionID string          `xorm:"varchar(255) notnull unique 'provider_subscription_id'" json:"provider_subscription_id"`
	ProviderCustomerID     string          `xorm:"varchar(255) notnull 'provider_customer_id'" json:"provider_customer_id"`
	ProviderPriceID        string          `xorm:"varchar(255) 'provider_price_id'" json:"provider_price_id"`

	Tier     UserTier             `xorm:"varchar(20) notnull 'tier'" json:"tier"`
	Status   SubscriptionStatus   `xorm:"varchar(20) notnull index 'status'" json:"status"`
	Interval SubscriptionInterval `xorm:"varchar(10) notnull 'interval'" json:"interval"`

	// Minor currency units.
	Amount   int64  `xorm:"notnull 'amount'" json:"amount"`
	Currency string `xorm:"varchar(3) notnull 'currency'" json:"currency"`

	CurrentPeriodStart time.Time  `xorm:"notnull 'current_period_start'" json:"current_period_start"`
	CurrentPeriodEnd   time.Time  `xorm:"notnull index 'current_period_end'" json:"current_period_end"`
	CancelAt           *time.Time `xorm:"'cancel_at'" json:"cancel_at"`
	CanceledAt         *time.Time `xorm:"'canceled_at'" json:"canceled_at"`
	EndedAt            *time.Time `xorm:"'ended_at'" json:"ended_at"`
	TrialStart         *time.Time `xorm:"'trial_start'" json:"trial_start"`
	TrialEnd           *time.Time `xorm:"'trial_end'" json:"trial_end"`

	Metadata map[string]interface{} `xorm:"json 'metadata'" json:"metadata"`

	CreatedAt time.Time `xorm:"created 'created_at'" json:"created_at"`
	UpdatedAt time.Time `xorm:"updated 'updated_at'" json:"updated_at"`
}

func (Subscription) TableName() string { return "subscriptions" }

type Invoice struct {
	ID             string  `xorm:"pk varchar(36) 'id'" json:"id"`
	UserID         string  `xorm:"varchar(36) notnull index 'user_id'" json:"user_id"`
	SubscriptionID *string `xorm:"varchar(36) index 'subscription_id'" json:"subscription_id"`

	Provider          PaymentProvider `xorm:"varchar(20) notnull 'provider'" json:"provider"`
	ProviderInvoiceID string          `xorm:"varchar(255) notnull unique 'provider_invoice_id'" json:"provider_invoice_id"`

	Status     InvoiceStatus `xorm:"varchar(20) notnull index 'status'" json:"status"`
	Amount     int64         `xorm:"notnull 'amount'" json:"amount"`
	AmountPaid int64         `xorm:"notnull 'amount_paid'" json:"amount_paid"`
	Currency   string        `xorm:"varchar(3) notnull 'currency'" json:"currency"`

	InvoiceNumber    string `xorm:"varchar(100) 'invoice_number'" json:"invoice_number"`
	InvoicePdf       string `xorm:"text 'invoice_pdf'" json:"invoice_pdf"`
	HostedInvoiceURL string `xorm:"text 'hosted_invoice_url'" json:"hosted_invoice_url"`

	PeriodStart *time.Time `xorm:"'period_start'" json:"period_start"`
	PeriodEnd   *time.Time `xorm:"'period_end'" json:"period_end"`
	DueDate     *time.Time `xorm:"'due_date'" json:"due_date"`
	PaidAt      *time.Time `xorm:"'paid_at'" json:"paid_at"`

	Metadata map[string]interface{} `xorm:"json 'metadata'" json:"metadata"`

	CreatedAt time.Time `xorm:"created index 'created_at'" json:"created_at"`
	UpdatedAt time.Time `xorm:"updated 'updated_at'" json:"updated_at"`
}

func (Invoice) TableName() string { return "invoices" }

type Payment struct {
	ID        string  `xorm:"pk varchar(36) 'id'" json:"id"`
	UserID    string  `xorm:"varchar(36) notnull index 'user_id'" json:"user_id"`
	InvoiceID *string `xorm:"varchar(36) index 'invoice_id'" json:"invoice_id"`

	Provider                PaymentProvider `xorm:"varchar(20) notnull 'provider'" json:"provider"`
	ProviderPaymentID       string          `xorm:"varchar(255) notnull unique 'provider_payment_id'" json:"provider_payment_id"`
	ProviderPaymentIntentID string          `xorm:"varchar(255) 'provider_payment_intent_id'" json:"provider_payment_intent_id"`

	Status         PaymentStatus `xorm:"varchar(20) notnull index 'status'" json:"status"`
	Amount         int64         `xorm:"notnull 'amount'" json:"amount"`
	AmountRefunded int64         `xorm:"notnull 'amount_refunded'" json:"amount_refunded"`
	Currency       string        `xorm:"varchar(3) notnull 'currency'" json:"currency"`

	PaymentMethod string `xorm:"varchar(50) 'payment_method'" json:"payment_method"`
	Last4         string `xorm:"varchar(4) 'last_4'" json:"last_4"`
	Brand         string `xorm:"varchar(50) 'brand'" json:"brand"`

	Description string `xorm:"text 'description'" json:"description"`
	ReceiptURL  string `xorm:"text 'receipt_url'" json:"receipt_url"`

	RefundReason string     `xorm:"text 'refund_reason'" json:"refund_reason"`
	RefundedAt   *time.Time `xorm:"'refunded_at'" json:"refunded_at"`

	Metadata map[string]interface{} `xorm:"json 'metadata'" json:"metadata"`

	CreatedAt time.Time `xorm:"created index 'created_at'" json:"created_at"`
	UpdatedAt time.Time `xorm:"updated 'updated_at'" json:"updated_at"`
}

func (Payment) TableName() string { return "payments" }

type PricingPlan struct {
	ID          string   `xorm:"pk varchar(36) 'id'" json:"id"`
	Name        string   `xorm:"varchar(100) notnull 'name'" json:"name"`
	Tier        UserTier `xorm:"varchar(20) notnull unique 'tier'" json:"tier"`
	Description string   `xorm:"text 'description'" json:"description"`

	MonthlyPrice int64  `xorm:"notnull 'monthly_price'" json:"monthly_price"`
	YearlyPrice  int64  `xorm:"notnull 'yearly_price'" json:"yearly_price"`
	Currency     string `xorm:"varchar(3) notnull 'currency'" json:"currency"`

	DailyChecksLimit   int      `xorm:"notnull 'daily_checks_limit'" json:"daily_checks_limit"`
	MonthlyChecksLimit int      `xorm:"notnull 'monthly_checks_limit'" json:"monthly_checks_limit"`
	Features           []string `xorm:"json 'features'" json:"features"`

	StripePriceIDMonthly string `xorm:"varchar(255) 'stripe_price_id_monthly'" json:"stripe_price_id_monthly"`
	StripePriceIDYearly  string `xorm:"varchar(255) 'stripe_price_id_yearly'" json:"stripe_price_id_yearly"`

	IsActive     bool `xorm:"notnull index 'is_active'" json:"is_active"`
	DisplayOrder int  `xorm:"notnull 'display_order'" json:"display_order"`

	CreatedAt time.Time `xorm:"created 'created_at'" json:"created_at"`
	UpdatedAt time.Time `xorm:"updated 'updated_at'" json:"updated_at"`
}

func (PricingPlan) TableName() string { return "pricing_plans" }

type PaymentMethod struct {
	ID     string `xorm:"pk varchar(36) 'id'" json:"id"`
	UserID string `xorm:"varchar(36) notnull index 'user_id'" json:"user_id"`

	Provider                PaymentProvider `xorm:"varchar(20) notnull 'provider'" json:"provider"`
	ProviderPaymentMethodID string          `xorm:"varchar(255) notnull unique 'provider_payment_method_id'" json:"provider_payment_method_id"`

	Type        string `xorm:"varchar(50) notnull 'type'" json:"type"`
	Last4       string `xorm:"varchar(4) 'last_4'" json:"last_4"`
	Brand       string `xorm:"varchar(50) 'brand'" json:"brand"`
	ExpiryMonth int    `xorm:"'expiry_month'" json:"expiry_month"`
	ExpiryYear  int    `xorm:"'expiry_year'" json:"expiry_year"`

	IsDefault bool `xorm:"notnull 'is_default'" json:"is_default"`
	IsExpired bool `xorm:"notnull 'is_expired'" json:"is_expired"`

	CreatedAt time.Time `xorm:"created 'created_at'" json:"created_at"`
	UpdatedAt time.Time `xorm:"updated 'updated_at'" json:"updated_at"`
}

func (PaymentMethod) TableName() string { return "payment_methods" }

// All enumerates every table for schema sync.
func All() []interface{} {
	return []interface{}{
		new(User),
		new(Account),
		new(Session),
		new(DetectionResult),
		new(FrameAnalysis),
		new(UsageLog),
		new(ApiKey),
		new(DetectionCache),
		new(Webhook),
		new(Report),
		new(Subscription),
		new(Invoice),
		new(Payment),
		new(PricingPlan),
		new(PaymentMethod),
	}
}
