package models

import (
	"strings"
	"testing"

	"deepcheck_api/models/tables"
)

func TestSignupRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     SignupRequest
		wantErr error
	}{
		{
			name:    "valid",
			req:     SignupRequest{Email: "user@example.com", Password: "password1", Name: "Alice"},
			wantErr: nil,
		},
		{
			name:    "missing email",
			req:     SignupRequest{Password: "password1", Name: "Alice"},
			wantErr: ErrEmailRequired,
		},
		{
			name:    "bad email",
			req:     SignupRequest{Email: "not-an-email", Password: "password1", Name: "Alice"},
			wantErr: ErrEmailFormat,
		},
		{
			name:    "email without tld",
			req:     SignupRequest{Email: "user@localhost", Password: "password1", Name: "Alice"},
			wantErr: ErrEmailFormat,
		},
		{
			name:    "password too short",
			req:     SignupRequest{Email: "user@example.com", Password: "short", Name: "Alice"},
			wantErr: ErrPasswordLength,
		},
		{
			name:    "password too long",
			req:     SignupRequest{Email: "user@example.com", Password: strings.Repeat("x", 49), Name: "Alice"},
			wantErr: ErrPasswordLength,
		},
		{
			name:    "password at limits",
			req:     SignupRequest{Email: "user@example.com", Password: strings.Repeat("x", 48), Name: "Alice"},
			wantErr: nil,
		},
		{
			name:    "name too short",
			req:     SignupRequest{Email: "user@example.com", Password: "password1", Name: "Al"},
			wantErr: ErrNameLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.Validate(); got != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", got, tt.wantErr)
			}
		})
	}
}

func TestSigninRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     SigninRequest
		wantErr bool
	}{
		{name: "valid", req: SigninRequest{Email: "user@example.com", Password: "whatever"}},
		// Only presence is checked on sign-in; short or odd values go to the
		// credential check and fail there.
		{name: "short password accepted", req: SigninRequest{Email: "user@example.com", Password: "x"}},
		{name: "odd email accepted", req: SigninRequest{Email: "whatever", Password: "password1"}},
		{name: "missing email", req: SigninRequest{Password: "password1"}, wantErr: true},
		{name: "missing password", req: SigninRequest{Email: "user@example.com"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.Validate(); (got != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", got, tt.wantErr)
			}
		})
	}
}

func TestDetectionIngestRequestValidate(t *testing.T) {
	valid := DetectionIngestRequest{
		Status:          tables.DetectionCompleted,
		ConfidenceLevel: tables.ConfidenceHigh,
		Frames: []FrameIngest{
			{FrameNumber: 0, FrameHash: "abc"},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	badStatus := valid
	badStatus.Status = "queued"
	if badStatus.Validate() == nil {
		t.Error("Validate() accepted unknown status")
	}

	badLevel := valid
	badLevel.ConfidenceLevel = "certain"
	if badLevel.Validate() == nil {
		t.Error("Validate() accepted unknown confidence level")
	}

	noHash := valid
	noHash.Frames = []FrameIngest{{FrameNumber: 0}}
	if noHash.Validate() == nil {
		t.Error("Validate() accepted frame without hash")
	}
}

func TestReportRequestValidate(t *testing.T) {
	ok := ReportCreateRequest{ReportType: tables.ReportBug, Description: "broken"}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	if (ReportCreateRequest{ReportType: "spam", Description: "x"}).Validate() == nil {
		t.Error("Validate() accepted unknown report type")
	}
	if (ReportCreateRequest{ReportType: tables.ReportBug}).Validate() == nil {
		t.Error("Validate() accepted empty description")
	}

	if (ReportModerateRequest{Status: tables.ReportResolved}).Validate() != nil {
		t.Error("Validate() rejected valid status")
	}
	if (ReportModerateRequest{Status: "done"}).Validate() == nil {
		t.Error("Validate() accepted unknown status")
	}
}
