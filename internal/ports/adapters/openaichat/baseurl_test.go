package openaichat

import "testing"

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		name         string
		baseURL      string
		allowedHosts []string
		wantErr      bool
	}{
		{
			name:    "default host with https",
			baseURL: "https://api.openai.com/v1",
		},
		{
			name:    "empty defaults to api.openai.com",
			baseURL: "",
		},
		{
			name:    "reject non-absolute URL",
			baseURL: "api.openai.com",
			wantErr: true,
		},
		{
			name:    "reject http by default",
			baseURL: "http://api.openai.com/v1",
			wantErr: true,
		},
		{
			name:    "reject unknown host by default",
			baseURL: "https://evil.example/v1",
			wantErr: true,
		},
		{
			name:         "allow configured host",
			baseURL:      "https://proxy.internal/v1",
			allowedHosts: []string{"proxy.internal"},
		},
		{
			name:    "reject query",
			baseURL: "https://api.openai.com/v1?x=1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBaseURL(tt.baseURL, tt.allowedHosts)
			if tt.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNormalizeAllowedHosts_DefaultWhenEmpty(t *testing.T) {
	out := normalizeAllowedHosts([]string{" ", "https://", "http://"})
	if len(out) != len(defaultAllowedHosts) {
		t.Fatalf("expected default allowed hosts, got %v", out)
	}
}
