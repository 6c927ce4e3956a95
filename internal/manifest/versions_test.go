package manifest

import (
	"strings"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
		wantErr bool
	}{
		{"plain", "1.0.0", "1.0.0", false},
		{"v prefix", "v1.2.3", "1.2.3", false},
		{"prerelease", "1.0.0-beta.1", "1.0.0-beta.1", false},
		{"not a version", "notaversion", "", true},
		{"dev build", "dev", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseVersion(tt.version)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.String() != tt.want {
				t.Errorf("ParseVersion(%q) = %s, want %s", tt.version, v, tt.want)
			}
		})
	}
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		spec    string
		wantErr bool
	}{
		{"^1.2.0", false},
		{"~4.19.3", false},
		{">=3.22 <4", false},
		{"1.x", false},
		{"", true},
		{"   ", true},
		{"latest", true},
		{"^one.two", true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			err := ValidateRange(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRange(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDependencies(t *testing.T) {
	ok := map[string]string{"zod": "^3.22.4", "@modelcontextprotocol/sdk": "^1.2.0"}
	if err := ValidateDependencies(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := map[string]string{"zod": "^3.22.4", "tsx": "whenever"}
	err := ValidateDependencies(bad)
	if err == nil {
		t.Fatal("expected error for invalid range")
	}
	if !strings.Contains(err.Error(), "tsx") {
		t.Errorf("error should name the package, got: %v", err)
	}
}
