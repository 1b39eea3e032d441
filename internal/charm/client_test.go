// ABOUTME: Unit tests for Charm credential key handling.
package charm

import "testing"

func TestCredentialKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"athlete token", "athleteToken", "credential:athleteToken"},
		{"trainer id", "trainerId", "credential:trainerId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CredentialKey(tt.key); got != tt.want {
				t.Errorf("CredentialKey(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestExtractKey(t *testing.T) {
	full := CredentialKey("athleteId")
	if got := extractKey(full); got != "athleteId" {
		t.Errorf("extractKey(%q) = %q, want athleteId", full, got)
	}
}
