package validate

import (
	"strings"
	"testing"
)

// TestHostNameFormat tests HostNameFormat function
func TestHostNameFormat(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		description string
	}{
		// Valid names
		{
			name:        "simple name",
			input:       "db1",
			expectError: false,
			description: "simple alphanumeric name should be valid",
		},
		{
			name:        "fully qualified name",
			input:       "db-1.example.com",
			expectError: false,
			description: "dotted names with hyphens should be valid",
		},
		{
			name:        "underscore and mixed case",
			input:       "Galera_Node_1",
			expectError: false,
			description: "cloud inventory names should be valid",
		},
		{
			name:        "ipv4 literal",
			input:       "10.0.0.1",
			expectError: false,
			description: "IPv4 addresses should be valid",
		},
		{
			name:        "ipv6 literal",
			input:       "fe80::1",
			expectError: false,
			description: "IPv6 addresses should be valid",
		},

		// Invalid names
		{
			name:        "empty string",
			input:       "",
			expectError: true,
			description: "empty string should be invalid",
		},
		{
			name:        "space",
			input:       "db 1",
			expectError: true,
			description: "names with spaces should be invalid",
		},
		{
			name:        "slash",
			input:       "db/1",
			expectError: true,
			description: "names with / should be invalid",
		},
		{
			name:        "starts with hyphen",
			input:       "-db",
			expectError: true,
			description: "names starting with hyphen should be invalid",
		},
		{
			name:        "ends with dot",
			input:       "db.",
			expectError: true,
			description: "names ending with dot should be invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HostNameFormat(tt.input)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for input '%s' (%s), but got none", tt.input, tt.description)
				}
			} else {
				if err != nil {
					t.Errorf("Expected no error for input '%s' (%s), but got: %v", tt.input, tt.description, err)
				}
			}
		})
	}
}

// TestHostNameFormatErrorMessages tests specific error messages
func TestHostNameFormatErrorMessages(t *testing.T) {
	tests := []struct {
		input            string
		expectedContains string
		description      string
	}{
		{
			input:            "",
			expectedContains: "cannot be empty",
			description:      "empty string should mention empty",
		},
		{
			input:            "db@host",
			expectedContains: "must contain only letters",
			description:      "special characters should mention allowed characters",
		},
		{
			input:            "-db",
			expectedContains: "cannot start or end",
			description:      "starting with hyphen should mention start/end rule",
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			err := HostNameFormat(tt.input)
			if err == nil {
				t.Errorf("Expected error for input '%s', but got none", tt.input)
				return
			}

			if !strings.Contains(err.Error(), tt.expectedContains) {
				t.Errorf("Expected error message to contain '%s', but got: %s", tt.expectedContains, err.Error())
			}
		})
	}
}

// TestValidateOneOf tests enumerated option values
func TestValidateOneOf(t *testing.T) {
	tests := []struct {
		value       string
		expectError bool
	}{
		{value: "always", expectError: false},
		{value: "never", expectError: false},
		{value: "", expectError: false},
		{value: "sometimes", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := ValidateOneOf(tt.value, "always", "never", "auto")
			if tt.expectError && err == nil {
				t.Errorf("Expected error for '%s', but got none", tt.value)
			}
			if !tt.expectError && err != nil {
				t.Errorf("Expected no error for '%s', but got: %v", tt.value, err)
			}
		})
	}
}

// BenchmarkHostNameFormat benchmarks the validation function
func BenchmarkHostNameFormat(b *testing.B) {
	testNames := []string{
		"db-1.example.com",
		"10.0.0.1",
		"invalid name",
		"-invalid",
		"",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, name := range testNames {
			HostNameFormat(name)
		}
	}
}
