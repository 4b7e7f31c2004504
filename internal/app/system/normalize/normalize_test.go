package normalize

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Rahim Uddin", "Rahim Uddin"},
		{"  Rahim Uddin  ", "Rahim Uddin"},
		{"", ""},
		{"   ", ""},
		{"UPPERCASE NAME", "UPPERCASE NAME"}, // Name preserves case
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Name(tt.input); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"approved", "approved"},
		{"APPROVED", "approved"},
		{"  Pending  ", "pending"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Status(tt.input); got != tt.want {
				t.Errorf("Status(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPaymentStatus(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"paid", "Paid"},
		{"PAID", "Paid"},
		{"  pending ", "Pending"},
		{"Waived", "Waived"},
		{"unknown", "unknown"}, // passes through for the caller to reject
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := PaymentStatus(tt.input); got != tt.want {
				t.Errorf("PaymentStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMonthLabel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"August 2025", "August 2025"},
		{"  August   2025  ", "August 2025"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := MonthLabel(tt.input); got != tt.want {
				t.Errorf("MonthLabel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestQueryParam(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"search term", "search term"},
		{"  trimmed  ", "trimmed"},
		{"", ""},
		{"UPPERCASE", "UPPERCASE"}, // preserves case
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := QueryParam(tt.input); got != tt.want {
				t.Errorf("QueryParam(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
