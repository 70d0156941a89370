package match

import (
	"reflect"
	"testing"
)

func TestExtractEmails(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single email in surrounding text",
			text: "Contact me at mol7@kent.ac.uk",
			want: []string{"mol7@kent.ac.uk"},
		},
		{
			name: "multiple emails in order of appearance",
			text: "cc a.b+c@example.com and d_e@sub.example.org please",
			want: []string{"a.b+c@example.com", "d_e@sub.example.org"},
		},
		{
			name: "no match returns nil",
			text: "no addresses here",
			want: nil,
		},
		{
			name: "domain without dot is not an email",
			text: "user@localhost",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractEmails(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ExtractEmails(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"(123) 456-7890", true},
		{"(123)456-7890", true},
		{"123-456-7890", true},
		{"456-7890", true},
		{"1234567890", false},
		{"123 456 7890", false},
		{"(123) 456-789", false},
		{"123-456-7890 ext 5", false},
		{"123-456-7890\n", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			if got := ValidatePhone(tt.phone); got != tt.want {
				t.Fatalf("ValidatePhone(%q) = %v, want %v", tt.phone, got, tt.want)
			}
		})
	}
}
