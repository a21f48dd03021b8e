package utils

import (
	"reflect"
	"testing"
)

func TestToPascalCase(t *testing.T) {
	testCases := []struct {
		input       string
		expected    string
		description string
	}{
		{"chevron-right", "ChevronRight", "hyphenated"},
		{"message_square", "MessageSquare", "underscored"},
		{"user profile", "UserProfile", "spaced"},
		{"a/b", "AB", "slash separated"},
		{"home", "Home", "single word"},
		{"", "", "empty input"},
		{"--", "", "separators only"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := ToPascalCase(tc.input); got != tc.expected {
				t.Errorf("ToPascalCase(%q): expected %q, got %q", tc.input, tc.expected, got)
			}
		})
	}
}

func TestTitleWords(t *testing.T) {
	if got := TitleWords("message-square"); got != "Message Square" {
		t.Errorf("expected 'Message Square', got %q", got)
	}
	if got := TitleWords(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestSplitWords(t *testing.T) {
	got := SplitWords("Message-Square_Icon/x")
	expected := []string{"message", "square", "icon", "x"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestIsValidInput(t *testing.T) {
	testCases := []struct {
		input       string
		expected    bool
		description string
	}{
		{"chevron", true, "plain word"},
		{"chevron-right", true, "separators allowed"},
		{"", false, "empty rejected"},
		{"1234", false, "number-only rejected"},
		{"he@rt", false, "special chars rejected"},
		{"aaaa", false, "repetitive rejected"},
		{"aa", true, "two chars not repetitive"},
		{"utf8", true, "mixed alphanumeric allowed"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := IsValidInput(tc.input); got != tc.expected {
				t.Errorf("IsValidInput(%q): expected %v, got %v", tc.input, tc.expected, got)
			}
		})
	}
}
