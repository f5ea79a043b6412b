package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "arabic yes", input: "نعم", expected: true},
		{name: "arabic informal", input: "اوكي", expected: true},
		{name: "english", input: "yes", expected: true},
		{name: "uppercase", input: "YES", expected: true},
		{name: "mixed case", input: "Ok", expected: true},
		{name: "padded", input: "  تمام  ", expected: true},
		{name: "cancel keyword", input: "لا", expected: false},
		{name: "ordinary text", input: "كم السعر؟", expected: false},
		{name: "keyword inside a sentence is not a match", input: "نعم ولكن", expected: false},
		{name: "empty", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsConfirm(tt.input))
		})
	}
}

func TestIsCancel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "arabic no", input: "لا", expected: true},
		{name: "arabic reject", input: "ارفض", expected: true},
		{name: "english", input: "no", expected: true},
		{name: "uppercase", input: "CANCEL", expected: true},
		{name: "confirm keyword", input: "نعم", expected: false},
		{name: "ordinary text", input: "شكرا", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCancel(tt.input))
		})
	}
}

// No text can be both a confirmation and a cancellation
func TestKeywordSetsAreDisjoint(t *testing.T) {
	for _, kw := range ConfirmKeywords {
		assert.False(t, IsCancel(kw), "confirm keyword %q must not cancel", kw)
	}
	for _, kw := range CancelKeywords {
		assert.False(t, IsConfirm(kw), "cancel keyword %q must not confirm", kw)
	}
}
