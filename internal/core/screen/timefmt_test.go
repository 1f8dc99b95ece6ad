package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime_24Hour(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"01:15 pm", "13:15"},
		{"12:00 am", "00:00"},
		{"12:30 pm", "12:30"},
		{"09:05 am", "09:05"},
		{"06:17 PM", "18:17"},
		{"5:52 am", "05:52"},
		{"11:59 pm", "23:59"},
		{"12:01 AM", "00:01"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTime(tt.input, true))
		})
	}
}

func TestFormatTime_Disabled(t *testing.T) {
	inputs := []string{"01:15 pm", "12:00 am", "", "garbage", "18:30", "7:5 pm"}

	for _, input := range inputs {
		assert.Equal(t, input, FormatTime(input, false))
	}
}

func TestFormatTime_EdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"already 24 hour", "18:30", "18:30"},
		{"unknown suffix leaves hour", "7:5 xm", "07:05"},
		{"no suffix pads", "7:05", "07:05"},
		{"pm with hour already above 12", "13:10 pm", "13:10"},
		{"non numeric hour kept", "ab:cd pm", "ab:cd"},
		{"missing minutes", "7 pm", "19:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTime(tt.input, true))
		})
	}
}
