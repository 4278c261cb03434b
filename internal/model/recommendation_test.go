package model

import "testing"

func TestParseSelector(t *testing.T) {
	tests := []struct {
		in     string
		want   Selector
		wantOK bool
	}{
		{"openai", SelectorOpenAI, true},
		{"claude", SelectorClaude, true},
		{"both", SelectorBoth, true},
		{"", "", false},
		{"bard", "", false},
		{"OpenAI", "", false}, // case sensitive, matching the wire contract
	}

	for _, tt := range tests {
		got, ok := ParseSelector(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseSelector(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
