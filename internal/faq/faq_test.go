package faq

import "testing"

func TestFind(t *testing.T) {
	tests := []struct {
		name         string
		message      string
		wantMatched  bool
		wantCategory string
	}{
		{"pricing keyword", "what is the cost?", true, "pricing"},
		{"pricing phrase", "how much do you charge", true, "pricing"},
		{"duration", "how long does it take", true, "duration"},
		{"location", "do you do in person sessions", true, "location"},
		{"getting started", "how do i begin", true, "getting-started"},
		{"case insensitive", "PRICING please", true, "pricing"},
		{"no match", "tell me about goal setting", false, ""},
		{"empty message", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Find(tt.message)
			if ok != tt.wantMatched {
				t.Fatalf("Find(%q) matched = %v, want %v", tt.message, ok, tt.wantMatched)
			}
			if ok && m.Category != tt.wantCategory {
				t.Errorf("Find(%q) category = %q, want %q", tt.message, m.Category, tt.wantCategory)
			}
			if ok && m.Answer == "" {
				t.Errorf("Find(%q) returned empty answer", tt.message)
			}
		})
	}
}

// Earlier entries win when a message could match several.
func TestFind_DeclarationOrder(t *testing.T) {
	m, ok := Find("how much does it cost and how long does it take")
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Category != "pricing" {
		t.Errorf("category = %q, want %q (pricing is declared first)", m.Category, "pricing")
	}
}

// Substring matching fires inside longer words. That behavior is part
// of the contract, however rough.
func TestFind_SubstringNotWordBoundary(t *testing.T) {
	m, ok := Find("the fee structure")
	if !ok || m.Category != "pricing" {
		t.Fatalf("expected pricing match, got %v %v", m, ok)
	}
}

func TestFind_Idempotent(t *testing.T) {
	msg := "what are your rates"
	first, ok1 := Find(msg)
	second, ok2 := Find(msg)
	if ok1 != ok2 || first != second {
		t.Errorf("Find is not idempotent: %v/%v vs %v/%v", first, ok1, second, ok2)
	}
}
