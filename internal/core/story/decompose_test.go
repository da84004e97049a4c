package story

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestDecomposeWellFormedStory(t *testing.T) {
	m := Decompose("As a customer, I want to cancel my order so that I get a refund")

	if m.Role != "customer" {
		t.Errorf("expected role 'customer', got %q", m.Role)
	}
	if m.Action != "cancel my order" {
		t.Errorf("expected action 'cancel my order', got %q", m.Action)
	}
	if m.Benefit != "I get a refund" {
		t.Errorf("expected benefit 'I get a refund', got %q", m.Benefit)
	}
	if m.PrimaryEntity != "order" {
		t.Errorf("expected primary entity 'order', got %q", m.PrimaryEntity)
	}
	if m.PrimaryVerb != "cancel" {
		t.Errorf("expected primary verb 'cancel', got %q", m.PrimaryVerb)
	}
}

func TestDecomposeRoleWithoutComma(t *testing.T) {
	m := Decompose("As an admin I want to view reports")

	if m.Role != "admin" {
		t.Errorf("expected role 'admin', got %q", m.Role)
	}
}

func TestDecomposeMissingBenefit(t *testing.T) {
	m := Decompose("As a user, I want to upload a file")

	if m.Action != "upload a file" {
		t.Errorf("expected action 'upload a file', got %q", m.Action)
	}
	if m.Benefit != "achieve the desired outcome" {
		t.Errorf("expected default benefit, got %q", m.Benefit)
	}
}

func TestDecomposeEmptyStory(t *testing.T) {
	m := Decompose("")

	if m.Role != "user" {
		t.Errorf("expected default role 'user', got %q", m.Role)
	}
	if m.Action != "" {
		t.Errorf("expected empty action for empty story, got %q", m.Action)
	}
	if m.Benefit != "achieve the desired outcome" {
		t.Errorf("expected default benefit, got %q", m.Benefit)
	}
	if m.PrimaryEntity != "item" {
		t.Errorf("expected fallback entity 'item', got %q", m.PrimaryEntity)
	}
	if m.PrimaryVerb != "perform" {
		t.Errorf("expected fallback verb 'perform', got %q", m.PrimaryVerb)
	}
}

func TestDecomposeFreeTextDefaultsToTruncatedAction(t *testing.T) {
	long := strings.Repeat("x", 150)
	m := Decompose(long)

	if len(m.Action) != 100 {
		t.Errorf("expected action truncated to 100 chars, got %d", len(m.Action))
	}
	if m.Role != "user" {
		t.Errorf("expected default role, got %q", m.Role)
	}
}

func TestDecomposeTruncatesOnRuneBoundaries(t *testing.T) {
	long := strings.Repeat("ü", 150)
	m := Decompose(long)

	if !utf8.ValidString(m.Action) {
		t.Errorf("expected valid UTF-8 action, got %q", m.Action)
	}
	if got := utf8.RuneCountInString(m.Action); got != 100 {
		t.Errorf("expected action truncated to 100 characters, got %d", got)
	}
}
