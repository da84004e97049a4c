package lexicon

import (
	"reflect"
	"testing"
)

func TestEntitiesFirstSeenOrder(t *testing.T) {
	entities := Entities("As a user, I want to cancel my order so the order is refunded")

	expected := []string{"user", "order"}
	if !reflect.DeepEqual(entities, expected) {
		t.Errorf("expected %v, got %v", expected, entities)
	}
}

func TestEntitiesDeduplicates(t *testing.T) {
	entities := Entities("order order order")

	if len(entities) != 1 {
		t.Errorf("expected 1 entity after dedup, got %v", entities)
	}
	if entities[0] != "order" {
		t.Errorf("expected 'order', got %q", entities[0])
	}
}

func TestEntitiesArticleFallback(t *testing.T) {
	entities := Entities("I want to frobnicate my widget")

	if len(entities) != 1 || entities[0] != "widget" {
		t.Errorf("expected ['widget'] from article fallback, got %v", entities)
	}
}

func TestEntitiesGenericFallback(t *testing.T) {
	entities := Entities("")

	if len(entities) != 1 || entities[0] != "item" {
		t.Errorf("expected ['item'] fallback, got %v", entities)
	}
}

func TestEntitiesCaseInsensitive(t *testing.T) {
	entities := Entities("Manage PRODUCTS and Orders")

	expected := []string{"PRODUCTS", "Orders"}
	if !reflect.DeepEqual(entities, expected) {
		t.Errorf("expected %v, got %v", expected, entities)
	}
}

func TestVerbsVocabularyOrder(t *testing.T) {
	// "update" precedes "delete" in the vocabulary regardless of the
	// order they appear in the action text.
	verbs := Verbs("delete and update the record")

	expected := []string{"update", "delete"}
	if !reflect.DeepEqual(verbs, expected) {
		t.Errorf("expected %v, got %v", expected, verbs)
	}
}

func TestVerbsSubstringMatch(t *testing.T) {
	verbs := Verbs("creating a booking")

	found := false
	for _, v := range verbs {
		if v == "create" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected substring match for 'create', got %v", verbs)
	}
}

func TestVerbsFallback(t *testing.T) {
	verbs := Verbs("frobnicate the widget")

	if len(verbs) != 1 || verbs[0] != "perform" {
		t.Errorf("expected ['perform'] fallback, got %v", verbs)
	}
}
