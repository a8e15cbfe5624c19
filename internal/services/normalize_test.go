package services

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseKeywordList(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
		degraded bool
	}{
		{"plain json array", `["for","while"]`, []string{"for", "while"}, false},
		{"fenced json array", "```json\n[\"for\",\"while\"]\n```", []string{"for", "while"}, false},
		{"fence without language tag", "```\n[\"for\",\"while\"]\n```", []string{"for", "while"}, false},
		{"trailing comma repaired", `["for","while",]`, []string{"for", "while"}, false},
		{"carriage returns stripped", "[\"for\",\r\n\"while\",\r\n]", []string{"for", "while"}, false},
		{"bullet lines fallback", "- for\n- while\n- loops", []string{"for", "while", "loops"}, true},
		{"dot bullets fallback", "• for\n• while", []string{"for", "while"}, true},
		{"scalar string fallback", `"for\nwhile"`, []string{"for", "while"}, true},
		{"blank lines dropped", "- for\n\n- while\n", []string{"for", "while"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, degraded := ParseKeywordList(tc.raw)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
			if degraded != tc.degraded {
				t.Errorf("Expected degraded=%v, got %v", tc.degraded, degraded)
			}
		})
	}
}

func TestParseKeywordList_FencedEqualsBare(t *testing.T) {
	bare, _ := ParseKeywordList(`["for","while"]`)
	fenced, _ := ParseKeywordList("```json\n[\"for\",\"while\"]\n```")

	if !reflect.DeepEqual(bare, fenced) {
		t.Errorf("Fenced input parsed differently: %v vs %v", fenced, bare)
	}
}

func TestParseKeywordList_Idempotent(t *testing.T) {
	first, degraded := ParseKeywordList(`["for","while",]`)
	if degraded {
		t.Fatal("repairable input should not be degraded")
	}

	reserialized, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("Failed to reserialize: %v", err)
	}

	second, degraded := ParseKeywordList(string(reserialized))
	if degraded {
		t.Error("reserialized output should parse strictly")
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected %v after round trip, got %v", first, second)
	}
}

func TestParseObject_SurroundingProse(t *testing.T) {
	raw := "Here is the quiz:\n{\"title\":\"T\",\"description\":\"D\",\"questions\":[]}\nThanks!"

	var doc struct {
		Title       string            `json:"title"`
		Description string            `json:"description"`
		Questions   []json.RawMessage `json:"questions"`
	}
	if err := parseObject(raw, &doc); err != nil {
		t.Fatalf("Expected parse to succeed, got %v", err)
	}

	if doc.Title != "T" || doc.Description != "D" {
		t.Errorf("Expected title T and description D, got %q / %q", doc.Title, doc.Description)
	}
	if len(doc.Questions) != 0 {
		t.Errorf("Expected empty questions, got %d", len(doc.Questions))
	}
}

func TestParseObject_TrailingCommaRepair(t *testing.T) {
	raw := "{\"title\":\"T\",\"questions\":[\"a\",\"b\",],}"

	var doc struct {
		Title     string   `json:"title"`
		Questions []string `json:"questions"`
	}
	if err := parseObject(raw, &doc); err != nil {
		t.Fatalf("Expected repaired parse to succeed, got %v", err)
	}
	if len(doc.Questions) != 2 {
		t.Errorf("Expected 2 questions, got %d", len(doc.Questions))
	}
}

func TestParseObject_Unparseable(t *testing.T) {
	var doc map[string]interface{}
	if err := parseObject("no structure here at all", &doc); err == nil {
		t.Error("Expected an error for non-JSON input")
	}
}

func TestStripFences_KeepsInnerContent(t *testing.T) {
	raw := "```json\nline one\n```inline stays\n```\n"
	got := stripFences(raw)

	if got != "line one\n```inline stays\n" {
		t.Errorf("Unexpected fence stripping result: %q", got)
	}
}
