package markdown

import (
	"testing"
)

// TestOutline_BasicHeaders tests outlining with H1 and multiple H2s.
func TestOutline_BasicHeaders(t *testing.T) {
	input := `# Core Architecture

Intro text.

## Mainchain

Consensus details.

## Verification Pallets

Pallet details.
`

	outliner := NewOutliner()
	sections, err := outliner.Outline([]byte(input))
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}

	if len(sections) != 3 {
		t.Fatalf("Expected 3 sections, got %d", len(sections))
	}

	expected := []Section{
		{Title: "Core Architecture", Level: 1},
		{Title: "Mainchain", Level: 2},
		{Title: "Verification Pallets", Level: 2},
	}
	for i, want := range expected {
		if sections[i] != want {
			t.Errorf("Section %d: expected %+v, got %+v", i, want, sections[i])
		}
	}
}

// TestOutline_IgnoresDeepHeadings verifies H3 and below are not listed.
func TestOutline_IgnoresDeepHeadings(t *testing.T) {
	input := `# Title

## Section

### Subsection

Text.
`

	outliner := NewOutliner()
	sections, err := outliner.Outline([]byte(input))
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}

	if len(sections) != 2 {
		t.Errorf("Expected 2 sections, got %d", len(sections))
	}
	for _, s := range sections {
		if s.Level > 2 {
			t.Errorf("Unexpected deep section: %+v", s)
		}
	}
}

// TestOutline_NoHeadings verifies plain documents yield an empty outline.
func TestOutline_NoHeadings(t *testing.T) {
	outliner := NewOutliner()
	sections, err := outliner.Outline([]byte("Just a paragraph without structure."))
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}

	if len(sections) != 0 {
		t.Errorf("Expected empty outline, got %d sections", len(sections))
	}
}
