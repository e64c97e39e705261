package planner

import "testing"

func TestSegment(t *testing.T) {
	t.Run("HeadingsInOrderOfAppearance", func(t *testing.T) {
		text := "Summary: Eat well.\nWorkout Plan:\n- pushups\nTips:\n- drink water"

		sections := Segment(text)
		if len(sections) != 3 {
			t.Fatalf("Expected 3 sections, got %d: %+v", len(sections), sections)
		}

		titles := []string{"Summary", "Workout Plan", "Tips"}
		for i, want := range titles {
			if sections[i].Title != want {
				t.Errorf("Expected section %d titled %q, got %q", i, want, sections[i].Title)
			}
		}

		lines := FormatLines(sections[1].Content)
		if len(lines) != 1 {
			t.Fatalf("Expected exactly one line in Workout Plan, got %d", len(lines))
		}
		if !lines[0].IsBullet() || lines[0].Text != "pushups" {
			t.Errorf("Expected one bullet 'pushups', got %+v", lines[0])
		}
	})

	t.Run("WhitespaceOnlySectionDropped", func(t *testing.T) {
		sections := Segment("Summary:\n\nTips:\n- x")
		if len(sections) != 1 {
			t.Fatalf("Expected 1 section, got %d: %+v", len(sections), sections)
		}
		if sections[0].Title != "Tips" {
			t.Errorf("Expected 'Tips', got %q", sections[0].Title)
		}
		if sections[0].Content != "- x" {
			t.Errorf("Expected content '- x', got %q", sections[0].Content)
		}
	})

	t.Run("ContentBeforeFirstHeadingGetsDefaultTitle", func(t *testing.T) {
		sections := Segment("Here is your plan.\nTips:\n- rest")
		if len(sections) != 2 {
			t.Fatalf("Expected 2 sections, got %d", len(sections))
		}
		if sections[0].Title != "Plan" {
			t.Errorf("Expected default title 'Plan', got %q", sections[0].Title)
		}
		if sections[0].Content != "Here is your plan." {
			t.Errorf("Unexpected default section content %q", sections[0].Content)
		}
	})

	t.Run("CaseInsensitiveHeadings", func(t *testing.T) {
		sections := Segment("WORKOUT PLAN:\n- squats")
		if len(sections) != 1 {
			t.Fatalf("Expected 1 section, got %d", len(sections))
		}
		if sections[0].Title != "WORKOUT PLAN" {
			t.Errorf("Expected heading casing preserved, got %q", sections[0].Title)
		}
	})

	t.Run("NonHeadingLinesKeptVerbatim", func(t *testing.T) {
		sections := Segment("Motivation:\nline one\n  indented two")
		if len(sections) != 1 {
			t.Fatalf("Expected 1 section, got %d", len(sections))
		}
		if sections[0].Content != "line one\n  indented two" {
			t.Errorf("Expected verbatim content, got %q", sections[0].Content)
		}
	})

	t.Run("EmptyInput", func(t *testing.T) {
		if sections := Segment(""); len(sections) != 0 {
			t.Errorf("Expected no sections for empty input, got %+v", sections)
		}
	})
}

func TestFormatLine(t *testing.T) {
	cases := []struct {
		in       string
		isBullet bool
		text     string
	}{
		{"- pushups", true, "pushups"},
		{"* squats", true, "squats"},
		{"1. warm up", true, "warm up"},
		{"12. cool down", true, "cool down"},
		{"  - indented bullet", true, "indented bullet"},
		{"plain paragraph", false, "plain paragraph"},
		{"  trimmed paragraph  ", false, "trimmed paragraph"},
	}

	for _, tc := range cases {
		got := FormatLine(tc.in)
		if got.IsBullet() != tc.isBullet {
			t.Errorf("FormatLine(%q): expected bullet=%v, got %v", tc.in, tc.isBullet, got.IsBullet())
		}
		if got.Text != tc.text {
			t.Errorf("FormatLine(%q): expected text %q, got %q", tc.in, tc.text, got.Text)
		}
	}
}

func TestFormatLinesSkipsBlankLines(t *testing.T) {
	lines := FormatLines("- a\n\n- b\n   \n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "a" || lines[1].Text != "b" {
		t.Errorf("Unexpected lines: %+v", lines)
	}
}
