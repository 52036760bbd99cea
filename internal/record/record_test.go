package record

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNewID(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	id := NewID(now)
	if id != now.UnixMilli() {
		t.Errorf("expected id %d, got %d", now.UnixMilli(), id)
	}
}

func TestDuplicate(t *testing.T) {
	orig := Case{
		ID:               1700000000000,
		AssessmentType:   AssessmentCBD,
		Date:             "2024-01-10",
		Time:             "Night",
		Urgency:          "Emergency",
		OperationType:    "General Surgery",
		AnaestheticType:  "Spinal",
		SupervisionLevel: "Autonomous (Level 4)",
		Procedure:        "Emergency laparotomy",
		Supervisor:       "Dr Smith",
		Notes:            "difficult airway",
		Reflection:       "went well",
		Learning:         "review DAS guidelines",
		CBDScores:        map[string]string{"Communication": "Excellent"},
		LinkedTo:         []string{"EPA3 - Safe Conduct of Anaesthesia"},
		Completed:        true,
		Exported:         true,
	}

	now := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	dup := orig.Duplicate(now)

	if dup.ID == orig.ID {
		t.Error("duplicate kept the original id")
	}
	if dup.Date != "2024-02-01" {
		t.Errorf("expected date reset to today, got %s", dup.Date)
	}
	if dup.Completed || dup.Exported {
		t.Error("duplicate must clear both status flags")
	}

	// Everything else carries over.
	want := orig
	want.ID = dup.ID
	want.Date = dup.Date
	want.Completed = false
	want.Exported = false
	if diff := cmp.Diff(want, dup); diff != "" {
		t.Errorf("duplicate fields mismatch (-want +got):\n%s", diff)
	}

	// Maps and slices must be copies, not aliases.
	dup.CBDScores["Communication"] = "changed"
	if orig.CBDScores["Communication"] != "Excellent" {
		t.Error("duplicate aliases the original rating map")
	}
	dup.LinkedTo[0] = "changed"
	if orig.LinkedTo[0] != "EPA3 - Safe Conduct of Anaesthesia" {
		t.Error("duplicate aliases the original link slice")
	}
}

func TestLegacyDocumentWithoutExportedFlag(t *testing.T) {
	raw := `{"id": 1, "date": "2024-01-10", "completed": true}`
	var c Case
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if c.Exported {
		t.Error("records written before the exported flag must load as false")
	}
	if !c.Completed {
		t.Error("completed flag lost")
	}
}

func TestRatingAreas(t *testing.T) {
	tests := []struct {
		typ  string
		want int
	}{
		{AssessmentCBD, len(CBDAreas)},
		{AssessmentCEX, len(CEXAreas)},
		{AssessmentCase, 0},
		{AssessmentDOPS, 0},
		{"", 0},
	}
	for _, tt := range tests {
		c := Case{AssessmentType: tt.typ}
		if got := len(c.RatingAreas()); got != tt.want {
			t.Errorf("RatingAreas(%q): expected %d areas, got %d", tt.typ, tt.want, got)
		}
	}
}

func TestAssessmentLabelFallback(t *testing.T) {
	if got := AssessmentLabel("nonsense"); got != "Clinical Case" {
		t.Errorf("expected fallback label Clinical Case, got %q", got)
	}
	if got := AssessmentLabel(AssessmentCBD); got != "CBD - Case-Based Discussion" {
		t.Errorf("unexpected CBD label %q", got)
	}
}
