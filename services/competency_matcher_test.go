package services

import (
	"reflect"
	"testing"
)

func TestCompetencyMatcherMatch(t *testing.T) {
	var matcher CompetencyMatcher

	tests := []struct {
		name        string
		have        []string
		required    []string
		satisfied   bool
		wantMissing []string
	}{
		{
			name:      "empty required is always satisfied",
			have:      []string{"SAP"},
			required:  nil,
			satisfied: true,
		},
		{
			name:      "exact subset",
			have:      []string{"SAP", "ABAP"},
			required:  []string{"SAP"},
			satisfied: true,
		},
		{
			name:      "full set required",
			have:      []string{"SAP", "ABAP"},
			required:  []string{"ABAP", "SAP"},
			satisfied: true,
		},
		{
			name:        "one missing",
			have:        []string{"SAP", "ABAP"},
			required:    []string{"SAP", "Kotlin"},
			satisfied:   false,
			wantMissing: []string{"Kotlin"},
		},
		{
			name:        "all missing with empty have",
			have:        nil,
			required:    []string{"SAP", "Kotlin"},
			satisfied:   false,
			wantMissing: []string{"SAP", "Kotlin"},
		},
		{
			name:        "missing preserves required order",
			have:        []string{"ABAP"},
			required:    []string{"Kotlin", "SAP"},
			satisfied:   false,
			wantMissing: []string{"Kotlin", "SAP"},
		},
		{
			name:        "duplicate required reported once",
			have:        []string{"SAP"},
			required:    []string{"Kotlin", "Kotlin", "SAP"},
			satisfied:   false,
			wantMissing: []string{"Kotlin"},
		},
		{
			name:        "matching is case sensitive",
			have:        []string{"sap"},
			required:    []string{"SAP"},
			satisfied:   false,
			wantMissing: []string{"SAP"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			satisfied, missing := matcher.Match(tt.have, tt.required)
			if satisfied != tt.satisfied {
				t.Fatalf("satisfied = %v, want %v", satisfied, tt.satisfied)
			}
			if !reflect.DeepEqual(missing, tt.wantMissing) {
				t.Fatalf("missing = %v, want %v", missing, tt.wantMissing)
			}
			if satisfied != (len(missing) == 0) {
				t.Fatal("missing must be empty exactly when satisfied")
			}
		})
	}
}
