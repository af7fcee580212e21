package models

import (
	"testing"
	"time"
)

func TestContrastTypeValid(t *testing.T) {
	tests := []struct {
		name string
		ct   ContrastType
		want bool
	}{
		{
			name: "known contrast",
			ct:   ContrastPlosiveVoicedUnvoiced,
			want: true,
		},
		{
			name: "lateral rhotic",
			ct:   ContrastLateralRhotic,
			want: true,
		},
		{
			name: "empty string",
			ct:   ContrastType(""),
			want: false,
		},
		{
			name: "unknown value",
			ct:   ContrastType("clicks-vs-whistles"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ct.Valid(); got != tt.want {
				t.Errorf("ContrastType(%q).Valid() = %v, want %v", tt.ct, got, tt.want)
			}
		})
	}
}

func TestContrastTypeDisplayName(t *testing.T) {
	tests := []struct {
		ct   ContrastType
		want string
	}{
		{ContrastPlosiveVoicedUnvoiced, "Plosive Voiced Unvoiced"},
		{ContrastLateralRhotic, "Lateral Rhotic"},
		{ContrastNasalPlosive, "Nasal Plosive"},
	}

	for _, tt := range tests {
		t.Run(string(tt.ct), func(t *testing.T) {
			if got := tt.ct.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAllContrastTypesAreValid(t *testing.T) {
	all := AllContrastTypes()
	if len(all) != 9 {
		t.Fatalf("expected 9 contrast types, got %d", len(all))
	}
	for _, ct := range all {
		if !ct.Valid() {
			t.Errorf("contrast type %q reported invalid", ct)
		}
	}
}

func TestSessionAccuracy(t *testing.T) {
	tests := []struct {
		name    string
		session PracticeSession
		want    float64
	}{
		{
			name: "perfect accuracy",
			session: PracticeSession{
				TotalPractices:   10,
				CorrectPractices: 10,
			},
			want: 100.0,
		},
		{
			name: "half correct",
			session: PracticeSession{
				TotalPractices:   4,
				CorrectPractices: 2,
			},
			want: 50.0,
		},
		{
			name:    "no practices",
			session: PracticeSession{},
			want:    0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.Accuracy(); got != tt.want {
				t.Errorf("Accuracy() = %.2f, want %.2f", got, tt.want)
			}
		})
	}
}

func TestSessionCompleted(t *testing.T) {
	now := time.Now()

	active := PracticeSession{ID: "s1", StartTime: now}
	if active.Completed() {
		t.Error("session without end time reported completed")
	}

	ended := PracticeSession{ID: "s2", StartTime: now, EndTime: &now}
	if !ended.Completed() {
		t.Error("session with end time reported not completed")
	}
}

func TestAddContrastType(t *testing.T) {
	session := PracticeSession{}

	session.AddContrastType(ContrastPlosiveVoicedUnvoiced)
	session.AddContrastType(ContrastLateralRhotic)
	session.AddContrastType(ContrastPlosiveVoicedUnvoiced)

	if len(session.ContrastTypes) != 2 {
		t.Fatalf("expected 2 distinct contrast types, got %d", len(session.ContrastTypes))
	}
	if session.ContrastTypes[0] != ContrastPlosiveVoicedUnvoiced {
		t.Errorf("first contrast type = %q, want %q", session.ContrastTypes[0], ContrastPlosiveVoicedUnvoiced)
	}
	if session.ContrastTypes[1] != ContrastLateralRhotic {
		t.Errorf("second contrast type = %q, want %q", session.ContrastTypes[1], ContrastLateralRhotic)
	}
}

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences("")
	if prefs.ID != DefaultPreferencesID {
		t.Errorf("empty id should default to %q, got %q", DefaultPreferencesID, prefs.ID)
	}
	if prefs.CurrentLevel != 1 {
		t.Errorf("default level = %d, want 1", prefs.CurrentLevel)
	}
	if !prefs.RequireParentAuth {
		t.Error("parent auth should be required by default")
	}

	named := DefaultPreferences("profile-2")
	if named.ID != "profile-2" {
		t.Errorf("id = %q, want profile-2", named.ID)
	}
}
