// Package patient holds the demographic and study metadata shown in the
// viewer's side panel, and a service that publishes an event whenever the
// loaded study changes so views can refresh themselves.
package patient

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Patient is the demographic record a study belongs to.
type Patient struct {
	ID uuid.UUID
	// Name in DICOM person-name form, e.g. "DOE^JANE".
	Name      string
	MRN       string
	Sex       string
	BirthDate time.Time
}

// Study is one imaging study for a patient.
type Study struct {
	ID          uuid.UUID
	Description string
	Date        time.Time
	Modality    string
	Series      []Series
	// SeriesCount is the number of series in the study; InstanceCount the
	// total images across them. Kept alongside Series because a study's
	// counts are often known before its series metadata has arrived.
	SeriesCount   int
	InstanceCount int
}

// Series is one acquisition within a study.
type Series struct {
	Number        int
	Description   string
	InstanceCount int
}

// Summary combines a patient with their currently loaded study for display.
type Summary struct {
	Patient Patient
	Study   Study
}

// DisplayName renders the DICOM person name for humans: "DOE^JANE" becomes
// "Doe, Jane". Names without a caret are passed through untouched.
func (s Summary) DisplayName() string {
	family, given, found := strings.Cut(s.Patient.Name, "^")
	if !found {
		return s.Patient.Name
	}
	return fmt.Sprintf("%s, %s", title(family), title(given))
}

// Age renders the patient's age at the time of the study, e.g. "58Y". Empty
// when either date is unknown.
func (s Summary) Age() string {
	if s.Patient.BirthDate.IsZero() || s.Study.Date.IsZero() {
		return ""
	}
	years := s.Study.Date.Year() - s.Patient.BirthDate.Year()
	// birthday not yet reached in the study year
	anniversary := s.Patient.BirthDate.AddDate(years, 0, 0)
	if anniversary.After(s.Study.Date) {
		years--
	}
	if years < 0 {
		return ""
	}
	return fmt.Sprintf("%dY", years)
}

// Demographics is the one-line "sex, age, MRN" string shown beneath the
// patient name.
func (s Summary) Demographics() string {
	parts := make([]string, 0, 3)
	if s.Patient.Sex != "" {
		parts = append(parts, s.Patient.Sex)
	}
	if age := s.Age(); age != "" {
		parts = append(parts, age)
	}
	if s.Patient.MRN != "" {
		parts = append(parts, "MRN "+s.Patient.MRN)
	}
	return strings.Join(parts, " · ")
}

// StudyLine summarises the loaded study: date, modality, and image counts.
func (s Summary) StudyLine() string {
	if s.Study.ID == uuid.Nil {
		return ""
	}
	return fmt.Sprintf("%s %s · %d series · %d images",
		s.Study.Date.Format("2006-01-02"),
		s.Study.Modality,
		s.Study.SeriesCount,
		s.Study.InstanceCount,
	)
}

func title(s string) string {
	s = strings.ToLower(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
