package domain

import (
	"fmt"
	"strings"
)

// School identifies a member institution of the consortium.
type School string

// Known schools.
const (
	SchoolHarveyMudd  School = "HMC"
	SchoolPomona      School = "POM"
	SchoolScripps     School = "SCR"
	SchoolClaremontMK School = "CMC"
	SchoolPitzer      School = "PTZ"
	SchoolCGU         School = "CGU"
	SchoolKGI         School = "KGI"
	SchoolUnknown     School = "Unknown"
)

// SectionIdentifier uniquely identifies a section within the catalog.
type SectionIdentifier struct {
	// Department is the department code, e.g. "CSCI".
	Department string `json:"department"`

	// CourseNumber is the numeric course number, e.g. 5 for CSCI 005.
	CourseNumber int `json:"courseNumber"`

	// Suffix is the optional letter suffix after the course number.
	Suffix string `json:"suffix"`

	// Affiliation is the school code the section is offered under.
	Affiliation string `json:"affiliation"`

	// SectionNumber distinguishes sections of the same course.
	SectionNumber int `json:"sectionNumber"`

	// Year is the calendar year of the term.
	Year int `json:"year"`

	// Term is the season of the term.
	Term TermSeason `json:"term"`
}

// TermID returns the term this section belongs to.
func (id SectionIdentifier) TermID() TermIdentifier {
	return TermIdentifier{Year: id.Year, Term: id.Term}
}

// Code returns the canonical section code, e.g. "CSCI 005 HM-01".
// An empty department is omitted, and an empty affiliation drops the
// "AFF-" prefix in front of the section number.
func (id SectionIdentifier) Code() string {
	var b strings.Builder
	if id.Department != "" {
		b.WriteString(id.Department)
		b.WriteByte(' ')
	}
	b.WriteString(padNumber(id.CourseNumber, 3))
	b.WriteString(id.Suffix)
	b.WriteByte(' ')
	if id.Affiliation != "" {
		b.WriteString(id.Affiliation)
		b.WriteByte('-')
	}
	b.WriteString(padNumber(id.SectionNumber, 2))
	return b.String()
}

// LongCode returns the section code qualified by term, e.g. "CSCI 005 HM-01 FA2023".
// It is unique across the whole catalog.
func (id SectionIdentifier) LongCode() string {
	return id.Code() + " " + id.TermID().String()
}

// PaddedCourseNumber returns the course number zero-padded to three digits.
func (id SectionIdentifier) PaddedCourseNumber() string {
	return padNumber(id.CourseNumber, 3)
}

// CodeSegments returns the lower-cased positional parts of the section code
// (department, padded number, suffix, affiliation, padded section number)
// with empty parts removed.
func (id SectionIdentifier) CodeSegments() []string {
	all := [...]string{
		strings.ToLower(id.Department),
		padNumber(id.CourseNumber, 3),
		strings.ToLower(id.Suffix),
		strings.ToLower(id.Affiliation),
		padNumber(id.SectionNumber, 2),
	}
	segments := make([]string, 0, len(all))
	for _, s := range all {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

func padNumber(n, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}

// Course is the catalog entry a section is an offering of.
type Course struct {
	// Title is the human-readable course title.
	Title string `json:"title"`

	// Description is the catalog description.
	Description string `json:"description"`

	// PrimaryAssociation is the school that owns the course.
	PrimaryAssociation School `json:"primaryAssociation"`

	// CourseAreas lists the requirement-area codes the course satisfies.
	CourseAreas []string `json:"courseAreas,omitempty"`
}

// Instructor teaches a section.
type Instructor struct {
	// Name is the display name.
	Name string `json:"name"`
}

// Section is one scheduled offering of a course. The search engine treats
// it as read-only input and never mutates it.
type Section struct {
	// Identifier is the unique section identifier.
	Identifier SectionIdentifier `json:"identifier"`

	// Course is the parent course.
	Course Course `json:"course"`

	// Instructors lists who teaches the section, in catalog order.
	Instructors []Instructor `json:"instructors"`

	// Credits is the number of credits awarded.
	Credits float64 `json:"credits,omitempty"`

	// Campus is where the section meets.
	Campus School `json:"campus,omitempty"`
}

// InstructorNames returns the instructor display names in order.
func (s *Section) InstructorNames() []string {
	names := make([]string, len(s.Instructors))
	for i, instr := range s.Instructors {
		names[i] = instr.Name
	}
	return names
}
