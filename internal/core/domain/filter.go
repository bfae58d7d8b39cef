package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// FilterKey identifies the kind of a structured filter.
type FilterKey uint8

// Filter kinds. The set is closed; every kind must be handled by the filter engine.
const (
	FilterDepartment FilterKey = iota
	FilterTitle
	FilterCampus
	FilterDescription
	FilterCourseCode
	FilterInstructor
	FilterScheduleDays
	FilterCourseArea
	FilterMeetingTime

	// NumFilterKeys is the number of filter kinds.
	NumFilterKeys
)

var filterKeyNames = [NumFilterKeys]string{
	FilterDepartment:   "dept",
	FilterTitle:        "title",
	FilterCampus:       "campus",
	FilterDescription:  "desc",
	FilterCourseCode:   "code",
	FilterInstructor:   "instr",
	FilterScheduleDays: "days",
	FilterCourseArea:   "area",
	FilterMeetingTime:  "time",
}

// IsValid returns true if the key is one of the declared kinds.
func (k FilterKey) IsValid() bool {
	return k < NumFilterKeys
}

// String returns the short key used in the search bar, e.g. "dept".
func (k FilterKey) String() string {
	if !k.IsValid() {
		return "unknown"
	}
	return filterKeyNames[k]
}

// FilterKeys returns every filter kind in declaration order.
func FilterKeys() []FilterKey {
	all := make([]FilterKey, NumFilterKeys)
	for i := range all {
		all[i] = FilterKey(i)
	}
	return all
}

// ParseFilterKey resolves a short key such as "dept" (case-insensitive).
func ParseFilterKey(s string) (FilterKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range filterKeyNames {
		if name == s {
			return FilterKey(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFilterKey, s)
}

// FilterData is the payload of a filter. The concrete type depends on the key.
type FilterData interface {
	isFilterData()
}

// TextFilter carries free text for the text-based filter kinds.
type TextFilter struct {
	Text string `json:"text"`
}

// Weekday is a single meeting day, encoded as in the registrar's data.
type Weekday string

// Meeting days.
const (
	Monday    Weekday = "M"
	Tuesday   Weekday = "T"
	Wednesday Weekday = "W"
	Thursday  Weekday = "R"
	Friday    Weekday = "F"
	Saturday  Weekday = "S"
	Sunday    Weekday = "U"
)

// DaysFilter restricts sections to those meeting on the given days.
type DaysFilter struct {
	Days []Weekday `json:"days"`
}

// MeetingTimeFilter restricts sections to a window of minutes since midnight.
type MeetingTimeFilter struct {
	Start int `json:"startTime"`
	End   int `json:"endTime"`
}

// AreaFilter restricts sections to a course area.
type AreaFilter struct {
	Area *string `json:"area"`
}

// CampusFilter restricts sections to a campus.
type CampusFilter struct {
	Campus School `json:"campus"`
}

func (TextFilter) isFilterData()        {}
func (DaysFilter) isFilterData()        {}
func (MeetingTimeFilter) isFilterData() {}
func (AreaFilter) isFilterData()        {}
func (CampusFilter) isFilterData()      {}

// Filter is a structured predicate over sections. A nil Data is the null
// payload: the filter is inert and always passes.
type Filter struct {
	Key  FilterKey
	Data FilterData
}

// Text returns the text payload and whether one is present.
func (f Filter) Text() (string, bool) {
	tf, ok := f.Data.(TextFilter)
	if !ok {
		return "", false
	}
	return tf.Text, true
}

// String renders the filter in search-bar syntax.
func (f Filter) String() string {
	switch d := f.Data.(type) {
	case nil:
		return f.Key.String() + ":"
	case TextFilter:
		return f.Key.String() + ":" + d.Text
	case DaysFilter:
		var b strings.Builder
		for _, day := range d.Days {
			b.WriteString(string(day))
		}
		return f.Key.String() + ":" + b.String()
	case MeetingTimeFilter:
		return fmt.Sprintf("%s:%s-%s", f.Key, formatClock(d.Start), formatClock(d.End))
	case AreaFilter:
		if d.Area == nil {
			return f.Key.String() + ":"
		}
		return f.Key.String() + ":" + *d.Area
	case CampusFilter:
		return f.Key.String() + ":" + string(d.Campus)
	default:
		return f.Key.String() + ":?"
	}
}

// ParseFilter builds a filter from search-bar syntax "key:value".
// An empty value yields a filter with the null payload.
func ParseFilter(s string) (Filter, error) {
	name, value, ok := strings.Cut(s, ":")
	if !ok {
		return Filter{}, fmt.Errorf("%w: expected key:value, got %q", ErrInvalidFilter, s)
	}

	key, err := ParseFilterKey(name)
	if err != nil {
		return Filter{}, err
	}

	if value == "" {
		return Filter{Key: key}, nil
	}

	switch key {
	case FilterDepartment, FilterTitle, FilterDescription, FilterCourseCode, FilterInstructor:
		return Filter{Key: key, Data: TextFilter{Text: value}}, nil
	case FilterScheduleDays:
		days, err := parseDays(value)
		if err != nil {
			return Filter{}, err
		}
		return Filter{Key: key, Data: DaysFilter{Days: days}}, nil
	case FilterMeetingTime:
		start, end, err := parseTimeRange(value)
		if err != nil {
			return Filter{}, err
		}
		return Filter{Key: key, Data: MeetingTimeFilter{Start: start, End: end}}, nil
	case FilterCourseArea:
		area := value
		return Filter{Key: key, Data: AreaFilter{Area: &area}}, nil
	case FilterCampus:
		return Filter{Key: key, Data: CampusFilter{Campus: School(strings.ToUpper(value))}}, nil
	default:
		return Filter{}, fmt.Errorf("%w: %q", ErrUnknownFilterKey, name)
	}
}

func parseDays(s string) ([]Weekday, error) {
	days := make([]Weekday, 0, len(s))
	for _, r := range strings.ToUpper(s) {
		day := Weekday(string(r))
		switch day {
		case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
			days = append(days, day)
		default:
			return nil, fmt.Errorf("%w: unknown day %q", ErrInvalidFilter, string(r))
		}
	}
	return days, nil
}

// parseTimeRange parses "HH:MM-HH:MM" into minutes since midnight.
func parseTimeRange(s string) (int, int, error) {
	from, to, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, fmt.Errorf("%w: expected HH:MM-HH:MM, got %q", ErrInvalidFilter, s)
	}
	start, err := parseClock(from)
	if err != nil {
		return 0, 0, err
	}
	end, err := parseClock(to)
	if err != nil {
		return 0, 0, err
	}
	if end < start {
		return 0, 0, fmt.Errorf("%w: time range ends before it starts", ErrInvalidFilter)
	}
	return start, end, nil
}

func parseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("%w: bad clock time %q", ErrInvalidFilter, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 24 {
		return 0, fmt.Errorf("%w: bad hour %q", ErrInvalidFilter, hh)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: bad minute %q", ErrInvalidFilter, mm)
	}
	return h*60 + m, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
