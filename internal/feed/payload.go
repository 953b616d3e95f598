package feed

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is the focal point of a body-map post, in the client's body-chart
// coordinate space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// bodyMapSep separates the free-text note from the "x&y" coordinate pair
// in the legacy body-map message encoding.
const bodyMapSep = "~"

// EncodeBodyMap renders a body-map note in the legacy wire form
// "text~x&y".
func EncodeBodyMap(text string, p Point) string {
	return text + bodyMapSep + formatCoord(p.X) + "&" + formatCoord(p.Y)
}

// DecodeBodyMap splits a legacy body-map message into its free-text note
// and focal point. Messages without a parseable "~x&y" suffix are returned
// unchanged with a nil point.
func DecodeBodyMap(message string) (string, *Point) {
	i := strings.LastIndex(message, bodyMapSep)
	if i < 0 {
		return message, nil
	}
	xs, ys, ok := strings.Cut(message[i+1:], "&")
	if !ok {
		return message, nil
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if errX != nil || errY != nil {
		return message, nil
	}
	return message[:i], &Point{X: x, Y: y}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// IncidentSections is the structured body of an incident/accident report.
// The field order mirrors the numbered sections of the paper form.
type IncidentSections struct {
	Reporting        string `json:"reporting"`         // 1.1
	OccurredAt       string `json:"occurred_at"`       // 1.2
	Location         string `json:"location"`          // 1.3
	Description      string `json:"description"`       // 1.4
	IncidentCategory string `json:"incident_category"` // 1.5
	Witnesses        string `json:"witnesses"`         // 1.6
	PersonInvolved   string `json:"person_involved"`   // 2.1
	InjuryType       string `json:"injury_type"`       // 2.2
	Treatment        string `json:"treatment"`         // 2.3
	ReturnedToWork   string `json:"returned_to_work"`  // 2.4
	AbsenceDuration  string `json:"absence_duration"`  // 2.5
	CompletedBy      string `json:"completed_by"`      // 3.1
	CompletedOn      string `json:"completed_on"`      // 3.2
}

// Legacy renders the report in the legacy flat-text wire form: one line per
// numbered section, empty answers shown as N/A.
func (s IncidentSections) Legacy() string {
	lines := []struct {
		label string
		value string
	}{
		{"1.1 What are you reporting?", s.Reporting},
		{"1.2 When did it happen?", s.OccurredAt},
		{"1.3 Where did it happen?", s.Location},
		{"1.4 What happened?", s.Description},
		{"1.5 What category best describes the incident?", s.IncidentCategory},
		{"1.6 Witnesses:", s.Witnesses},
		{"2.1 Who was involved?", s.PersonInvolved},
		{"2.2 What type of injury / illness / disease has been sustained?", s.InjuryType},
		{"2.3 What treatment was provided?", s.Treatment},
		{"2.4 Did the injured person go straight back to work afterwards?", s.ReturnedToWork},
		{"2.5 Duration of absence (if any):", s.AbsenceDuration},
		{"3.1 Details of the person completing this form:", s.CompletedBy},
		{"3.2 Date form completed:", s.CompletedOn},
	}

	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		v := l.value
		if v == "" {
			v = "N/A"
		}
		fmt.Fprintf(&b, "%s %s", l.label, v)
	}
	return b.String()
}

// Empty reports whether no section was filled in.
func (s IncidentSections) Empty() bool {
	return s == IncidentSections{}
}
