package feed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, s := range []string{
		"personal_care", "personal_care_hygiene", "food_intake", "fluid_intake",
		"weight", "oxygen_saturation", "pulse_rate", "temperature",
		"blood_sugar_level", "bowel_movement", "body_map", "incident_accident_form",
	} {
		c, err := ParseCategory(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, c.String())
	}
}

func TestParseCategoryRejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "selfie", "Weight", "body map"} {
		_, err := ParseCategory(s)
		assert.ErrorIs(t, err, ErrUnknownCategory, s)
	}
}

func TestBodyMapRoundTrip(t *testing.T) {
	msg := EncodeBodyMap("bruise on left arm", Point{X: 12.5, Y: 87})
	assert.Equal(t, "bruise on left arm~12.5&87", msg)

	text, p := DecodeBodyMap(msg)
	require.NotNil(t, p)
	assert.Equal(t, "bruise on left arm", text)
	assert.Equal(t, 12.5, p.X)
	assert.Equal(t, 87.0, p.Y)
}

func TestDecodeBodyMapUsesLastSeparator(t *testing.T) {
	text, p := DecodeBodyMap("skin is dry ~ flaky~3&4")
	require.NotNil(t, p)
	assert.Equal(t, "skin is dry ~ flaky", text)
	assert.Equal(t, 3.0, p.X)
	assert.Equal(t, 4.0, p.Y)
}

func TestDecodeBodyMapMalformed(t *testing.T) {
	for _, msg := range []string{
		"no separator here",
		"note~12.5",
		"note~x&y",
		"note~1&two",
	} {
		text, p := DecodeBodyMap(msg)
		assert.Nil(t, p, msg)
		assert.Equal(t, msg, text)
	}
}

func TestIncidentLegacyRendering(t *testing.T) {
	s := IncidentSections{
		Reporting:   "a fall",
		OccurredAt:  "2024-02-01 14:30",
		Location:    "day room",
		Description: "resident slipped near the window",
		CompletedBy: "J. Doe, senior carer",
	}

	out := s.Legacy()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 13)

	assert.Equal(t, "1.1 What are you reporting? a fall", lines[0])
	assert.Equal(t, "1.3 Where did it happen? day room", lines[2])
	assert.Equal(t, "1.5 What category best describes the incident? N/A", lines[4])
	assert.Equal(t, "2.2 What type of injury / illness / disease has been sustained? N/A", lines[7])
	assert.Equal(t, "3.1 Details of the person completing this form: J. Doe, senior carer", lines[11])
	assert.Equal(t, "3.2 Date form completed: N/A", lines[12])
}

func TestIncidentEmpty(t *testing.T) {
	assert.True(t, IncidentSections{}.Empty())
	assert.False(t, IncidentSections{Witnesses: "none"}.Empty())
}
