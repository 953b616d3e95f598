// Package feed defines the fixed feed-post category set and the structured
// payloads (body-map focal point, incident report sections) that some
// categories carry, together with their legacy one-string wire encodings.
package feed

import "errors"

// Category tags a feed post. The tag values are the legacy wire strings
// stored in the database and sent by clients.
type Category string

const (
	CategoryPersonalCare        Category = "personal_care"
	CategoryPersonalCareHygiene Category = "personal_care_hygiene"
	CategoryFoodIntake          Category = "food_intake"
	CategoryFluidIntake         Category = "fluid_intake"
	CategoryWeight              Category = "weight"
	CategoryOxygenSaturation    Category = "oxygen_saturation"
	CategoryPulseRate           Category = "pulse_rate"
	CategoryTemperature         Category = "temperature"
	CategoryBloodSugar          Category = "blood_sugar_level"
	CategoryBowelMovement       Category = "bowel_movement"
	CategoryBodyMap             Category = "body_map"
	CategoryIncident            Category = "incident_accident_form"
)

var ErrUnknownCategory = errors.New("unknown feed category")

var categories = map[Category]bool{
	CategoryPersonalCare:        true,
	CategoryPersonalCareHygiene: true,
	CategoryFoodIntake:          true,
	CategoryFluidIntake:         true,
	CategoryWeight:              true,
	CategoryOxygenSaturation:    true,
	CategoryPulseRate:           true,
	CategoryTemperature:         true,
	CategoryBloodSugar:          true,
	CategoryBowelMovement:       true,
	CategoryBodyMap:             true,
	CategoryIncident:            true,
}

// ParseCategory validates a wire tag against the fixed category set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !categories[c] {
		return "", ErrUnknownCategory
	}
	return c, nil
}

func (c Category) String() string { return string(c) }
