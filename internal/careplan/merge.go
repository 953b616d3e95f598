package careplan

import (
	"fmt"
	"time"

	"github.com/caretrack/caretrack-backend/internal/models"
	"gorm.io/datatypes"
)

// Merge applies a partial update to a care plan in place and maintains the
// per-field timestamp map. For each declared field: absent from upd leaves
// the stored value and its timestamp entry untouched; present with a value
// equal to the stored one changes nothing; present with a different value
// (including filling a null field) stores it and stamps updates[field] with
// now.
//
// updated_by is set to editor on every merge, changed fields or not. That
// matches what existing clients rely on for the "last edited by" display.
//
// Merge returns the names of the fields whose value actually changed.
func Merge(plan *models.CarePlan, upd Update, editor string, now time.Time) ([]string, error) {
	updates := plan.Updates.Data()
	if updates == nil {
		updates = make(map[string]time.Time)
	}

	var changed []string
	for _, f := range fields {
		in := f.incoming(&upd)
		if in == nil {
			continue
		}

		val := *in
		if f.canonical != nil {
			var err error
			if val, err = f.canonical(val); err != nil {
				return nil, fmt.Errorf("field %s: %w", f.name, err)
			}
		}

		if cur := f.get(plan); cur != nil && sameValue(f, *cur, val) {
			continue
		}

		f.set(plan, val)
		updates[f.name] = now
		changed = append(changed, f.name)
	}

	plan.Updates = datatypes.NewJSONType(updates)
	plan.UpdatedBy = &editor
	return changed, nil
}

// sameValue compares an incoming canonical value against the stored one.
// Stored values predating canonicalization are normalized before the
// comparison; an unnormalizable stored value never equals a new one.
func sameValue(f fieldSpec, stored, canonical string) bool {
	if f.canonical != nil {
		norm, err := f.canonical(stored)
		if err != nil {
			return false
		}
		stored = norm
	}
	return stored == canonical
}
