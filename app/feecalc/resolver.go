package feecalc

import "github.com/Kalpit0710/fee-manage-sub000/app/models"

// ResolveFeeStructure finds the fee structure for a (class, quarter) pair
// in an already-loaded set. A missing structure is not an error: callers
// treat nil as a zero base fee. If the set contains duplicates for the
// pair (an upstream integrity violation) the most recently created one
// wins, with the id as a tiebreak, so the result stays deterministic.
func ResolveFeeStructure(classID, quarterID string, all []models.FeeStructure) *models.FeeStructure {
	var match *models.FeeStructure
	for i := range all {
		fs := &all[i]
		if fs.ClassID != classID || fs.QuarterID != quarterID {
			continue
		}
		if match == nil || newerThan(fs, match) {
			match = fs
		}
	}
	return match
}

func newerThan(a, b *models.FeeStructure) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
