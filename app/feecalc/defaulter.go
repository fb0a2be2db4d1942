package feecalc

// IsDefaulter reports whether a quarter balance marks the student as a
// defaulter. Used by the bulk-reminder job and dashboard counts.
func IsDefaulter(qb QuarterBalance) bool {
	return qb.Balance.IsPositive()
}

// HasOutstanding reports whether any quarter in the details carries a
// positive balance.
func HasOutstanding(details *StudentFeeDetails) bool {
	for i := range details.Quarters {
		if IsDefaulter(details.Quarters[i]) {
			return true
		}
	}
	return false
}
