package growth

// Model constants. The population starts with a fixed pool of active
// referrers, each able to produce a fixed number of referrals before
// going inactive.
const (
	// InitialReferrers is the size of the active pool on day 0.
	InitialReferrers = 100

	// ReferralCapacity is how many referrals a single referrer can make
	// over their lifetime before retiring from the active pool.
	ReferralCapacity = 10
)

// Simulate runs the growth model for the given number of days and returns
// the cumulative referral total after each day. The result has days+1
// entries: index 0 is day 0 with total 0, index d is the total at the end
// of day d. Negative day counts are treated as 0.
//
// Each day, every active referrer produces p referrals (fractional
// referrals are intentional - this is a continuous approximation, not a
// Monte Carlo draw). New referrals join the active pool, while referrers
// whose shared capacity is exhausted retire from it. For p >= 0 the
// returned sequence is monotonically non-decreasing.
func Simulate(p float64, days int) []float64 {
	if days < 0 {
		days = 0
	}
	totals := make([]float64, 0, days+1)

	active := float64(InitialReferrers)
	total := 0.0
	used := 0.0

	totals = append(totals, total)
	for day := 1; day <= days; day++ {
		fresh := active * p
		total += fresh
		used += fresh

		limit := active * ReferralCapacity
		retired := 0.0
		if used > limit {
			retired = (used - limit) / ReferralCapacity
			if retired > active {
				retired = active
			}
		}
		active = active + fresh - retired

		totals = append(totals, total)
	}
	return totals
}

// FinalTotal returns the cumulative total at the end of a simulation run.
// It is shorthand for the last element of [Simulate].
func FinalTotal(p float64, days int) float64 {
	sim := Simulate(p, days)
	return sim[len(sim)-1]
}
