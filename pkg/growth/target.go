package growth

import "errors"

var (
	// ErrUnreachable is returned by [DaysToTarget] when the target total
	// cannot be reached within the search bound, including the case p <= 0
	// with a positive target.
	ErrUnreachable = errors.New("target unreachable")

	// ErrImpossible is returned by [MinBonusForTarget] when even the
	// maximum bonus in range does not reach the target within the given
	// number of days.
	ErrImpossible = errors.New("target impossible within bonus range")
)

// Search bounds for the inversions. Both searches are over a closed
// integer range with [Simulate] as the monotone oracle.
const (
	// MaxSearchDays bounds the day search in [DaysToTarget].
	MaxSearchDays = 10000

	// MaxBonus bounds the bonus search in [MinBonusForTarget].
	MaxBonus = 10000

	// BonusStep is the payout granularity: found bonuses are rounded up
	// to the next multiple of this value.
	BonusStep = 10
)

// AdoptionFunc maps a bonus amount to a daily referral probability in
// [0, 1]. Implementations must be deterministic and monotone
// non-decreasing in the bonus; [MinBonusForTarget] assumes monotonicity
// and does not verify it.
type AdoptionFunc func(bonus int) float64

// DaysToTarget returns the smallest number of days d >= 0 such that the
// cumulative total of Simulate(p, d) reaches target.
//
// A target <= 0 needs no time and returns 0. For p <= 0 with a positive
// target, or a target that is not reached within [MaxSearchDays], it
// returns ErrUnreachable. Otherwise it binary-searches the day count,
// relying on the model's monotonicity in d for fixed p >= 0.
func DaysToTarget(p float64, target float64) (int, error) {
	if target <= 0 {
		return 0, nil
	}
	if p <= 0 {
		return 0, ErrUnreachable
	}
	if FinalTotal(p, MaxSearchDays) < target {
		return 0, ErrUnreachable
	}

	low, high := 0, MaxSearchDays
	for low < high {
		mid := low + (high-low)/2
		if FinalTotal(p, mid) >= target {
			high = mid
		} else {
			low = mid + 1
		}
	}
	return low, nil
}

// MinBonusForTarget returns the smallest bonus whose induced referral
// probability (via adoptionProb) reaches targetHires within the given
// number of days, rounded up to the next multiple of [BonusStep]. The
// rounding is a payout-granularity policy applied after the search, not
// a search artifact.
//
// A targetHires <= 0 needs no incentive and returns 0. If even [MaxBonus]
// fails to reach the target, it returns ErrImpossible without searching
// further. eps is a numeric tolerance: a final total within eps of the
// target counts as reaching it.
func MinBonusForTarget(days int, targetHires float64, adoptionProb AdoptionFunc, eps float64) (int, error) {
	if targetHires <= 0 {
		return 0, nil
	}

	reaches := func(bonus int) bool {
		return FinalTotal(adoptionProb(bonus), days) >= targetHires-eps
	}

	if !reaches(MaxBonus) {
		return 0, ErrImpossible
	}

	low, high := 0, MaxBonus
	for low < high {
		mid := low + (high-low)/2
		if reaches(mid) {
			high = mid
		} else {
			low = mid + 1
		}
	}

	return roundUpToStep(low), nil
}

// roundUpToStep rounds bonus up to the next multiple of BonusStep.
func roundUpToStep(bonus int) int {
	return (bonus + BonusStep - 1) / BonusStep * BonusStep
}
