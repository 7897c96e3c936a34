package receipt

import (
	"unicode"

	"github.com/shopspring/decimal"
)

// Scoring constants for the six point rules.
const (
	roundDollarBonus  = 50
	quarterBonus      = 25
	pointsPerItemPair = 5
	afternoonBonus    = 10

	afternoonWindowStart = 14 * 60 // exclusive
	afternoonWindowEnd   = 16 * 60 // exclusive
)

var (
	descriptionRate = decimal.New(2, -1)  // 0.2
	centsPerDollar  = decimal.New(100, 0) // exact; avoids float cent drift
	quarterCents    = decimal.New(25, 0)
)

// Points computes the loyalty score for a validated receipt: the sum of six
// independent rules. Deterministic and side-effect free; the same receipt
// always scores the same total.
func (r *Receipt) Points() int {
	return r.retailerPoints() +
		r.totalPoints() +
		r.itemCountPoints() +
		r.descriptionPoints() +
		r.timeOfDayPoints()
}

// One point per alphanumeric rune in the retailer name, any script.
func (r *Receipt) retailerPoints() int {
	points := 0
	for _, ch := range r.retailer.String() {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
			points++
		}
	}
	return points
}

// 50 points for a whole-dollar total, plus 25 if the cent value divides by
// 25. Both can fire together. Negative totals clamp to zero first.
func (r *Receipt) totalPoints() int {
	total := r.total.Clamped()
	points := 0
	if total.IsInteger() {
		points += roundDollarBonus
	}
	if total.Mul(centsPerDollar).Mod(quarterCents).IsZero() {
		points += quarterBonus
	}
	return points
}

// Five points per complete pair of items; an odd trailing item earns nothing.
func (r *Receipt) itemCountPoints() int {
	return len(r.items) / 2 * pointsPerItemPair
}

// Items whose trimmed description length is a positive multiple of 3 earn
// ceil(price * 0.2); everything else earns nothing.
func (r *Receipt) descriptionPoints() int {
	points := 0
	for _, it := range r.items {
		n := it.description.TrimmedLength()
		if n == 0 || n%3 != 0 {
			continue
		}
		points += int(it.price.Clamped().Mul(descriptionRate).Ceil().IntPart())
	}
	return points
}

// Ten points for purchases strictly between 14:00 and 16:00; the boundary
// minutes themselves do not qualify.
func (r *Receipt) timeOfDayPoints() int {
	m := r.purchaseTime.MinutesSinceMidnight()
	if m > afternoonWindowStart && m < afternoonWindowEnd {
		return afternoonBonus
	}
	return 0
}
