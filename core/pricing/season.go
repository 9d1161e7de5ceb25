package pricing

import "time"

// MonthFactor returns the demand factor for the move's month.
func (e *Engine) MonthFactor(date time.Time) float64 {
	month := int(date.Month())
	for _, m := range e.tariff.PeakMonths {
		if m == month {
			return e.tariff.PeakMonthFactor
		}
	}
	for _, m := range e.tariff.OffPeakMonths {
		if m == month {
			return e.tariff.OffPeakMonthFactor
		}
	}
	return 1
}

// UrgencyFactor returns the last-minute surcharge factor. Moves 1 to
// UrgencyMaxDays days out pay it; dates in the past or more than a year
// out read as garbage input and stay neutral rather than erroring.
func (e *Engine) UrgencyFactor(date, now time.Time) float64 {
	days := daysBetween(now, date)
	if days >= 1 && days <= e.tariff.UrgencyMaxDays {
		return e.tariff.UrgencyFactor
	}
	return 1
}

// SeasonFactor combines month and urgency factors. A nil date is neutral.
func (e *Engine) SeasonFactor(date *time.Time, now time.Time) float64 {
	if date == nil {
		return 1
	}
	return e.MonthFactor(*date) * e.UrgencyFactor(*date, now)
}

// daysBetween counts whole civil days from a to b in a's location.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, a.Location())
	end := time.Date(by, bm, bd, 0, 0, 0, 0, a.Location())
	return int(end.Sub(start).Hours() / 24)
}
