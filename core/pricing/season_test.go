package pricing

import (
	"testing"
	"time"
)

func TestMonthFactor(t *testing.T) {
	e := testEngine()

	cases := []struct {
		month time.Month
		want  float64
	}{
		{time.January, 0.85},
		{time.February, 0.85},
		{time.April, 1.0},
		{time.June, 1.3},
		{time.July, 1.3},
		{time.September, 1.3},
		{time.October, 1.0},
		{time.November, 0.85},
		{time.December, 1.3},
	}
	for _, c := range cases {
		date := time.Date(2026, c.month, 15, 0, 0, 0, 0, time.UTC)
		nearlyEqual(t, c.month.String(), e.MonthFactor(date), c.want)
	}
}

func TestUrgencyFactor(t *testing.T) {
	e := testEngine()
	now := time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		days int
		want float64
	}{
		{-10, 1.0}, // past
		{0, 1.0},   // same day
		{1, 1.15},
		{10, 1.15},
		{15, 1.15},
		{16, 1.0},
		{40, 1.0},
		{400, 1.0},
	}
	for _, c := range cases {
		date := now.AddDate(0, 0, c.days)
		nearlyEqual(t, "urgency", e.UrgencyFactor(date, now), c.want)
	}
}

func TestUrgencyCountsCivilDays(t *testing.T) {
	e := testEngine()

	// 23:00 today to 01:00 tomorrow is two hours but one civil day.
	now := time.Date(2026, 4, 1, 23, 0, 0, 0, time.UTC)
	date := time.Date(2026, 4, 2, 1, 0, 0, 0, time.UTC)
	nearlyEqual(t, "urgency", e.UrgencyFactor(date, now), 1.15)
}

func TestSeasonFactorNilDateNeutral(t *testing.T) {
	e := testEngine()
	nearlyEqual(t, "season", e.SeasonFactor(nil, time.Now()), 1.0)
}

func TestSeasonFactorCombinesMonthAndUrgency(t *testing.T) {
	e := testEngine()
	now := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)

	// Ten days out in July: peak month and urgency compound.
	date := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	nearlyEqual(t, "season", e.SeasonFactor(&date, now), 1.3*1.15)

	// Far-out January date: off-peak only.
	far := time.Date(2027, 1, 10, 0, 0, 0, 0, time.UTC)
	nearlyEqual(t, "season", e.SeasonFactor(&far, now), 0.85)
}
