package calculator

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/saadistik/Bashir.inc/internal/models"
)

// Granularity selects the bucket size of a trend.
type Granularity string

const (
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
)

const (
	weeklyPoints  = 7
	monthlyPoints = 6
)

// ParseGranularity maps "weekly" / "monthly" to a Granularity.
// An empty string selects Weekly.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case "", Weekly:
		return Weekly, nil
	case Monthly:
		return Monthly, nil
	default:
		return "", fmt.Errorf("unknown granularity %q", s)
	}
}

// TrendPoint is one bucket of a revenue/cost trend.
type TrendPoint struct {
	Label   string
	Start   time.Time
	End     time.Time
	Revenue decimal.Decimal
	Costs   decimal.Decimal
	Profit  decimal.Decimal
}

// Contains reports whether ts lies in the closed interval [Start, End].
func (p TrendPoint) Contains(ts time.Time) bool {
	return !ts.Before(p.Start) && !ts.After(p.End)
}

// Buckets returns the empty buckets for a granularity ending at the period
// containing now, oldest first. Weekly buckets start on Sunday.
func Buckets(g Granularity, now time.Time) []TrendPoint {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	var points []TrendPoint
	switch g {
	case Monthly:
		thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		for i := monthlyPoints - 1; i >= 0; i-- {
			start := thisMonth.AddDate(0, -i, 0)
			end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
			points = append(points, TrendPoint{Label: start.Format("Jan"), Start: start, End: end})
		}
	default:
		thisWeek := today.AddDate(0, 0, -int(today.Weekday()))
		for i := weeklyPoints - 1; i >= 0; i-- {
			start := thisWeek.AddDate(0, 0, -7*i)
			end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
			points = append(points, TrendPoint{Label: start.Format("Jan 2"), Start: start, End: end})
		}
	}
	return points
}

// Trend buckets tussles by CreatedAt and sums revenue and cost per bucket.
// The result always has 7 (weekly) or 6 (monthly) points; empty buckets
// report zero. Tussles outside every bucket are ignored.
func Trend(tussles []models.Tussle, g Granularity, now time.Time) []TrendPoint {
	points := Buckets(g, now)
	for i := range points {
		points[i].Revenue = decimal.Zero
		points[i].Costs = decimal.Zero
	}

	for i := range tussles {
		t := &tussles[i]
		for j := range points {
			if !points[j].Contains(t.CreatedAt) {
				continue
			}
			b := TussleCosts(t)
			points[j].Revenue = points[j].Revenue.Add(b.Revenue)
			points[j].Costs = points[j].Costs.Add(b.TotalCost)
			break
		}
	}

	for i := range points {
		points[i].Profit = points[i].Revenue.Sub(points[i].Costs)
	}
	return points
}
