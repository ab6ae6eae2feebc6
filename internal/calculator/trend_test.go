package calculator

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/saadistik/Bashir.inc/internal/models"
)

func at(s string) time.Time {
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return ts
}

func TestBuckets_Weekly(t *testing.T) {
	now := at("2026-10-14T12:00:00Z") // Wednesday

	points := Buckets(Weekly, now)
	if len(points) != 7 {
		t.Fatalf("weekly buckets = %d, want 7", len(points))
	}

	var labels []string
	for _, p := range points {
		labels = append(labels, p.Label)
		if p.Start.Weekday() != time.Sunday {
			t.Errorf("bucket %s starts on %s, want Sunday", p.Label, p.Start.Weekday())
		}
	}
	want := []string{"Aug 30", "Sep 6", "Sep 13", "Sep 20", "Sep 27", "Oct 4", "Oct 11"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}

	last := points[len(points)-1]
	if !last.Contains(now) {
		t.Errorf("last bucket %v..%v does not contain now", last.Start, last.End)
	}
	if !last.End.Equal(at("2026-10-17T23:59:59.999999999Z")) {
		t.Errorf("last bucket ends at %v", last.End)
	}
}

func TestBuckets_Monthly(t *testing.T) {
	now := at("2026-10-31T08:00:00Z")

	points := Buckets(Monthly, now)
	if len(points) != 6 {
		t.Fatalf("monthly buckets = %d, want 6", len(points))
	}

	var labels []string
	for _, p := range points {
		labels = append(labels, p.Label)
		if p.Start.Day() != 1 {
			t.Errorf("bucket %s starts on day %d", p.Label, p.Start.Day())
		}
	}
	want := []string{"May", "Jun", "Jul", "Aug", "Sep", "Oct"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestTrend(t *testing.T) {
	now := at("2026-10-14T12:00:00Z")

	tests := []struct {
		name        string
		granularity Granularity
		tussles     []models.Tussle
		wantPoints  int
		wantRevenue map[int]string
		wantCosts   map[int]string
	}{
		{
			name:        "no tussles still yields seven zero points",
			granularity: Weekly,
			wantPoints:  7,
		},
		{
			name:        "no tussles still yields six zero points",
			granularity: Monthly,
			wantPoints:  6,
		},
		{
			name:        "weekly bucketing on closed intervals",
			granularity: Weekly,
			tussles: []models.Tussle{
				withCreated(tussleWithCosts("current", "100", []string{"10"}, []string{"5"}), "2026-10-11T00:00:00Z"),
				withCreated(tussleWithCosts("sat-night", "40", nil, []string{"40"}), "2026-10-10T23:59:59Z"),
				withCreated(tussleWithCosts("oldest", "7", nil, nil), "2026-08-30T00:00:00Z"),
				withCreated(tussleWithCosts("too-old", "1000", nil, nil), "2026-08-29T23:59:59Z"),
			},
			wantPoints:  7,
			wantRevenue: map[int]string{0: "7", 5: "40", 6: "100"},
			wantCosts:   map[int]string{0: "0", 5: "40", 6: "15"},
		},
		{
			name:        "monthly bucketing includes the last day of a month",
			granularity: Monthly,
			tussles: []models.Tussle{
				withCreated(tussleWithCosts("end-of-sep", "500", []string{"100"}, nil), "2026-09-30T18:30:00Z"),
				withCreated(tussleWithCosts("may", "20", nil, nil), "2026-05-01T00:00:00Z"),
				withCreated(tussleWithCosts("april", "999", nil, nil), "2026-04-30T23:00:00Z"),
			},
			wantPoints:  6,
			wantRevenue: map[int]string{0: "20", 4: "500"},
			wantCosts:   map[int]string{4: "100"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := Trend(tt.tussles, tt.granularity, now)
			if len(points) != tt.wantPoints {
				t.Fatalf("points = %d, want %d", len(points), tt.wantPoints)
			}
			for i, p := range points {
				wantRev := "0"
				if v, ok := tt.wantRevenue[i]; ok {
					wantRev = v
				}
				wantCost := "0"
				if v, ok := tt.wantCosts[i]; ok {
					wantCost = v
				}
				if !p.Revenue.Equal(dec(wantRev)) {
					t.Errorf("point %d (%s) revenue = %s, want %s", i, p.Label, p.Revenue, wantRev)
				}
				if !p.Costs.Equal(dec(wantCost)) {
					t.Errorf("point %d (%s) costs = %s, want %s", i, p.Label, p.Costs, wantCost)
				}
				if !p.Profit.Equal(p.Revenue.Sub(p.Costs)) {
					t.Errorf("point %d profit = %s", i, p.Profit)
				}
			}
		})
	}
}

func TestParseGranularity(t *testing.T) {
	for in, want := range map[string]Granularity{"": Weekly, "weekly": Weekly, "monthly": Monthly} {
		got, err := ParseGranularity(in)
		if err != nil || got != want {
			t.Errorf("ParseGranularity(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseGranularity("daily"); err == nil {
		t.Error("expected error for daily")
	}
}

func withCreated(t models.Tussle, ts string) models.Tussle {
	t.CreatedAt = at(ts)
	return t
}
