package itinerary

import (
	"reflect"
	"testing"
	"time"

	"tripgen/internal/models/response_models"
)

var march1 = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

func TestAllocateItemsAcrossDays(t *testing.T) {
	tests := []struct {
		total, days int
		want        []int
	}{
		{7, 3, []int{2, 2, 3}},
		{6, 3, []int{2, 2, 2}},
		{2, 4, []int{0, 0, 1, 1}},
		{0, 2, []int{0, 0}},
		{5, 0, nil},
	}
	for _, tt := range tests {
		if got := AllocateItemsAcrossDays(tt.total, tt.days); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("AllocateItemsAcrossDays(%d, %d) = %v, want %v", tt.total, tt.days, got, tt.want)
		}
	}
}

func TestCityDayShares(t *testing.T) {
	tests := []struct {
		n, total int
		want     []int
	}{
		{3, 8, []int{2, 3, 3}},
		{1, 5, []int{5}},
		{2, 2, []int{1, 1}},
		{4, 10, []int{2, 2, 3, 3}},
	}
	for _, tt := range tests {
		if got := CityDayShares(tt.n, tt.total); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("CityDayShares(%d, %d) = %v, want %v", tt.n, tt.total, got, tt.want)
		}
	}
}

func arrivalOnly(city string) response_models.DayPlan {
	return cityBlock(city, arrivalActivity(city, "Day 1", English))
}

func TestAllocateThreeCitiesEightDays(t *testing.T) {
	blocks := []response_models.DayPlan{arrivalOnly("Bangkok"), arrivalOnly("Pattaya"), arrivalOnly("Phuket")}

	got := Allocate(blocks, 8, march1, English)

	wantStart := []int{1, 3, 6}
	wantRange := []string{"1–2 March", "3–5 March", "6–8 March"}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	covered := 0
	for i, b := range got {
		if b.DayNumber != wantStart[i] {
			t.Errorf("%s DayNumber = %d, want %d", b.City, b.DayNumber, wantStart[i])
		}
		if b.DateRange != wantRange[i] {
			t.Errorf("%s DateRange = %q, want %q", b.City, b.DateRange, wantRange[i])
		}
		lo, hi := dayBounds(t, b)
		if lo != b.DayNumber {
			t.Errorf("%s first labeled day = %d, want %d", b.City, lo, b.DayNumber)
		}
		if i > 0 && lo != covered+1 {
			t.Errorf("%s starts on day %d, want contiguous day %d", b.City, lo, covered+1)
		}
		covered = hi
	}
	if covered != 8 {
		t.Errorf("last covered day = %d, want 8", covered)
	}
}

func TestAllocatePadsThinCities(t *testing.T) {
	got := Allocate([]response_models.DayPlan{arrivalOnly("Atlantis")}, 3, march1, English)[0]

	// arrival plus 2 suggestions per day
	if len(got.Activities) != 7 {
		t.Fatalf("len(Activities) = %d, want 7: %+v", len(got.Activities), got.Activities)
	}
	if got.Activities[0].Duration != "Day 1" || got.Activities[0].Type != response_models.ActivityTypeTransport {
		t.Errorf("first activity = %+v, want arrival on Day 1", got.Activities[0])
	}
	if got.Activities[1].Title != "Atlantis Highlights" || got.Activities[1].ID != "fill-atlantis-1" {
		t.Errorf("first filler = %+v", got.Activities[1])
	}
	perDay := map[string]int{}
	for _, a := range got.Activities[1:] {
		perDay[a.Duration]++
	}
	if perDay["Day 1"] != 2 || perDay["Day 2"] != 2 || perDay["Day 3"] != 2 {
		t.Errorf("per-day counts = %v, want 2 each", perDay)
	}
}

func TestAllocateTrustsLabelsAndClampsToTripLength(t *testing.T) {
	block := cityBlock("Rome",
		arrivalActivity("Rome", "Day 1", English),
		act("Colosseum", "Day 1"),
		act("Vatican", "Day 2"),
		act("Trastevere", "Day 2"),
		act("Borghese", "Day 3"),
	)

	got := Allocate([]response_models.DayPlan{block}, 2, march1, English)[0]

	if len(got.Activities) != 4 {
		t.Fatalf("activities = %+v, want Day 3 dropped", got.Activities)
	}
	for _, a := range got.Activities {
		if a.Title == "Borghese" {
			t.Errorf("activity past the last trip day kept: %+v", a)
		}
	}
	if got.DateRange != "1–2 March" {
		t.Errorf("DateRange = %q, want 1–2 March", got.DateRange)
	}
}

func TestAllocateShiftsCityLocalLabels(t *testing.T) {
	second := cityBlock("Florence",
		arrivalActivity("Florence", "Day 1", English),
		act("Uffizi", "Day 1"),
		act("Duomo", "Day 2"),
		act("Piazzale", "Day 2"),
		response_models.Activity{ID: "u", Title: "Unlabeled", Icon: "walk", Type: "activity"},
	)

	got := Allocate([]response_models.DayPlan{arrivalOnly("Rome"), second}, 4, march1, English)

	if got[1].DayNumber != 3 {
		t.Fatalf("Florence DayNumber = %d, want 3", got[1].DayNumber)
	}
	want := map[string]string{"Uffizi": "Day 3", "Duomo": "Day 4", "Piazzale": "Day 4", "Unlabeled": "Day 3"}
	for _, a := range got[1].Activities {
		if w, ok := want[a.Title]; ok && a.Duration != w {
			t.Errorf("%s Duration = %q, want %q", a.Title, a.Duration, w)
		}
	}
	if got[1].DateRange != "3–4 March" {
		t.Errorf("DateRange = %q, want 3–4 March", got[1].DateRange)
	}
}

func TestAllocateMoreCitiesThanDays(t *testing.T) {
	blocks := []response_models.DayPlan{arrivalOnly("A"), arrivalOnly("B"), arrivalOnly("C")}

	got := Allocate(blocks, 2, march1, English)

	for _, b := range got {
		_, hi := dayBounds(t, b)
		if hi > 2 {
			t.Errorf("%s reaches day %d, want at most 2", b.City, hi)
		}
	}
}

func TestFormatDateRange(t *testing.T) {
	tests := []struct {
		lang     Language
		from, to time.Time
		want     string
	}{
		{English, march1, march1, "1 March"},
		{English, march1, march1.AddDate(0, 0, 2), "1–3 March"},
		{Turkish, march1.AddDate(0, 0, 29), march1.AddDate(0, 0, 32), "30 Mart – 2 Nisan"},
		{Spanish, march1, march1.AddDate(0, 0, 1), "1–2 marzo"},
		{French, march1.AddDate(0, 5, 0), march1.AddDate(0, 5, 0), "1 août"},
		{Italian, march1, march1.AddDate(0, 1, 0), "1 marzo – 1 aprile"},
	}
	for _, tt := range tests {
		if got := tt.lang.FormatDateRange(tt.from, tt.to); got != tt.want {
			t.Errorf("%s.FormatDateRange() = %q, want %q", tt.lang, got, tt.want)
		}
	}
}

func TestTripWindow(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		wantDays   int
		wantErr    bool
	}{
		{"eight days", "2025-03-01", "2025-03-08", 8, false},
		{"rfc3339", "2025-03-01T10:00:00Z", "2025-03-02T08:00:00Z", 2, false},
		{"thirty day span", "2025-03-01", "2025-03-31", 31, false},
		{"too long", "2025-03-01", "2025-04-01", 0, true},
		{"end before start", "2025-03-05", "2025-03-01", 0, true},
		{"same day", "2025-03-05", "2025-03-05", 0, true},
		{"garbage", "next week", "2025-03-01", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := TripWindow(tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Fatalf("TripWindow() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && TripDuration(start, end) != tt.wantDays {
				t.Errorf("TripDuration() = %d, want %d", TripDuration(start, end), tt.wantDays)
			}
		})
	}
}

// dayBounds returns the lowest and highest day index labeled in a block.
func dayBounds(t *testing.T, b response_models.DayPlan) (int, int) {
	t.Helper()
	lo, hi := 0, 0
	for _, a := range b.Activities {
		n := English.ParseDayIndex(a.Duration)
		if n == 0 {
			t.Errorf("%s activity %q has no day label", b.City, a.Title)
			continue
		}
		if lo == 0 || n < lo {
			lo = n
		}
		hi = max(hi, n)
	}
	return lo, hi
}
