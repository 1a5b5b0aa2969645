package itinerary

import (
	"fmt"
	"strings"
	"time"

	"tripgen/internal/models/response_models"
)

// trustLabelRatio is how many labeled activities per allotted day a block
// needs before its own day labels are trusted.
const trustLabelRatio = 1.5

// allocationCursor is the state threaded from one city block to the next.
type allocationCursor struct {
	nextDay int
}

// allocationFrame is what a single fold step knows about the whole trip.
type allocationFrame struct {
	totalDays       int
	remainingCities int
	start           time.Time
	lang            Language
}

// span returns the first day and the proportional day share for the
// next block. Days never run past totalDays; when there are more cities
// than days the tail cities share the final day.
func (c allocationCursor) span(f allocationFrame) (first, days int) {
	first = min(c.nextDay, f.totalDays)
	remaining := f.totalDays - first + 1
	days = max(1, remaining/f.remainingCities)
	return first, days
}

// latestEnd is the last day a block may occupy while still leaving one
// day for each city after it.
func (f allocationFrame) latestEnd(first int) int {
	return max(first, f.totalDays-(f.remainingCities-1))
}

// Allocate assigns every city block its day span, date range and day
// labels within [1, totalDays]. Blocks are processed in order because each
// one starts where the previous one ended.
func Allocate(blocks []response_models.DayPlan, totalDays int, start time.Time, lang Language) []response_models.DayPlan {
	totalDays = max(1, totalDays)
	out := make([]response_models.DayPlan, 0, len(blocks))
	cursor := allocationCursor{nextDay: 1}
	for i, block := range blocks {
		frame := allocationFrame{
			totalDays:       totalDays,
			remainingCities: len(blocks) - i,
			start:           start,
			lang:            lang,
		}
		var placed response_models.DayPlan
		placed, cursor = allocateBlock(block, cursor, frame)
		out = append(out, placed)
	}
	return out
}

// CityDayShares returns how many days each of n cities receives when no
// block carries usable day labels.
func CityDayShares(n, totalDays int) []int {
	totalDays = max(1, totalDays)
	shares := make([]int, 0, n)
	cursor := allocationCursor{nextDay: 1}
	for i := 0; i < n; i++ {
		frame := allocationFrame{totalDays: totalDays, remainingCities: n - i}
		first, days := cursor.span(frame)
		last := redistributeEnd(first, days, frame)
		shares = append(shares, last-first+1)
		cursor.nextDay = last + 1
	}
	return shares
}

func allocateBlock(block response_models.DayPlan, cursor allocationCursor, f allocationFrame) (response_models.DayPlan, allocationCursor) {
	first, days := cursor.span(f)

	if placed, last, ok := trustLabels(block, first, days, f); ok {
		return placed, allocationCursor{nextDay: last + 1}
	}

	last := redistributeEnd(first, days, f)
	return redistribute(block, first, last, f), allocationCursor{nextDay: last + 1}
}

func redistributeEnd(first, days int, f allocationFrame) int {
	last := first + days - 1
	if f.remainingCities == 1 {
		last = f.totalDays
	}
	return max(first, min(last, f.latestEnd(first)))
}

// trustLabels keeps the model's own day distribution when the block has
// enough labeled activities. Labels are shifted so the block starts at
// first, and anything past the trip's last day is dropped.
func trustLabels(block response_models.DayPlan, first, days int, f allocationFrame) (response_models.DayPlan, int, bool) {
	labeled := 0
	for _, a := range block.Activities {
		if f.lang.ParseDayIndex(a.Duration) > 0 {
			labeled++
		}
	}
	if labeled == 0 || float64(labeled) < trustLabelRatio*float64(days) {
		return block, 0, false
	}

	kept := make([]response_models.Activity, 0, len(block.Activities))
	lo, hi := 0, 0
	for _, a := range block.Activities {
		n := f.lang.ParseDayIndex(a.Duration)
		if n > f.totalDays {
			continue
		}
		if n > 0 {
			if lo == 0 || n < lo {
				lo = n
			}
			hi = max(hi, n)
		}
		kept = append(kept, a)
	}
	if lo == 0 {
		return block, 0, false
	}

	last := first + (hi - lo)
	if f.remainingCities == 1 {
		last = f.totalDays
	}
	last = max(first, min(last, f.latestEnd(first)))

	for i, a := range kept {
		n := f.lang.ParseDayIndex(a.Duration)
		day := first
		if n > 0 {
			day = min(n-lo+first, last)
		}
		if day != n {
			kept[i].Duration = f.lang.DayLabel(day)
		}
	}

	block.Activities = kept
	block.DayNumber = first
	block.DateRange = f.lang.FormatDateRange(dayDate(f.start, first), dayDate(f.start, last))
	return block, last, true
}

// redistribute spreads the block's activities evenly over [first, last],
// keeping the arrival on the first day and padding thin cities with
// generic sightseeing so every day has something planned.
func redistribute(block response_models.DayPlan, first, last int, f allocationFrame) response_models.DayPlan {
	days := last - first + 1
	p := f.lang.profile()

	var arrival response_models.Activity
	hasArrival := false
	suggestions := make([]response_models.Activity, 0, len(block.Activities))
	for _, a := range block.Activities {
		if !hasArrival && isArrival(a) {
			arrival, hasArrival = a, true
			continue
		}
		suggestions = append(suggestions, a)
	}
	if !hasArrival {
		arrival = arrivalActivity(block.City, "", f.lang)
	}

	slug := citySlug(block.City)
	for k := 0; len(suggestions) < 2*days; k++ {
		title := p.filler(block.City)
		if k > 0 {
			title = p.genericPool[(k-1)%len(p.genericPool)](block.City)
		}
		suggestions = append(suggestions, response_models.Activity{
			ID:    fmt.Sprintf("fill-%s-%d", slug, k+1),
			Title: title,
			Icon:  iconWalk,
			Type:  response_models.ActivityTypeActivity,
		})
	}

	counts := AllocateItemsAcrossDays(len(suggestions), days)
	next := 0
	for d, count := range counts {
		for j := 0; j < count; j++ {
			suggestions[next].Duration = f.lang.DayLabel(first + d)
			next++
		}
	}

	arrival.Duration = f.lang.DayLabel(first)
	activities := make([]response_models.Activity, 0, len(suggestions)+1)
	activities = append(activities, arrival)

	block.Activities = append(activities, suggestions...)
	block.DayNumber = first
	block.DateRange = f.lang.FormatDateRange(dayDate(f.start, first), dayDate(f.start, last))
	return block
}

// AllocateItemsAcrossDays splits total items over days: each day gets
// total/days and the last total%days days get one more.
func AllocateItemsAcrossDays(total, days int) []int {
	if days <= 0 {
		return nil
	}
	base := total / days
	rem := total % days
	counts := make([]int, days)
	for d := range counts {
		counts[d] = base
		if d >= days-rem {
			counts[d]++
		}
	}
	return counts
}

func citySlug(city string) string {
	return strings.Join(strings.Fields(cityKey(city)), "-")
}
