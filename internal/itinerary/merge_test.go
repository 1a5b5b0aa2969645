package itinerary

import (
	"reflect"
	"testing"

	"tripgen/internal/models/response_models"
)

func act(title, duration string) response_models.Activity {
	return response_models.Activity{ID: title, Title: title, Duration: duration, Icon: "walk", Type: "activity"}
}

func cityBlock(city string, activities ...response_models.Activity) response_models.DayPlan {
	return response_models.DayPlan{DayNumber: 1, City: city, Activities: activities}
}

func TestMergeCityBlocksMergesAdjacent(t *testing.T) {
	days := []response_models.DayPlan{
		cityBlock("Bangkok", act("Grand Palace", "Day 1"), act("Wat Pho", "Day 1")),
		cityBlock("bangkok", act("grand palace", "day 1"), act("Grand Palace", "Day 2")),
		cityBlock("Pattaya", act("Sanctuary of Truth", "Day 3")),
	}

	got := MergeCityBlocks(days, English)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 blocks", len(got))
	}
	titles := []string{}
	for _, a := range got[0].Activities {
		titles = append(titles, a.Title+"|"+a.Duration)
	}
	want := []string{
		"Arrival to Bangkok & Hotel Check-in|Day 1",
		"Grand Palace|Day 1",
		"Wat Pho|Day 1",
		"Grand Palace|Day 2",
	}
	if !reflect.DeepEqual(titles, want) {
		t.Errorf("Bangkok activities = %v, want %v", titles, want)
	}
	if got[1].Activities[0].Type != response_models.ActivityTypeTransport {
		t.Errorf("Pattaya first activity = %+v, want injected arrival", got[1].Activities[0])
	}
	if got[1].Activities[0].Duration != "Day 3" {
		t.Errorf("arrival duration = %q, want label of previous first activity", got[1].Activities[0].Duration)
	}
}

func TestMergeCityBlocksIsIdempotent(t *testing.T) {
	days := []response_models.DayPlan{
		cityBlock("Bangkok", act("Grand Palace", "Day 1"), act("Grand Palace", "Day 1")),
		cityBlock("Bangkok", act("Chatuchak", "Day 2")),
		{DayNumber: 3, City: "Pattaya", IsRoute: true, Activities: []response_models.Activity{},
			RouteInfo: &response_models.RouteInfo{From: "Bangkok", To: "Pattaya", TransportType: "bus"}},
		cityBlock("Pattaya"),
		cityBlock("Bangkok", act("Wat Arun", "Day 5")),
	}

	once := MergeCityBlocks(days, Turkish)
	twice := MergeCityBlocks(once, Turkish)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second merge changed output:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestMergeCityBlocksKeepsExistingArrival(t *testing.T) {
	checkIn := response_models.Activity{ID: "c", Title: "Hotel check-in", Duration: "Day 1", Icon: "bed", Type: "accommodation"}
	got := MergeCityBlocks([]response_models.DayPlan{cityBlock("Rome", act("Colosseum", "Day 1"), checkIn)}, Italian)

	if len(got[0].Activities) != 2 {
		t.Errorf("activities = %+v, want no injected arrival", got[0].Activities)
	}
}

func TestEnsureAllCitiesIncluded(t *testing.T) {
	blocks := []response_models.DayPlan{cityBlock("Bangkok", act("Grand Palace", "Day 1"))}

	got := EnsureAllCitiesIncluded(blocks, []string{"bangkok", "Phuket", " ", "PHUKET"}, Turkish)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	phuket := got[1]
	if phuket.City != "Phuket" || phuket.DayNumber != 1 {
		t.Errorf("appended block = %+v", phuket)
	}
	if len(phuket.Activities) != 1 || phuket.Activities[0].Title != "Phuket'e Varış & Otele Yerleşme" {
		t.Errorf("appended activities = %+v", phuket.Activities)
	}
	if phuket.Activities[0].Duration != "1. Gün" {
		t.Errorf("arrival duration = %q, want 1. Gün", phuket.Activities[0].Duration)
	}
}

func TestCondense(t *testing.T) {
	blocks := []response_models.DayPlan{
		cityBlock("Bangkok", arrivalActivity("Bangkok", "Day 1", English), act("Grand Palace", "Day 1")),
		cityBlock("Pattaya", act("Coral Island", "Day 2")),
		{City: "Pattaya", IsRoute: true},
		cityBlock(""),
		cityBlock(" Bangkok", arrivalActivity("Bangkok", "Day 3", English), act("Wat Arun", "Day 3")),
	}

	got := Condense(blocks)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].City != "Bangkok" || got[1].City != "Pattaya" {
		t.Errorf("cities = %q, %q", got[0].City, got[1].City)
	}
	if len(got[0].Activities) != 3 {
		t.Errorf("Bangkok activities = %+v, want arrival, Grand Palace, Wat Arun", got[0].Activities)
	}
}
