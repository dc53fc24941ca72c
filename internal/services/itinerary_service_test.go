package services

import (
	"context"
	"reflect"
	"testing"
	"time"

	"accessitrip/internal/models/response_models"

	"github.com/google/uuid"
)

func itinerary(title, destination string) response_models.Itinerary {
	return response_models.Itinerary{ID: uuid.New(), Title: title, DestinationName: destination}
}

func TestItineraryServiceEagerFetch(t *testing.T) {
	repo := &fakeItineraryRepo{items: []response_models.Itinerary{itinerary("Porto", "Portugal")}}
	svc := NewItineraryService(repo)
	t.Cleanup(svc.Close)

	svc.Wait()
	if got := svc.Itineraries().Get(); !reflect.DeepEqual(got, repo.items) {
		t.Fatalf("expected eager fetch to publish %v, got %v", repo.items, got)
	}
}

func TestItineraryServiceFetchFailureKeepsList(t *testing.T) {
	logOpt, hook := newTestLogger()
	repo := &fakeItineraryRepo{items: []response_models.Itinerary{itinerary("Lisbon", "Portugal")}}
	svc := NewItineraryService(repo, WithoutInitialFetch(), logOpt)
	t.Cleanup(svc.Close)

	if repo.count("list") != 0 {
		t.Fatalf("expected no initial fetch")
	}

	svc.FetchAll(context.Background())
	before := svc.Itineraries().Get()

	repo.items, repo.err = nil, errBoom
	svc.FetchAll(context.Background())

	if got := svc.Itineraries().Get(); !reflect.DeepEqual(got, before) {
		t.Fatalf("expected list unchanged after failure, got %v", got)
	}
	if entry := hook.LastEntry(); entry == nil || entry.Data["component"] != "itinerary" {
		t.Fatalf("expected failure to be logged, got %+v", entry)
	}
}

func TestLookupByIDFollowsList(t *testing.T) {
	x := itinerary("X", "Spain")
	repo := &fakeItineraryRepo{items: []response_models.Itinerary{x}}
	svc := NewItineraryService(repo, WithoutInitialFetch())
	t.Cleanup(svc.Close)

	found := svc.LookupByID(x.ID)
	missing := svc.LookupByID(uuid.New())
	if found.Get() != nil {
		t.Fatalf("expected nothing before the list loads")
	}

	updates, cancel := found.Subscribe()
	defer cancel()

	svc.FetchAll(context.Background())
	if got := found.Get(); got == nil || got.ID != x.ID {
		t.Fatalf("expected lookup to find %s, got %+v", x.ID, got)
	}
	if missing.Get() != nil {
		t.Fatalf("expected unknown id to yield nil")
	}

	select {
	case got := <-updates:
		if got == nil || got.ID != x.ID {
			t.Fatalf("unexpected pushed value %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatalf("expected lookup subscribers to be notified")
	}
	if repo.count("list") != 1 {
		t.Fatalf("expected lookups not to call the backend, got %d list calls", repo.count("list"))
	}
}

func TestItineraryStepsSortedAndErrorCleared(t *testing.T) {
	logOpt, _ := newTestLogger()
	repo := &fakeStepRepo{err: errBoom}
	svc := NewItineraryStepService(repo, logOpt)
	id := uuid.New()

	svc.FetchSteps(context.Background(), id)
	if svc.Err().Get() != "No steps available or error occurred" {
		t.Fatalf("unexpected error message %q", svc.Err().Get())
	}

	repo.err = nil
	repo.steps = []response_models.ItineraryStep{{StepIndex: 3, Title: "c"}, {StepIndex: 1, Title: "a"}, {StepIndex: 2, Title: "b"}}
	svc.FetchSteps(context.Background(), id)

	steps := svc.Steps().Get()
	if len(steps) != 3 || steps[0].Title != "a" || steps[2].Title != "c" {
		t.Fatalf("expected steps ordered by index, got %+v", steps)
	}
	if repo.steps[0].Title != "c" {
		t.Fatalf("expected repository slice left untouched")
	}
	if svc.Err().Get() != "" {
		t.Fatalf("expected error cleared on success")
	}
	if repo.argsOf("list")[1] != id {
		t.Fatalf("expected steps fetched for %s", id)
	}
}

func TestSearchFiltersByTextAndLabel(t *testing.T) {
	repo := &fakeItineraryRepo{items: []response_models.Itinerary{
		itinerary("Coastal Walk", "Portugal"),
		itinerary("Old Town", "Spain"),
		itinerary("Harbour", "portugal"),
	}}
	itineraries := NewItineraryService(repo, WithoutInitialFetch())
	t.Cleanup(itineraries.Close)
	itineraries.FetchAll(context.Background())

	search := NewSearchService(itineraries.Itineraries())
	if got := len(search.Results().Get()); got != 3 {
		t.Fatalf("expected everything with empty query, got %d", got)
	}

	search.SetQuery("PORTUGAL")
	if got := len(search.Results().Get()); got != 2 {
		t.Fatalf("expected two destination matches, got %d", got)
	}

	search.SetQuery("town")
	search.SetFilter("Braille Available")
	got := search.Results().Get()
	if len(got) != 1 || got[0].Title != "Old Town" {
		t.Fatalf("expected title match with supported filter, got %+v", got)
	}

	search.SetFilter("Elevator")
	if got := search.Results().Get(); len(got) != 0 {
		t.Fatalf("expected unknown filter to match nothing, got %+v", got)
	}
}
