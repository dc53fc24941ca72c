package services

import (
	"context"
	"reflect"
	"testing"

	"accessitrip/internal/models/response_models"

	"github.com/google/uuid"
)

var demoUser = uuid.MustParse("00000000-0000-0000-0000-000000009999")

func savedFor(itineraryID uuid.UUID) response_models.SavedItinerary {
	return response_models.SavedItinerary{ID: uuid.New(), UserID: demoUser, ItineraryID: itineraryID}
}

func newSavedService(t *testing.T, repo *fakeSavedRepo) *SavedItineraryService {
	t.Helper()
	logOpt, _ := newTestLogger()
	svc := NewSavedItineraryService(repo, demoUser, WithoutInitialFetch(), logOpt)
	t.Cleanup(svc.Close)
	svc.FetchAll(context.Background())
	return svc
}

func TestSavedFetchAllScopedToUser(t *testing.T) {
	repo := &fakeSavedRepo{saved: []response_models.SavedItinerary{savedFor(uuid.New())}}
	svc := NewSavedItineraryService(repo, demoUser)
	t.Cleanup(svc.Close)
	svc.Wait()

	if !reflect.DeepEqual(svc.SavedItineraries().Get(), repo.saved) {
		t.Fatalf("expected saved list to equal backend list")
	}
	if repo.argsOf("list")[0] != demoUser {
		t.Fatalf("expected fetch for demo user")
	}
}

func TestSavedFetchFailureSetsError(t *testing.T) {
	repo := &fakeSavedRepo{saved: []response_models.SavedItinerary{savedFor(uuid.New())}}
	svc := newSavedService(t, repo)

	repo.listErr = errBoom
	svc.FetchAll(context.Background())

	if len(svc.SavedItineraries().Get()) != 1 {
		t.Fatalf("expected list unchanged on failure")
	}
	if svc.Err().Get() != "Error fetching saved itineraries" {
		t.Fatalf("unexpected error message %q", svc.Err().Get())
	}
}

func TestSavedRefetchClearsError(t *testing.T) {
	repo := &fakeSavedRepo{listErr: errBoom}
	svc := newSavedService(t, repo)
	if svc.Err().Get() == "" {
		t.Fatalf("expected error after failed fetch")
	}

	repo.listErr = nil
	repo.saved = []response_models.SavedItinerary{savedFor(uuid.New())}
	svc.FetchAll(context.Background())
	if msg := svc.Err().Get(); msg != "" {
		t.Fatalf("expected error cleared after successful fetch, got %q", msg)
	}
	if len(svc.SavedItineraries().Get()) != 1 {
		t.Fatalf("expected the fetched record, got %+v", svc.SavedItineraries().Get())
	}
}

func TestSaveAppendsWithoutRefetch(t *testing.T) {
	repo := &fakeSavedRepo{}
	svc := newSavedService(t, repo)
	itineraryID := uuid.New()

	called := false
	svc.Save(context.Background(), itineraryID, func() { called = true })

	saved := svc.SavedItineraries().Get()
	if len(saved) != 1 || saved[0].ItineraryID != itineraryID || saved[0].UserID != demoUser {
		t.Fatalf("expected created record appended, got %+v", saved)
	}
	if !called {
		t.Fatalf("expected success callback")
	}
	if repo.count("list") != 1 {
		t.Fatalf("expected no refetch after save")
	}

	repo.saveErr = errBoom
	svc.Save(context.Background(), uuid.New(), func() { t.Fatalf("callback must not fire on failure") })
	if len(svc.SavedItineraries().Get()) != 1 {
		t.Fatalf("expected nothing appended on failure")
	}
}

func TestRemoveDeletesBySavedRecordID(t *testing.T) {
	itineraryID := uuid.New()
	record := savedFor(itineraryID)
	other := savedFor(uuid.New())
	repo := &fakeSavedRepo{saved: []response_models.SavedItinerary{record, other}}
	svc := newSavedService(t, repo)

	svc.Remove(context.Background(), itineraryID)

	if deleted := repo.argsOf("delete"); len(deleted) != 1 || deleted[0] != record.ID {
		t.Fatalf("expected delete keyed by saved id %s, got %v", record.ID, deleted)
	}
	if got := svc.SavedItineraries().Get(); len(got) != 1 || got[0].ID != other.ID {
		t.Fatalf("expected only the removed record filtered out, got %+v", got)
	}
}

func TestRemoveFailureKeepsRecord(t *testing.T) {
	itineraryID := uuid.New()
	repo := &fakeSavedRepo{saved: []response_models.SavedItinerary{savedFor(itineraryID)}, deleteErr: errBoom}
	svc := newSavedService(t, repo)

	svc.Remove(context.Background(), itineraryID)
	if len(svc.SavedItineraries().Get()) != 1 {
		t.Fatalf("expected record kept when delete fails")
	}
}

// Absent targets are a silent no-op. Kept deliberately: a Remove racing an
// in-flight FetchAll can miss a record the backend already has.
func TestRemoveAbsentIsNoOp(t *testing.T) {
	repo := &fakeSavedRepo{saved: []response_models.SavedItinerary{savedFor(uuid.New())}}
	svc := newSavedService(t, repo)
	before := svc.SavedItineraries().Get()

	svc.Remove(context.Background(), uuid.New())

	if repo.count("delete") != 0 {
		t.Fatalf("expected no backend call for an absent itinerary")
	}
	if !reflect.DeepEqual(svc.SavedItineraries().Get(), before) {
		t.Fatalf("expected list unchanged")
	}
}

func TestSetAsNextPlan(t *testing.T) {
	itineraryID := uuid.New()
	record := savedFor(itineraryID)
	repo := &fakeSavedRepo{saved: []response_models.SavedItinerary{record}}
	svc := newSavedService(t, repo)

	svc.SetAsNextPlan(itineraryID)
	if got := svc.NextPlan().Get(); got == nil || *got != record {
		t.Fatalf("expected next plan %+v, got %+v", record, got)
	}

	svc.SetAsNextPlan(uuid.New())
	if got := svc.NextPlan().Get(); got == nil || got.ID != record.ID {
		t.Fatalf("expected next plan unchanged for an absent itinerary, got %+v", got)
	}
}

func TestHomeJoins(t *testing.T) {
	a := itinerary("A", "Italy")
	b := itinerary("B", "France")
	itineraries := NewItineraryService(&fakeItineraryRepo{items: []response_models.Itinerary{a, b}}, WithoutInitialFetch())
	t.Cleanup(itineraries.Close)

	unknown := savedFor(uuid.New())
	repo := &fakeSavedRepo{saved: []response_models.SavedItinerary{savedFor(b.ID), unknown, savedFor(a.ID)}}
	saved := newSavedService(t, repo)

	next := NextPlanItinerary(saved.NextPlan(), itineraries.Itineraries())
	details := SavedItineraryDetails(saved.SavedItineraries(), itineraries.Itineraries())

	saved.SetAsNextPlan(a.ID)
	if next.Get() != nil {
		t.Fatalf("expected no next plan itinerary before the catalog loads")
	}
	if len(details.Get()) != 0 {
		t.Fatalf("expected no details before the catalog loads")
	}

	itineraries.FetchAll(context.Background())
	if got := next.Get(); got == nil || got.ID != a.ID {
		t.Fatalf("expected next plan itinerary %s, got %+v", a.ID, got)
	}
	got := details.Get()
	if len(got) != 2 || got[0].Itinerary.ID != b.ID || got[1].Itinerary.ID != a.ID {
		t.Fatalf("expected saved order with unresolved records skipped, got %+v", got)
	}
}
