package services

import (
	"context"
	"errors"
	"sort"
	"testing"

	"gorm.io/gorm"

	"roadtrip/internal/models/db_models"
	"roadtrip/internal/models/request_models"
	"roadtrip/internal/repositories"
	"roadtrip/pkg/utils"
)

// fakeDestinationRepo mirrors the gorm repository's contract, including
// its nil-on-missing reads and gorm sentinel errors.
type fakeDestinationRepo struct {
	records map[string]db_models.Destination
}

var _ repositories.DestinationRepository = (*fakeDestinationRepo)(nil)

func newFakeDestinationRepo() *fakeDestinationRepo {
	return &fakeDestinationRepo{records: make(map[string]db_models.Destination)}
}

func (f *fakeDestinationRepo) Create(_ context.Context, dest *db_models.Destination) error {
	if _, ok := f.records[dest.ID]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.records[dest.ID] = *dest
	return nil
}

func (f *fakeDestinationRepo) GetByID(_ context.Context, id string) (*db_models.Destination, error) {
	if d, ok := f.records[id]; ok {
		rec := d
		return &rec, nil
	}
	return nil, nil
}

func (f *fakeDestinationRepo) List(_ context.Context, offset, limit int) ([]db_models.Destination, error) {
	ids := make([]string, 0, len(f.records))
	for id := range f.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []db_models.Destination
	for i := offset; i < len(ids) && len(out) < limit; i++ {
		out = append(out, f.records[ids[i]])
	}
	return out, nil
}

func (f *fakeDestinationRepo) Update(_ context.Context, currentID string, dest *db_models.Destination) error {
	if _, ok := f.records[currentID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if dest.ID != currentID {
		if _, ok := f.records[dest.ID]; ok {
			return gorm.ErrDuplicatedKey
		}
		delete(f.records, currentID)
	}
	f.records[dest.ID] = *dest
	return nil
}

func (f *fakeDestinationRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.records, id)
	return nil
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestCreateDestinationDerivesID(t *testing.T) {
	svc := NewDestinationService(newFakeDestinationRepo())

	dest, err := svc.CreateDestination(context.Background(), request_models.CreateDestinationRequest{
		Name: "Gurez Valley",
		Lat:  floatPtr(34.6374),
		Long: floatPtr(74.8298),
	})
	if err != nil {
		t.Fatalf("CreateDestination returned error: %v", err)
	}
	if dest.ID != "34.6374_74.8298" {
		t.Errorf("derived id = %q, want %q", dest.ID, "34.6374_74.8298")
	}
	if dest.ImageURLs == nil {
		t.Error("image_urls should default to an empty slice, not nil")
	}
	if dest.CreatedAt <= 0 {
		t.Errorf("created_at = %d, want an epoch-millisecond timestamp", dest.CreatedAt)
	}
}

func TestCreateDestinationConflictsBeyondSixthDecimal(t *testing.T) {
	svc := NewDestinationService(newFakeDestinationRepo())
	ctx := context.Background()

	if _, err := svc.CreateDestination(ctx, request_models.CreateDestinationRequest{
		Name: "first", Lat: floatPtr(10.1234561), Long: floatPtr(20.000001),
	}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.CreateDestination(ctx, request_models.CreateDestinationRequest{
		Name: "second", Lat: floatPtr(10.12345608), Long: floatPtr(20.0000012),
	})
	if !errors.Is(err, utils.ErrDestinationConflict) {
		t.Errorf("expected conflict for coordinates equal after rounding, got %v", err)
	}
}

func TestCreateDestinationValidation(t *testing.T) {
	svc := NewDestinationService(newFakeDestinationRepo())
	ctx := context.Background()

	if _, err := svc.CreateDestination(ctx, request_models.CreateDestinationRequest{
		Name: "  ", Lat: floatPtr(1), Long: floatPtr(1),
	}); !errors.Is(err, utils.ErrInvalidName) {
		t.Errorf("blank name: got %v, want ErrInvalidName", err)
	}

	if _, err := svc.CreateDestination(ctx, request_models.CreateDestinationRequest{
		Name: "bad", Lat: floatPtr(91), Long: floatPtr(0),
	}); !errors.Is(err, utils.ErrInvalidCoordinates) {
		t.Errorf("lat out of range: got %v, want ErrInvalidCoordinates", err)
	}
}

func TestUpdateNameKeepsID(t *testing.T) {
	repo := newFakeDestinationRepo()
	svc := NewDestinationService(repo)
	ctx := context.Background()

	created, err := svc.CreateDestination(ctx, request_models.CreateDestinationRequest{
		Name: "old name", Lat: floatPtr(34.6374), Long: floatPtr(74.8298),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateDestination(ctx, created.ID, request_models.UpdateDestinationRequest{
		Name: strPtr("new name"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("name-only update changed id: %q -> %q", created.ID, updated.ID)
	}
	if updated.Name != "new name" {
		t.Errorf("name not applied: %q", updated.Name)
	}
}

func TestUpdateCoordinateRecomputesID(t *testing.T) {
	repo := newFakeDestinationRepo()
	svc := NewDestinationService(repo)
	ctx := context.Background()

	created, err := svc.CreateDestination(ctx, request_models.CreateDestinationRequest{
		Name: "movable", Lat: floatPtr(10.5), Long: floatPtr(20.5),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateDestination(ctx, created.ID, request_models.UpdateDestinationRequest{
		Lat: floatPtr(11.25),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	// Recomputed from the resulting pair: new lat, old long.
	if updated.ID != "11.25_20.5" {
		t.Errorf("recomputed id = %q, want %q", updated.ID, "11.25_20.5")
	}
	if _, ok := repo.records[created.ID]; ok {
		t.Error("old id still present after relocation")
	}
}

func TestUpdateCoordinateCollisionRejected(t *testing.T) {
	svc := NewDestinationService(newFakeDestinationRepo())
	ctx := context.Background()

	if _, err := svc.CreateDestination(ctx, request_models.CreateDestinationRequest{
		Name: "anchor", Lat: floatPtr(10), Long: floatPtr(20),
	}); err != nil {
		t.Fatalf("create anchor failed: %v", err)
	}
	mover, err := svc.CreateDestination(ctx, request_models.CreateDestinationRequest{
		Name: "mover", Lat: floatPtr(30), Long: floatPtr(40),
	})
	if err != nil {
		t.Fatalf("create mover failed: %v", err)
	}

	_, err = svc.UpdateDestination(ctx, mover.ID, request_models.UpdateDestinationRequest{
		Lat: floatPtr(10), Long: floatPtr(20),
	})
	if !errors.Is(err, utils.ErrDestinationConflict) {
		t.Errorf("expected conflict moving onto an existing record, got %v", err)
	}
}

func TestUpdateMissingDestination(t *testing.T) {
	svc := NewDestinationService(newFakeDestinationRepo())

	_, err := svc.UpdateDestination(context.Background(), "1_1", request_models.UpdateDestinationRequest{
		Name: strPtr("ghost"),
	})
	if !errors.Is(err, utils.ErrDestinationNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestListDestinationsPaginationStable(t *testing.T) {
	svc := NewDestinationService(newFakeDestinationRepo())
	ctx := context.Background()

	coords := []float64{5, 1, 4, 2, 3}
	for _, v := range coords {
		if _, err := svc.CreateDestination(ctx, request_models.CreateDestinationRequest{
			Name: "d", Lat: floatPtr(v), Long: floatPtr(v),
		}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	first, err := svc.ListDestinations(ctx, 0, 3)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	second, err := svc.ListDestinations(ctx, 3, 3)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(first)+len(second) != len(coords) {
		t.Fatalf("pages cover %d records, want %d", len(first)+len(second), len(coords))
	}
	seen := make(map[string]bool)
	for _, d := range append(first, second...) {
		if seen[d.ID] {
			t.Errorf("id %q appears in both pages", d.ID)
		}
		seen[d.ID] = true
	}
}

func TestDeleteDestination(t *testing.T) {
	svc := NewDestinationService(newFakeDestinationRepo())
	ctx := context.Background()

	created, err := svc.CreateDestination(ctx, request_models.CreateDestinationRequest{
		Name: "temp", Lat: floatPtr(1), Long: floatPtr(2),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeleteDestination(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.DeleteDestination(ctx, created.ID); !errors.Is(err, utils.ErrDestinationNotFound) {
		t.Errorf("second delete: got %v, want ErrDestinationNotFound", err)
	}
}
