package mongo

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vidly/rental-system/internal/core/domain"
)

func TestObjectID(t *testing.T) {
	want := primitive.NewObjectID()

	got, ok := objectID(want.Hex())
	if !ok || got != want {
		t.Fatalf("expected %s, got %s (ok=%v)", want.Hex(), got.Hex(), ok)
	}

	for _, bad := range []string{"", "1234", "not-an-object-id-at-all!"} {
		if _, ok := objectID(bad); ok {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestPersistenceErr_WrapsBoth(t *testing.T) {
	cause := errors.New("connection reset")
	err := persistenceErr("find rental", cause)

	if !errors.Is(err, domain.ErrPersistence) {
		t.Error("expected ErrPersistence in chain")
	}
	if !errors.Is(err, cause) {
		t.Error("expected driver error in chain")
	}
}

func TestPairFilter_RejectsMalformedIDs(t *testing.T) {
	valid := primitive.NewObjectID().Hex()

	if _, ok := pairFilter("bad", valid); ok {
		t.Error("malformed customer id must not produce a filter")
	}
	if _, ok := pairFilter(valid, "bad"); ok {
		t.Error("malformed movie id must not produce a filter")
	}
	f, ok := pairFilter(valid, valid)
	if !ok || len(f) != 2 {
		t.Errorf("expected two-key filter, got %v", f)
	}
}
