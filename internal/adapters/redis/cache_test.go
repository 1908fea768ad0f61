package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "lite_rates/internal/adapters/redis"
	"lite_rates/internal/domain"
)

func TestCache_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	key := redisad.CatalogueKey("h1")
	in := []domain.RoomCatalogueEntry{{ID: 5, Name: "Double", MaxAdults: 2}}

	if ok, _ := c.Get(ctx, key, &[]domain.RoomCatalogueEntry{}); ok {
		t.Fatal("expected miss before set")
	}
	if err := c.Set(ctx, key, in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out []domain.RoomCatalogueEntry
	ok, err := c.Get(ctx, key, &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(out) != 1 || out[0].ID != 5 || out[0].Name != "Double" {
		t.Fatalf("unexpected value: %+v", out)
	}

	if err := c.Del(ctx, key); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := c.Get(ctx, key, &out); ok {
		t.Fatal("expected miss after del")
	}
}
