package db

import (
	"context"
	"testing"

	"github.com/gyeh/facilitystats/internal/model"
)

func TestChannelSource_DrainsChannel(t *testing.T) {
	ch := make(chan *model.StagingRow, 1)
	ch <- &model.StagingRow{Facility: &model.Facility{ID: "gh-1"}}
	close(ch)

	src := NewChannelSource(context.Background(), ch)

	if !src.Next() {
		t.Fatal("Next returned false with a buffered row")
	}
	vals, err := src.Values()
	if err != nil {
		t.Fatalf("Values: %v", err)
	}
	if got, want := len(vals), len(model.FacilityColumns()); got != want {
		t.Fatalf("got %d values, want %d", got, want)
	}
	if vals[2] != "gh-1" {
		t.Errorf("facility_id value = %v, want gh-1", vals[2])
	}
	if src.Next() {
		t.Fatal("Next returned true after channel close")
	}
	if err := src.Err(); err != nil {
		t.Fatalf("Err after clean drain: %v", err)
	}
}

func TestChannelSource_Canceled(t *testing.T) {
	ch := make(chan *model.StagingRow)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewChannelSource(ctx, ch)

	if src.Next() {
		t.Fatal("Next returned true on a canceled context")
	}
	if src.Err() == nil {
		t.Fatal("Err returned nil after cancellation")
	}
}
