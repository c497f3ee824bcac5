package order

import (
	"testing"

	"washlane/models"
)

func TestTimelineForStatus(t *testing.T) {
	t.Run("progress over the ordered statuses", func(t *testing.T) {
		cases := []struct {
			status    models.OrderStatus
			completed int
			percent   int
		}{
			{models.StatusPending, 1, 20},
			{models.StatusProcessing, 2, 40},
			{models.StatusReadyForDelivery, 4, 80},
			{models.StatusDelivered, 5, 100},
		}
		previous := -1
		for _, tc := range cases {
			snapshot := TimelineForStatus(tc.status, "")
			if snapshot.CompletedSteps != tc.completed {
				t.Fatalf("%s: expected %d completed steps, got %d", tc.status, tc.completed, snapshot.CompletedSteps)
			}
			if snapshot.ProgressPercent != tc.percent {
				t.Fatalf("%s: expected %d%%, got %d%%", tc.status, tc.percent, snapshot.ProgressPercent)
			}
			if snapshot.ProgressPercent < previous {
				t.Fatalf("%s: progress decreased from %d to %d", tc.status, previous, snapshot.ProgressPercent)
			}
			previous = snapshot.ProgressPercent
			if snapshot.Unknown || snapshot.Cancelled {
				t.Fatalf("%s: unexpected flags in %+v", tc.status, snapshot)
			}
		}
	})

	t.Run("only Delivered reaches 100", func(t *testing.T) {
		for _, status := range []models.OrderStatus{models.StatusPending, models.StatusProcessing, models.StatusReadyForDelivery} {
			if p := ProgressPercent(status, ""); p == 100 {
				t.Fatalf("%s: progress must not be 100", status)
			}
		}
		if p := ProgressPercent(models.StatusDelivered, ""); p != 100 {
			t.Fatalf("Delivered: expected 100, got %d", p)
		}
	})

	t.Run("ready for delivery completes exactly the first four steps", func(t *testing.T) {
		snapshot := TimelineForStatus(models.StatusReadyForDelivery, "")
		for i, step := range snapshot.Steps {
			wantDone := i < 4
			if step.Completed != wantDone {
				t.Fatalf("step %d (%s): completed=%v, want %v", i, step.Label, step.Completed, wantDone)
			}
		}
	})

	t.Run("cancellation freezes whatever was true", func(t *testing.T) {
		snapshot := TimelineForStatus(models.StatusCancelled, models.StatusProcessing)
		if !snapshot.Cancelled || !snapshot.Terminal {
			t.Fatalf("expected cancelled terminal snapshot, got %+v", snapshot)
		}
		if snapshot.CompletedSteps != 2 {
			t.Fatalf("expected steps 1-2 completed, got %d", snapshot.CompletedSteps)
		}
		for i, step := range snapshot.Steps[2:] {
			if step.Completed {
				t.Fatalf("step %d completed after cancellation", i+3)
			}
		}
	})

	t.Run("cancellation without a recorded prior status keeps only placement", func(t *testing.T) {
		snapshot := TimelineForStatus(models.StatusCancelled, "")
		if snapshot.CompletedSteps != 1 {
			t.Fatalf("expected 1 completed step, got %d", snapshot.CompletedSteps)
		}
	})

	t.Run("unknown status is flagged, never a crash", func(t *testing.T) {
		snapshot := TimelineForStatus("Teleported", "")
		if !snapshot.Unknown {
			t.Fatal("expected Unknown flag")
		}
		if snapshot.ProgressPercent != -1 {
			t.Fatalf("expected unspecified progress -1, got %d", snapshot.ProgressPercent)
		}
		if snapshot.CompletedSteps != TotalSteps {
			t.Fatalf("expected all steps marked beyond-known, got %d", snapshot.CompletedSteps)
		}
	})

	t.Run("identical inputs give identical snapshots", func(t *testing.T) {
		a := TimelineForStatus(models.StatusProcessing, "")
		b := TimelineForStatus(models.StatusProcessing, "")
		if a.CompletedSteps != b.CompletedSteps || a.ProgressPercent != b.ProgressPercent {
			t.Fatalf("snapshots differ: %+v vs %+v", a, b)
		}
		for i := range a.Steps {
			if a.Steps[i] != b.Steps[i] {
				t.Fatalf("step %d differs", i)
			}
		}
	})
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to models.OrderStatus
		want     bool
	}{
		{models.StatusPending, models.StatusProcessing, true},
		{models.StatusPending, models.StatusDelivered, true},
		{models.StatusProcessing, models.StatusPending, false},
		{models.StatusProcessing, models.StatusCancelled, true},
		{models.StatusReadyForDelivery, models.StatusDelivered, true},
		{models.StatusDelivered, models.StatusCancelled, false},
		{models.StatusCancelled, models.StatusProcessing, false},
		{models.StatusPending, "Teleported", false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if !models.StatusDelivered.IsTerminal() || !models.StatusCancelled.IsTerminal() {
		t.Fatal("Delivered and Cancelled must be terminal")
	}
	for _, status := range []models.OrderStatus{models.StatusPending, models.StatusProcessing, models.StatusReadyForDelivery} {
		if status.IsTerminal() {
			t.Fatalf("%s must not be terminal", status)
		}
	}
}
