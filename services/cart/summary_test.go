package cart

import (
	"testing"

	"washlane/models"
)

func TestBuildSummary(t *testing.T) {
	prices := map[string]float64{"Shirt": 2000, "Pant": 2500}

	t.Run("prices each line and sums the total", func(t *testing.T) {
		c := models.NewCart("s1", "")
		c.Increment("Shirt")
		c.Increment("Shirt")
		c.Increment("Pant")

		summary := BuildSummary(c, prices)
		if summary.Total != 6500 {
			t.Fatalf("expected total 6500, got %v", summary.Total)
		}
		if len(summary.Lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(summary.Lines))
		}
		// Lines are sorted by item name for stable output.
		if summary.Lines[0].ItemName != "Pant" || summary.Lines[0].LineTotal != 2500 {
			t.Fatalf("unexpected first line: %+v", summary.Lines[0])
		}
		if summary.Lines[1].ItemName != "Shirt" || summary.Lines[1].LineTotal != 4000 {
			t.Fatalf("unexpected second line: %+v", summary.Lines[1])
		}
	})

	t.Run("empty cart summarizes to zero", func(t *testing.T) {
		c := models.NewCart("s1", "")
		summary := BuildSummary(c, prices)
		if summary.Total != 0 || len(summary.Lines) != 0 {
			t.Fatalf("expected empty summary, got %+v", summary)
		}
	})
}
