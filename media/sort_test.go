package media

import "testing"

func TestSortByDescendingBitrate(t *testing.T) {
	t.Parallel()
	formats := []*Format{
		NewContainerFormat("low", "", "", 400_000),
		NewContainerFormat("unknown", "", "", NoValue),
		NewContainerFormat("high", "", "", 5_000_000),
		NewContainerFormat("mid", "", "", 1_200_000),
	}
	SortByDescendingBitrate(formats)

	want := []string{"high", "mid", "low", "unknown"}
	for i, id := range want {
		if formats[i].ID != id {
			t.Errorf("position %d: got %q, want %q", i, formats[i].ID, id)
		}
	}
}
