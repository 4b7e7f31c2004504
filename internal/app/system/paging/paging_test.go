package paging

import "testing"

func makeRows(n int) []int {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return rows
}

func TestTrimPage_FirstPage(t *testing.T) {
	rows := makeRows(PageSize + 1)
	res := TrimPage(&rows, "", "")

	if len(rows) != PageSize {
		t.Errorf("len = %d, want %d", len(rows), PageSize)
	}
	if res.HasPrev {
		t.Error("first page must not have prev")
	}
	if !res.HasNext {
		t.Error("overfull fetch must have next")
	}
}

func TestTrimPage_FirstPageExact(t *testing.T) {
	rows := makeRows(PageSize)
	res := TrimPage(&rows, "", "")

	if len(rows) != PageSize {
		t.Errorf("len = %d, want %d", len(rows), PageSize)
	}
	if res.HasNext {
		t.Error("exact fetch must not have next")
	}
}

func TestTrimPage_Forward(t *testing.T) {
	rows := makeRows(PageSize + 1)
	res := TrimPage(&rows, "", "some-cursor")

	if !res.HasPrev {
		t.Error("forward page must have prev")
	}
	if !res.HasNext {
		t.Error("overfull forward fetch must have next")
	}
}

func TestTrimPage_Backward(t *testing.T) {
	rows := makeRows(PageSize + 1)
	res := TrimPage(&rows, "some-cursor", "")

	if len(rows) != PageSize {
		t.Errorf("len = %d, want %d", len(rows), PageSize)
	}
	if !res.HasPrev || !res.HasNext {
		t.Errorf("backward overfull fetch: %+v, want prev and next", res)
	}
}

func TestTrimPage_BackwardShort(t *testing.T) {
	rows := makeRows(3)
	res := TrimPage(&rows, "some-cursor", "")

	if len(rows) != 3 {
		t.Errorf("len = %d, want 3", len(rows))
	}
	if res.HasPrev {
		t.Error("short backward fetch must not have prev")
	}
	if !res.HasNext {
		t.Error("backward fetch always has next")
	}
}

func TestConfigureKeyset_Directions(t *testing.T) {
	if cfg := ConfigureKeyset("", ""); cfg.Direction != Forward || cfg.SortOrder != 1 || cfg.Cursor != nil {
		t.Errorf("default config = %+v", cfg)
	}
	if cfg := ConfigureKeyset("x", ""); cfg.Direction != Backward || cfg.SortOrder != -1 {
		t.Errorf("backward config = %+v", cfg)
	}
}

func TestReverse(t *testing.T) {
	rows := []int{1, 2, 3, 4}
	Reverse(rows)
	want := []int{4, 3, 2, 1}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("rows = %v, want %v", rows, want)
		}
	}
}
