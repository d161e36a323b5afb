package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/cognicore/querylens/pkg/querylens/store"
)

func TestUpsertAndListQueryCounts(t *testing.T) {
	ctx := context.Background()
	st := New()
	defer st.Close()

	if err := st.UpsertQueryCount(ctx, "red shoes", 10); err != nil {
		t.Fatal(err)
	}
	if err := st.UpsertQueryCount(ctx, "blue shoes", 10); err != nil {
		t.Fatal(err)
	}
	if err := st.UpsertQueryCount(ctx, "red socks", 25); err != nil {
		t.Fatal(err)
	}

	pairs, err := st.QueryCounts(ctx)
	if err != nil {
		t.Fatal(err)
	}

	// Count descending, query ascending on ties.
	want := []store.QueryCount{
		{Query: "red socks", Count: 25},
		{Query: "blue shoes", Count: 10},
		{Query: "red shoes", Count: 10},
	}
	if len(pairs) != len(want) {
		t.Fatalf("got %d pairs, want %d", len(pairs), len(want))
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("pair %d = %v, want %v", i, pairs[i], want[i])
		}
	}
}

func TestUpsertReplacesCount(t *testing.T) {
	ctx := context.Background()
	st := New()
	defer st.Close()

	st.UpsertQueryCount(ctx, "red shoes", 10)
	st.UpsertQueryCount(ctx, "red shoes", 42)

	pairs, err := st.QueryCounts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 1 || pairs[0].Count != 42 {
		t.Errorf("pairs = %v, want single row with count 42", pairs)
	}
}

func TestSaveAndGetReport(t *testing.T) {
	ctx := context.Background()
	st := New()
	defer st.Close()

	rec := store.ReportRecord{
		ID:        "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		CreatedAt: time.Now().UTC(),
		Language:  "english",
		Topics:    4,
		Seed:      1234,
		Payload:   []byte(`{"terms":[]}`),
	}
	if err := st.SaveReport(ctx, rec); err != nil {
		t.Fatal(err)
	}

	got, found, err := st.GetReport(ctx, rec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("report not found")
	}
	if got.Language != "english" || got.Topics != 4 || got.Seed != 1234 {
		t.Errorf("report = %+v", got)
	}
	if string(got.Payload) != `{"terms":[]}` {
		t.Errorf("payload = %s", got.Payload)
	}

	_, found, err = st.GetReport(ctx, "missing")
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("missing report reported as found")
	}
}

func TestListReportsNewestFirst(t *testing.T) {
	ctx := context.Background()
	st := New()
	defer st.Close()

	base := time.Now().UTC()
	for i, id := range []string{"a", "b", "c"} {
		st.SaveReport(ctx, store.ReportRecord{
			ID:        id,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	reports, err := st.ListReports(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(reports))
	}
	if reports[0].ID != "c" || reports[1].ID != "b" {
		t.Errorf("order = %s, %s, want c, b", reports[0].ID, reports[1].ID)
	}
}
