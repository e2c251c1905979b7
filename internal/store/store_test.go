package store

import (
	"context"
	"testing"
	"time"

	"github.com/garnizeh/timetrack/internal/models"
)

func loadedStore(t *testing.T, dir string) *Store {
	t.Helper()
	s, err := New(dir, nil, nil)
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("store.Load: %v", err)
	}
	return s
}

func TestLoadCollections(t *testing.T) {
	s := loadedStore(t, "testdata")

	if got := len(s.Specialists()); got != 3 {
		t.Fatalf("specialists: expected 3 got %d", got)
	}
	if got := len(s.Projects()); got != 2 {
		t.Fatalf("projects: expected 2 got %d", got)
	}
	if got := len(s.Periods()); got != 2 {
		t.Fatalf("periods: expected 2 got %d", got)
	}

	// totals are derived from the embedded entries during decode
	pp1, ok := s.Period("pp1")
	if !ok {
		t.Fatal("pp1 not found")
	}
	if pp1.TotalHours != 22 {
		t.Fatalf("pp1 total_hours: expected 22 got %v", pp1.TotalHours)
	}
	if pp1.Name != "Mar 2023" {
		t.Fatalf("pp1 derived name: got %q", pp1.Name)
	}

	// a name present in the file is kept as-is
	pp2, _ := s.Period("pp2")
	if pp2.Name != "February 2023" {
		t.Fatalf("pp2 name: got %q", pp2.Name)
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	s := loadedStore(t, "testdata")
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if got := len(s.Specialists()); got != 3 {
		t.Fatalf("specialists after reload: expected 3 got %d", got)
	}
}

func TestLoadMissingDirYieldsEmptyCollections(t *testing.T) {
	s := loadedStore(t, "testdata/nope")

	if got := len(s.Specialists()); got != 0 {
		t.Fatalf("expected empty specialists, got %d", got)
	}
	if got := len(s.Projects()); got != 0 {
		t.Fatalf("expected empty projects, got %d", got)
	}
	if got := len(s.Periods()); got != 0 {
		t.Fatalf("expected empty periods, got %d", got)
	}
}

func TestLoadHonorsRoleCatalog(t *testing.T) {
	// a catalog covering every role in the fixture loads normally
	full := []models.Role{models.RoleDeveloper, models.RoleProjectManager, models.RoleQA}
	s, err := New("testdata", full, nil)
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("store.Load: %v", err)
	}
	if got := len(s.Specialists()); got != 3 {
		t.Fatalf("full catalog: expected 3 specialists got %d", got)
	}

	// a narrower catalog rejects the collection like any other invalid record
	s, err = New("testdata", []models.Role{models.RoleDeveloper}, nil)
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("store.Load: %v", err)
	}
	if got := len(s.Specialists()); got != 0 {
		t.Fatalf("restricted catalog: expected empty specialists, got %d", got)
	}
	// the other collections are unaffected
	if got := len(s.Periods()); got != 2 {
		t.Fatalf("restricted catalog: expected 2 periods got %d", got)
	}
}

func TestLoadCanceledContext(t *testing.T) {
	s, err := New("testdata", nil, nil)
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Load(ctx); err == nil {
		t.Fatal("expected Load to report the canceled context")
	}
}

func TestLoadRejectsDataFailingSchema(t *testing.T) {
	s := loadedStore(t, "testdata/bad")
	if got := len(s.Specialists()); got != 0 {
		t.Fatalf("schema-invalid file should yield empty collection, got %d records", got)
	}
}

func TestLookupsByID(t *testing.T) {
	s := loadedStore(t, "testdata")

	sp, ok := s.Specialist("s1")
	if !ok || sp.FullName != "John Doe" {
		t.Fatalf("s1 lookup: ok=%v sp=%+v", ok, sp)
	}
	if _, ok := s.Specialist("missing"); ok {
		t.Fatal("expected miss for unknown specialist id")
	}

	p, ok := s.Project("p2")
	if !ok || p.ClientName != "Globex" {
		t.Fatalf("p2 lookup: ok=%v p=%+v", ok, p)
	}
	if _, ok := s.Project("missing"); ok {
		t.Fatal("expected miss for unknown project id")
	}
	if _, ok := s.Period("missing"); ok {
		t.Fatal("expected miss for unknown period id")
	}
}

func TestFilterSpecialists(t *testing.T) {
	s := loadedStore(t, "testdata")

	active := true
	got := s.FilterSpecialists(SpecialistFilter{Active: &active})
	if len(got) != 2 {
		t.Fatalf("active filter: expected 2 got %d", len(got))
	}

	got = s.FilterSpecialists(SpecialistFilter{Role: "Developer"})
	if len(got) != 1 || got[0].ID != "s1" {
		t.Fatalf("role filter: %+v", got)
	}

	// criteria compose with AND
	inactive := false
	got = s.FilterSpecialists(SpecialistFilter{Active: &inactive, Role: "QA"})
	if len(got) != 1 || got[0].ID != "s3" {
		t.Fatalf("combined filter: %+v", got)
	}
	got = s.FilterSpecialists(SpecialistFilter{Active: &active, Role: "QA"})
	if len(got) != 0 {
		t.Fatalf("combined filter should match nothing: %+v", got)
	}

	// zero filter returns everything
	if got := s.FilterSpecialists(SpecialistFilter{}); len(got) != 3 {
		t.Fatalf("zero filter: expected 3 got %d", len(got))
	}
}

func TestFilterProjectsAndPeriods(t *testing.T) {
	s := loadedStore(t, "testdata")

	got := s.FilterProjects(ProjectFilter{Status: "Active"})
	if len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("status filter: %+v", got)
	}
	got = s.FilterProjects(ProjectFilter{Status: "Completed", Type: "Fixed Price"})
	if len(got) != 1 || got[0].ID != "p2" {
		t.Fatalf("combined filter: %+v", got)
	}
	got = s.FilterProjects(ProjectFilter{Status: "Active", Type: "Retainer"})
	if len(got) != 0 {
		t.Fatalf("disjoint filter should match nothing: %+v", got)
	}

	periods := s.FilterPeriods(PeriodFilter{Status: "Closed"})
	if len(periods) != 1 || periods[0].ID != "pp2" {
		t.Fatalf("period status filter: %+v", periods)
	}
}

func TestTimeEntriesFlattenAndFilter(t *testing.T) {
	s := loadedStore(t, "testdata")

	all := s.TimeEntries(EntryFilter{})
	if len(all) != 4 {
		t.Fatalf("expected 4 entries across periods, got %d", len(all))
	}

	mine := s.TimeEntries(EntryFilter{SpecialistID: "s1"})
	if len(mine) != 3 {
		t.Fatalf("specialist filter: expected 3 got %d", len(mine))
	}

	both := s.TimeEntries(EntryFilter{SpecialistID: "s1", ProjectID: "p1"})
	if len(both) != 2 {
		t.Fatalf("combined filter: expected 2 got %d", len(both))
	}

	from := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 3, 1, 23, 59, 59, 0, time.UTC)
	ranged := s.TimeEntries(EntryFilter{From: &from, To: &to})
	if len(ranged) != 2 {
		t.Fatalf("date range filter: expected 2 got %d", len(ranged))
	}
	for _, e := range ranged {
		if e.Date.Before(from) || e.Date.After(to) {
			t.Fatalf("entry out of range: %+v", e)
		}
	}

	// range bounds are inclusive
	exact := time.Date(2023, 2, 15, 0, 0, 0, 0, time.UTC)
	if got := s.TimeEntries(EntryFilter{From: &exact, To: &exact}); len(got) != 1 {
		t.Fatalf("inclusive bounds: expected 1 got %d", len(got))
	}

	var entry models.TimeEntry
	for _, e := range all {
		if e.ID == "t2" {
			entry = e
		}
	}
	if entry.Hours != 6 {
		t.Fatalf("t2 hours: expected 6 got %v", entry.Hours)
	}
}
