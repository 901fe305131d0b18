package jobsearch

import (
	"testing"
	"time"

	"github.com/Mahak-Sharma/Resume-to-job/internal/skills"
)

func TestParseCreated(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		input  any
		expect time.Time
	}{
		{name: "rfc3339", input: "2024-05-17T09:30:00Z", expect: day},
		{name: "iso without zone", input: "2024-05-17T09:30:00", expect: day},
		{name: "date only", input: "2024-05-17", expect: day},
		{name: "epoch milliseconds as number", input: float64(day.Add(10 * time.Hour).UnixMilli()), expect: day},
		{name: "epoch milliseconds as string", input: "1715925600000", expect: day},
		{name: "empty string", input: "", expect: time.Time{}},
		{name: "garbage", input: "yesterday-ish", expect: time.Time{}},
		{name: "nil", input: nil, expect: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseCreated(tt.input); !got.Equal(tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	withID := &Job{ID: "7", Title: "Dev", CompanyName: "Acme"}
	if withID.Identity() != "7" {
		t.Fatalf("expected provider id to win, got %q", withID.Identity())
	}

	a := &Job{Title: "Dev", CompanyName: "Acme"}
	b := &Job{Title: "De", CompanyName: "vAcme"}
	if a.Identity() == b.Identity() {
		t.Fatalf("title/company identity must not collide across field boundaries")
	}
}

func TestAssemble(t *testing.T) {
	t.Parallel()

	set := skills.Build([]string{"Python", "React"}, nil)
	records := []*Job{
		{ID: "1", Title: "Frontend Dev", CompanyName: "Acme", Description: "React and css"},
		{ID: "2", Title: "Backend Dev", CompanyName: "Acme", Description: "Python and React services"},
		{ID: "1", Title: "Frontend Dev", CompanyName: "Acme", Description: "duplicate"},
		{ID: "3", Title: "Analyst", CompanyName: "Globex"},
	}

	result := Assemble(records, set, 240)

	if result.Jobs.Len() != 3 {
		t.Fatalf("expected 3 jobs after dedup, got %d", result.Jobs.Len())
	}
	if result.TotalResults != 240 {
		t.Fatalf("expected total results hint to pass through, got %d", result.TotalResults)
	}

	items := result.Jobs.Items
	if items[0].ID != "2" || items[0].SkillMatchScore != 100 {
		t.Fatalf("expected job 2 ranked first with score 100, got %s/%d", items[0].ID, items[0].SkillMatchScore)
	}
	if items[1].ID != "1" || items[1].SkillMatchScore != 50 {
		t.Fatalf("expected job 1 second with score 50, got %s/%d", items[1].ID, items[1].SkillMatchScore)
	}
	if items[2].ID != "3" || items[2].SkillMatchScore != 0 {
		t.Fatalf("expected description-less job included with score 0, got %s/%d", items[2].ID, items[2].SkillMatchScore)
	}

	page := result.Page(2, 2)
	if len(page) != 1 || page[0].ID != "3" {
		t.Fatalf("expected second page to hold job 3, got %v", page)
	}
}
