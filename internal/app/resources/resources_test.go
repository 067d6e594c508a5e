package resources_test

import (
	"testing"

	"github.com/dalemusser/folio/internal/app/resources"
	"github.com/dalemusser/folio/internal/domain/models"
)

func TestLoad(t *testing.T) {
	d, err := resources.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(d.Projects) == 0 {
		t.Fatal("expected fallback projects")
	}
	if len(d.NotableProjects) == 0 {
		t.Fatal("expected fallback notable projects")
	}
	if len(d.Skills.Languages) == 0 || len(d.Skills.SoftSkills) == 0 {
		t.Fatalf("expected fallback skills, got %+v", d.Skills)
	}
	if len(d.Education.EducationData) == 0 {
		t.Fatal("expected fallback education")
	}
	if d.Socials.GithubID == "" {
		t.Fatal("expected fallback socials")
	}
}

func TestProjects_SortedWithValidStatus(t *testing.T) {
	ps := resources.Projects()
	for i, p := range ps {
		if i > 0 && ps[i-1].Position > p.Position {
			t.Errorf("projects not sorted at %d: %d > %d", i, ps[i-1].Position, p.Position)
		}
		if p.ID.IsZero() {
			t.Errorf("project %q has no id", p.Title)
		}
		valid := false
		for _, s := range models.ProjectStatuses {
			if p.Status == s {
				valid = true
			}
		}
		if !valid {
			t.Errorf("project %q: invalid status %q", p.Title, p.Status)
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	ps := resources.Projects()
	ps[0].Title = "mutated"
	if resources.Projects()[0].Title == "mutated" {
		t.Fatal("Projects returned shared backing array")
	}

	s := resources.Skills()
	s.Languages[0].Name = "mutated"
	if resources.Skills().Languages[0].Name == "mutated" {
		t.Fatal("Skills returned shared backing array")
	}
}

func TestExperienceIsNeverNil(t *testing.T) {
	if resources.Experience() == nil {
		t.Fatal("Experience() returned nil; the API must encode []")
	}
}

func TestResponsibilities(t *testing.T) {
	rs := resources.Responsibilities()
	if len(rs) == 0 {
		t.Fatal("expected fallback responsibilities")
	}
	if rs[0].Title != "Treasurer [Director Finance]" {
		t.Errorf("first entry: got %q, want file order", rs[0].Title)
	}
	seen := map[string]bool{}
	for _, r := range rs {
		if r.ID.IsZero() || seen[r.ID.Hex()] {
			t.Errorf("responsibility %q: missing or duplicate id %s", r.Title, r.ID.Hex())
		}
		seen[r.ID.Hex()] = true
		valid := false
		for _, typ := range models.ResponsibilityTypes {
			if r.Type == typ {
				valid = true
			}
		}
		if !valid {
			t.Errorf("responsibility %q: invalid type %q", r.Title, r.Type)
		}
	}

	rs[0].Title = "changed"
	if resources.Responsibilities()[0].Title == "changed" {
		t.Error("accessor returned shared backing array")
	}
}
