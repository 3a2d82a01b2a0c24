package catalog

import "testing"

func TestMissionsFlattenCatalog(t *testing.T) {
	categories := Categories()
	missions := Missions()

	want := 0
	for _, category := range categories {
		want += len(category.Missions)
	}
	if len(missions) != want {
		t.Fatalf("Missions() returned %d entries, want %d", len(missions), want)
	}
}

func TestMissionIDsUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for _, m := range Missions() {
		if m.ID == "" {
			t.Fatalf("mission %q has empty id", m.Title)
		}
		if _, dup := seen[m.ID]; dup {
			t.Fatalf("duplicate mission id %q", m.ID)
		}
		seen[m.ID] = struct{}{}
	}
}

func TestSeedMissionsStartPending(t *testing.T) {
	for _, m := range Missions() {
		if m.Completed {
			t.Fatalf("seed mission %q is already completed", m.ID)
		}
		if m.CompletedAt != nil {
			t.Fatalf("seed mission %q has a completion time", m.ID)
		}
	}
}

func TestMissionCategoriesConsistent(t *testing.T) {
	for _, category := range Categories() {
		if len(category.Missions) == 0 {
			t.Fatalf("category %q has no missions", category.ID)
		}
		for _, m := range category.Missions {
			if m.Category != category.ID {
				t.Fatalf("mission %q carries category %q, want %q", m.ID, m.Category, category.ID)
			}
			if m.Points <= 0 {
				t.Fatalf("mission %q has non-positive points", m.ID)
			}
		}
	}
}
