package service

import (
	"testing"

	"github.com/aliskhannn/wonderland-bot/internal/domain/entities"
)

func TestWordPickerPick(t *testing.T) {
	categories := []entities.WordCategory{
		{Name: "tamaño", Words: []string{"pequeño", "gigante"}},
		{Name: "vacía"},
		{Name: "rareza", Words: []string{"habla en rimas"}},
	}

	got := NewWordPicker(categories, fixedRandom{i: 1}).Pick()
	want := []entities.WordPick{
		{Category: "tamaño", Word: "gigante"},
		{Category: "rareza", Word: "habla en rimas"},
	}

	if len(got) != len(want) {
		t.Fatalf("Pick() returned %d picks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pick %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestWordPickerPicksFromEachCategory(t *testing.T) {
	categories := []entities.WordCategory{
		{Name: "a", Words: []string{"1", "2", "3"}},
		{Name: "b", Words: []string{"4", "5"}},
	}
	p := NewWordPicker(categories, nil)

	for i := 0; i < 50; i++ {
		picks := p.Pick()
		if len(picks) != 2 {
			t.Fatalf("Pick() returned %d picks, want 2", len(picks))
		}
		for j, pick := range picks {
			found := false
			for _, w := range categories[j].Words {
				if w == pick.Word {
					found = true
				}
			}
			if !found || pick.Category != categories[j].Name {
				t.Errorf("pick %+v not from category %q", pick, categories[j].Name)
			}
		}
	}
}
