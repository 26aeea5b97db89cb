package storage

import "testing"

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []ScoreEntry{
		{Mode: "story", Score: 100, Distance: 1200, Hull: "INTERCEPTOR"},
		{Mode: "story", Score: 50, Distance: 300, Hull: "TITAN"},
		{Mode: "story", Score: 200, Distance: 4100, Hull: "SPECTER"},
		{Mode: "openworld", Score: 500, Distance: 9000, Hull: "EXPLORER"},
	}
	for _, r := range runs {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("story", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	expected := []int{200, 100, 50}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d].Score = %d, expected %d", i, scores[i].Score, want)
		}
	}
	if scores[0].Hull != "SPECTER" || scores[0].Distance != 4100 {
		t.Errorf("top entry = %+v, expected SPECTER at 4100", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}

	open, err := store.TopScores("openworld", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(open) != 1 || open[0].Score != 500 {
		t.Errorf("openworld scores = %+v, expected single 500", open)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore(ScoreEntry{Mode: "story", Score: i * 10}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	tests := []struct {
		limit    int
		expected int
	}{
		{5, 5},
		{0, 10}, // default
		{-1, 10},
		{100, 15},
	}
	for _, tc := range tests {
		scores, err := store.TopScores("story", tc.limit)
		if err != nil {
			t.Fatalf("TopScores(%d) failed: %v", tc.limit, err)
		}
		if len(scores) != tc.expected {
			t.Errorf("TopScores(%d) returned %d entries, expected %d", tc.limit, len(scores), tc.expected)
		}
	}

	all, err := store.AllScores("story")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 15 || all[0].Score != 140 {
		t.Errorf("AllScores() = %d entries starting at %d, expected 15 starting at 140", len(all), all[0].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("story")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty = %d, expected 0", high)
	}

	for _, s := range []int{30, 90, 60} {
		if _, err := store.SaveScore(ScoreEntry{Mode: "story", Score: s}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	high, err = store.HighScore("story")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 90 {
		t.Errorf("HighScore() = %d, expected 90", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{Mode: "story", Score: 10})
	store.SaveScore(ScoreEntry{Mode: "openworld", Score: 20})

	if err := store.ClearScores("story"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	story, _ := store.TopScores("story", 10)
	if len(story) != 0 {
		t.Errorf("story scores after clear = %d, expected 0", len(story))
	}
	open, _ := store.TopScores("openworld", 10)
	if len(open) != 1 {
		t.Errorf("openworld scores should survive, got %d", len(open))
	}
}
