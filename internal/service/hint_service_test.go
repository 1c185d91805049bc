package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/codementor/internal/model"
)

// stubGenerator scripts the generation client for pipeline tests.
type stubGenerator struct {
	hint  string
	err   error
	calls int
}

func (s *stubGenerator) GenerateHintText(ctx context.Context, prompt string) (string, error) {
	s.calls++
	return s.hint, s.err
}

const validLevel1Hint = "This is an array problem; consider a hash map so you can look up complements in constant time."

func TestHintCacheKey(t *testing.T) {
	if got := hintCacheKey("Two Sum", "Easy", 1); got != "two_sum_easy_1" {
		t.Errorf("hintCacheKey = %q, want %q", got, "two_sum_easy_1")
	}
	if got := hintCacheKey("Binary Tree Level Order Traversal", "Medium", 3); got != "binary_tree_level_order_traversal_medium_3" {
		t.Errorf("hintCacheKey = %q", got)
	}
}

func TestGetOrGenerate_InvalidLevel(t *testing.T) {
	svc := NewHintService(&stubGenerator{hint: validLevel1Hint})

	for _, level := range []int{0, 4, -3} {
		if _, err := svc.GetOrGenerate(context.Background(), testProblem(), level, nil, nil); !errors.Is(err, ErrInvalidHintLevel) {
			t.Errorf("level %d: expected ErrInvalidHintLevel, got %v", level, err)
		}
	}
}

func TestGetOrGenerate_CachesValidHint(t *testing.T) {
	gen := &stubGenerator{hint: validLevel1Hint}
	svc := NewHintService(gen)

	first, err := svc.GetOrGenerate(context.Background(), testProblem(), 1, nil, nil)
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	if first != validLevel1Hint {
		t.Fatalf("got %q, want generated hint", first)
	}

	second, err := svc.GetOrGenerate(context.Background(), testProblem(), 1, nil, nil)
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if second != first {
		t.Fatalf("cached hint %q differs from original %q", second, first)
	}
	if gen.calls != 1 {
		t.Fatalf("generator called %d times, cache hit should have prevented the second call", gen.calls)
	}
}

func TestGetOrGenerate_GenerationFailureFallsBack(t *testing.T) {
	gen := &stubGenerator{err: errors.New("gemini unavailable")}
	svc := NewHintService(gen)
	problem := testProblem() // "Two Sum" classifies as array

	hint, err := svc.GetOrGenerate(context.Background(), problem, 2, nil, nil)
	if err != nil {
		t.Fatalf("GetOrGenerate failed: %v", err)
	}
	if want := FallbackHint(CategoryArray, 2); hint != want {
		t.Fatalf("got %q, want array level-2 fallback", hint)
	}

	// Fallback results are never cached: the next request must hit the
	// generator again.
	if _, err := svc.GetOrGenerate(context.Background(), problem, 2, nil, nil); err != nil {
		t.Fatalf("second GetOrGenerate failed: %v", err)
	}
	if gen.calls != 2 {
		t.Fatalf("generator called %d times, fallback must not populate the cache", gen.calls)
	}
}

func TestGetOrGenerate_InvalidHintFallsBack(t *testing.T) {
	gen := &stubGenerator{hint: "I cannot help with that request, it goes against my guidelines as a language model."}
	svc := NewHintService(gen)

	hint, err := svc.GetOrGenerate(context.Background(), testProblem(), 1, nil, nil)
	if err != nil {
		t.Fatalf("GetOrGenerate failed: %v", err)
	}
	if want := FallbackHint(CategoryArray, 1); hint != want {
		t.Fatalf("got %q, want array level-1 fallback", hint)
	}
	if gen.calls != 1 {
		t.Fatalf("generator called %d times, want 1", gen.calls)
	}
}

func TestGetOrGenerate_DifferentLevelsUseDifferentKeys(t *testing.T) {
	gen := &stubGenerator{hint: validLevel1Hint}
	svc := NewHintService(gen)
	problem := testProblem()

	if _, err := svc.GetOrGenerate(context.Background(), problem, 1, nil, nil); err != nil {
		t.Fatalf("level 1 failed: %v", err)
	}
	if _, err := svc.GetOrGenerate(context.Background(), problem, 2, []string{validLevel1Hint}, nil); err != nil {
		t.Fatalf("level 2 failed: %v", err)
	}
	if gen.calls != 2 {
		t.Fatalf("generator called %d times, each level has its own cache entry", gen.calls)
	}
}

func TestGetOrGenerate_FallbackNeverFails(t *testing.T) {
	gen := &stubGenerator{err: errors.New("down")}
	svc := NewHintService(gen)

	problems := []*model.Problem{
		{Title: "Two Sum", Difficulty: "Easy"},
		{Title: "Valid Palindrome", Difficulty: "Easy"},
		{Title: "Mystery Challenge", Difficulty: "Hard", Description: "Do something."},
	}
	for _, p := range problems {
		for level := 1; level <= 3; level++ {
			hint, err := svc.GetOrGenerate(context.Background(), p, level, nil, nil)
			if err != nil {
				t.Fatalf("%s level %d: %v", p.Title, level, err)
			}
			if hint == "" {
				t.Fatalf("%s level %d: empty hint", p.Title, level)
			}
		}
	}
}
