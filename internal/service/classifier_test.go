package service_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/fikryfauzn/icarus/internal/model"
	"github.com/fikryfauzn/icarus/internal/service"
)

func TestSuggestKeywordMatch(t *testing.T) {
	t.Parallel()

	c := service.NewClassifier()
	suggestion := c.Suggest("Debug the algorithm", nil)

	if suggestion.WorkType != model.WorkTypeDeep {
		t.Fatalf("expected Deep, got %s", suggestion.WorkType)
	}
	if suggestion.Confidence != service.ConfidenceHigh {
		t.Fatalf("expected high confidence, got %s", suggestion.Confidence)
	}
	if suggestion.Score != 1.0 {
		t.Fatalf("expected normalized score 1.0, got %f", suggestion.Score)
	}
	if len(suggestion.Reasons) != 3 {
		t.Fatalf("expected 3 reasons, got %v", suggestion.Reasons)
	}
	if suggestion.Reasons[0] != "Keywords matched: algorithm, debug" {
		t.Fatalf("unexpected keyword reason: %s", suggestion.Reasons[0])
	}
	if suggestion.Reasons[1] != "Confidence score: 100%" {
		t.Fatalf("unexpected confidence reason: %s", suggestion.Reasons[1])
	}
}

func TestSuggestNoKeywordsDefaultsLowConfidence(t *testing.T) {
	t.Parallel()

	c := service.NewClassifier()
	suggestion := c.Suggest("zzz gadget", nil)

	if suggestion.WorkType != model.WorkTypeDeep {
		t.Fatalf("expected first type to win a scoreless tie, got %s", suggestion.WorkType)
	}
	if suggestion.Confidence != service.ConfidenceLow {
		t.Fatalf("expected low confidence, got %s", suggestion.Confidence)
	}
	if suggestion.Score != 0 {
		t.Fatalf("expected score 0, got %f", suggestion.Score)
	}
}

func TestSuggestTieBreaksInFixedOrder(t *testing.T) {
	t.Parallel()

	c := service.NewClassifier()
	// "write" is a Deep keyword and "email" a Shallow one; equal weight.
	suggestion := c.Suggest("write email", nil)

	if suggestion.WorkType != model.WorkTypeDeep {
		t.Fatalf("expected Deep on tie, got %s", suggestion.WorkType)
	}
	if suggestion.Confidence != service.ConfidenceMedium {
		t.Fatalf("expected medium confidence at 0.5, got %s", suggestion.Confidence)
	}
}

func TestSuggestBlendsHistory(t *testing.T) {
	t.Parallel()

	history := finishedSession(time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local), 30, model.WorkTypeShallow)
	history.Context.ActivityDescription = "gadget assembly"

	c := service.NewClassifier()
	suggestion := c.Suggest("zzz gadget", []model.Session{history})

	if suggestion.WorkType != model.WorkTypeShallow {
		t.Fatalf("expected history to tip the suggestion to Shallow, got %s", suggestion.WorkType)
	}
	if suggestion.Score != 0.3 {
		t.Fatalf("expected blended score 0.3, got %f", suggestion.Score)
	}
}

func TestLearnFromCorrectionAdjustsMatchedWeights(t *testing.T) {
	t.Parallel()

	c := service.NewClassifier()
	suggestion := c.Suggest("debug the build", nil)
	if suggestion.WorkType != model.WorkTypeDeep {
		t.Fatalf("expected Deep suggestion, got %s", suggestion.WorkType)
	}

	c.LearnFromCorrection(suggestion, model.WorkTypeMaintenance, "debug the build")

	weights := c.Weights()
	if got := weights[model.WorkTypeDeep]["debug"]; got != 0.8 {
		t.Fatalf("expected deep debug weight 0.8, got %f", got)
	}
	if got := weights[model.WorkTypeDeep]["build"]; got != 0.8 {
		t.Fatalf("expected deep build weight 0.8, got %f", got)
	}
	// Keywords absent from the text stay untouched.
	if got := weights[model.WorkTypeDeep]["code"]; got != 1.0 {
		t.Fatalf("expected deep code weight 1.0, got %f", got)
	}
}

func TestLearnFromCorrectionRepeatedIsMonotonic(t *testing.T) {
	t.Parallel()

	c := service.NewClassifier()
	text := "debug the algorithm"
	prev := 1.0
	for i := 0; i < 4; i++ {
		suggestion := c.Suggest(text, nil)
		c.LearnFromCorrection(suggestion, model.WorkTypeMaintenance, text)
		got := c.Weights()[model.WorkTypeDeep]["debug"]
		if got >= prev {
			t.Fatalf("iteration %d: expected weight to keep shrinking, %f -> %f", i, prev, got)
		}
		prev = got
	}
}

func TestLearnFromCorrectionSameTypeIsNoop(t *testing.T) {
	t.Parallel()

	c := service.NewClassifier()
	suggestion := c.Suggest("debug the algorithm", nil)
	c.LearnFromCorrection(suggestion, suggestion.WorkType, "debug the algorithm")

	if got := c.Weights()[model.WorkTypeDeep]["debug"]; got != 1.0 {
		t.Fatalf("expected weights unchanged, got %f", got)
	}
}

func TestSaveAndLoadWeights(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "weights.yaml")

	c := service.NewClassifier()
	suggestion := c.Suggest("debug the algorithm", nil)
	c.LearnFromCorrection(suggestion, model.WorkTypeMaintenance, "debug the algorithm")
	if err := c.SaveWeights(path); err != nil {
		t.Fatalf("save weights: %v", err)
	}

	restored, err := service.LoadClassifier(path)
	if err != nil {
		t.Fatalf("load classifier: %v", err)
	}
	weights := restored.Weights()
	if got := weights[model.WorkTypeDeep]["debug"]; got != 0.8 {
		t.Fatalf("expected restored debug weight 0.8, got %f", got)
	}
	if got := weights[model.WorkTypeShallow]["email"]; got != 1.0 {
		t.Fatalf("expected untouched email weight 1.0, got %f", got)
	}
}

func TestLoadClassifierMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	c, err := service.LoadClassifier(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load classifier: %v", err)
	}
	if got := c.Weights()[model.WorkTypeDeep]["code"]; got != 1.0 {
		t.Fatalf("expected default weight 1.0, got %f", got)
	}
}
