package service

import (
	"fmt"
	"strings"

	"github.com/fikryfauzn/icarus/internal/model"
)

// Confidence tiers for work-type suggestions.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Suggestion is an ephemeral classification result.
type Suggestion struct {
	WorkType   model.WorkType `json:"work_type"`
	Confidence Confidence     `json:"confidence"`
	Score      float64        `json:"score"`
	Reasons    []string       `json:"reasons"`
}

var deepKeywords = []string{
	"code", "programming", "develop", "algorithm", "architecture", "design",
	"write", "draft", "create", "build", "implement", "solve", "debug",
	"analyze", "research", "plan", "strategy", "prototype", "experiment",
	"think", "concentrate", "focus", "problem", "solution", "innovate",
	"invent", "compose", "author", "engineer", "calculate", "model",
}

var shallowKeywords = []string{
	"email", "meeting", "call", "chat", "review", "read", "browse",
	"organize", "clean", "update", "respond", "reply", "check",
	"schedule", "coordinate", "admin", "paperwork", "invoice", "report",
	"communicate", "discuss", "planning", "organizing",
	"scan", "skim", "quick", "routine", "daily", "check-in", "follow-up",
	"checking", "scheduling", "coordinating", "emailing",
	"meetings", "calls", "chats", "reviews", "reading", "browsing",
}

var maintenanceKeywords = []string{
	"fix", "patch", "update", "upgrade", "maintain", "cleanup",
	"refactor", "optimize", "tune", "configure", "setup", "install",
	"backup", "restore", "monitor", "test", "verify", "document",
	"improve", "enhance", "adjust", "correct", "repair", "troubleshoot",
	"debugging", "polish", "finalize", "complete", "finish",
}

// classifierTypes fixes an iteration order so ties resolve the same way
// on every run: the earlier type wins.
var classifierTypes = []model.WorkType{
	model.WorkTypeDeep,
	model.WorkTypeShallow,
	model.WorkTypeMaintenance,
}

var defaultKeywords = map[model.WorkType][]string{
	model.WorkTypeDeep:        deepKeywords,
	model.WorkTypeShallow:     shallowKeywords,
	model.WorkTypeMaintenance: maintenanceKeywords,
}

// Classifier suggests a work type for free-text activity descriptions
// using per-keyword weights that adapt through correction feedback.
//
// A Classifier is not safe for concurrent use; callers that share one
// instance must serialize access to it.
type Classifier struct {
	weights map[model.WorkType]map[string]float64
}

// NewClassifier returns a classifier with every keyword weight at 1.0.
func NewClassifier() *Classifier {
	weights := make(map[model.WorkType]map[string]float64, len(defaultKeywords))
	for workType, keywords := range defaultKeywords {
		table := make(map[string]float64, len(keywords))
		for _, kw := range keywords {
			table[kw] = 1.0
		}
		weights[workType] = table
	}
	return &Classifier{weights: weights}
}

// Weights returns a deep copy of the keyword weight tables.
func (c *Classifier) Weights() map[model.WorkType]map[string]float64 {
	out := make(map[model.WorkType]map[string]float64, len(c.weights))
	for workType, table := range c.weights {
		copied := make(map[string]float64, len(table))
		for kw, w := range table {
			copied[kw] = w
		}
		out[workType] = copied
	}
	return out
}

// Suggest scores the description against each work type's keywords,
// optionally blends in the type frequency of similar historical sessions
// (0.7 keyword / 0.3 history), and returns the best match with a
// confidence tier and human-readable reasons.
func (c *Classifier) Suggest(description string, history []model.Session) Suggestion {
	text := strings.ToLower(description)

	scores := c.keywordScores(text)
	if len(history) > 0 {
		scores = blendHistory(scores, history, text)
	}

	best := classifierTypes[0]
	for _, workType := range classifierTypes[1:] {
		if scores[workType] > scores[best] {
			best = workType
		}
	}

	return Suggestion{
		WorkType:   best,
		Confidence: confidenceFor(scores[best]),
		Score:      scores[best],
		Reasons:    c.reasons(best, text, scores),
	}
}

// LearnFromCorrection adjusts keyword weights when the user overrides a
// suggestion: keywords present in the text gain weight (x1.2) under the
// corrected type and lose weight (x0.8) under the wrongly suggested one.
// The updates are multiplicative and unbounded, with no normalization.
func (c *Classifier) LearnFromCorrection(original Suggestion, corrected model.WorkType, description string) {
	if original.WorkType == corrected {
		return
	}
	text := strings.ToLower(description)

	if table, ok := c.weights[corrected]; ok {
		for kw := range table {
			if strings.Contains(text, kw) {
				table[kw] *= 1.2
			}
		}
	}
	if table, ok := c.weights[original.WorkType]; ok {
		for kw := range table {
			if strings.Contains(text, kw) {
				table[kw] *= 0.8
			}
		}
	}
}

func (c *Classifier) keywordScores(text string) map[model.WorkType]float64 {
	scores := make(map[model.WorkType]float64, len(classifierTypes))
	total := 0.0
	for _, workType := range classifierTypes {
		score := 0.0
		for kw, weight := range c.weights[workType] {
			if strings.Contains(text, kw) {
				score += weight
			}
		}
		scores[workType] = score
		total += score
	}
	if total > 0 {
		for workType := range scores {
			scores[workType] /= total
		}
	}
	return scores
}

// blendHistory mixes the keyword scores with the work-type frequency of
// past sessions sharing at least one whitespace-delimited token with the
// current text.
func blendHistory(scores map[model.WorkType]float64, history []model.Session, text string) map[model.WorkType]float64 {
	tokens := map[string]bool{}
	for _, tok := range strings.Fields(text) {
		tokens[tok] = true
	}

	typeCounts := map[model.WorkType]int{}
	similar := 0
	for i := range history {
		description := strings.ToLower(history[i].Context.ActivityDescription)
		if description == "" {
			continue
		}
		shared := false
		for _, tok := range strings.Fields(description) {
			if tokens[tok] {
				shared = true
				break
			}
		}
		if !shared {
			continue
		}
		similar++
		workType := history[i].Context.WorkType
		if _, tracked := scores[workType]; tracked {
			typeCounts[workType]++
		}
	}
	if similar == 0 {
		return scores
	}

	blended := make(map[model.WorkType]float64, len(scores))
	for workType, score := range scores {
		frequency := float64(typeCounts[workType]) / float64(similar)
		blended[workType] = score*0.7 + frequency*0.3
	}
	return blended
}

func confidenceFor(score float64) Confidence {
	switch {
	case score >= 0.7:
		return ConfidenceHigh
	case score >= 0.5:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func (c *Classifier) reasons(best model.WorkType, text string, scores map[model.WorkType]float64) []string {
	reasons := make([]string, 0, 3)

	// Matched keywords are reported in canonical list order.
	var matched []string
	for _, kw := range defaultKeywords[best] {
		if strings.Contains(text, kw) {
			matched = append(matched, kw)
		}
	}
	if len(matched) > 3 {
		matched = matched[:3]
	}
	if len(matched) > 0 {
		reasons = append(reasons, fmt.Sprintf("Keywords matched: %s", strings.Join(matched, ", ")))
	}

	reasons = append(reasons, fmt.Sprintf("Confidence score: %d%%", int(scores[best]*100)))

	var runnerUp model.WorkType
	found := false
	for _, workType := range classifierTypes {
		if workType == best {
			continue
		}
		if !found || scores[workType] > scores[runnerUp] {
			runnerUp = workType
			found = true
		}
	}
	if found {
		lead := int((scores[best] - scores[runnerUp]) * 100)
		if lead > 0 {
			reasons = append(reasons, fmt.Sprintf("%d%% higher than %s", lead, runnerUp))
		}
	}
	return reasons
}
