// Package agents holds the three prompt-driven agents behind the travel
// planner: destination research, hotel and restaurant finding, and
// itinerary planning. Each one builds a natural-language prompt from the
// trip parameters and hands it to an opaque text-completion capability.
// Agent methods always return displayable text: a completion failure is
// converted to a user-facing message, never propagated as an error.
package agents

import "context"

// CompletionRequest is one call to the text-completion capability: a
// fixed instruction set, a model identifier, and a single prompt.
type CompletionRequest struct {
	Model        string
	Instructions []string
	Prompt       string
}

// Completer is the opaque text-completion capability shared by all three
// agents, each bound to its own model and instruction set.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
