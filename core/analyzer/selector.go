package analyzer

// Default models when the caller does not choose one.
const (
	DefaultTextModel   = "gpt-4o-mini"
	DefaultVisionModel = "gpt-4o"
)

// ModelSelector resolves the effective model for one invocation.
type ModelSelector interface {
	// Select returns the model identifier to use. userChoice, when
	// non-empty, is the caller's explicit preference and wins.
	Select(hasImage bool, userChoice string) string
}

// StaticSelector picks between a fixed text model and a fixed vision model.
// The zero value uses the package defaults.
type StaticSelector struct {
	TextModel   string
	VisionModel string
}

func (s StaticSelector) Select(hasImage bool, userChoice string) string {
	if userChoice != "" {
		return userChoice
	}
	if hasImage {
		if s.VisionModel != "" {
			return s.VisionModel
		}
		return DefaultVisionModel
	}
	if s.TextModel != "" {
		return s.TextModel
	}
	return DefaultTextModel
}
