// Package llm provides options pattern for LLM generation parameters.
//
// Options are set once at construction time (from config.yaml) and
// stay fixed for the lifetime of the client.
package llm

// GenerateOptions holds parameters for LLM generation.
type GenerateOptions struct {
	// Temperature controls randomness in responses. 0 leaves the backend default.
	Temperature float64

	// MaxTokens limits the response length. 0 leaves the backend default.
	MaxTokens int
}

// GenerateOption is a functional option for configuring GenerateOptions.
type GenerateOption func(*GenerateOptions)

// WithTemperature sets the temperature for generation.
func WithTemperature(temp float64) GenerateOption {
	return func(o *GenerateOptions) {
		o.Temperature = temp
	}
}

// WithMaxTokens sets the maximum tokens for generation.
func WithMaxTokens(tokens int) GenerateOption {
	return func(o *GenerateOptions) {
		o.MaxTokens = tokens
	}
}

// ApplyOptions folds opts into a zero GenerateOptions.
func ApplyOptions(opts ...GenerateOption) GenerateOptions {
	var o GenerateOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
