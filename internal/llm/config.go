package llm

// Config holds the parameters for the classification model endpoint.
type Config struct {
	Endpoint    string
	Model       string
	Temperature float64
	MaxTokens   int
	TimeoutMs   int
	MaxRetries  int
}

// DefaultConfig returns a Config pointed at a local Ollama instance.
func DefaultConfig() Config {
	return Config{
		Endpoint:    "http://localhost:11434",
		Model:       "llama3.2",
		Temperature: 0.1,
		MaxTokens:   1024,
		TimeoutMs:   30000,
		MaxRetries:  1,
	}
}
