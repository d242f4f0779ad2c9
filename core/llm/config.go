package llm

// Config holds configuration for the language model client.
type Config struct {
	// ApiKey authenticates against the model provider. Required.
	ApiKey string `mapstructure:"api_key" default:""`
	// Name is the model identifier to request.
	Name string `mapstructure:"name" default:"gemini-2.0-flash"`
	// BaseURL is the OpenAI-compatible chat completions root.
	BaseURL string `mapstructure:"base_url" default:"https://generativelanguage.googleapis.com/v1beta/openai"`
	// TimeoutSeconds bounds a single completion call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}
