package appconf

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// Config holds the runtime configuration for the API server.
type Config struct {
	ApiKeys   []string
	Env       Environment
	Port      int
	RateLimit int
	Verbose   bool
}

// EnvFlagToEnvironment converts an environment flag value to an Environment.
// Unrecognized values default to Development.
func EnvFlagToEnvironment(envFlag string) Environment {
	switch envFlag {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}
