package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// PromptBudget holds the sampling parameters for one prompt shape.
type PromptBudget struct {
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
	} `yaml:"server"`

	LLM struct {
		Provider        string        `yaml:"provider" default:"groq"`
		APIKey          string        `yaml:"api_key"`
		BaseURL         string        `yaml:"base_url" default:"https://api.groq.com/openai/v1"`
		Model           string        `yaml:"model" default:"llama-3.3-70b-versatile"`
		Timeout         time.Duration `yaml:"timeout" default:"120s"`
		RateLimit       int           `yaml:"rate_limit" default:"60"` // requests per minute
		Roadmap         PromptBudget  `yaml:"roadmap"`
		Critique        PromptBudget  `yaml:"critique"`
		Recommendations PromptBudget  `yaml:"recommendations"`
	} `yaml:"llm"`

	Extraction struct {
		MinTextLength int           `yaml:"min_text_length" default:"200"`
		OCREngine     string        `yaml:"ocr_engine" default:"tesseract"`
		OCRLanguage   string        `yaml:"ocr_language" default:"eng"`
		OCRTimeout    time.Duration `yaml:"ocr_timeout" default:"120s"`
		PdftoppmPath  string        `yaml:"pdftoppm_path" default:"pdftoppm"`
		MaxFileSize   int64         `yaml:"max_file_size" default:"10485760"`
	} `yaml:"extraction"`

	Relay struct {
		Port    int           `yaml:"port" default:"5000"`
		Timeout time.Duration `yaml:"timeout" default:"60s"`
	} `yaml:"relay"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`
		Output string `yaml:"output" default:"stdout"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`

	Redis struct {
		URL      string        `yaml:"url" default:"redis://localhost:6379"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db" default:"0"`
		Timeout  time.Duration `yaml:"timeout" default:"5s"`
	} `yaml:"redis"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	// Expand ${VAR} syntax
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1] // Remove ${ and }
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match // Return original if env var not found
	})

	// Expand $VAR syntax (but avoid replacing ${VAR} that was already processed)
	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:] // Remove $
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match // Return original if env var not found
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.LLM.Provider = "groq"
	config.LLM.BaseURL = "https://api.groq.com/openai/v1"
	config.LLM.Model = "llama-3.3-70b-versatile"
	config.LLM.Timeout = 120 * time.Second
	config.LLM.RateLimit = 60

	// Sampling budgets per prompt shape, matching the prompt contracts
	config.LLM.Roadmap = PromptBudget{Temperature: 0.3, MaxTokens: 2000}
	config.LLM.Critique = PromptBudget{Temperature: 0.6, MaxTokens: 3500}
	config.LLM.Recommendations = PromptBudget{Temperature: 0.3, MaxTokens: 800}

	// The 200-character floor is the only available signal that structured
	// PDF extraction silently failed on a scanned document.
	config.Extraction.MinTextLength = 200
	config.Extraction.OCREngine = "tesseract"
	config.Extraction.OCRLanguage = "eng"
	config.Extraction.OCRTimeout = 120 * time.Second
	config.Extraction.PdftoppmPath = "pdftoppm"
	config.Extraction.MaxFileSize = 10 * 1024 * 1024

	config.Relay.Port = 5000
	config.Relay.Timeout = 60 * time.Second

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.Output = "stdout"

	config.Redis.URL = "redis://localhost:6379"
	config.Redis.DB = 0
	config.Redis.Timeout = 5 * time.Second

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			// Expand environment variables in the YAML content
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		c.LLM.APIKey = apiKey
	}

	// Also support GROQ_API_KEY for compatibility with the relay deployment
	if apiKey := os.Getenv("GROQ_API_KEY"); apiKey != "" {
		c.LLM.APIKey = apiKey
	}

	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		c.LLM.Provider = provider
	}

	if baseURL := os.Getenv("LLM_BASE_URL"); baseURL != "" {
		c.LLM.BaseURL = baseURL
	}

	if model := os.Getenv("LLM_MODEL"); model != "" {
		c.LLM.Model = model
	}

	if timeout := os.Getenv("LLM_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.LLM.Timeout = d
		}
	}

	if minLength := os.Getenv("EXTRACTION_MIN_TEXT_LENGTH"); minLength != "" {
		if n, err := strconv.Atoi(minLength); err == nil {
			c.Extraction.MinTextLength = n
		}
	}

	if engine := os.Getenv("EXTRACTION_OCR_ENGINE"); engine != "" {
		c.Extraction.OCREngine = engine
	}

	if lang := os.Getenv("EXTRACTION_OCR_LANGUAGE"); lang != "" {
		c.Extraction.OCRLanguage = lang
	}

	if path := os.Getenv("EXTRACTION_PDFTOPPM_PATH"); path != "" {
		c.Extraction.PdftoppmPath = path
	}

	if port := os.Getenv("RELAY_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Relay.Port = p
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.URL = redisURL
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Redis.Password = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Redis.DB = db
		}
	}

	if redisTimeout := os.Getenv("REDIS_TIMEOUT"); redisTimeout != "" {
		if timeout, err := time.ParseDuration(redisTimeout); err == nil {
			c.Redis.Timeout = timeout
		}
	}
}
