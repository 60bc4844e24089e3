// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"go-newspulse-automation/internal/relevance"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Company struct {
	Name              string   `yaml:"name"`
	IndustryTerms     []string `yaml:"industry_terms"`
	IdentifierPhrases []string `yaml:"identifier_phrases"`
	MinScore          float64  `yaml:"min_score"`
}

type Feed struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type Site struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	//CSS selectors for article links and body text
	LinkSelector    string `yaml:"link_selector"`
	ArticleSelector string `yaml:"article_selector"`
}

type Config struct {
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	DatabaseURL    string `yaml:"database_url" env:"DATABASE_URL"`
	GroqAPIKey     string `yaml:"groq_api_key" env:"GROQ_API_KEY"`
	//NER backend: "prose" (local model), "groq" (LLM) or "off"
	NERMode string `yaml:"ner_mode"`
	//Targets and sources
	Companies []Company `yaml:"companies"`
	Feeds     []Feed    `yaml:"feeds"`
	Sites     []Site    `yaml:"sites"`
	//Limits
	MaxArticlesPerSource int `yaml:"max_articles_per_source"`
	//Paths
	CachePath    string `yaml:"cache_path"`
	OutputDir    string `yaml:"output_dir"`
	TemplatePath string `yaml:"template_path"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.DatabaseURL = dbURL
	}

	if apiKey := os.Getenv("GROQ_API_KEY"); apiKey != "" {
		cfg.GroqAPIKey = apiKey
	}

	//Set default values if not set
	if cfg.NERMode == "" {
		cfg.NERMode = "prose"
	}

	if cfg.MaxArticlesPerSource == 0 {
		cfg.MaxArticlesPerSource = 25
	}

	if cfg.CachePath == "" {
		cfg.CachePath = ".cache"
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = "output"
	}

	if cfg.TemplatePath == "" {
		cfg.TemplatePath = "templates/report.html"
	}

	//Validate required fields
	if len(cfg.Companies) == 0 {
		log.Fatal("At least one target company is required")
	}

	if cfg.NERMode == "groq" && cfg.GroqAPIKey == "" {
		log.Fatal("GROQ_API_KEY is required when ner_mode is groq")
	}

	return cfg
}

// EntityProfiles converts the configured companies into scorer profiles.
func (c *Config) EntityProfiles() []relevance.EntityProfile {
	profiles := make([]relevance.EntityProfile, 0, len(c.Companies))
	for _, company := range c.Companies {
		profiles = append(profiles, relevance.EntityProfile{
			Name:              company.Name,
			IndustryTerms:     company.IndustryTerms,
			IdentifierPhrases: company.IdentifierPhrases,
			MinScore:          company.MinScore,
		})
	}
	return profiles
}
