package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/mklimuk/expedition-pilot/pkg/ai"
	"github.com/mklimuk/expedition-pilot/pkg/api"
	"github.com/mklimuk/expedition-pilot/pkg/config"
	"github.com/mklimuk/expedition-pilot/pkg/countdown"
	"github.com/mklimuk/expedition-pilot/pkg/db"
	"github.com/mklimuk/expedition-pilot/pkg/integration/discord"
	"github.com/mklimuk/expedition-pilot/pkg/integration/telegram"
	"github.com/mklimuk/expedition-pilot/pkg/itinerary"
	"github.com/mklimuk/expedition-pilot/pkg/state"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	dbPath := flag.String("db", "", "Path to SQLite DB (overrides config)")
	port := flag.String("port", "", "HTTP Port (overrides config)")
	aiProvider := flag.String("ai-provider", "", "AI provider: gemini or openai (overrides config)")
	flag.Parse()

	// Optional .env for local development; ignored when absent.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *port != "" {
		cfg.Port = *port
	}
	if *aiProvider != "" {
		cfg.AIProvider = *aiProvider
	}

	if err := itinerary.Validate(itinerary.Missions); err != nil {
		log.Fatalf("Invalid itinerary data: %v", err)
	}

	// Initialize DB
	database, err := db.NewDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer database.Close()

	if err := database.InitSchema(); err != nil {
		log.Fatalf("Failed to init schema: %v", err)
	}

	repo := db.NewRepository(database)
	store := state.NewStore(repo)
	store.Load()

	// Initialize AI clients. Image generation always rides on Gemini; the
	// text briefing can be switched to an OpenAI-compatible provider.
	var textGen ai.Generator
	var imageGen ai.ImageGenerator
	switch cfg.AIProvider {
	case "openai":
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			log.Fatal("OPENAI_API_KEY environment variable is required when using openai provider")
		}
		textGen = ai.NewOpenAIClient(key)

		if geminiKey := os.Getenv("GEMINI_API_KEY"); geminiKey != "" {
			client, err := ai.NewClient(context.Background(), geminiKey,
				ai.WithImageModel(cfg.ImageModel))
			if err != nil {
				log.Printf("Hero image generation disabled: %v", err)
			} else {
				imageGen = client
			}
		} else {
			log.Println("GEMINI_API_KEY not set, hero image generation disabled")
		}
	case "gemini":
		key := os.Getenv("GEMINI_API_KEY")
		if key == "" {
			log.Fatal("GEMINI_API_KEY environment variable is required when using gemini provider")
		}
		client, err := ai.NewClient(context.Background(), key,
			ai.WithTextModel(cfg.TextModel),
			ai.WithImageModel(cfg.ImageModel),
			ai.WithTemperature(cfg.Temperature))
		if err != nil {
			log.Fatalf("Failed to create AI client: %v", err)
		}
		textGen = client
		imageGen = client
	default:
		log.Fatalf("Unknown AI provider: %s", cfg.AIProvider)
	}

	// Countdown to the departure instant, refreshed once a minute.
	ticker := countdown.NewTicker(itinerary.MissionStart, time.Minute)
	ticker.Start()
	defer ticker.Stop()

	// Initialize Router
	router := api.NewRouter(store, textGen, imageGen, ticker, itinerary.Missions)

	// Initialize Discord Bot (Optional)
	discordToken := os.Getenv("DISCORD_TOKEN")
	if discordToken != "" {
		bot, err := discord.NewBot(discordToken, textGen, store, ticker, itinerary.Missions)
		if err != nil {
			log.Printf("Failed to create Discord bot: %v", err)
		} else {
			if err := bot.Start(); err != nil {
				log.Printf("Failed to start Discord bot: %v", err)
			} else {
				log.Println("Discord Bot started")
				defer bot.Stop()
			}
		}
	}

	// Initialize Telegram Bot (Optional)
	telegramToken := os.Getenv("TELEGRAM_TOKEN")
	if telegramToken != "" {
		tgBot, err := telegram.NewBot(telegramToken, textGen, store, ticker, itinerary.Missions)
		if err != nil {
			log.Printf("Failed to create Telegram bot: %v", err)
		} else {
			if err := tgBot.Start(); err != nil {
				log.Printf("Failed to start Telegram bot: %v", err)
			} else {
				log.Println("Telegram Bot started")
				defer tgBot.Stop()
			}
		}
	}

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
