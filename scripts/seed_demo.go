package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/careerpilot/careerpilot/adapters/identity"
	"github.com/careerpilot/careerpilot/internal/config"
	"github.com/careerpilot/careerpilot/pkg/logger"
)

func main() {
	fmt.Println("creating demo account through the identity provider...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	demoEmail := os.Getenv("DEMO_EMAIL")
	demoPassword := os.Getenv("DEMO_PASSWORD")
	if demoEmail == "" || demoPassword == "" {
		log.Fatal("DEMO_EMAIL and DEMO_PASSWORD must be set")
	}

	provider, err := identity.NewSupabaseAdapter(cfg, logger.NewZapLogger(cfg.App.Env))
	if err != nil {
		log.Fatalf("cannot init identity provider: %v", err)
	}

	account, err := provider.CreateUser(context.Background(), demoEmail, demoPassword, "Demo User")
	if err != nil {
		log.Fatalf("cannot create demo account: %v", err)
	}

	fmt.Printf("created demo account '%s' with id %s\n", account.Email, account.ID)
}
