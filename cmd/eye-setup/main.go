// Command eye-setup seeds upstream credentials into the cache store so the
// relay can run without credentials in its environment.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/tycrek/eye/common/bootstrap"
	"github.com/tycrek/eye/common/kv"
)

func main() {
	// Local development overrides; absent in production
	_ = godotenv.Load(".env.local")

	accountFlag := flag.String("account", "", "upstream account id (falls back to UPSTREAM_ACCOUNT_ID)")
	apiKeyFlag := flag.String("api-key", "", "upstream api key (falls back to UPSTREAM_API_KEY)")
	flag.Parse()

	account := *accountFlag
	if account == "" {
		account = os.Getenv("UPSTREAM_ACCOUNT_ID")
	}
	apiKey := *apiKeyFlag
	if apiKey == "" {
		apiKey = os.Getenv("UPSTREAM_API_KEY")
	}

	if account == "" || apiKey == "" {
		fmt.Fprintln(os.Stderr, "eye-setup: an account id and an api key are required (flags or UPSTREAM_* env vars)")
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()

	components, err := bootstrap.Setup(ctx, "eye-setup", bootstrap.WithoutTelemetry())
	if err != nil {
		fmt.Fprintf(os.Stderr, "eye-setup: %v\n", err)
		os.Exit(1)
	}
	defer components.Shutdown(ctx)

	if err := components.KV.Put(ctx, kv.KeyAccountID, account); err != nil {
		components.Logger.Error("failed to store account id", "error", err)
		os.Exit(1)
	}
	if err := components.KV.Put(ctx, kv.KeyAPIKey, apiKey); err != nil {
		components.Logger.Error("failed to store api key", "error", err)
		os.Exit(1)
	}

	components.Logger.Info("upstream credentials stored", "account", account)
	fmt.Println("credentials stored in cache store")
}
