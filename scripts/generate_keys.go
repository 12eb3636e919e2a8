//go:build ignore

// This script generates secure random keys for the order service and,
// with -token, a signed JWT for local testing.
// Run with: go run scripts/generate_keys.go [-token -subject alice -roles orders:read,orders:write]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/guttosm/order-service/internal/domain/dto"
	"github.com/guttosm/order-service/internal/service"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bytes), nil
}

func main() {
	mint := flag.Bool("token", false, "also issue a JWT signed with JWT_SECRET_KEY (or a fresh secret)")
	subject := flag.String("subject", "local-dev", "token subject")
	roles := flag.String("roles", "orders:read,orders:write", "comma-separated token roles")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime, 0 for none")
	flag.Parse()

	fmt.Println("=== Order Service Key Generator ===")
	fmt.Println()

	// JWT secret (32 bytes = 256 bits)
	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		var err error
		if jwtSecret, err = generateSecureKey(32); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating JWT secret: %v\n", err)
			os.Exit(1)
		}
	}

	apiKey, err := generateSecureKey(24)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating API key: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("# JWT Configuration")
	fmt.Printf("JWT_SECRET_KEY=%s\n", jwtSecret)
	fmt.Println()
	fmt.Println("# API Key (checked when AUTH_ENABLED=true)")
	fmt.Printf("API_KEYS=%s\n", apiKey)
	fmt.Println()

	if *mint {
		tokens, err := service.NewTokenService(jwtSecret)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating token service: %v\n", err)
			os.Exit(1)
		}
		token, err := tokens.Issue(dto.Claims{
			Subject: *subject,
			Roles:   strings.Split(*roles, ","),
		}, *ttl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error issuing token: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("# Bearer token")
		fmt.Printf("Authorization: Bearer %s\n", token)
		fmt.Println()
	}

	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these keys to version control")
	fmt.Println("- Use different keys for each environment (dev, staging, prod)")
	fmt.Println("- Store production keys in a secure secret manager")
}
