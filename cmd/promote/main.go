// Command promote creates a staff account or changes the role of an
// existing one, then prints a bearer token for it. It is used to bootstrap
// the first administrator and to hand out kitchen and warden access.
//
// Usage:
//
//	promote -email=cook@example.com -name="Head Cook" -role=kitchen
//
// The token lives for AUTH_TOKEN_TTL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hostel-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/hostel-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/hostel-backend/internal/auth"
	"github.com/heartmarshall/hostel-backend/internal/config"
	"github.com/heartmarshall/hostel-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "staff email, unique case-insensitively")
	name := flag.String("name", "", "display name")
	role := flag.String("role", string(domain.UserRoleAdmin), "admin, kitchen or warden")
	flag.Parse()

	r := domain.UserRole(*role)
	if strings.TrimSpace(*email) == "" || !r.IsValid() || r == domain.UserRoleStudent {
		fmt.Fprintln(os.Stderr, "Usage: promote -email=user@example.com [-name=Name] [-role=admin|kitchen|warden]")
		os.Exit(1)
	}
	if *name == "" {
		*name = *email
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	user, err := userrepo.New(pool).Upsert(ctx, &domain.User{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(*name),
		Email:     strings.TrimSpace(*email),
		Role:      r,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Fatalf("upsert user: %v", err)
	}

	token, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL).Issue(user.ID, user.Role)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "User %q (%s) is now %s.\n", user.Email, user.ID, user.Role)
	fmt.Println(token)
}
