// Command token prints an ADMIN access token for the /v1/stats endpoint,
// signed with JWT_SECRET.
//
//	token -sub ops -ttl 2h
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/iliyamo/letter-pairs/internal/config"
	"github.com/iliyamo/letter-pairs/internal/utils"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	sub := flag.String("sub", "admin", "token subject")
	ttl := flag.Duration("ttl", time.Duration(cfg.AdminTTLMin)*time.Minute, "token lifetime")
	flag.Parse()

	at, err := utils.NewAccessToken(cfg.JWTSecret, *sub, utils.RoleAdmin, *ttl)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(at); err != nil {
		log.Fatal(err)
	}
}
