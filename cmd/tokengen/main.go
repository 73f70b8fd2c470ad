// Command tokengen mints an actor token for a clerk or system job. The
// token identifies the actor on every audited change; operators generate
// one per integration and distribute it out of band.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/lawdesk/casetrack-backend/internal/auth"
	"github.com/lawdesk/casetrack-backend/internal/config"
)

func main() {
	actorFlag := flag.String("actor", "", "actor UUID (defaults to a new random one)")
	roleFlag := flag.String("role", "clerk", "actor role claim")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	actorID := uuid.New()
	if *actorFlag != "" {
		actorID, err = uuid.Parse(*actorFlag)
		if err != nil {
			log.Fatalf("parse actor UUID: %v", err)
		}
	}

	manager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	token, err := manager.GenerateActorToken(actorID, *roleFlag)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "actor: %s role: %s ttl: %s\n", actorID, *roleFlag, cfg.Auth.AccessTokenTTL)
	fmt.Println(token)
}
