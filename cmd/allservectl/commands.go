package main

import (
	"fmt"
	"io"
	"time"

	"allserve/config"
	"allserve/internal/errors"
	"allserve/internal/infra/auth"
	"allserve/internal/infra/persistence/memory"
)

func runToken(w io.Writer, uid string, ttl time.Duration, secret string) error {
	if uid == "" {
		return errors.New("-uid is required")
	}
	if ttl <= 0 {
		return errors.New("-ttl must be positive")
	}

	if secret == "" {
		cfg, err := config.New()
		if err != nil {
			return errors.Wrap(err, "load config")
		}
		secret = cfg.Auth.JWTSecret
	}

	verifier, err := auth.NewJWTVerifier(secret)
	if err != nil {
		return err
	}

	token, err := verifier.IssueToken(uid, ttl)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, token)

	return err
}

func runSeed(w io.Writer, path string) error {
	seed, err := memory.LoadSeed(memory.NewStore(), path)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s: %d users, %d providers, %d bookings, %d reviews\n",
		path, len(seed.Users), len(seed.Providers), len(seed.Bookings), len(seed.Reviews))

	return err
}
