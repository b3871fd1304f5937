// Command ownertoken mints a bearer token that grants the owner role.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"cheeserater/config"
	"cheeserater/internal/infra/auth"
	"cheeserater/internal/util"
)

const defaultTTL = 30 * 24 * time.Hour

func main() {
	subject := flag.String("subject", "owner", "token subject")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to owner.tokenTtl, then 720h)")
	flag.Parse()

	if err := run(*subject, *ttl); err != nil {
		fmt.Fprintln(os.Stderr, "ownertoken:", err)
		os.Exit(1)
	}
}

func run(subject string, ttl time.Duration) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	if ttl == 0 {
		ttl = cfg.Owner.TokenTTL
	}
	if ttl == 0 {
		ttl = defaultTTL
	}

	tokens, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	token, err := tokens.GenerateOwnerToken(subject, ttl)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "subject=%s expires in %s\n", subject, util.FormatDuration(ttl))
	fmt.Println(token)

	return nil
}
