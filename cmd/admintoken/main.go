// Command admintoken mints a signed admin bearer token for the marketplace
// admin API using the server's JWT secret.
package main

import (
	"flag"
	"fmt"
	"os"

	"campusmarket/internal/config"
	"campusmarket/internal/utils"
)

func main() {
	email := flag.String("email", "", "operator email recorded as the token subject")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to JWT_ADMIN_TOKEN_TTL)")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "admintoken: -email is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "admintoken: load config: %v\n", err)
		os.Exit(1)
	}
	if *ttl <= 0 {
		*ttl = cfg.Security.JWTAdminTokenTTL
	}

	token, err := utils.GenerateAdminToken(*email, *email, cfg.Security.JWTSecret, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "admintoken: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
