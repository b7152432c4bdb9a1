// stagecraft-crm/config/auth.go
package config

import (
	"log/slog"
	"os"
)

var JwtKey []byte

func InitAuth() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		slog.Error("JWT_SECRET environment variable is not set")
		os.Exit(1)
	}
	JwtKey = []byte(secret)
}
