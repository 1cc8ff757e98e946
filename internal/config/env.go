package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
)

// loadEnvFiles loads .env then .env.local from dir. Missing files are ignored
// and variables already present in the process environment are not overwritten.
func loadEnvFiles(dir string) {
	for _, name := range []string{".env", ".env.local"} {
		_ = godotenv.Load(filepath.Join(dir, name))
	}
}
