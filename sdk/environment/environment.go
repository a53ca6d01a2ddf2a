// Package environment provides utilities for managing environment variables
// and configuration loading with support for namespacing and defaults.
package environment

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file in the working
// directory. A missing file is not an error; variables already present in
// the process environment are never overwritten.
//
// Example:
//
//	if err := environment.LoadEnv(); err != nil {
//	    log.Printf("reading .env: %v", err)
//	}
func LoadEnv() error {
	return LoadPath("")
}

// LoadPath loads environment variables from the .env file at p, or from
// .env in the working directory when p is empty.
func LoadPath(p string) error {
	if p == "" {
		p = ".env"
	}
	if _, err := os.Stat(p); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(p); err != nil {
		return fmt.Errorf("loading %s: %w", p, err)
	}
	return nil
}

// GetNamespaceEnvKey constructs a namespaced environment variable key by
// combining a namespace prefix with the actual key name using an underscore.
// If no namespace is provided, it returns the key unchanged.
//
// Example:
//
//	key := GetNamespaceEnvKey("TASKD", "PORT")
//	// Returns: "TASKD_PORT"
func GetNamespaceEnvKey(namespace, key string) string {
	if namespace == "" {
		return key
	}
	return fmt.Sprintf("%s_%s", namespace, key)
}

// GetNamespaceEnvValue retrieves the value of a namespaced environment variable.
// It returns an empty string if the variable is not set.
func GetNamespaceEnvValue(namespace, key string) string {
	return os.Getenv(GetNamespaceEnvKey(namespace, key))
}
