package config

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gurkankaymak/hocon"
)

var config *hocon.Config

func GetConfig() *hocon.Config {
	return config
}

func MustConfig(confFile string) {
	if confFile == "" {
		log.Fatal("Empty configuration file. Exiting...")
	}
	c, err := Load(confFile)
	if err != nil {
		log.Fatalf("Error reading app configuration file: %v. Exiting...", err)
	}
	config = c
}

// Load parses a HOCON resource without touching the process-wide config.
func Load(confFile string) (*hocon.Config, error) {
	c, err := hocon.ParseResource(confFile)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", confFile, err)
	}
	return c, nil
}

// String returns the value at path, or def when the key is absent or empty.
func String(c *hocon.Config, path string, def string) string {
	if c == nil {
		return def
	}
	v := strings.Trim(strings.TrimSpace(c.GetString(path)), `"`)
	if v == "" {
		return def
	}
	return v
}

func Int(c *hocon.Config, path string, def int) int {
	v := String(c, path, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func Bool(c *hocon.Config, path string, def bool) bool {
	v := String(c, path, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
