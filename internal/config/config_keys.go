// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. This separation allows config.go to focus on YAML structure
// and loading, while this file handles the MCP and CLI interface where config
// is accessed by string keys (e.g., "search.limit").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to zero/empty". This enables proper
// defaulting - we only apply defaults when the user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"data.path",
		"search.limit",
		"highlight.open", "highlight.close",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "data.path":
		return c.DataPath(), nil
	case "search.limit":
		return strconv.Itoa(c.SearchLimit()), nil
	case "highlight.open":
		return c.HighlightOpen(), nil
	case "highlight.close":
		return c.HighlightClose(), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "data.path":
		c.Data.Path = value
	case "search.limit":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinSearchLimit || n > MaxSearchLimit {
			return fmt.Errorf("%w: search.limit must be an integer between %d and %d",
				ErrInvalidValue, MinSearchLimit, MaxSearchLimit)
		}
		c.Search.Limit = &n
	case "highlight.open":
		c.Highlight.Open = &value
	case "highlight.close":
		c.Highlight.Close = &value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"data.path":       c.DataPath(),
		"search.limit":    strconv.Itoa(c.SearchLimit()),
		"highlight.open":  c.HighlightOpen(),
		"highlight.close": c.HighlightClose(),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "data.path":
		return c.Data.Path != ""
	case "search.limit":
		return c.Search.Limit != nil
	case "highlight.open":
		return c.Highlight.Open != nil
	case "highlight.close":
		return c.Highlight.Close != nil
	default:
		return false
	}
}
