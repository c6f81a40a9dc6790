// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// A missing file is not an error: every field has a working default that
// points at the Kelowna (BC Transit operator 47) vehicle feed.
package config
