package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestInitConfig(t *testing.T) {
	// Create temp directory for test config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	// Verify config file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}
}

func TestGetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	// Test getting a default value
	value := GetString("server.http_port")
	if value != "8000" {
		t.Errorf("Expected default http_port to be 8000, got %s", value)
	}
	if got := GetInt("ratelimit.max_requests"); got != 100 {
		t.Errorf("Expected default max_requests to be 100, got %d", got)
	}
	if got := GetDuration("ratelimit.window"); got != time.Minute {
		t.Errorf("Expected default window to be 1m, got %s", got)
	}
	if !GetBool("cache.enabled") {
		t.Error("Expected cache to be enabled by default")
	}
	if got := GetDuration("cache.ttl"); got != 24*time.Hour {
		t.Errorf("Expected default cache ttl to be 24h, got %s", got)
	}
	if GetBool("server.behind_proxy") {
		t.Error("Expected behind_proxy to be off by default")
	}
	if got := GetStringSlice("server.blocked_cidrs"); len(got) != 0 {
		t.Errorf("Expected no blocked CIDRs by default, got %v", got)
	}
}

func TestSetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	err := Set("server.http_port", "8080")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value := GetString("server.http_port")
	if value != "8080" {
		t.Errorf("Expected http_port to be 8080, got %s", value)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("CUSTOMIZER_SERVER_ENVIRONMENT", "production")
	t.Setenv("CUSTOMIZER_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	InitDefaults()

	if got := GetString("server.environment"); got != "production" {
		t.Errorf("Expected environment override, got %s", got)
	}
	want := []string{"https://a.example", "https://b.example"}
	if got := GetStringSlice("cors.allowed_origins"); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestDefaultAllowedHosts(t *testing.T) {
	InitDefaults()

	hosts := GetStringSlice("server.allowed_hosts")
	if len(hosts) != 4 || hosts[2] != "*.vercel.app" {
		t.Errorf("unexpected default allowed hosts: %v", hosts)
	}
}
