package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv neutralizes environment overrides for the duration of a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"BOT_TOKEN", "SUPPORT_USERNAME", "TEST_MODE", "TAROT_BOT_CARDS", "TAROT_BOT_DB"} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return configPath
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	configPath := writeConfig(t, `
telegram_token: "test-token"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.SupportUsername != "@supor_service" {
		t.Errorf("SupportUsername = %q, want %q", cfg.SupportUsername, "@supor_service")
	}
	if cfg.TestMode {
		t.Error("TestMode = true, want false")
	}
	if cfg.CardsDir != "./cards" {
		t.Errorf("CardsDir = %q, want %q", cfg.CardsDir, "./cards")
	}
	if cfg.DBPath != "./usage.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "./usage.db")
	}
	if cfg.Timezone != "Local" {
		t.Errorf("Timezone = %q, want %q", cfg.Timezone, "Local")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.MetricsAddr != "" {
		t.Errorf("MetricsAddr = %q, want empty", cfg.MetricsAddr)
	}
	if cfg.SendRatePerSec != 20 {
		t.Errorf("SendRatePerSec = %d, want %d", cfg.SendRatePerSec, 20)
	}
	if cfg.RevealDelay() != 350*time.Millisecond {
		t.Errorf("RevealDelay = %v, want %v", cfg.RevealDelay(), 350*time.Millisecond)
	}
	if cfg.Location() != time.Local {
		t.Errorf("Location = %v, want Local", cfg.Location())
	}
}

func TestLoadOverrideDefaults(t *testing.T) {
	clearEnv(t)
	configPath := writeConfig(t, `
telegram_token: "test-token"
support_username: "@help_desk"
test_mode: true
cards_dir: "/srv/cards"
db_path: "/data/usage.db"
timezone: "Europe/Moscow"
log_level: "debug"
metrics_addr: ":9100"
send_rate_per_sec: 5
reveal_delay_ms: 100
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.TelegramToken != "test-token" {
		t.Errorf("TelegramToken = %q, want %q", cfg.TelegramToken, "test-token")
	}
	if cfg.SupportUsername != "@help_desk" {
		t.Errorf("SupportUsername = %q, want %q", cfg.SupportUsername, "@help_desk")
	}
	if !cfg.TestMode {
		t.Error("TestMode = false, want true")
	}
	if cfg.CardsDir != "/srv/cards" {
		t.Errorf("CardsDir = %q, want %q", cfg.CardsDir, "/srv/cards")
	}
	if cfg.DBPath != "/data/usage.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "/data/usage.db")
	}
	if cfg.Location().String() != "Europe/Moscow" {
		t.Errorf("Location = %q, want %q", cfg.Location().String(), "Europe/Moscow")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.MetricsAddr != ":9100" {
		t.Errorf("MetricsAddr = %q, want %q", cfg.MetricsAddr, ":9100")
	}
	if cfg.SendRatePerSec != 5 {
		t.Errorf("SendRatePerSec = %d, want %d", cfg.SendRatePerSec, 5)
	}
	if cfg.RevealDelayMs != 100 {
		t.Errorf("RevealDelayMs = %d, want %d", cfg.RevealDelayMs, 100)
	}
}

func TestLoadMissingTelegramToken(t *testing.T) {
	clearEnv(t)
	configPath := writeConfig(t, `
cards_dir: "./cards"
`)

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("expected error for missing telegram_token")
	}
}

func TestLoadMissingFileUsesEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", " env-token ")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TelegramToken != "env-token" {
		t.Errorf("TelegramToken = %q, want %q", cfg.TelegramToken, "env-token")
	}
}

func TestLoadMissingFileWithoutToken(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error when neither file nor environment provide a token")
	}
}

func TestLoadInvalidTimezone(t *testing.T) {
	clearEnv(t)
	configPath := writeConfig(t, `
telegram_token: "test-token"
timezone: "Invalid/Zone"
`)

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("expected error for invalid timezone")
	}
}

func TestLoadInvalidLogLevel(t *testing.T) {
	clearEnv(t)
	configPath := writeConfig(t, `
telegram_token: "test-token"
log_level: "verbose"
`)

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("expected error for invalid log_level")
	}
}

func TestLoadNegativeValues(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"send rate", "send_rate_per_sec: -1"},
		{"reveal delay", "reveal_delay_ms: -5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			configPath := writeConfig(t, "telegram_token: \"test-token\"\n"+tt.line+"\n")

			_, err := Load(configPath)
			if err == nil {
				t.Errorf("expected error for %s", tt.line)
			}
		})
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	clearEnv(t)
	configPath := writeConfig(t, `invalid: yaml: content:`)

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestEnvironmentVariableOverride(t *testing.T) {
	clearEnv(t)
	configPath := writeConfig(t, `
telegram_token: "file-token"
test_mode: true
db_path: "/original/path.db"
cards_dir: "/original/cards"
`)

	t.Setenv("BOT_TOKEN", "env-token")
	t.Setenv("SUPPORT_USERNAME", "@other")
	t.Setenv("TEST_MODE", "0")
	t.Setenv("TAROT_BOT_DB", "/override/path.db")
	t.Setenv("TAROT_BOT_CARDS", "/override/cards")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.TelegramToken != "env-token" {
		t.Errorf("TelegramToken = %q, want %q (from env)", cfg.TelegramToken, "env-token")
	}
	if cfg.SupportUsername != "@other" {
		t.Errorf("SupportUsername = %q, want %q (from env)", cfg.SupportUsername, "@other")
	}
	if cfg.TestMode {
		t.Error("TestMode = true, want false (from env)")
	}
	if cfg.DBPath != "/override/path.db" {
		t.Errorf("DBPath = %q, want %q (from env)", cfg.DBPath, "/override/path.db")
	}
	if cfg.CardsDir != "/override/cards" {
		t.Errorf("CardsDir = %q, want %q (from env)", cfg.CardsDir, "/override/cards")
	}
}

func TestTestModeFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "env-token")
	t.Setenv("TEST_MODE", "1")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.TestMode {
		t.Error("TestMode = false, want true (from env)")
	}
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv("TAROT_BOT_CONFIG", "")
	path := GetConfigPath()
	if path != "./config.yaml" {
		t.Errorf("GetConfigPath() = %q, want %q", path, "./config.yaml")
	}

	t.Setenv("TAROT_BOT_CONFIG", "/custom/config.yaml")
	path = GetConfigPath()
	if path != "/custom/config.yaml" {
		t.Errorf("GetConfigPath() = %q, want %q", path, "/custom/config.yaml")
	}
}
