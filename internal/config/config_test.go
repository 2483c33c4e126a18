package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetConfigValuePrecedence(t *testing.T) {
	t.Setenv("THRUSTER_TEST_KEY", "from-env")

	if got := getConfigValue("from-flag", "THRUSTER_TEST_KEY", "default"); got != "from-flag" {
		t.Errorf("flag should win, got %q", got)
	}
	if got := getConfigValue("", "THRUSTER_TEST_KEY", "default"); got != "from-env" {
		t.Errorf("env should win over default, got %q", got)
	}
	if got := getConfigValue("", "THRUSTER_TEST_MISSING", "default"); got != "default" {
		t.Errorf("default should apply last, got %q", got)
	}
}

func TestGetBoolConfigValue(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"0", false},
		{"banana", false},
	}

	for _, tt := range tests {
		if got := getBoolConfigValue(tt.value, "UNSET_KEY", false); got != tt.want {
			t.Errorf("getBoolConfigValue(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}

	if !getBoolConfigValue("", "UNSET_KEY", true) {
		t.Error("empty value should fall back to default")
	}
}

func TestGetIntConfigValue(t *testing.T) {
	if got := getIntConfigValue("42", "UNSET_KEY", 7); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if got := getIntConfigValue("not-a-number", "UNSET_KEY", 7); got != 7 {
		t.Errorf("unparseable value should fall back to default, got %d", got)
	}
	if got := getIntConfigValue("", "UNSET_KEY", 7); got != 7 {
		t.Errorf("empty value should fall back to default, got %d", got)
	}
}

func TestValidate(t *testing.T) {
	valid := &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "info"},
		Data:   DataConfig{BasePath: "/tmp/thruster"},
		Engine: EngineConfig{DefaultCount: 5},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	bad := *valid
	bad.App.Environment = "qa"
	if err := bad.Validate(); err == nil {
		t.Error("invalid environment should be rejected")
	}

	bad = *valid
	bad.Logger.Level = "verbose"
	if err := bad.Validate(); err == nil {
		t.Error("invalid log level should be rejected")
	}

	bad = *valid
	bad.Cache.Capacity = -1
	if err := bad.Validate(); err == nil {
		t.Error("negative cache capacity should be rejected")
	}

	bad = *valid
	bad.Engine.DefaultCount = 0
	if err := bad.Validate(); err == nil {
		t.Error("zero default count should be rejected")
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	content := "# comment line\nTHRUSTER_ENV_A=hello\nTHRUSTER_ENV_B=\"quoted\"\n"
	if err := os.WriteFile(envPath, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("THRUSTER_ENV_A", "")
	t.Setenv("THRUSTER_ENV_B", "")
	os.Unsetenv("THRUSTER_ENV_A")
	os.Unsetenv("THRUSTER_ENV_B")

	if err := loadEnvFile(envPath); err != nil {
		t.Fatalf("loadEnvFile: %v", err)
	}

	if got := os.Getenv("THRUSTER_ENV_A"); got != "hello" {
		t.Errorf("THRUSTER_ENV_A = %q, want hello", got)
	}
	if got := os.Getenv("THRUSTER_ENV_B"); got != "quoted" {
		t.Errorf("THRUSTER_ENV_B = %q, want quoted (quotes stripped)", got)
	}
}

func TestLoadEnvFileDoesNotOverrideEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("THRUSTER_ENV_C=from-file\n"), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("THRUSTER_ENV_C", "from-env")

	if err := loadEnvFile(envPath); err != nil {
		t.Fatalf("loadEnvFile: %v", err)
	}
	if got := os.Getenv("THRUSTER_ENV_C"); got != "from-env" {
		t.Errorf("real env vars must take precedence over .env, got %q", got)
	}
}

func TestExpandPath(t *testing.T) {
	got, err := expandPath("", "/fallback")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/fallback" {
		t.Errorf("empty path should use default, got %q", got)
	}

	got, err = expandPath("/a/b/../c", "")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/a/c" {
		t.Errorf("path should be cleaned, got %q", got)
	}
}

func TestTimeoutDefaults(t *testing.T) {
	// Sanity-check the duration strings used as defaults parse.
	for _, s := range []string{"15s", "60s", "12h", "10s"} {
		if _, err := time.ParseDuration(s); err != nil {
			t.Errorf("default duration %q does not parse: %v", s, err)
		}
	}
}
