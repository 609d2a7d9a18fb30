package ibkr_test

import (
	"os"
	"path/filepath"
	"testing"

	ibkr "github.com/wvietor/ibkr-go"
)

func TestDefaultConfigAddress(t *testing.T) {
	t.Parallel()
	cfg := ibkr.DefaultConfig()
	if got, want := cfg.Address(), "127.0.0.1:4002"; got != want {
		t.Fatalf("Address() = %q, want %q (paper gateway default)", got, want)
	}
}

func TestConfigPortDefaultsByRoleAndPaper(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		paper    bool
		roleName string
		want     string
	}{
		{"gateway paper", true, "gateway", "127.0.0.1:4002"},
		{"gateway live", false, "gateway", "127.0.0.1:4001"},
		{"workstation paper", true, "workstation", "127.0.0.1:7497"},
		{"workstation live", false, "workstation", "127.0.0.1:7496"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := ibkr.Config{Paper: tt.paper, RoleName: tt.roleName}
			if got := cfg.Address(); got != tt.want {
				t.Fatalf("Address() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigExplicitPortWins(t *testing.T) {
	t.Parallel()
	cfg := ibkr.Config{Host: "gw.internal", Port: 9999, Paper: true}
	if got, want := cfg.Address(), "gw.internal:9999"; got != want {
		t.Fatalf("Address() = %q, want %q", got, want)
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := "host = \"10.0.0.5\"\nport = 5000\nclient_id = 7\nrole = \"workstation\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := ibkr.LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.Host != "10.0.0.5" || cfg.Port != 5000 || cfg.ClientID != 7 || cfg.RoleName != "workstation" {
		t.Fatalf("got %+v, want host=10.0.0.5 port=5000 clientId=7 role=workstation", cfg)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	t.Parallel()
	if _, err := ibkr.LoadConfigFile("/nonexistent/path/config.toml"); err == nil {
		t.Fatal("expected an error reading a missing config file")
	}
}
