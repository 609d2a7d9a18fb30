package ibkr

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// HostRole selects which kind of gateway process a Config's manual
// host/port override applies to, when no override is given: the four
// well-known local ports the gateway listens on.
type HostRole int

const (
	// RoleGateway is IB Gateway, the headless variant.
	RoleGateway HostRole = iota
	// RoleWorkstation is Trader Workstation, the full desktop app.
	RoleWorkstation
)

// defaultPort returns the well-known local port for a (paper, role) pair.
// These are the four ports the gateway documentation fixes; a Config with
// a non-zero Port skips this lookup entirely.
func defaultPort(paper bool, role HostRole) int {
	switch {
	case role == RoleGateway && paper:
		return 4002
	case role == RoleGateway && !paper:
		return 4001
	case role == RoleWorkstation && paper:
		return 7497
	default:
		return 7496
	}
}

// Config describes how to reach and identify to a gateway instance. Zero
// value is not directly usable: Host defaults to "127.0.0.1" and Port is
// resolved from Paper/Role when left at 0.
type Config struct {
	Host     string   `toml:"host"`
	Port     int      `toml:"port"`
	Paper    bool     `toml:"paper"`
	Role     HostRole `toml:"-"`
	RoleName string   `toml:"role"`
	ClientID int64    `toml:"client_id"`

	MinVersion int `toml:"-"`
	MaxVersion int `toml:"-"`
}

// DefaultConfig returns a Config pointed at a local paper-trading gateway
// with client id 0, the same default a first-time caller reaches for.
func DefaultConfig() Config {
	return Config{
		Host:       "127.0.0.1",
		Paper:      true,
		Role:       RoleGateway,
		ClientID:   0,
		MinVersion: MinServerVersion,
		MaxVersion: MaxServerVersion,
	}
}

// resolve fills in Host/Port defaults and applies RoleName, returning the
// ready-to-dial config. Called once, at Dial time.
func (c Config) resolve() Config {
	if c.Host == "" {
		c.Host = "127.0.0.1"
	}
	switch c.RoleName {
	case "workstation":
		c.Role = RoleWorkstation
	case "gateway", "":
		// Role already set, or defaulted to RoleGateway's zero value.
	}
	if c.Port == 0 {
		c.Port = defaultPort(c.Paper, c.Role)
	}
	if c.MinVersion == 0 {
		c.MinVersion = MinServerVersion
	}
	if c.MaxVersion == 0 {
		c.MaxVersion = MaxServerVersion
	}
	return c
}

// Address returns the "host:port" dial string this Config resolves to.
func (c Config) Address() string {
	c = c.resolve()
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoadConfigFile reads a TOML config file into a Config. Fields absent from
// the file keep Go's zero value and are defaulted by resolve() at Dial time.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("ibkr: read config %s: %w", path, err)
	}
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("ibkr: parse config %s: %w", path, err)
	}
	return c, nil
}
