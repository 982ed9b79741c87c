// Package config resolves the node's identity and runtime settings.
//
// Settings come from an optional YAML file overlaid by environment
// variables (env wins). Absent or unparsable values fall back to defaults
// so a misconfigured cell still starts — the grid tolerates a node with
// default settings better than a missing one.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults for every setting the node needs.
const (
	DefaultID        = 0
	DefaultWidth     = 10
	DefaultPeriod    = 1000 * time.Millisecond
	DefaultNamespace = "cellular-automaton"
	DefaultPort      = 50051
	DefaultListen    = ":50051"
	hostnamePrefix   = "cell-"
)

// Config holds everything the daemon needs to run one cell.
type Config struct {
	// ID is this cell's linear position in the grid, parsed from the
	// pod hostname ("cell-<n>").
	ID int
	// Width is the grid edge length; the grid holds Width² cells.
	Width int
	// Period is the tick interval.
	Period time.Duration
	// PollTimeout bounds each per-neighbor status query within a tick.
	// Zero selects the poller's default.
	PollTimeout time.Duration
	// Namespace is the Kubernetes namespace the grid runs in; it appears
	// in peer DNS names and in the label patch target.
	Namespace string
	// Port is the status port peers listen on.
	Port int
	// Listen is this node's own listen address.
	Listen string
	// PodName is the pod's own name, used as the label patch target.
	PodName string
}

// fileConfig mirrors Config for YAML loading. Pointer fields distinguish
// "absent" from zero values.
type fileConfig struct {
	ID            *int    `yaml:"id"`
	Width         *int    `yaml:"width"`
	PeriodMS      *int    `yaml:"period_ms"`
	PollTimeoutMS *int    `yaml:"poll_timeout_ms"`
	Namespace     *string `yaml:"namespace"`
	Port          *int    `yaml:"port"`
	Listen        *string `yaml:"listen"`
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty or the file does not exist), and environment variables, in
// that order of increasing precedence. A malformed YAML file is an error;
// malformed individual values fall back silently.
func Load(path string) (Config, error) {
	cfg := Config{
		ID:        DefaultID,
		Width:     DefaultWidth,
		Period:    DefaultPeriod,
		Namespace: DefaultNamespace,
		Port:      DefaultPort,
		Listen:    DefaultListen,
	}

	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv()
	cfg.sanitize()
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if fc.ID != nil {
		c.ID = *fc.ID
	}
	if fc.Width != nil {
		c.Width = *fc.Width
	}
	if fc.PeriodMS != nil {
		c.Period = time.Duration(*fc.PeriodMS) * time.Millisecond
	}
	if fc.PollTimeoutMS != nil {
		c.PollTimeout = time.Duration(*fc.PollTimeoutMS) * time.Millisecond
	}
	if fc.Namespace != nil {
		c.Namespace = *fc.Namespace
	}
	if fc.Port != nil {
		c.Port = *fc.Port
	}
	if fc.Listen != nil {
		c.Listen = *fc.Listen
	}
	return nil
}

func (c *Config) applyEnv() {
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		c.PodName = hostname
		c.ID = ParseCellID(hostname)
	}
	if v, err := strconv.Atoi(os.Getenv("GRID_WIDTH")); err == nil {
		c.Width = v
	}
	if v, err := strconv.Atoi(os.Getenv("TICK_INTERVAL_MS")); err == nil {
		c.Period = time.Duration(v) * time.Millisecond
	}
	if v, err := strconv.Atoi(os.Getenv("POLL_TIMEOUT_MS")); err == nil {
		c.PollTimeout = time.Duration(v) * time.Millisecond
	}
	if ns := os.Getenv("NAMESPACE"); ns != "" {
		c.Namespace = ns
	}
	if listen := os.Getenv("CELL_LISTEN"); listen != "" {
		c.Listen = listen
	}
}

// sanitize forces out-of-range values back to defaults.
func (c *Config) sanitize() {
	if c.Width < 1 {
		c.Width = DefaultWidth
	}
	if c.ID < 0 || c.ID >= c.Width*c.Width {
		c.ID = DefaultID
	}
	if c.Period <= 0 {
		c.Period = DefaultPeriod
	}
	if c.Port <= 0 || c.Port > 65535 {
		c.Port = DefaultPort
	}
	if c.PodName == "" {
		c.PodName = fmt.Sprintf("%s%d", hostnamePrefix, c.ID)
	}
}

// ParseCellID extracts the linear id from a pod hostname like "cell-42".
// Anything unparsable maps to the default id.
func ParseCellID(hostname string) int {
	id, err := strconv.Atoi(strings.TrimPrefix(hostname, hostnamePrefix))
	if err != nil || id < 0 {
		return DefaultID
	}
	return id
}

// InitialAlive is the startup seeding policy: even ids begin alive. This
// is configuration-layer policy, not part of the automaton itself.
func (c Config) InitialAlive() bool {
	return c.ID%2 == 0
}

// PeerAddr derives the stable DNS address of the cell with the given id.
// Cells run as a StatefulSet behind the headless service "cell": pod
// cell-<n> is reachable at cell-<n>.cell.<namespace>.svc.cluster.local.
func (c Config) PeerAddr(id int) string {
	return fmt.Sprintf("%s%d.cell.%s.svc.cluster.local:%d", hostnamePrefix, id, c.Namespace, c.Port)
}
