package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv blanks every variable Load reads so tests start from defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HOSTNAME", "GRID_WIDTH", "TICK_INTERVAL_MS", "POLL_TIMEOUT_MS", "NAMESPACE", "CELL_LISTEN"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ID != DefaultID || cfg.Width != DefaultWidth || cfg.Period != DefaultPeriod {
		t.Errorf("defaults = id %d width %d period %v", cfg.ID, cfg.Width, cfg.Period)
	}
	if cfg.Namespace != DefaultNamespace || cfg.Listen != DefaultListen || cfg.Port != DefaultPort {
		t.Errorf("defaults = ns %q listen %q port %d", cfg.Namespace, cfg.Listen, cfg.Port)
	}
	if cfg.PodName != "cell-0" {
		t.Errorf("PodName = %q, want cell-0", cfg.PodName)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOSTNAME", "cell-42")
	t.Setenv("GRID_WIDTH", "8")
	t.Setenv("TICK_INTERVAL_MS", "250")
	t.Setenv("POLL_TIMEOUT_MS", "100")
	t.Setenv("NAMESPACE", "life")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ID != 42 || cfg.Width != 8 {
		t.Errorf("id %d width %d, want 42 and 8", cfg.ID, cfg.Width)
	}
	if cfg.Period != 250*time.Millisecond || cfg.PollTimeout != 100*time.Millisecond {
		t.Errorf("period %v timeout %v", cfg.Period, cfg.PollTimeout)
	}
	if cfg.Namespace != "life" || cfg.PodName != "cell-42" {
		t.Errorf("ns %q pod %q", cfg.Namespace, cfg.PodName)
	}
}

func TestLoadUnparsableEnvFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOSTNAME", "not-a-cell")
	t.Setenv("GRID_WIDTH", "wide")
	t.Setenv("TICK_INTERVAL_MS", "fast")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ID != DefaultID || cfg.Width != DefaultWidth || cfg.Period != DefaultPeriod {
		t.Errorf("got id %d width %d period %v, want defaults", cfg.ID, cfg.Width, cfg.Period)
	}
	// The raw hostname still names the pod even when no id parses from it.
	if cfg.PodName != "not-a-cell" {
		t.Errorf("PodName = %q, want not-a-cell", cfg.PodName)
	}
}

func TestLoadYAMLFileAndEnvPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRID_WIDTH", "20")

	path := filepath.Join(t.TempDir(), "cell.yaml")
	data := "width: 5\nperiod_ms: 2000\nnamespace: from-file\nlisten: \":6000\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Width != 20 {
		t.Errorf("Width = %d, want 20 (env overrides file)", cfg.Width)
	}
	if cfg.Period != 2*time.Second || cfg.Namespace != "from-file" || cfg.Listen != ":6000" {
		t.Errorf("file values not applied: period %v ns %q listen %q", cfg.Period, cfg.Namespace, cfg.Listen)
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Errorf("Load with absent file: %v", err)
	}
}

func TestLoadMalformedFileIsAnError(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "cell.yaml")
	if err := os.WriteFile(path, []byte("width: [not an int"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load with malformed YAML succeeded, want error")
	}
}

func TestSanitizeOutOfRange(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRID_WIDTH", "-3")
	t.Setenv("TICK_INTERVAL_MS", "0")
	t.Setenv("HOSTNAME", "cell-5000") // beyond default 10x10 grid

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != DefaultWidth || cfg.Period != DefaultPeriod || cfg.ID != DefaultID {
		t.Errorf("sanitize: id %d width %d period %v, want defaults", cfg.ID, cfg.Width, cfg.Period)
	}
}

func TestParseCellID(t *testing.T) {
	tests := []struct {
		hostname string
		want     int
	}{
		{"cell-0", 0},
		{"cell-7", 7},
		{"cell-123", 123},
		{"cell--1", 0},
		{"cell-", 0},
		{"worker-3", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := ParseCellID(tt.hostname); got != tt.want {
			t.Errorf("ParseCellID(%q) = %d, want %d", tt.hostname, got, tt.want)
		}
	}
}

func TestInitialAlive(t *testing.T) {
	for id := 0; id < 10; id++ {
		cfg := Config{ID: id}
		if got := cfg.InitialAlive(); got != (id%2 == 0) {
			t.Errorf("InitialAlive() for id %d = %v", id, got)
		}
	}
}

func TestPeerAddr(t *testing.T) {
	cfg := Config{Namespace: "cellular-automaton", Port: 50051}
	want := "cell-7.cell.cellular-automaton.svc.cluster.local:50051"
	if got := cfg.PeerAddr(7); got != want {
		t.Errorf("PeerAddr(7) = %q, want %q", got, want)
	}
}
