package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/billie-coop/scribe/internal/config"
	"github.com/spf13/cobra"
)

func executeCommand(root *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestCLIHelp(t *testing.T) {
	output, err := executeCommand(newRootCmd(), "--help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedPhrases := []string{
		"scribe",
		"--lang",
		"--debounce",
		"--theme",
		"--minimap",
		"--read-only",
		"ctrl+s",
		"config",
	}
	for _, phrase := range expectedPhrases {
		if !strings.Contains(output, phrase) {
			t.Errorf("help output should contain %q", phrase)
		}
	}
}

func TestCLITooManyArgs(t *testing.T) {
	if _, err := executeCommand(newRootCmd(), "a.go", "b.go"); err == nil {
		t.Fatal("expected error for two files")
	}
}

func TestCLIConfigSetAndShow(t *testing.T) {
	t.Chdir(t.TempDir())

	output, err := executeCommand(newRootCmd(), "config", "set", "debounce_ms", "250")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if !strings.Contains(output, "debounce_ms = 250") {
		t.Errorf("unexpected output %q", output)
	}

	output, err = executeCommand(newRootCmd(), "config", "show")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	var cfg config.Config
	if err := json.Unmarshal([]byte(output), &cfg); err != nil {
		t.Fatalf("show output is not JSON: %v\n%s", err, output)
	}
	if cfg.DebounceMS != 250 {
		t.Errorf("debounce_ms = %d", cfg.DebounceMS)
	}
}

func TestCLIConfigSetRejectsUnknownKey(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := executeCommand(newRootCmd(), "config", "set", "font", "mono"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(*config.Config) bool
	}{
		{"no flags keeps config", nil, func(c *config.Config) bool {
			return c.DebounceMS == 500 && c.LineNumbers && c.Preview
		}},
		{"debounce", []string{"--debounce", "150ms"}, func(c *config.Config) bool {
			return c.Debounce() == 150*time.Millisecond
		}},
		{"zero debounce", []string{"--debounce", "0s"}, func(c *config.Config) bool {
			return c.DebounceMS == 0
		}},
		{"toggles", []string{"--line-numbers=false", "--minimap", "--preview=false", "--autosave"}, func(c *config.Config) bool {
			return !c.LineNumbers && c.Minimap && !c.Preview && c.Autosave
		}},
		{"theme and logging", []string{"--theme", "paper", "--log-file", "x.log", "--debug"}, func(c *config.Config) bool {
			return c.Theme == "paper" && c.LogFile == "x.log" && c.Debug
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("ParseFlags: %v", err)
			}
			cfg := config.DefaultConfig()
			if err := applyFlags(cmd, cfg); err != nil {
				t.Fatalf("applyFlags: %v", err)
			}
			if !tt.check(cfg) {
				t.Errorf("unexpected config %+v", cfg)
			}
		})
	}
}

func TestApplyFlagsRejectsNegativeDebounce(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--debounce=-1s"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if err := applyFlags(cmd, config.DefaultConfig()); err == nil {
		t.Fatal("expected error for negative debounce")
	}
}
