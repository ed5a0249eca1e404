package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestOpenLog(t *testing.T) {
	logger, closeLog, err := openLog("")
	if err != nil || logger == nil {
		t.Fatalf("openLog(\"\") = %v, %v", logger, err)
	}
	closeLog()

	path := filepath.Join(t.TempDir(), "nodemap.log")
	logger, closeLog, err = openLog(path)
	if err != nil {
		t.Fatalf("openLog: %v", err)
	}
	logger.Debug("minimap pan started", "k", 1)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "minimap pan started") {
		t.Errorf("log file = %q", data)
	}
}

func TestLoadConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[minimap]\nsize = 64\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	viper.Set("config", path)
	t.Cleanup(func() { viper.Set("config", "") })

	cfg, got, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
	if cfg.Minimap.Size != 64 {
		t.Errorf("Minimap.Size = %d, want 64", cfg.Minimap.Size)
	}
}

func TestVersionCmd(t *testing.T) {
	cmd := newVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.Run(cmd, nil)
	if got := out.String(); got != "nodemap "+version+"\n" {
		t.Errorf("version output = %q", got)
	}
}
