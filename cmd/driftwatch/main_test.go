package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCompareValidatesPathsEagerly(t *testing.T) {
	root := t.TempDir()
	configPath := filepath.Join(root, "new.yaml")
	if err := os.WriteFile(configPath, []byte("a: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		historyDir string
		configPath string
		wantSubstr string
	}{
		{
			name:       "missing history dir",
			historyDir: filepath.Join(root, "nope"),
			configPath: configPath,
			wantSubstr: "config history directory",
		},
		{
			name:       "missing new config",
			historyDir: root,
			configPath: filepath.Join(root, "absent.yaml"),
			wantSubstr: "new config file",
		},
		{
			name:       "new config is a directory",
			historyDir: root,
			configPath: root,
			wantSubstr: "new config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runCompare(rootCmd, []string{tt.historyDir, tt.configPath})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSubstr) {
				t.Errorf("expected error mentioning %q, got %v", tt.wantSubstr, err)
			}
		})
	}
}

func TestRunCompareRejectsBadFlagValues(t *testing.T) {
	root := t.TempDir()
	historyDir := filepath.Join(root, "history")
	if err := os.Mkdir(historyDir, 0o755); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(root, "new.yaml")
	if err := os.WriteFile(configPath, []byte("a: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("unsupported config type", func(t *testing.T) {
		configType = "toml"
		defer func() { configType = "yaml" }()

		err := runCompare(rootCmd, []string{historyDir, configPath})
		if err == nil || !strings.Contains(err.Error(), "unsupported configuration format") {
			t.Errorf("expected unsupported format error, got %v", err)
		}
	})

	t.Run("sensitivity out of range", func(t *testing.T) {
		sensitivity = 1.5
		defer func() { sensitivity = 0.8 }()

		err := runCompare(rootCmd, []string{historyDir, configPath})
		if err == nil || !strings.Contains(err.Error(), "invalid comparator options") {
			t.Errorf("expected options validation error, got %v", err)
		}
	})
}

func TestRootCommandRejectsWrongArgCount(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"only-one-arg"})

	if err := rootCmd.Execute(); err == nil {
		t.Error("expected argument validation error")
	}

	// main prints the returned error; cobra must stay quiet so failures
	// are reported once.
	if buf.Len() != 0 {
		t.Errorf("expected no output from cobra itself, got %q", buf.String())
	}
}

func TestRootCommandHelp(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("expected no error for help, got %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "configurable tolerance: \"is this really what I meant to change?\"") {
		t.Errorf("expected long description in help output, got %q", output)
	}
	if !strings.Contains(output, "--sensitivity") {
		t.Errorf("expected sensitivity flag in help output, got %q", output)
	}
}
