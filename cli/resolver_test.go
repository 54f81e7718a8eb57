package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/dra11y/toms-logger/log"
)

func TestLoadYAML(t *testing.T) {
	doc := strings.Join([]string{
		"log:",
		"  level: debug",
		"  number_color: yellow",
		"  indent: 2",
		"  nested:",
		"    deeper: true",
		"source:",
		"  - a.txt",
		"  - b.txt",
		"empty:",
	}, "\n")

	r, err := loadYAML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("loadYAML: %v", err)
	}

	cfg, ok := r.(config)
	if !ok {
		t.Fatalf("loadYAML returned %T", r)
	}

	want := config{
		"log-level":         "debug",
		"log-number-color":  "yellow",
		"log-indent":        "2",
		"log-nested-deeper": true,
		"source":            "a.txt,b.txt",
	}

	if len(cfg) != len(want) {
		t.Errorf("loadYAML() = %v, want %v", cfg, want)
	}

	for key, val := range want {
		if cfg[key] != val {
			t.Errorf("%s = %#v, want %#v", key, cfg[key], val)
		}
	}
}

func TestLoadYAML_Empty(t *testing.T) {
	r, err := loadYAML(strings.NewReader(""))
	if err != nil {
		t.Fatalf("loadYAML: %v", err)
	}

	if cfg, ok := r.(config); !ok || len(cfg) != 0 {
		t.Errorf("loadYAML(empty) = %#v, want empty config", r)
	}
}

func TestLoadYAML_Invalid(t *testing.T) {
	_, err := loadYAML(strings.NewReader("log: [unclosed\n"))
	if !errors.Is(err, log.ErrReadConfig) {
		t.Errorf("loadYAML error = %v, want ErrReadConfig", err)
	}
}

func TestResolve_UnderscoreKeys(t *testing.T) {
	r, err := loadYAML(strings.NewReader(strings.Join([]string{
		"log:",
		"  number_color: yellow",
		"  time_layout: kitchen",
		"  level: warn",
		"top_level: x",
	}, "\n")))
	if err != nil {
		t.Fatalf("loadYAML: %v", err)
	}

	tests := []struct {
		flag string
		want any
	}{
		{"log-level", "warn"},
		{"log-number-color", "yellow"},
		{"log-time-layout", "kitchen"},
		{"top-level", "x"},
		{"log-indent", nil},
	}

	for _, tt := range tests {
		got, err := r.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: tt.flag}})
		if err != nil {
			t.Fatalf("Resolve(%s): %v", tt.flag, err)
		}

		if got != tt.want {
			t.Errorf("Resolve(%s) = %#v, want %#v", tt.flag, got, tt.want)
		}
	}
}

func TestConfigurationUnderscoreKeysApplyToFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	doc := "log:\n  number_color: yellow\n  time_layout: kitchen\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	var cli CLI

	parser, err := newParser(&cli, path)
	if err != nil {
		t.Fatalf("newParser: %v", err)
	}

	if _, err := parser.Parse([]string{"emit", "hello"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := log.MakeConfig(
		log.WithNumberColor(log.ColorYellow),
		log.WithTimeLayout("kitchen"),
	)

	if got := cli.Log.config(); got != want {
		t.Errorf("config() = %+v, want %+v", got, want)
	}
}

func TestConfigurationAppliesToFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	doc := strings.Join([]string{
		"log:",
		"  level: debug",
		"  indent: 2",
		"  color: never",
		"  line-color: '#ff8700'",
		"  time-layout: none",
	}, "\n")

	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	var cli CLI

	parser, err := newParser(&cli, path)
	if err != nil {
		t.Fatalf("newParser: %v", err)
	}

	if _, err := parser.Parse([]string{"--log-indent=3", "emit", "hello"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := log.MakeConfig(
		log.WithLevel(log.LevelDebug),
		log.WithIndent(3),
		log.WithColorMode(log.ColorNever),
		log.WithLineColor(log.Color("#ff8700")),
		log.WithTimeLayout("none"),
	)

	if got := cli.Log.config(); got != want {
		t.Errorf("config() = %+v, want %+v", got, want)
	}
}

func TestFlagDefaultsMatchDefaultConfig(t *testing.T) {
	var cli CLI

	parser, err := newParser(&cli, filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("newParser: %v", err)
	}

	if _, err := parser.Parse([]string{"emit", "x"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := cli.Log.config(); got != log.DefaultConfig() {
		t.Errorf("config() = %+v, want %+v", got, log.DefaultConfig())
	}
}
