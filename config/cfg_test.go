package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"richdoc/convert"
	"richdoc/dom"
	"richdoc/model"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.Version != 1 {
		t.Fatalf("unexpected version %d", cfg.Version)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Fatalf("unexpected console level %q", cfg.Logging.ConsoleLogger.Level)
	}
	opts, err := cfg.Converter.Options()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.BlockFn != nil || opts.ElementStyles != nil || opts.CustomStyleMap != nil {
		t.Fatalf("defaults must compile to empty options: %+v", opts)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "richdoc.yaml")
	content := `version: 1
converter:
  element_styles:
    SUP: SUPERSCRIPT
  custom_styles:
    RED:
      color: red
  blocks:
    - tag: aside
      class: note
      type: blockquote
      data:
        role: note
logging:
  console:
    level: none
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	opts, err := cfg.Converter.Options()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.ElementStyles["sup"] != "SUPERSCRIPT" {
		t.Fatalf("element styles not lowercased/compiled: %+v", opts.ElementStyles)
	}
	if opts.CustomStyleMap["RED"].String() != "color: red" {
		t.Fatalf("custom style not compiled: %+v", opts.CustomStyleMap)
	}

	// the compiled options drive a full conversion
	root := dom.Elem("div",
		dom.Elem("aside", dom.Txt("careful")).Set("class", "warning note"),
		dom.Elem("aside", dom.Txt("plain aside")),
	)
	cs, err := convert.Convert(root, opts, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if len(cs.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %+v", cs.Blocks)
	}
	if cs.Blocks[0].Type != model.Blockquote || cs.Blocks[0].Data["role"] != "note" {
		t.Fatalf("block rule did not apply: %+v", cs.Blocks[0])
	}
	if cs.Blocks[1].Type != model.Unstyled {
		t.Fatalf("class filter did not apply: %+v", cs.Blocks[1])
	}
}

func TestUnknownFieldsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("version: 1\nnonsense: true\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfiguration(path); err == nil {
		t.Fatal("expected unknown field error")
	}
}

func TestInvalidBlockType(t *testing.T) {
	cc := ConverterConfig{
		Blocks: []BlockRule{{Tag: "aside", Type: "no-such-type"}},
	}
	_, err := cc.Options()
	if !errors.Is(err, convert.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestLoggerPrepare(t *testing.T) {
	for _, level := range []string{"none", "normal", "debug"} {
		conf := LoggingConfig{ConsoleLogger: LoggerConfig{Level: level}}
		log, err := conf.Prepare()
		if err != nil {
			t.Fatalf("prepare %q: %v", level, err)
		}
		log.Debug("probe")
		log.Info("probe")
	}
}
