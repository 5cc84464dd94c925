// Package config loads converter options and logging setup from a yaml file,
// superimposed on template-provided defaults.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/rupor-github/gencfg"
	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"richdoc/convert"
	"richdoc/css"
	"richdoc/dom"
	"richdoc/model"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	// BlockRule overrides block classification for elements matching a tag
	// and, optionally, a class token.
	BlockRule struct {
		Tag   string            `yaml:"tag" validate:"required"`
		Class string            `yaml:"class,omitempty"`
		Type  string            `yaml:"type" validate:"required"`
		Data  map[string]string `yaml:"data,omitempty"`
	}

	ConverterConfig struct {
		ElementStyles map[string]string            `yaml:"element_styles"`
		CustomStyles  map[string]map[string]string `yaml:"custom_styles"`
		Blocks        []BlockRule                  `yaml:"blocks"`
	}

	Config struct {
		Version   int             `yaml:"version" validate:"eq=1"`
		Converter ConverterConfig `yaml:"converter"`
		Logging   LoggingConfig   `yaml:"logging"`
	}
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of the expanded configuration template to
// provide sane defaults and performs validation. An empty path yields the
// defaults.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}

// Options compiles the converter section into conversion options. Block rules
// become a classification hook, custom styles become declarations.
func (cc *ConverterConfig) Options() (convert.Options, error) {
	var errs error

	opts := convert.Options{}
	if len(cc.ElementStyles) > 0 {
		opts.ElementStyles = make(map[string]string, len(cc.ElementStyles))
		for tag, style := range cc.ElementStyles {
			opts.ElementStyles[strings.ToLower(tag)] = style
		}
	}
	if len(cc.CustomStyles) > 0 {
		opts.CustomStyleMap = make(map[string]css.Declarations, len(cc.CustomStyles))
		for name, props := range cc.CustomStyles {
			opts.CustomStyleMap[name] = css.FromMap(props)
		}
	}

	rules := make([]BlockRule, 0, len(cc.Blocks))
	for _, rule := range cc.Blocks {
		if !model.BlockType(rule.Type).Valid() {
			errs = multierr.Append(errs, fmt.Errorf("block rule for tag %q: unknown block type %q", rule.Tag, rule.Type))
			continue
		}
		rule.Tag = strings.ToLower(rule.Tag)
		rules = append(rules, rule)
	}
	if errs != nil {
		return convert.Options{}, fmt.Errorf("%w: %w", convert.ErrInvalidConfiguration, errs)
	}
	if len(rules) > 0 {
		opts.BlockFn = blockFn(rules)
	}
	return opts, nil
}

// blockFn returns a hook applying the first matching rule.
func blockFn(rules []BlockRule) convert.BlockFn {
	return func(el dom.Element) *convert.BlockOverride {
		for _, rule := range rules {
			if el.Tag() != rule.Tag {
				continue
			}
			if rule.Class != "" && !hasClass(el, rule.Class) {
				continue
			}
			ov := &convert.BlockOverride{Type: model.BlockType(rule.Type)}
			if len(rule.Data) > 0 {
				ov.Data = make(map[string]any, len(rule.Data))
				for k, v := range rule.Data {
					ov.Data[k] = v
				}
			}
			return ov
		}
		return nil
	}
}

func hasClass(el dom.Element, class string) bool {
	attr, ok := el.Attr("class")
	if !ok {
		return false
	}
	for _, token := range strings.Fields(attr) {
		if token == class {
			return true
		}
	}
	return false
}
