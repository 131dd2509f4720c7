// Package config loads the formatter's option surface: a flat struct of
// recognized keys plus an optional YAML file, grounded on the teacher's
// config.Configurer shape (RegisterFlags/KnownDirectives/Configure in
// language/cpp/config.go) generalized from gazelle's BUILD-directive
// comments to a file a formatter's user actually writes by hand.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/uncrustify/uncrustify-sub003/diag"
	"github.com/uncrustify/uncrustify-sub003/lang"
)

// PPUnbalancedIfAction mirrors options::pp_unbalanced_if_action's three
// levels: silently accept an unbalanced #define/#if block, warn about it, or
// treat it as fatal.
type PPUnbalancedIfAction int

const (
	PPUnbalancedSilent PPUnbalancedIfAction = iota
	PPUnbalancedWarn
	PPUnbalancedFatal
)

func (a PPUnbalancedIfAction) String() string {
	switch a {
	case PPUnbalancedSilent:
		return "silent"
	case PPUnbalancedWarn:
		return "warn"
	case PPUnbalancedFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// AlignTypedefFunc mirrors options::align_typedef_func's three levels.
type AlignTypedefFunc int

const (
	AlignTypedefFuncNone AlignTypedefFunc = iota
	AlignTypedefFuncParen
	AlignTypedefFuncName
)

func (a AlignTypedefFunc) String() string {
	switch a {
	case AlignTypedefFuncNone:
		return "none"
	case AlignTypedefFuncParen:
		return "paren"
	case AlignTypedefFuncName:
		return "name"
	default:
		return "unknown"
	}
}

// Options is the formatter's full recognized option set, exactly the keys
// spec.md §6 lists. The zero value is not a valid default — call New to get
// one with the reference's defaults filled in.
type Options struct {
	PPUnbalancedIfAction PPUnbalancedIfAction
	PPLevelLimit         int
	IndentNamespaceLimit int
	AlignTypedefFunc     AlignTypedefFunc
	IndentUsingBlock     bool
	Language             lang.Mask
}

// New returns an Options populated with the reference's defaults: unbalanced
// #if/#define blocks warn but don't abort, no namespace or pp-level limit,
// no typedef-function alignment, and using-blocks are indented.
func New() Options {
	return Options{
		PPUnbalancedIfAction: PPUnbalancedWarn,
		IndentUsingBlock:     true,
		Language:             lang.CPP,
	}
}

// yamlOptions is the on-disk shape of a .chunkfmt.yaml file: every field is
// a pointer so an absent key leaves the corresponding Options field at its
// existing value (New()'s default, or whatever a prior file already set)
// instead of being zeroed by an empty YAML mapping.
type yamlOptions struct {
	PPUnbalancedIfAction *string `yaml:"pp_unbalanced_if_action"`
	PPLevel              *int    `yaml:"pp_level"`
	IndentNamespaceLimit *int    `yaml:"indent_namespace_limit"`
	AlignTypedefFunc     *string `yaml:"align_typedef_func"`
	IndentUsingBlock     *bool   `yaml:"indent_using_block"`
	Language             *string `yaml:"language"`
}

// Load reads path as YAML and applies its keys on top of base, recording a
// warning on the sink (never aborting) for any key with an unrecognized
// value, the same "recognized key, validate, warn rather than panic"
// discipline language/cpp/config.go's Configure method uses for directive
// values it doesn't understand.
func Load(path string, base Options, d *diag.Sink) (Options, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var y yamlOptions
	if err := yaml.Unmarshal(raw, &y); err != nil {
		return base, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	opts := base

	if y.PPUnbalancedIfAction != nil {
		switch *y.PPUnbalancedIfAction {
		case "silent":
			opts.PPUnbalancedIfAction = PPUnbalancedSilent
		case "warn":
			opts.PPUnbalancedIfAction = PPUnbalancedWarn
		case "fatal":
			opts.PPUnbalancedIfAction = PPUnbalancedFatal
		default:
			d.Warnf(0, 0, "config: pp_unbalanced_if_action: invalid value %q, expected silent, warn or fatal", *y.PPUnbalancedIfAction)
		}
	}
	if y.PPLevel != nil {
		if *y.PPLevel < 0 {
			d.Warnf(0, 0, "config: pp_level: invalid value %d, expected a non-negative limit", *y.PPLevel)
		} else {
			opts.PPLevelLimit = *y.PPLevel
		}
	}
	if y.IndentNamespaceLimit != nil {
		if *y.IndentNamespaceLimit < 0 {
			d.Warnf(0, 0, "config: indent_namespace_limit: invalid value %d, expected a non-negative line count", *y.IndentNamespaceLimit)
		} else {
			opts.IndentNamespaceLimit = *y.IndentNamespaceLimit
		}
	}
	if y.AlignTypedefFunc != nil {
		switch *y.AlignTypedefFunc {
		case "none":
			opts.AlignTypedefFunc = AlignTypedefFuncNone
		case "paren":
			opts.AlignTypedefFunc = AlignTypedefFuncParen
		case "name":
			opts.AlignTypedefFunc = AlignTypedefFuncName
		default:
			d.Warnf(0, 0, "config: align_typedef_func: invalid value %q, expected none, paren or name", *y.AlignTypedefFunc)
		}
	}
	if y.IndentUsingBlock != nil {
		opts.IndentUsingBlock = *y.IndentUsingBlock
	}
	if y.Language != nil {
		if m, ok := languageTable[*y.Language]; ok {
			opts.Language = m
		} else {
			d.Warnf(0, 0, "config: language: unrecognized value %q", *y.Language)
		}
	}

	return opts, nil
}

var languageTable = map[string]lang.Mask{
	"c":          lang.C,
	"c++":        lang.CPP,
	"c++/cli":    lang.CPP | lang.CppCli,
	"d":          lang.D,
	"c#":         lang.CS,
	"java":       lang.Java,
	"objective-c": lang.ObjC,
	"vala":       lang.Vala,
	"pawn":       lang.Pawn,
	"ecma":       lang.Ecma,
}

// LanguageForFile resolves the language to use for path: an explicit
// override (e.g. from -language on the CLI) wins, otherwise the file's
// extension is consulted via lang.FromExtension, and opts.Language is kept
// as the final fallback — the same precedence language/cpp/lang.go's
// extension-table lookup sits behind, generalized with an explicit
// override in front of it since a single invocation here may process files
// across several of the nine supported languages at once.
func LanguageForFile(path string, override lang.Mask, opts Options) lang.Mask {
	if override != 0 {
		return override
	}
	if m, ok := lang.FromExtension(extOf(path)); ok {
		return m
	}
	return opts.Language
}

func extOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return path[i:]
		}
		if path[i] == '/' || path[i] == os.PathSeparator {
			break
		}
	}
	return ""
}
