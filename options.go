package glob

import (
	"os"

	"github.com/agentuity/go-common/logger"
	"github.com/globsmith/globsmith/internal/fsadapter"
	"github.com/globsmith/globsmith/internal/nooplog"
)

// ExpandMode selects how the expandDirectories option rewrites patterns that
// resolve to an existing directory (spec §6.2 "expandDirectories").
type ExpandMode int

const (
	ExpandAll ExpandMode = iota
	ExpandDisabled
	ExpandCustom
)

// ExpandDirectories carries the bool-or-object shape from the spec: plain
// true/false collapse to ExpandAll/ExpandDisabled, and the {files,
// extensions} form becomes ExpandCustom with those filters.
type ExpandDirectories struct {
	Mode       ExpandMode
	Files      []string
	Extensions []string
}

// Options is the immutable bundle of recognized knobs from spec §6.2.
// Construct it with NewOptions or OptionsFromMap; there is no exported way
// to mutate one after construction.
type Options struct {
	Cwd                            string
	ExpandDirectories              ExpandDirectories
	Gitignore                      bool
	IgnoreFiles                    []string
	Ignore                         []string
	OnlyFiles                      bool
	OnlyDirectories                bool
	Dot                            bool
	Deep                           *int
	FollowSymbolicLinks            bool
	SuppressErrors                 bool
	Absolute                       bool
	Unique                         bool
	MarkDirectories                bool
	CaseSensitiveMatch             bool
	BaseNameMatch                  bool
	ThrowErrorOnBrokenSymbolicLink bool
	ObjectMode                     bool
	Stats                          bool
	FS                             fsadapter.FS
	Logger                         logger.Logger
}

// Option mutates an in-construction Options record. Functional options,
// same idiom the teacher uses for errsystem.New's variadic opts.
type Option func(*Options)

// defaultOptions returns the fixed defaults from spec §6.2 before any
// Option is applied.
func defaultOptions() Options {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return Options{
		Cwd:                  cwd,
		ExpandDirectories:    ExpandDirectories{Mode: ExpandAll},
		OnlyFiles:            true,
		FollowSymbolicLinks:  true,
		Unique:               true,
		CaseSensitiveMatch:   true,
		FS:                   fsadapter.OS{},
		Logger:               nooplog.New(),
	}
}

// NewOptions builds an Options record from the fixed defaults plus the
// supplied Option values, applied in order. onlyFiles/onlyDirectories
// mutual exclusion is enforced as each of those options is applied (the
// later one wins); the stats->objectMode implication is reconciled after
// all options have been applied, per spec §3 "Options record".
func NewOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	reconcile(&o)
	return o
}

func reconcile(o *Options) {
	if o.Stats {
		o.ObjectMode = true
	}
}

func WithCwd(cwd string) Option {
	return func(o *Options) { o.Cwd = cwd }
}

func WithExpandDirectories(e ExpandDirectories) Option {
	return func(o *Options) { o.ExpandDirectories = e }
}

func WithGitignore(v bool) Option {
	return func(o *Options) { o.Gitignore = v }
}

func WithIgnoreFiles(files ...string) Option {
	return func(o *Options) { o.IgnoreFiles = files }
}

func WithIgnore(patterns ...string) Option {
	return func(o *Options) { o.Ignore = patterns }
}

// WithOnlyFiles sets onlyFiles and clears onlyDirectories, enforcing the
// mutual exclusion at the point of assignment rather than deferring it.
func WithOnlyFiles(v bool) Option {
	return func(o *Options) {
		o.OnlyFiles = v
		if v {
			o.OnlyDirectories = false
		}
	}
}

// WithOnlyDirectories sets onlyDirectories and clears onlyFiles.
func WithOnlyDirectories(v bool) Option {
	return func(o *Options) {
		o.OnlyDirectories = v
		if v {
			o.OnlyFiles = false
		}
	}
}

func WithDot(v bool) Option {
	return func(o *Options) { o.Dot = v }
}

func WithDeep(n int) Option {
	return func(o *Options) { o.Deep = &n }
}

func WithFollowSymbolicLinks(v bool) Option {
	return func(o *Options) { o.FollowSymbolicLinks = v }
}

func WithSuppressErrors(v bool) Option {
	return func(o *Options) { o.SuppressErrors = v }
}

func WithAbsolute(v bool) Option {
	return func(o *Options) { o.Absolute = v }
}

func WithUnique(v bool) Option {
	return func(o *Options) { o.Unique = v }
}

func WithMarkDirectories(v bool) Option {
	return func(o *Options) { o.MarkDirectories = v }
}

func WithCaseSensitiveMatch(v bool) Option {
	return func(o *Options) { o.CaseSensitiveMatch = v }
}

func WithBaseNameMatch(v bool) Option {
	return func(o *Options) { o.BaseNameMatch = v }
}

func WithThrowErrorOnBrokenSymbolicLink(v bool) Option {
	return func(o *Options) { o.ThrowErrorOnBrokenSymbolicLink = v }
}

func WithObjectMode(v bool) Option {
	return func(o *Options) { o.ObjectMode = v }
}

func WithStats(v bool) Option {
	return func(o *Options) {
		o.Stats = v
		if v {
			o.ObjectMode = true
		}
	}
}

func WithFS(fs fsadapter.FS) Option {
	return func(o *Options) { o.FS = fs }
}

func WithLogger(l logger.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// OptionsFromMap builds an Options record from a key/value map, the shape
// callers get from decoding JSON/YAML config. Wrong-shaped values for a key
// are silently discarded rather than raising an error, matching the
// teacher's tolerant config decoding in cmd/root.go's viper binding.
func OptionsFromMap(m map[string]any) Options {
	o := defaultOptions()

	if v, ok := m["cwd"].(string); ok {
		o.Cwd = v
	}
	switch v := m["expandDirectories"].(type) {
	case bool:
		if v {
			o.ExpandDirectories = ExpandDirectories{Mode: ExpandAll}
		} else {
			o.ExpandDirectories = ExpandDirectories{Mode: ExpandDisabled}
		}
	case map[string]any:
		custom := ExpandDirectories{Mode: ExpandCustom}
		if files, ok := v["files"].([]string); ok {
			custom.Files = files
		}
		if exts, ok := v["extensions"].([]string); ok {
			custom.Extensions = exts
		}
		o.ExpandDirectories = custom
	}
	if v, ok := m["gitignore"].(bool); ok {
		o.Gitignore = v
	}
	switch v := m["ignoreFiles"].(type) {
	case string:
		o.IgnoreFiles = []string{v}
	case []string:
		o.IgnoreFiles = v
	}
	if v, ok := m["ignore"].([]string); ok {
		o.Ignore = v
	}
	if v, ok := m["onlyFiles"].(bool); ok {
		o.OnlyFiles = v
		if v {
			o.OnlyDirectories = false
		}
	}
	if v, ok := m["onlyDirectories"].(bool); ok {
		o.OnlyDirectories = v
		if v {
			o.OnlyFiles = false
		}
	}
	if v, ok := m["dot"].(bool); ok {
		o.Dot = v
	}
	if v, ok := m["deep"].(int); ok {
		o.Deep = &v
	}
	if v, ok := m["followSymbolicLinks"].(bool); ok {
		o.FollowSymbolicLinks = v
	}
	if v, ok := m["suppressErrors"].(bool); ok {
		o.SuppressErrors = v
	}
	if v, ok := m["absolute"].(bool); ok {
		o.Absolute = v
	}
	if v, ok := m["unique"].(bool); ok {
		o.Unique = v
	}
	if v, ok := m["markDirectories"].(bool); ok {
		o.MarkDirectories = v
	}
	if v, ok := m["caseSensitiveMatch"].(bool); ok {
		o.CaseSensitiveMatch = v
	}
	if v, ok := m["baseNameMatch"].(bool); ok {
		o.BaseNameMatch = v
	}
	if v, ok := m["throwErrorOnBrokenSymbolicLink"].(bool); ok {
		o.ThrowErrorOnBrokenSymbolicLink = v
	}
	if v, ok := m["objectMode"].(bool); ok {
		o.ObjectMode = v
	}
	if v, ok := m["stats"].(bool); ok {
		o.Stats = v
		if v {
			o.ObjectMode = true
		}
	}
	if v, ok := m["fs"].(fsadapter.FS); ok {
		o.FS = v
	}
	return o
}
