// Package glob implements a fast-glob-style pattern matching library: a
// glob compiler, a traversal engine, a gitignore-style ignore evaluator,
// and an orchestrator tying them together behind Glob/Stream.
package glob

import (
	"os"
	"path"
	"sort"
	"strings"

	"github.com/globsmith/globsmith/internal/errs"
	"github.com/globsmith/globsmith/internal/fsadapter"
	"github.com/globsmith/globsmith/internal/ignorefile"
	"github.com/globsmith/globsmith/internal/syntax"
	"github.com/globsmith/globsmith/internal/walk"
	"golang.org/x/exp/maps"
)

// Glob runs the full orchestrator pipeline (spec §4.4) against patterns
// and returns the finalized, sorted, deduplicated list of paths. Use
// GlobEntries when the caller wants dirent/stats records instead.
func Glob(patterns []string, opts Options) ([]string, error) {
	entries, err := run(patterns, opts)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Path)
	}
	return out, nil
}

// GlobEntries runs the same pipeline and returns entry records. Dirent is
// populated only when opts.ObjectMode is set (opts.Stats implies it); Stats
// is populated only when opts.Stats is set.
func GlobEntries(patterns []string, opts Options) ([]GlobEntry, error) {
	return run(patterns, opts)
}

func run(patterns []string, opts Options) ([]GlobEntry, error) {
	fs := opts.FS
	cwd, err := resolveCwd(fs, opts.Cwd)
	if err != nil {
		return nil, err
	}

	positives, negatives, err := partition(patterns)
	if err != nil {
		return nil, err
	}
	if len(positives) == 0 && len(negatives) > 0 {
		positives = []string{"**/*"}
	}

	expanded := expandPositives(fs, cwd, positives, opts.ExpandDirectories)

	walkOpts := walk.Options{
		Dot:             opts.Dot,
		Deep:            opts.Deep,
		FollowSymlinks:  opts.FollowSymbolicLinks,
		SuppressErrors:  opts.SuppressErrors,
		CaseSensitive:   opts.CaseSensitiveMatch,
		BaseNameMatch:   opts.BaseNameMatch,
		MarkDirectories: opts.MarkDirectories,
	}

	matched, err := enumerateAll(fs, expanded, cwd, walkOpts)
	if err != nil {
		return nil, err
	}

	if len(negatives) > 0 {
		matched = filterOut(matched, func(p string) bool {
			return matchesAll(fs, p, negatives, cwd, walkOpts)
		})
	}

	if opts.Gitignore {
		evaluator := ignorefile.New(fs)
		rules := evaluator.CollectFor(cwd, opts.Deep)
		matched = filterOut(matched, func(p string) bool {
			return ignorefile.IsIgnored(fs, p, rules, cwd)
		})
	}

	if len(opts.IgnoreFiles) > 0 {
		evaluator := ignorefile.New(fs)
		rules := evaluator.CollectFrom(opts.IgnoreFiles, cwd)
		matched = filterOut(matched, func(p string) bool {
			return ignorefile.IsIgnored(fs, p, rules, cwd)
		})
	}

	if len(opts.Ignore) > 0 {
		matched = filterOut(matched, func(p string) bool {
			return matchesAny(fs, p, opts.Ignore, cwd, walkOpts)
		})
	}

	matched = filterType(fs, matched, opts)

	if opts.ThrowErrorOnBrokenSymbolicLink {
		for _, p := range matched {
			if info, ok := fs.Lstat(p); ok && info.IsSymlink && info.SymlinkDead {
				return nil, errs.NewBrokenSymbolicLink(p)
			}
		}
	}

	entries := make([]GlobEntry, 0, len(matched))
	for _, p := range matched {
		marked := p
		isDir := fs.IsDirectory(p)
		if opts.MarkDirectories && isDir {
			marked += "/"
		}
		final := finalizePath(marked, cwd, opts.Absolute)
		entries = append(entries, GlobEntry{
			Path: final,
			Name: path.Base(strings.TrimSuffix(final, "/")),
		})
	}

	if opts.Unique {
		entries = dedupEntries(entries)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })

	if opts.ObjectMode {
		for i := range entries {
			abs := entries[i].Path
			if !path.IsAbs(abs) {
				abs = path.Join(cwd, strings.TrimSuffix(abs, "/"))
			} else {
				abs = strings.TrimSuffix(abs, "/")
			}
			entries[i].Dirent = &Dirent{
				isFile: fs.IsFile(abs),
				isDir:  fs.IsDirectory(abs),
			}
			if info, ok := fs.Lstat(abs); ok {
				entries[i].Dirent.isSymlink = info.IsSymlink
			}
			if opts.Stats {
				if info, ok := fs.Stat(abs); ok {
					entries[i].Stats = &Stats{
						Size:        info.Size,
						Atime:       info.Atime,
						Mtime:       info.Mtime,
						Ctime:       info.Ctime,
						Mode:        info.Mode,
						UID:         info.UID,
						GID:         info.GID,
						Inode:       info.Inode,
						Nlink:       info.Nlink,
						IsFile:      info.IsFile,
						IsDirectory: info.IsDirectory,
						IsSymlink:   info.IsSymlink,
					}
				} else {
					return nil, errs.NewCannotStatFile(abs, os.ErrNotExist)
				}
			}
		}
	}

	return entries, nil
}

func resolveCwd(fs fsadapter.FS, cwd string) (string, error) {
	if cwd == "" {
		resolved, err := fs.Cwd()
		if err != nil {
			return "", errs.NewDirectoryNotFound("")
		}
		cwd = resolved
	}
	cwd = strings.ReplaceAll(cwd, "\\", "/")
	if !fs.IsDirectory(cwd) {
		return "", errs.NewDirectoryNotFound(cwd)
	}
	return cwd, nil
}

// partition implements pipeline step 1 and 3: coerce/validate, then split
// into positive and negative (leading `!`) pattern groups.
func partition(patterns []string) (positives, negatives []string, err error) {
	for _, p := range patterns {
		if p == "" {
			return nil, nil, errs.NewInvalidPattern("empty pattern")
		}
		if strings.HasPrefix(p, "!") {
			negatives = append(negatives, strings.TrimPrefix(p, "!"))
		} else {
			positives = append(positives, p)
		}
	}
	return positives, negatives, nil
}

// expandPositives implements pipeline step 4: rewrite patterns that name an
// existing directory under cwd per the expandDirectories option.
func expandPositives(fs fsadapter.FS, cwd string, positives []string, mode ExpandDirectories) []string {
	if mode.Mode == ExpandDisabled {
		return positives
	}
	out := make([]string, 0, len(positives))
	for _, p := range positives {
		candidate := p
		if !path.IsAbs(candidate) {
			candidate = path.Join(cwd, candidate)
		}
		if !fs.IsDirectory(candidate) {
			out = append(out, p)
			continue
		}
		switch mode.Mode {
		case ExpandCustom:
			added := false
			for _, f := range mode.Files {
				out = append(out, path.Join(p, "**", f))
				added = true
			}
			for _, ext := range mode.Extensions {
				out = append(out, path.Join(p, "**", "*."+strings.TrimPrefix(ext, ".")))
				added = true
			}
			if !added {
				out = append(out, path.Join(p, "**/*"))
			}
		default: // ExpandAll
			out = append(out, path.Join(p, "**/*"))
		}
	}
	return out
}

// enumerateAll runs the matcher (§4.2) over every expanded positive
// pattern, concatenating and deduplicating absolute results (pipeline
// step 5).
func enumerateAll(fs fsadapter.FS, patterns []string, cwd string, walkOpts walk.Options) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, pattern := range patterns {
		results, err := walk.Enumerate(fs, pattern, cwd, walkOpts)
		if err != nil {
			return nil, err
		}
		for _, r := range results {
			r = strings.ReplaceAll(r, "\\", "/")
			if !seen[r] {
				seen[r] = true
				out = append(out, r)
			}
		}
	}
	return out, nil
}

func matchesAll(fs fsadapter.FS, p string, patterns []string, cwd string, walkOpts walk.Options) bool {
	for _, pattern := range patterns {
		if !walk.MatchesPath(fs, p, pattern, cwd, walkOpts) {
			return false
		}
	}
	return true
}

func matchesAny(fs fsadapter.FS, p string, patterns []string, cwd string, walkOpts walk.Options) bool {
	for _, pattern := range patterns {
		if walk.MatchesPath(fs, p, pattern, cwd, walkOpts) {
			return true
		}
	}
	return false
}

func filterOut(paths []string, exclude func(string) bool) []string {
	out := paths[:0:0]
	for _, p := range paths {
		if !exclude(p) {
			out = append(out, p)
		}
	}
	return out
}

func filterType(fs fsadapter.FS, paths []string, opts Options) []string {
	if !opts.OnlyFiles && !opts.OnlyDirectories {
		return paths
	}
	out := paths[:0:0]
	for _, p := range paths {
		switch {
		case opts.OnlyFiles && fs.IsFile(p):
			out = append(out, p)
		case opts.OnlyDirectories && fs.IsDirectory(p):
			out = append(out, p)
		}
	}
	return out
}

// finalizePath implements pipeline step 13: absolute as-is, relative
// strips the cwd/ prefix where present.
func finalizePath(p, cwd string, absolute bool) string {
	if absolute {
		if path.IsAbs(p) {
			return p
		}
		return path.Join(cwd, p)
	}
	prefix := strings.TrimSuffix(cwd, "/") + "/"
	if strings.HasPrefix(p, prefix) {
		return strings.TrimPrefix(p, prefix)
	}
	return p
}

// dedupEntries implements pipeline step 14 (unique). The first-occurrence
// winner for each path is kept in a map and the set is flattened back out
// with x/exp/maps; order is irrelevant here since step 15 sorts the whole
// result immediately after.
func dedupEntries(entries []GlobEntry) []GlobEntry {
	byPath := make(map[string]GlobEntry, len(entries))
	for _, e := range entries {
		if _, ok := byPath[e.Path]; !ok {
			byPath[e.Path] = e
		}
	}
	return maps.Values(byPath)
}

// IsDynamic re-exports the compiler's classifier (spec §4.4 introspection
// helper).
func IsDynamic(pattern string) bool { return syntax.IsDynamic(pattern) }

// Escape re-exports the compiler's literal-escaping helper.
func Escape(p string) string { return syntax.Escape(p) }

// IsIgnored implements the `is_ignored` introspection helper: true iff p
// would be excluded by the gitignore evaluator under opts.
func IsIgnored(p string, opts Options) bool {
	evaluator := ignorefile.New(opts.FS)
	rules := evaluator.CollectFor(opts.Cwd, opts.Deep)
	return ignorefile.IsIgnored(opts.FS, p, rules, opts.Cwd)
}

// IsIgnoredByFiles implements `is_ignored_by_files`: true iff p is ignored
// under rules collected from the given ignore-file sources.
func IsIgnoredByFiles(p string, files []string, opts Options) bool {
	evaluator := ignorefile.New(opts.FS)
	rules := evaluator.CollectFrom(files, opts.Cwd)
	return ignorefile.IsIgnored(opts.FS, p, rules, opts.Cwd)
}
