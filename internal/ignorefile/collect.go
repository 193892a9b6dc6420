package ignorefile

import (
	"path"
	"strings"

	"github.com/globsmith/globsmith/internal/fsadapter"
)

// Evaluator owns the rule cache described in spec §3 invariant 5: the same
// ignore file is never re-parsed twice within its lifetime.
type Evaluator struct {
	fs    fsadapter.FS
	cache map[string][]Rule
}

// New builds an Evaluator backed by fs. An Evaluator is not safe for
// concurrent use (spec §5): callers wanting parallelism create one per
// worker, same as the orchestrator itself.
func New(fs fsadapter.FS) *Evaluator {
	return &Evaluator{fs: fs, cache: map[string][]Rule{}}
}

func (e *Evaluator) parse(absPath string) []Rule {
	if rules, ok := e.cache[absPath]; ok {
		return rules
	}
	rules := ParseFile(e.fs, absPath)
	e.cache[absPath] = rules
	return rules
}

// CollectFor gathers rules per spec §4.3 "Rule collection": the ignore file
// in cwd itself, the chain of ancestor ignore files up to (not past) the
// repository root when cwd sits inside one, and every ignore file found by
// recursive descent from cwd under the deep bound (excluding cwd's own,
// already collected). Rules are concatenated in shallow-to-deep order so
// later (deeper) rules override earlier ones for the same path, per
// testable property 10.
func (e *Evaluator) CollectFor(cwd string, deep *int) []Rule {
	var rules []Rule
	rules = append(rules, e.ancestorRules(cwd)...)
	rules = append(rules, e.parse(path.Join(cwd, Name))...)
	rules = append(rules, e.subtreeRules(cwd, deep)...)
	return rules
}

// ancestorRules walks upward from the parent of cwd to the repository root
// (inclusive), returning rules ordered root-first so cwd's neighborhood
// overrides them.
func (e *Evaluator) ancestorRules(cwd string) []Rule {
	root := e.repositoryRoot(cwd)
	if root == "" || root == cwd {
		return nil
	}
	var ancestors []string
	for dir := path.Dir(cwd); ; dir = path.Dir(dir) {
		ancestors = append(ancestors, dir)
		if dir == root || dir == "/" || dir == "." {
			break
		}
	}
	var rules []Rule
	for i := len(ancestors) - 1; i >= 0; i-- {
		rules = append(rules, e.parse(path.Join(ancestors[i], Name))...)
	}
	return rules
}

// repositoryRoot returns the closest ancestor of cwd (inclusive) containing
// a .git marker, or "" if none is found.
func (e *Evaluator) repositoryRoot(cwd string) string {
	for dir := cwd; ; {
		if e.fs.Exists(path.Join(dir, ".git")) {
			return dir
		}
		parent := path.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// subtreeRules finds ignore files by recursive descent from cwd, excluding
// cwd's own (already collected by CollectFor). Filesystem errors during the
// scan are swallowed unconditionally, per spec §4.3 "Failure".
func (e *Evaluator) subtreeRules(cwd string, deep *int) []Rule {
	var rules []Rule
	var descend func(dir string, depth int)
	descend = func(dir string, depth int) {
		entries, err := e.fs.ReadDir(dir)
		if err != nil {
			return
		}
		for _, entry := range entries {
			full := path.Join(dir, entry.Name)
			if entry.IsDir {
				if deep != nil && depth >= *deep {
					continue
				}
				descend(full, depth+1)
				continue
			}
			if entry.Name == Name && dir != cwd {
				rules = append(rules, e.parse(full)...)
			}
		}
	}
	descend(cwd, 0)
	return rules
}

// CollectFrom handles the configurable ignoreFiles option (spec §4.3
// "collect_from"): each entry is either a literal filename looked up in
// cwd, or a glob resolved through the filesystem abstraction. Every match
// is parsed relative to its own containing directory.
func (e *Evaluator) CollectFrom(filePatterns []string, cwd string) []Rule {
	var rules []Rule
	for _, pat := range filePatterns {
		if !strings.ContainsAny(pat, "*?[]{}") {
			candidate := path.Join(cwd, pat)
			if e.fs.Exists(candidate) {
				rules = append(rules, e.parse(candidate)...)
			}
			continue
		}
		matches, err := e.fs.Glob(cwd, pat)
		if err != nil {
			continue
		}
		for _, m := range matches {
			rules = append(rules, e.parse(m)...)
		}
	}
	return rules
}
