package fsadapter

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// node is one entry in a Memory tree.
type node struct {
	isDir    bool
	content  string
	symlink  string // non-empty if this entry is a symlink to another path
	children map[string]*node
}

// Memory is a hand-rolled in-memory filesystem double, the same style as the
// teacher's mockLogger in internal/util/version_test.go: a fake that
// satisfies the production interface directly rather than a generated mock.
type Memory struct {
	root *node
	cwd  string
}

var _ FS = (*Memory)(nil)

// NewMemory builds an empty tree rooted at "/" with cwd set to root.
func NewMemory() *Memory {
	return &Memory{root: &node{isDir: true, children: map[string]*node{}}, cwd: "/"}
}

func clean(p string) string {
	p = path.Clean(strings.ReplaceAll(p, "\\", "/"))
	if p == "." {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

func segments(p string) []string {
	p = clean(p)
	if p == "/" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(p, "/"), "/")
}

func (m *Memory) lookup(p string) (*node, bool) {
	cur := m.root
	for _, seg := range segments(p) {
		if cur.children == nil {
			return nil, false
		}
		next, ok := cur.children[seg]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func (m *Memory) resolve(p string) (*node, bool) {
	n, ok := m.lookup(p)
	seen := map[string]bool{}
	for ok && n.symlink != "" {
		target := n.symlink
		if !strings.HasPrefix(target, "/") {
			target = path.Join(path.Dir(clean(p)), target)
		}
		if seen[target] {
			return nil, false
		}
		seen[target] = true
		p = target
		n, ok = m.lookup(p)
	}
	return n, ok
}

// AddFile writes a regular file with the given content, creating parent
// directories as needed.
func (m *Memory) AddFile(p, content string) {
	segs := segments(p)
	cur := m.root
	for i, seg := range segs {
		if i == len(segs)-1 {
			cur.children[seg] = &node{content: content}
			return
		}
		next, ok := cur.children[seg]
		if !ok || !next.isDir {
			next = &node{isDir: true, children: map[string]*node{}}
			cur.children[seg] = next
		}
		cur = next
	}
}

// AddDir creates an (empty, if not already populated) directory.
func (m *Memory) AddDir(p string) {
	segs := segments(p)
	cur := m.root
	for _, seg := range segs {
		next, ok := cur.children[seg]
		if !ok {
			next = &node{isDir: true, children: map[string]*node{}}
			cur.children[seg] = next
		}
		cur = next
	}
}

// AddSymlink registers p as a symlink pointing at target (absolute or
// relative to p's directory).
func (m *Memory) AddSymlink(p, target string) {
	segs := segments(p)
	cur := m.root
	for i, seg := range segs {
		if i == len(segs)-1 {
			cur.children[seg] = &node{symlink: target}
			return
		}
		next, ok := cur.children[seg]
		if !ok || !next.isDir {
			next = &node{isDir: true, children: map[string]*node{}}
			cur.children[seg] = next
		}
		cur = next
	}
}

// SetCwd sets the working directory reported by Cwd.
func (m *Memory) SetCwd(p string) { m.cwd = clean(p) }

func (m *Memory) Exists(p string) bool {
	_, ok := m.lookup(p)
	return ok
}

func (m *Memory) IsDirectory(p string) bool {
	n, ok := m.resolve(p)
	return ok && n.isDir
}

func (m *Memory) IsFile(p string) bool {
	n, ok := m.resolve(p)
	return ok && !n.isDir && n.symlink == ""
}

func (m *Memory) ReadFile(p string) string {
	n, ok := m.resolve(p)
	if !ok || n.isDir {
		return ""
	}
	return n.content
}

func (m *Memory) Realpath(p string) string {
	p = clean(p)
	for seen := map[string]bool{}; !seen[p]; {
		seen[p] = true
		n, ok := m.lookup(p)
		if !ok {
			return ""
		}
		if n.symlink == "" {
			return p
		}
		if strings.HasPrefix(n.symlink, "/") {
			p = clean(n.symlink)
		} else {
			p = clean(path.Join(path.Dir(p), n.symlink))
		}
	}
	return ""
}

func (m *Memory) Cwd() (string, error) {
	return m.cwd, nil
}

func (m *Memory) Lstat(p string) (Info, bool) {
	n, ok := m.lookup(p)
	if !ok {
		return Info{}, false
	}
	info := Info{Name: path.Base(clean(p)), IsDir: n.isDir}
	if n.symlink != "" {
		info.IsSymlink = true
		target, ok := m.resolve(p)
		if !ok {
			info.SymlinkDead = true
		} else {
			info.IsDir = target.isDir
		}
	}
	return info, true
}

func (m *Memory) ReadDir(dir string) ([]Info, error) {
	n, ok := m.resolve(dir)
	if !ok || !n.isDir {
		return nil, fmt.Errorf("fsadapter: not a directory: %s", dir)
	}
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Info, 0, len(names))
	for _, name := range names {
		child := n.children[name]
		info := Info{Name: name, IsDir: child.isDir}
		if child.symlink != "" {
			info.IsSymlink = true
			target, ok := m.resolve(path.Join(clean(dir), name))
			if !ok {
				info.SymlinkDead = true
			} else {
				info.IsDir = target.isDir
			}
		}
		out = append(out, info)
	}
	return out, nil
}

// Stat synthesizes a StatInfo from the in-memory node: size from content
// length, everything timestamp/ownership related left zero since the
// double has no notion of them.
func (m *Memory) Stat(p string) (StatInfo, bool) {
	n, ok := m.resolve(p)
	if !ok {
		return StatInfo{}, false
	}
	return StatInfo{
		Size:        int64(len(n.content)),
		IsFile:      !n.isDir && n.symlink == "",
		IsDirectory: n.isDir,
		IsSymlink:   n.symlink != "",
	}, true
}

// Glob walks the in-memory tree rooted at dir using doublestar's Match so
// brace expansion and `**` behave identically to the OS implementation.
func (m *Memory) Glob(dir, pattern string) ([]string, error) {
	base, ok := m.resolve(dir)
	if !ok || !base.isDir {
		return nil, nil
	}
	var matches []string
	var walk func(n *node, rel string)
	walk = func(n *node, rel string) {
		names := make([]string, 0, len(n.children))
		for name := range n.children {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			child := n.children[name]
			childRel := name
			if rel != "" {
				childRel = rel + "/" + name
			}
			ok, _ := doublestar.Match(pattern, childRel)
			if ok {
				matches = append(matches, path.Join(clean(dir), childRel))
			}
			target := child
			if target.symlink != "" {
				if resolved, ok := m.resolve(path.Join(clean(dir), childRel)); ok {
					target = resolved
				}
			}
			if target.isDir {
				walk(target, childRel)
			}
		}
	}
	walk(base, "")
	return matches, nil
}
