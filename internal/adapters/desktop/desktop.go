// Package desktop serves windows and accessibility trees from a YAML snapshot of a desktop.
//
// A snapshot lists top-level windows in z-order, each with the element tree under its
// window element. A node marked "flaky: N" is invisible to its first N chain lookups,
// which reproduces the transient failures of a live accessibility API.
package desktop

import (
	"context"
	"os"
	"strconv"
	"strings"
	"sync"

	"go.trai.ch/edgetabs/internal/core/domain"
	"go.trai.ch/edgetabs/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

type window struct {
	handle  domain.WindowHandle
	class   string
	title   string
	visible bool
	root    *Node
}

// Desktop implements ports.WindowSource and ports.AccessibilityTree over a snapshot file.
type Desktop struct {
	mu         sync.Mutex
	path       string
	filter     domain.WindowFilter
	generation int
	windows    []window
	focused    string
}

// Open loads the snapshot at path. Only windows passing filter are enumerated.
func Open(path string, filter domain.WindowFilter) (*Desktop, error) {
	if path == "" {
		return nil, domain.ErrDesktopNotConfigured
	}

	d := &Desktop{path: path, filter: filter}
	if err := d.Reload(); err != nil {
		return nil, err
	}
	return d, nil
}

// Path returns the snapshot file.
func (d *Desktop) Path() string {
	return d.path
}

// Reload re-reads the snapshot. Nodes handed out before become detached.
// On error the previous snapshot stays in place.
func (d *Desktop) Reload() error {
	windows, err := load(d.path)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.generation++
	for _, w := range windows {
		w.root.attach(d, d.generation)
	}
	d.windows = windows
	return nil
}

// Focused returns the name of the last activated node.
func (d *Desktop) Focused() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.focused, d.focused != ""
}

// Enumerate returns the visible windows with the configured class and a title ending
// in the configured suffix, in snapshot order.
func (d *Desktop) Enumerate(_ context.Context) ([]domain.WindowHandle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var handles []domain.WindowHandle
	for _, w := range d.windows {
		if !w.visible || w.class != d.filter.Class || w.title == "" {
			continue
		}
		if !strings.HasSuffix(w.title, d.filter.TitleSuffix) {
			continue
		}
		handles = append(handles, w.handle)
	}
	return handles, nil
}

// Root returns the window element of window.
func (d *Desktop) Root(window domain.WindowHandle) (ports.Node, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, w := range d.windows {
		if w.handle == window {
			return w.root, true
		}
	}
	return nil, false
}

// FindChain applies each step of chain to the children of the previous match.
func (d *Desktop) FindChain(root ports.Node, chain domain.Chain) (ports.Node, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	current, ok := d.live(root)
	if !ok {
		return nil, false
	}
	for _, step := range chain {
		if current = current.first(step); current == nil {
			return nil, false
		}
	}
	return current, true
}

// FindChildren returns the children of node matching m, in tree order.
func (d *Desktop) FindChildren(node ports.Node, m domain.Matcher) []ports.Node {
	d.mu.Lock()
	defer d.mu.Unlock()

	parent, ok := d.live(node)
	if !ok {
		return nil
	}
	var out []ports.Node
	for _, child := range parent.children {
		if child.matches(m) {
			out = append(out, child)
		}
	}
	return out
}

// live returns n as a node of the current generation. Callers hold mu.
func (d *Desktop) live(n ports.Node) (*Node, bool) {
	node, ok := n.(*Node)
	if !ok || node.desktop != d || node.generation != d.generation {
		return nil, false
	}
	return node, true
}

func (d *Desktop) focus(n *Node) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if n.generation != d.generation {
		return zerr.With(domain.ErrNodeDetached, "name", n.name)
	}
	d.focused = n.name
	return nil
}

func load(path string) ([]window, error) {
	// #nosec G304 -- path comes from the configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDesktopReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDesktopParseFailed.Error()), "path", path)
	}

	seen := make(map[domain.WindowHandle]bool, len(file.Windows))
	windows := make([]window, 0, len(file.Windows))
	for _, dto := range file.Windows {
		handle := domain.WindowHandle(dto.Handle)
		if seen[handle] {
			return nil, zerr.With(domain.ErrDuplicateWindow, "handle", strconv.FormatUint(dto.Handle, 16))
		}
		seen[handle] = true

		root := &Node{class: dto.Class, name: dto.Title}
		for _, child := range dto.Tree {
			root.children = append(root.children, build(child))
		}
		windows = append(windows, window{
			handle:  handle,
			class:   dto.Class,
			title:   dto.Title,
			visible: dto.Visible == nil || *dto.Visible,
			root:    root,
		})
	}
	return windows, nil
}
