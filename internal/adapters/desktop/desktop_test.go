package desktop_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/edgetabs/internal/adapters/desktop"
	"go.trai.ch/edgetabs/internal/core/domain"
	"go.trai.ch/edgetabs/internal/core/ports"
)

var filter = domain.DefaultConfig().Windows

func open(t *testing.T) *desktop.Desktop {
	t.Helper()
	d, err := desktop.Open(filepath.Join("testdata", "desktop.yaml"), filter)
	require.NoError(t, err)
	return d
}

func names(nodes []ports.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name()
	}
	return out
}

func TestDesktop_Enumerate(t *testing.T) {
	d := open(t)

	handles, err := d.Enumerate(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []domain.WindowHandle{0x1001, 0x1002}, handles)
}

func TestDesktop_Enumerate_CustomFilter(t *testing.T) {
	d, err := desktop.Open(filepath.Join("testdata", "desktop.yaml"), domain.WindowFilter{Class: "Notepad"})
	require.NoError(t, err)

	handles, err := d.Enumerate(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []domain.WindowHandle{0x2003}, handles)
}

func TestDesktop_FindChain(t *testing.T) {
	d := open(t)

	root, ok := d.Root(0x1001)
	require.True(t, ok)
	assert.Equal(t, "News - Microsoft​ Edge", root.Name())

	browser, ok := d.FindChain(root, domain.BrowserViewChain)
	require.True(t, ok)
	top, ok := d.FindChain(browser, domain.TopContainerChain)
	require.True(t, ok)
	container, ok := d.FindChain(top, domain.HorizontalTabsChain)
	require.True(t, ok)

	assert.Equal(t, []string{"News", "Weather"}, names(d.FindChildren(container, domain.TabItem)))

	_, ok = d.FindChain(browser, domain.SideContainerChain)
	assert.False(t, ok)

	_, ok = d.Root(0x9999)
	assert.False(t, ok)
}

func TestDesktop_FlakyNode(t *testing.T) {
	d := open(t)

	root, _ := d.Root(0x1002)
	browser, ok := d.FindChain(root, domain.BrowserViewChain)
	require.True(t, ok)

	_, ok = d.FindChain(browser, domain.SideContainerChain)
	assert.False(t, ok, "first lookup fails")

	side, ok := d.FindChain(browser, domain.SideContainerChain)
	require.True(t, ok, "second lookup succeeds")

	container, ok := d.FindChain(side, domain.VerticalTabsChain)
	require.True(t, ok)
	assert.Equal(t, []string{"Mail"}, names(d.FindChildren(container, domain.TabItem)))

	view, ok := d.FindChain(container, domain.OverflowTabsChain)
	require.True(t, ok)
	assert.Equal(t, []string{"Docs"}, names(d.FindChildren(view, domain.TabItem)))
}

func TestDesktop_Activate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "desktop.yaml")
	content, err := os.ReadFile(filepath.Join("testdata", "desktop.yaml"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	d, err := desktop.Open(path, filter)
	require.NoError(t, err)

	_, ok := d.Focused()
	assert.False(t, ok)

	root, _ := d.Root(0x1001)
	browser, _ := d.FindChain(root, domain.BrowserViewChain)
	top, _ := d.FindChain(browser, domain.TopContainerChain)
	container, _ := d.FindChain(top, domain.HorizontalTabsChain)
	tabs := d.FindChildren(container, domain.TabItem)
	require.Len(t, tabs, 2)

	require.NoError(t, tabs[1].Activate())
	focused, ok := d.Focused()
	require.True(t, ok)
	assert.Equal(t, "Weather", focused)

	require.NoError(t, d.Reload())

	err = tabs[0].Activate()
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrNodeDetached.Error())

	_, ok = d.FindChain(browser, domain.TopContainerChain)
	assert.False(t, ok, "detached nodes cannot be searched")
	assert.Nil(t, d.FindChildren(container, domain.TabItem))
}

func TestDesktop_ReloadFailureKeepsSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "desktop.yaml")
	content, err := os.ReadFile(filepath.Join("testdata", "desktop.yaml"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	d, err := desktop.Open(path, filter)
	require.NoError(t, err)
	root, _ := d.Root(0x1001)

	require.NoError(t, os.WriteFile(path, []byte("windows: [broken"), 0o600))
	err = d.Reload()
	assert.ErrorContains(t, err, domain.ErrDesktopParseFailed.Error())

	_, ok := d.FindChain(root, domain.BrowserViewChain)
	assert.True(t, ok, "previous snapshot still served")
}

func TestOpen_Errors(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		_, err := desktop.Open("", filter)
		assert.ErrorIs(t, err, domain.ErrDesktopNotConfigured)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := desktop.Open(filepath.Join(t.TempDir(), "absent.yaml"), filter)
		assert.ErrorContains(t, err, domain.ErrDesktopReadFailed.Error())
	})

	t.Run("duplicate handle", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "desktop.yaml")
		require.NoError(t, os.WriteFile(path, []byte("windows:\n  - handle: 1\n  - handle: 1\n"), 0o600))
		_, err := desktop.Open(path, filter)
		assert.ErrorContains(t, err, domain.ErrDuplicateWindow.Error())
	})
}
