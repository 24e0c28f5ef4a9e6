package doctree

import (
	"strings"
	"testing"
)

func TestFragmentRender(t *testing.T) {
	f := Fragment("plain text\nwith two lines")
	if got := f.Render(); got != "plain text\nwith two lines" {
		t.Errorf("Fragment.Render() = %q", got)
	}
}

func TestFileNodeRender(t *testing.T) {
	n := &FileNode{}
	n.AddText([]string{"First block line one.", "First block line two."})
	n.AddText(nil)
	n.AddText([]string{"Second block."})

	want := "First block line one.\nFirst block line two.\n\n\n\nSecond block."
	if got := n.Render(); got != want {
		t.Errorf("FileNode.Render() = %q, want %q", got, want)
	}
}

func TestModuleNodeRender(t *testing.T) {
	m := NewModuleNode("game/input")
	m.AddText([]string{"Module body."})

	want := "game/input\n==========\nModule body."
	if got := m.Render(); got != want {
		t.Errorf("ModuleNode.Render() = %q, want %q", got, want)
	}
}

func TestClassNodeRender(t *testing.T) {
	m := NewModuleNode("game")
	c := NewClassNode(m, "Progress")
	c.SetArguments("current, total")
	c.AddText([]string{"The Progress class holds progress of a certain action."})

	want := strings.Join([]string{
		".. index::",
		"   single: game; Progress",
		"",
		".. class:: Progress(current, total)",
		"   :noindex:",
		"",
		"   The Progress class holds progress of a certain action.",
	}, "\n")
	if got := c.Render(); got != want {
		t.Errorf("ClassNode.Render() =\n%s\nwant:\n%s", got, want)
	}
}

func TestClassNodeRender_NoConstructor(t *testing.T) {
	m := NewModuleNode("game")
	c := NewClassNode(m, "Foo")
	c.AddText([]string{"Doc"})

	if got := c.Render(); !strings.Contains(got, ".. class:: Foo()\n") {
		t.Errorf("expected empty argument list, got:\n%s", got)
	}
}

func TestClassNodeSetArgumentsOnce(t *testing.T) {
	m := NewModuleNode("game")
	c := NewClassNode(m, "Foo")
	c.SetArguments("a, b")
	c.SetArguments("x")

	if got := c.Render(); !strings.Contains(got, ".. class:: Foo(a, b)\n") {
		t.Errorf("second SetArguments call should not win, got:\n%s", got)
	}
}

func TestClassNodeRender_NestedMembers(t *testing.T) {
	m := NewModuleNode("game")
	c := NewClassNode(m, "Progress")
	c.SetArguments("a, b")
	c.AddText([]string{"The Progress class."})

	method := NewMethodNode(c, "report(current, total)")
	method.AddText([]string{"Reports the progress."})
	c.Add(method)

	attr := NewAttributeNode(c, "started")
	attr.AddText([]string{"``true`` once started."})
	c.Add(attr)

	want := strings.Join([]string{
		".. index::",
		"   single: game; Progress",
		"",
		".. class:: Progress(a, b)",
		"   :noindex:",
		"",
		"   The Progress class.",
		"   ",
		"   .. index::",
		"      single: game; Progress#report(current, total)",
		"   ",
		"   .. function:: report(current, total)",
		"      :noindex:",
		"   ",
		"      Reports the progress.",
		"   ",
		"   .. index::",
		"      single: game; Progress#started",
		"   ",
		"   .. attribute:: started",
		"      :noindex:",
		"   ",
		"      ``true`` once started.",
	}, "\n")
	if got := c.Render(); got != want {
		t.Errorf("nested render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestDataNodeRender(t *testing.T) {
	m := NewModuleNode("scene-manager")
	d := NewDataNode(m, "instance")
	d.AddText([]string{"The global SceneManager instance."})

	want := strings.Join([]string{
		".. index::",
		"   single: scene-manager; instance",
		"",
		".. data:: instance",
		"   :noindex:",
		"",
		"   The global SceneManager instance.",
	}, "\n")
	if got := d.Render(); got != want {
		t.Errorf("DataNode.Render() =\n%s\nwant:\n%s", got, want)
	}
}

func TestDomainRender_EmptyBody(t *testing.T) {
	m := NewModuleNode("m")
	c := NewClassNode(m, "C")
	c.AddText([]string{""})

	want := ".. index::\n   single: m; C\n\n.. class:: C()\n   :noindex:\n\n"
	if got := c.Render(); got != want {
		t.Errorf("empty body render = %q, want %q", got, want)
	}
}

func TestDomainRender_BlankCommentLinesKeepMargin(t *testing.T) {
	m := NewModuleNode("m")
	c := NewClassNode(m, "C")
	c.AddText([]string{"", ""})

	if got := c.Render(); !strings.HasSuffix(got, ":noindex:\n\n   ") {
		t.Errorf("blank body lines should carry the margin, got %q", got)
	}
}

func TestIndexLabels(t *testing.T) {
	m := NewModuleNode("game/input")
	c := NewClassNode(m, "Input")
	method := NewMethodNode(c, "poll()")
	attr := NewAttributeNode(c, "devices")
	d := NewDataNode(m, "defaultMapping")

	tests := []struct {
		got  string
		want string
	}{
		{c.IndexLabel(), "game/input; Input"},
		{method.IndexLabel(), "game/input; Input#poll()"},
		{attr.IndexLabel(), "game/input; Input#devices"},
		{d.IndexLabel(), "game/input; defaultMapping"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("index label = %q, want %q", tt.got, tt.want)
		}
	}
}
