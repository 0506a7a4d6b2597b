package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"threadtree/coloransi"
	"threadtree/threads"
)

type node struct {
	info     threads.GroupInfo
	parent   *node
	threads  []*threads.ThreadInfo
	children []threads.ThreadGroup
}

func (n *node) Info() threads.GroupInfo        { return n.info }
func (n *node) Threads() []*threads.ThreadInfo { return n.threads }
func (n *node) Groups() []threads.ThreadGroup  { return n.children }
func (n *node) Parent() threads.ThreadGroup {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node) group(info threads.GroupInfo) *node {
	child := &node{info: info, parent: n}
	n.children = append(n.children, child)
	return child
}

func (n *node) thread(t threads.ThreadInfo) *node {
	n.threads = append(n.threads, &t)
	return n
}

// exampleTree is the main/pool tree used throughout the report tests.
func exampleTree() *node {
	root := &node{info: threads.GroupInfo{Name: "main", MaxPriority: 5}}
	root.thread(threads.ThreadInfo{Name: "worker-1", Priority: 5, Alive: true})
	root.group(threads.GroupInfo{Name: "pool", MaxPriority: 5, Daemon: true}).
		thread(threads.ThreadInfo{Name: "worker-2", Priority: 3, Daemon: true, Alive: false})
	return root
}

const exampleReport = `Thread Group: main  Max Priority: 5
    Thread: worker-1  Priority: 5
    Thread Group: pool  Max Priority: 5 Daemon
        Thread: worker-2  Priority: 3 Daemon Not Alive
`

func TestRenderExample(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := New().Render(&buf, exampleTree()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := buf.String(); got != exampleReport {
		t.Errorf("Render() =\n%s\nwant\n%s", got, exampleReport)
	}
}

func TestRenderNilRoot(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := New().Render(&buf, nil); err != nil {
		t.Fatalf("Render(nil) error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Render(nil) wrote %q, want nothing", buf.String())
	}
}

func TestRenderTypedNilRoot(t *testing.T) {
	t.Parallel()

	var root *node
	var buf bytes.Buffer
	if err := New().Render(&buf, root); err != nil {
		t.Fatalf("Render(nil pointer) error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Render(nil pointer) wrote %q, want nothing", buf.String())
	}
}

func TestRenderEmptyGroup(t *testing.T) {
	t.Parallel()

	root := &node{info: threads.GroupInfo{Name: "empty", MaxPriority: 10}}
	got := New().String(root)
	if got != "Thread Group: empty  Max Priority: 10\n" {
		t.Errorf("Render() = %q, want a single group line", got)
	}
}

func TestRenderIndentMatchesDepth(t *testing.T) {
	t.Parallel()

	root := &node{info: threads.GroupInfo{Name: "g0"}}
	cur := root
	for _, name := range []string{"g1", "g2", "g3", "g4"} {
		cur.thread(threads.ThreadInfo{Name: "t-" + cur.info.Name, Alive: true})
		cur = cur.group(threads.GroupInfo{Name: name})
	}

	const unit = "\t"
	out := New(WithIndent(unit)).String(root)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	for _, line := range lines {
		depth := len(line) - len(strings.TrimLeft(line, unit))
		body := strings.TrimLeft(line, unit)
		var want int
		switch {
		case strings.HasPrefix(body, "Thread Group: g"):
			want = int(body[len("Thread Group: g")] - '0')
		case strings.HasPrefix(body, "Thread: t-g"):
			want = int(body[len("Thread: t-g")]-'0') + 1
		default:
			t.Fatalf("unexpected line %q", line)
		}
		if depth != want {
			t.Errorf("line %q has %d indent units, want %d", line, depth, want)
		}
	}
}

func TestRenderMarkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		thread       threads.ThreadInfo
		wantDaemon   bool
		wantNotAlive bool
	}{
		{name: "plain", thread: threads.ThreadInfo{Name: "a", Alive: true}},
		{name: "daemon", thread: threads.ThreadInfo{Name: "b", Daemon: true, Alive: true}, wantDaemon: true},
		{name: "dead", thread: threads.ThreadInfo{Name: "c"}, wantNotAlive: true},
		{name: "dead daemon", thread: threads.ThreadInfo{Name: "d", Daemon: true}, wantDaemon: true, wantNotAlive: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			root := &node{info: threads.GroupInfo{Name: "g"}}
			root.thread(tt.thread)
			lines := strings.Split(New().String(root), "\n")
			line := lines[1]
			if got := strings.Contains(line, " Daemon"); got != tt.wantDaemon {
				t.Errorf("line %q daemon marker = %v, want %v", line, got, tt.wantDaemon)
			}
			if got := strings.Contains(line, " Not Alive"); got != tt.wantNotAlive {
				t.Errorf("line %q not-alive marker = %v, want %v", line, got, tt.wantNotAlive)
			}
		})
	}
}

func TestRenderSkipsNilEntries(t *testing.T) {
	t.Parallel()

	root := &node{info: threads.GroupInfo{Name: "root", MaxPriority: 1}}
	root.threads = []*threads.ThreadInfo{nil, {Name: "kept", Priority: 1, Alive: true}}
	root.children = []threads.ThreadGroup{nil}

	want := "Thread Group: root  Max Priority: 1\n    Thread: kept  Priority: 1\n"
	if got := New().String(root); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderMaxDepth(t *testing.T) {
	t.Parallel()

	want := "Thread Group: main  Max Priority: 5\n    Thread: worker-1  Priority: 5\n"
	if got := New(WithMaxDepth(0)).String(exampleTree()); got != exampleReport {
		t.Errorf("unlimited Render() = %q", got)
	}

	root := exampleTree()
	root.children[0].(*node).group(threads.GroupInfo{Name: "deep", MaxPriority: 1})
	got := New(WithMaxDepth(1)).String(root)
	if !strings.HasPrefix(got, want) || strings.Contains(got, "deep") {
		t.Errorf("Render(depth 1) = %q, want pool but not deep", got)
	}
}

func TestRenderIDsAndColor(t *testing.T) {
	t.Parallel()

	root := &node{info: threads.GroupInfo{ID: 1, Name: "init", MaxPriority: 20}}
	root.thread(threads.ThreadInfo{ID: 7, Name: "t", Priority: 20, Daemon: true})

	got := New(WithIDs(true), WithColor(true)).String(root)
	if !strings.Contains(got, coloransi.Foreground(coloransi.Red, "Not Alive")) {
		t.Errorf("colored Render() missing red marker: %q", got)
	}
	plain := coloransi.Strip(got)
	want := "Thread Group: init [1]  Max Priority: 20\n    Thread: t [7]  Priority: 20 Daemon Not Alive\n"
	if plain != want {
		t.Errorf("stripped Render() = %q, want %q", plain, want)
	}
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after == 0 {
		return 0, errors.New("disk full")
	}
	w.after--
	return len(p), nil
}

func TestRenderWriteError(t *testing.T) {
	t.Parallel()

	err := New().Render(&failingWriter{after: 1}, exampleTree())
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("Render() error = %v, want disk full", err)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	s := New().Summarize(exampleTree())
	want := Summary{
		Groups:          2,
		Threads:         2,
		DaemonThreads:   1,
		NotAlive:        1,
		MaxDepth:        1,
		DaemonGroups:    1,
		HighestPriority: 5,
	}
	if s != want {
		t.Errorf("Summarize() = %+v, want %+v", s, want)
	}
	if got, want := s.String(), "2 groups (1 daemon), 2 threads (1 daemon, 1 not alive), depth 1, highest priority 5"; got != want {
		t.Errorf("Summary.String() = %q", got)
	}
	if got := New().Summarize(nil); got != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero", got)
	}
}
