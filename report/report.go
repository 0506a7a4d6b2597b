package report

import (
	"fmt"
	"io"
	"strings"

	"threadtree/threads"
)

// DefaultIndent is the indent unit used for each level of the tree
const DefaultIndent = "    "

// Reporter renders thread group trees as indented text.
// The zero value is not usable; create one with New.
type Reporter struct {
	indent   string
	maxDepth int
	showIDs  bool
	color    bool
}

// Option configures a Reporter
type Option func(*Reporter)

// WithIndent sets the string repeated once per depth level
func WithIndent(unit string) Option {
	return func(r *Reporter) {
		r.indent = unit
	}
}

// WithMaxDepth omits groups nested deeper than n below the starting group.
// Zero or a negative value means no limit.
func WithMaxDepth(n int) Option {
	return func(r *Reporter) {
		r.maxDepth = n
	}
}

// WithIDs appends host identifiers to names when they are known
func WithIDs(show bool) Option {
	return func(r *Reporter) {
		r.showIDs = show
	}
}

// WithColor enables ANSI colors for names and markers
func WithColor(color bool) Option {
	return func(r *Reporter) {
		r.color = color
	}
}

// New creates a Reporter with the default four-space indent
func New(opts ...Option) *Reporter {
	r := &Reporter{indent: DefaultIndent}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes one line per group and thread beneath root, depth-first.
//
// A nil root writes nothing. Groups and threads that disappear while the
// tree is being read are skipped. The only error returned is a write
// failure on w, which aborts the report.
func (r *Reporter) Render(w io.Writer, root threads.ThreadGroup) error {
	v := threads.VisitorFuncs{
		Group: func(depth int, g threads.ThreadGroup) error {
			if r.tooDeep(depth) {
				return threads.SkipGroup
			}
			return r.writeLine(w, depth, r.groupLine(g.Info()))
		},
		Thread: func(depth int, t *threads.ThreadInfo) error {
			return r.writeLine(w, depth+1, r.threadLine(*t))
		},
	}
	return threads.Walk(root, v)
}

// String renders root into a string
func (r *Reporter) String(root threads.ThreadGroup) string {
	var b strings.Builder
	// strings.Builder never fails to write
	_ = r.Render(&b, root)
	return b.String()
}

func (r *Reporter) tooDeep(depth int) bool {
	return r.maxDepth > 0 && depth > r.maxDepth
}

func (r *Reporter) writeLine(w io.Writer, depth int, line string) error {
	if _, err := fmt.Fprintln(w, strings.Repeat(r.indent, depth)+line); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
