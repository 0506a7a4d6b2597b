package report

import (
	"fmt"
	"strings"

	"threadtree/coloransi"
	"threadtree/threads"
)

const (
	daemonMarker   = "Daemon"
	notAliveMarker = "Not Alive"
)

func (r *Reporter) groupLine(g threads.GroupInfo) string {
	var b strings.Builder
	b.WriteString("Thread Group: ")
	b.WriteString(r.groupName(g))
	fmt.Fprintf(&b, "  Max Priority: %d", g.MaxPriority)
	if g.Daemon {
		b.WriteString(" " + r.marker(coloransi.Yellow, daemonMarker))
	}
	return b.String()
}

func (r *Reporter) threadLine(t threads.ThreadInfo) string {
	var b strings.Builder
	b.WriteString("Thread: ")
	b.WriteString(r.name(t.Name, t.ID))
	fmt.Fprintf(&b, "  Priority: %d", t.Priority)
	if t.Daemon {
		b.WriteString(" " + r.marker(coloransi.Yellow, daemonMarker))
	}
	if !t.Alive {
		b.WriteString(" " + r.marker(coloransi.Red, notAliveMarker))
	}
	return b.String()
}

func (r *Reporter) groupName(g threads.GroupInfo) string {
	name := r.name(g.Name, g.ID)
	if !r.color {
		return name
	}
	return coloransi.Styled(coloransi.ColorFrom(uint64(g.ID)), coloransi.Bold, name)
}

func (r *Reporter) name(name string, id int) string {
	if r.showIDs && id != 0 {
		return fmt.Sprintf("%s [%d]", name, id)
	}
	return name
}

func (r *Reporter) marker(color coloransi.ColorCode, text string) string {
	if !r.color {
		return text
	}
	return coloransi.Foreground(color, text)
}
