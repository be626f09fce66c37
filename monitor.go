package demflow

// ProgressFunc receives advisory progress updates: an operation label and a
// monotonically increasing integer percentage (0-100). It is invoked only
// when the integer percentage changes and never alters computed results.
type ProgressFunc func(label string, pct int)

type monitor struct {
	f    ProgressFunc
	lbl  string
	last int
}

func newMonitor(f ProgressFunc, lbl string) *monitor {
	return &monitor{f: f, lbl: lbl, last: -1}
}

// update reports the percentage completed after step i of n
func (m *monitor) update(i, n int) {
	if m.f == nil || n < 2 {
		return
	}
	pct := 100 * i / (n - 1)
	if pct > 100 {
		pct = 100
	}
	if pct != m.last {
		m.f(m.lbl, pct)
		m.last = pct
	}
}
