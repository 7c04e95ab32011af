package paging

import "fmt"

type recordingRenderer struct {
	requests   []TransitionRequest
	indicators []Indicator
	onRequest  func(TransitionRequest)
}

func (r *recordingRenderer) RequestTransition(req TransitionRequest) {
	r.requests = append(r.requests, req)
	if r.onRequest != nil {
		r.onRequest(req)
	}
}

func (r *recordingRenderer) UpdateIndicator(ind Indicator) {
	r.indicators = append(r.indicators, ind)
}

func (r *recordingRenderer) lastIndicator() Indicator {
	if len(r.indicators) == 0 {
		return Indicator{}
	}
	return r.indicators[len(r.indicators)-1]
}

func (r *recordingRenderer) reset() {
	r.requests = nil
	r.indicators = nil
}

// hookLog records show/hide calls across pages in order.
type hookLog struct {
	calls []string
}

func (l *hookLog) count(call string) int {
	n := 0
	for _, c := range l.calls {
		if c == call {
			n++
		}
	}
	return n
}

type recordingPage struct {
	index int
	label string
	log   *hookLog
	panic bool
}

func (p *recordingPage) Label() string { return p.label }

func (p *recordingPage) Show() {
	p.log.calls = append(p.log.calls, fmt.Sprintf("show(%d)", p.index))
	if p.panic {
		panic("show failed")
	}
}

func (p *recordingPage) Hide() {
	p.log.calls = append(p.log.calls, fmt.Sprintf("hide(%d)", p.index))
}

func newPages(n int) ([]Page, *hookLog) {
	log := &hookLog{}
	pages := make([]Page, n)
	for i := range n {
		pages[i] = &recordingPage{index: i, label: fmt.Sprintf("page-%d", i), log: log}
	}
	return pages, log
}

type recordingObserver struct {
	requests []TransitionRequest
	commits  []Commit
	dropped  []error
}

func (o *recordingObserver) OnTransitionRequested(req TransitionRequest) {
	o.requests = append(o.requests, req)
}

func (o *recordingObserver) OnCommitted(c Commit) {
	o.commits = append(o.commits, c)
}

func (o *recordingObserver) OnDropped(_ Event, reason error) {
	o.dropped = append(o.dropped, reason)
}
