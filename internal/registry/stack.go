package registry

import (
	"sync/atomic"
	"time"

	"github.com/getsentry/scopeprof/internal/nodetree"
)

type frame struct {
	node  nodetree.NodeID
	start time.Time
}

// callStack is the live call path of one goroutine, outermost first. Only its
// owning goroutine touches frames; open may be read from any goroutine.
type callStack struct {
	generation uint64
	frames     []frame
	open       atomic.Int32
}

func (s *callStack) parent() nodetree.NodeID {
	if len(s.frames) == 0 {
		return nodetree.NoParent
	}
	return s.frames[len(s.frames)-1].node
}

// push returns the depth of the stack after the push.
func (s *callStack) push(f frame) int {
	s.frames = append(s.frames, f)
	s.open.Store(int32(len(s.frames)))
	return len(s.frames)
}

func (s *callStack) top() (frame, bool) {
	if len(s.frames) == 0 {
		return frame{}, false
	}
	return s.frames[len(s.frames)-1], true
}

func (s *callStack) pop() {
	s.frames = s.frames[:len(s.frames)-1]
	s.open.Store(int32(len(s.frames)))
}

func (s *callStack) depth() int {
	return len(s.frames)
}
