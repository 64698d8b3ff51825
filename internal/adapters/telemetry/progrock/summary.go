package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
)

type stepStatus int

const (
	statusRunning stepStatus = iota
	statusCompleted
	statusFailed
)

func (s stepStatus) icon() string {
	switch s {
	case statusCompleted:
		return "✓"
	case statusFailed:
		return "✗"
	default:
		return "…"
	}
}

type stepState struct {
	id     string
	name   string
	status stepStatus
}

// Summary is a progrock.Writer that tracks vertex states and prints one line
// per step when closed.
type Summary struct {
	out io.Writer

	mu    sync.Mutex
	steps []stepState
}

// NewSummary creates a Summary printing to out.
func NewSummary(out io.Writer) *Summary {
	return &Summary{out: out}
}

// WriteStatus records the vertex updates.
func (s *Summary) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range update.Vertexes {
		s.updateOrAdd(v)
	}
	return nil
}

func (s *Summary) updateOrAdd(v *progrock.Vertex) {
	status := statusRunning
	if v.Completed != nil {
		status = statusCompleted
		if v.Error != nil {
			status = statusFailed
		}
	}

	for i := range s.steps {
		if s.steps[i].id == v.Id {
			s.steps[i].status = status
			return
		}
	}
	s.steps = append(s.steps, stepState{id: v.Id, name: v.Name, status: status})
}

// Close prints the summary. Nothing is printed when no step was recorded.
func (s *Summary) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.steps) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(s.out, "Steps:"); err != nil {
		return err
	}
	for _, step := range s.steps {
		if _, err := fmt.Fprintf(s.out, "  %s %s\n", step.status.icon(), step.name); err != nil {
			return err
		}
	}
	s.steps = nil
	return nil
}
