// Package runnertest provides a scripted runner.Runner for tests.
package runnertest

import (
	"context"
	"sync"

	"github.com/conn-castle/wp-proxy/internal/runner"
)

// Reply is a scripted response to one invocation.
type Reply struct {
	Result runner.Result
	Err    error
}

// Recorder records every invocation and answers from a script keyed by program name.
// Programs without a script exit 0.
type Recorder struct {
	mu      sync.Mutex
	calls   []runner.Command
	replies map[string][]Reply
}

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{replies: make(map[string][]Reply)}
}

// On queues replies for name. The last reply repeats once the queue is drained.
func (r *Recorder) On(name string, replies ...Reply) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.replies == nil {
		r.replies = make(map[string][]Reply)
	}
	r.replies[name] = append(r.replies[name], replies...)
	return r
}

// Exit queues a reply with the given exit code for name.
func (r *Recorder) Exit(name string, code int) *Recorder {
	return r.On(name, Reply{Result: runner.Result{ExitCode: code}})
}

// Fail queues a start failure for name.
func (r *Recorder) Fail(name string, err error) *Recorder {
	return r.On(name, Reply{Result: runner.Result{ExitCode: -1}, Err: err})
}

// Run records cmd and returns the next scripted reply.
func (r *Recorder) Run(_ context.Context, cmd runner.Command) (runner.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, runner.Command{Name: cmd.Name, Args: append([]string(nil), cmd.Args...)})
	queue := r.replies[cmd.Name]
	if len(queue) == 0 {
		return runner.Result{}, nil
	}
	reply := queue[0]
	if len(queue) > 1 {
		r.replies[cmd.Name] = queue[1:]
	}
	return reply.Result, reply.Err
}

// Calls returns a copy of the recorded invocations in order.
func (r *Recorder) Calls() []runner.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]runner.Command(nil), r.calls...)
}

// CallsTo returns the recorded invocations of name.
func (r *Recorder) CallsTo(name string) []runner.Command {
	var out []runner.Command
	for _, c := range r.Calls() {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}
