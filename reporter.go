package llmwire

import (
	"io"
	"log/slog"
	"sync"
)

// Status tags a progress notification with its lifecycle phase.
type Status string

const (
	StatusInit    Status = "INIT"
	StatusRunning Status = "RUNNING"
	StatusFinish  Status = "FINISH"
)

// Reporter receives progress notifications while an invocation runs: at most
// one INIT (async calls only, before anything else), zero or more RUNNING
// lines carrying the cumulative text so far (streamed calls only), and
// exactly one FINISH with the final text unless the invocation fails.
// Implementations are called inline from the accumulation loop and must not
// block.
type Reporter interface {
	Report(segment, tag, content string, status Status)
}

// SlogReporter logs one line per notification. It reports lengths, not
// content, so transcripts stay out of the logs.
type SlogReporter struct {
	logger *slog.Logger
}

func NewSlogReporter(logger *slog.Logger) *SlogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogReporter{logger: logger}
}

func (r *SlogReporter) Report(segment, tag, content string, status Status) {
	r.logger.Debug("llm progress",
		"segment", segment,
		"tag", tag,
		"status", string(status),
		"chars", len(content),
	)
}

// WriterReporter renders an invocation progressively to w: each RUNNING
// notification appends the newly arrived suffix, FINISH flushes whatever is
// left and terminates the line. Buffered calls, which only FINISH, come out
// as one line. The reporter tracks a single invocation at a time.
type WriterReporter struct {
	mu      sync.Mutex
	w       io.Writer
	written int
}

func NewWriterReporter(w io.Writer) *WriterReporter {
	return &WriterReporter{w: w}
}

func (r *WriterReporter) Report(segment, tag, content string, status Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch status {
	case StatusInit:
		r.written = 0
	case StatusRunning:
		if len(content) >= r.written {
			io.WriteString(r.w, content[r.written:])
			r.written = len(content)
		}
	case StatusFinish:
		if len(content) > r.written {
			io.WriteString(r.w, content[r.written:])
		}
		io.WriteString(r.w, "\n")
		r.written = 0
	}
}
