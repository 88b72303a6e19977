package app

import (
	"os"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2/data/binding"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const logDebounceInterval = 150 * time.Millisecond

// logPane buffers log output into a string binding for the UI log
// view. Refreshes are debounced so bursts of log lines do not hammer
// the widget.
type logPane struct {
	mu    sync.Mutex
	lines []string
	limit int
	bind  binding.String
	ch    chan struct{}
}

func newLogPane(limit int) *logPane {
	p := &logPane{
		limit: limit,
		bind:  binding.NewString(),
		ch:    make(chan struct{}, 1),
	}
	go p.updateLoop()
	return p
}

func (p *logPane) Write(b []byte) (int, error) {
	text := strings.ReplaceAll(string(b), "\r\n", "\n")

	p.mu.Lock()
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		p.lines = append(p.lines, line)
	}
	if len(p.lines) > p.limit {
		p.lines = p.lines[len(p.lines)-p.limit:]
	}
	p.mu.Unlock()

	select {
	case p.ch <- struct{}{}:
	default:
	}
	return len(b), nil
}

func (p *logPane) Sync() error {
	p.flush()
	return nil
}

func (p *logPane) updateLoop() {
	timer := time.NewTimer(logDebounceInterval)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case <-p.ch:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(logDebounceInterval)
		case <-timer.C:
			p.flush()
		}
	}
}

func (p *logPane) flush() {
	p.mu.Lock()
	text := strings.Join(p.lines, "\n")
	p.mu.Unlock()
	_ = p.bind.Set(text)
}

// newLogger builds the application logger: console output to stderr
// plus the in-window log pane.
func newLogger(pane *logPane) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.NewMultiWriteSyncer(zapcore.Lock(os.Stderr), pane),
		zapcore.InfoLevel,
	)
	return zap.New(core)
}
