package live

import (
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"freetext/internal/site"
)

// Controller runs the live UI and implements site.BuildObserver.
type Controller struct {
	events    chan Event
	program   *tea.Program
	done      chan struct{}
	closeOnce sync.Once
}

// Start launches a live UI controller that writes to stdout.
func Start(stdout io.Writer, opts Options) *Controller {
	if stdout == nil {
		stdout = os.Stdout
	}
	events := make(chan Event, 256)
	model := NewModel(events, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	controller := &Controller{
		events:  events,
		program: program,
		done:    make(chan struct{}),
	}
	go func() {
		_, _ = program.Run()
		close(controller.done)
	}()
	return controller
}

// Close signals the UI to stop.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.closeOnce.Do(func() {
		close(c.events)
	})
}

// Wait blocks until the UI has exited.
func (c *Controller) Wait() {
	if c == nil {
		return
	}
	<-c.done
}

// OnBuildStart forwards the page count to the UI.
func (c *Controller) OnBuildStart(pages int) {
	c.send(Event{Kind: EventBuildStart, At: time.Now(), Pages: pages})
}

// OnPageStart forwards a page start to the UI.
func (c *Controller) OnPageStart(page string) {
	c.send(Event{Kind: EventPageStart, At: time.Now(), Page: page})
}

// OnPageDone forwards a finished page result to the UI.
func (c *Controller) OnPageDone(result site.PageBuild) {
	c.send(Event{Kind: EventPageDone, At: time.Now(), Result: result})
}

// OnBuildEnd forwards the build summary to the UI and closes it.
func (c *Controller) OnBuildEnd(summary site.Summary) {
	c.send(Event{Kind: EventBuildEnd, At: time.Now(), Summary: summary})
	c.Close()
}

// send enqueues an event without blocking the caller.
func (c *Controller) send(event Event) {
	if c == nil {
		return
	}
	select {
	case c.events <- event:
	default:
	}
}
