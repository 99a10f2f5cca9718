package progress

import (
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/minio/pkg/console"
)

// ProgressBar wrapper structure
type ProgressBar struct {
	*pb.ProgressBar
}

// NewProgressBar - instantiate a request-counting progress bar.
func NewProgressBar(total int64) *ProgressBar {
	// Progress bar specific theme customization.
	console.SetColor("Bar", color.New(color.FgGreen, color.Bold))

	bar := pb.New64(total)
	bar.SetRefreshRate(time.Millisecond * 125)
	bar.SetTemplateString(`{{counters . }} {{bar . }} {{percent . }} {{speed . }}`)
	bar.Start()

	return &ProgressBar{ProgressBar: bar}
}

// NewTimerBar - instantiate an elapsed-seconds bar against a time budget.
// The caller ticks it once per second; it counts seconds, not requests.
func NewTimerBar(totalSeconds int64) *ProgressBar {
	console.SetColor("Bar", color.New(color.FgCyan, color.Bold))

	bar := pb.New64(totalSeconds)
	bar.SetRefreshRate(time.Second)
	bar.SetTemplateString(`{{counters . }}s {{bar . }} {{percent . }}`)
	bar.Start()

	return &ProgressBar{ProgressBar: bar}
}

// SetCaption sets the caption of the progress bar.
func (p *ProgressBar) SetCaption(caption string) *ProgressBar {
	p.ProgressBar.Set("prefix", caption)
	return p
}
