package view

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// Terminal prints one line per finished item and keeps a batch progress bar below them.
type Terminal struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

func NewTerminal(out io.Writer, total int) *Terminal {
	return &Terminal{
		out: out,
		bar: progressbar.NewOptions(total,
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription("Compressing"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		),
	}
}

func (t *Terminal) OnChange(v View) {
	if !v.IsTerminal() {
		return
	}

	_ = t.bar.Clear()
	fmt.Fprintln(t.out, v.Line())
	_ = t.bar.Add(1)
}

func (t *Terminal) Finish() error {
	if err := t.bar.Finish(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(t.out)
	return err
}
