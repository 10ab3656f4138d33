package view

import (
	"fmt"

	"github.com/kurochkinivan/pdf_compressor/internal/bytesize"
	"github.com/kurochkinivan/pdf_compressor/internal/domain"
)

type State string

const (
	StateWorking       State = "working"
	StateDone          State = "done"
	StateNoImprovement State = "no_improvement"
	StateFailed        State = "failed"
)

// View is the presentable form of one item.
type View struct {
	ItemID         string
	BatchID        string
	Label          string
	State          State
	OriginalSize   string
	CompressedSize string
	Savings        string
	DownloadName   string
	Failure        string

	Snapshot domain.ItemSnapshot
}

// Render maps a snapshot to its view. It has no side effects.
func Render(s domain.ItemSnapshot) View {
	v := View{
		ItemID:       s.ID,
		BatchID:      s.BatchID,
		Label:        s.Name,
		State:        StateWorking,
		OriginalSize: bytesize.Format(s.OriginalSize, bytesize.DefaultDecimals),
		Snapshot:     s,
	}

	switch s.Status {
	case domain.StatusSucceeded:
		v.State = StateDone
		if s.SavingsPercent <= 0 {
			v.State = StateNoImprovement
		}

		v.Savings = fmt.Sprintf("%.1f%%", s.SavingsPercent)
		v.DownloadName = domain.CompressedName(s.Name)
		if s.Result != nil {
			v.CompressedSize = bytesize.Format(s.Result.ByteSize, bytesize.DefaultDecimals)
		}

	case domain.StatusFailed:
		v.State = StateFailed
		v.Failure = s.FailureReason
	}

	return v
}

func (v View) IsTerminal() bool {
	return v.State != StateWorking
}

// Line is a one-line text rendering used by the terminal sink.
func (v View) Line() string {
	switch v.State {
	case StateDone:
		return fmt.Sprintf("%s: %s -> %s (saved %s)", v.Label, v.OriginalSize, v.CompressedSize, v.Savings)
	case StateNoImprovement:
		return fmt.Sprintf("%s: %s -> %s (no improvement)", v.Label, v.OriginalSize, v.CompressedSize)
	case StateFailed:
		return fmt.Sprintf("%s: failed: %s", v.Label, v.Failure)
	default:
		return fmt.Sprintf("%s: %s, working", v.Label, v.OriginalSize)
	}
}
