package comparator

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	matchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mismatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	invalidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	durationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("202"))
	nameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
)

// Report tallies the outcomes of a run.
type Report struct {
	Matched    int
	Mismatched int
	// Invalid counts inputs rejected for their format, color type or size.
	Invalid int
	Failed  int
}

// Add records one comparison outcome.
func (r *Report) Add(res *Result, err error) {
	switch {
	case err != nil:
		r.Failed++
	case res.State == StateMatch:
		r.Matched++
	case res.State == StateMismatch:
		r.Mismatched++
	default:
		r.Invalid++
	}
}

// Total returns the number of outcomes recorded.
func (r *Report) Total() int {
	return r.Matched + r.Mismatched + r.Invalid + r.Failed
}

// AllMatched reports whether every comparison ended in a match.
func (r *Report) AllMatched() bool {
	return r.Total() == r.Matched
}

// describe renders a one-line, styled summary of a single outcome.
func describe(name string, res *Result, err error) string {
	label := nameStyle.Render(name)
	if err != nil {
		return fmt.Sprintf("%s: %s", label, mismatchStyle.Render(err.Error()))
	}
	switch res.State {
	case StateMatch:
		if res.DifferentPixels > 0 {
			return fmt.Sprintf("%s: %s (%d different pixels tolerated)", label, matchStyle.Render("images are matching"), res.DifferentPixels)
		}
		return fmt.Sprintf("%s: %s", label, matchStyle.Render("images are matching"))
	case StateMismatch:
		return fmt.Sprintf("%s: %s (%d different pixels in %d regions)", label, mismatchStyle.Render("images are not matching"), res.DifferentPixels, len(res.Regions))
	default:
		return fmt.Sprintf("%s: %s", label, invalidStyle.Render(res.State.String()))
	}
}

func (r *Report) String() string {
	return fmt.Sprintf("%s matched, %s mismatched, %s invalid, %s failed",
		matchStyle.Render(fmt.Sprint(r.Matched)),
		mismatchStyle.Render(fmt.Sprint(r.Mismatched)),
		invalidStyle.Render(fmt.Sprint(r.Invalid)),
		mismatchStyle.Render(fmt.Sprint(r.Failed)),
	)
}
