// Package importbar provides a really simple progress bar for the
// CSV import command of the shell.
package importbar

import (
	"github.com/schollz/progressbar/v3"
)

type progressBar struct {
	pb *progressbar.ProgressBar
}

func NewBar(description string, maxItems int) *progressBar {
	pb := progressbar.Default(int64(maxItems), description)
	_ = pb.Set(0)

	return &progressBar{
		pb: pb,
	}
}

func (p *progressBar) Add(items int) {
	_ = p.pb.Add(items)
}

func (p *progressBar) Finish() {
	_ = p.pb.Finish()
	_ = p.pb.Close()
}
