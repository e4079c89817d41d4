package utils

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
)

var sp = spinner.New(spinner.CharSets[14], 100*time.Millisecond)

func DrawBanner() {
	banner := figure.NewFigure("aws finlens", "", true)
	banner.Print()
}

func StartSpinner() {
	sp.Suffix = " Fetching cost data..."
	sp.Start()
}

func StopSpinner() {
	sp.Stop()
}
