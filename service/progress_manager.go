package service

import (
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/ludo-technologies/simdoc/domain"
)

// ProgressManagerImpl implements the domain.ProgressManager interface
type ProgressManagerImpl struct {
	mu          sync.Mutex
	writer      io.Writer
	progressBar *progressbar.ProgressBar
	interactive bool
	maxValue    int
	description string
}

// NewProgressManager creates a new progress manager writing to stderr
func NewProgressManager() domain.ProgressManager {
	return &ProgressManagerImpl{
		writer:      os.Stderr,
		interactive: IsInteractiveEnvironment(),
	}
}

// NewSilentProgressManager creates a progress manager that never renders
func NewSilentProgressManager() domain.ProgressManager {
	return &ProgressManagerImpl{
		writer:      io.Discard,
		interactive: false,
	}
}

// IsInteractiveEnvironment reports whether stderr is attached to a terminal
func IsInteractiveEnvironment() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// Initialize sets up progress tracking with the maximum value
func (pm *ProgressManagerImpl) Initialize(maxValue int) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.maxValue = maxValue
}

// Start starts the progress bar with the given stage description
func (pm *ProgressManagerImpl) Start(description string) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.description = description
	if pm.interactive {
		pm.progressBar = pm.createProgressBar(description, pm.maxValue)
	}
}

// Complete marks the progress as completed (finishes the progress bar)
func (pm *ProgressManagerImpl) Complete(success bool) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	if pm.progressBar != nil {
		_ = pm.progressBar.Finish()
		pm.progressBar = nil
	}
}

// Update updates the progress
func (pm *ProgressManagerImpl) Update(processed, total int) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	if pm.progressBar == nil && pm.interactive {
		pm.progressBar = pm.createProgressBar(pm.description, total)
	}
	if pm.progressBar != nil {
		_ = pm.progressBar.Set(processed)
	}
}

// SetWriter sets the output writer for progress bars
func (pm *ProgressManagerImpl) SetWriter(writer io.Writer) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.writer = writer
}

// IsInteractive returns true if progress bars should be shown
func (pm *ProgressManagerImpl) IsInteractive() bool {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	return pm.interactive
}

// Close cleans up any resources
func (pm *ProgressManagerImpl) Close() {
	pm.Complete(false)
}

func (pm *ProgressManagerImpl) createProgressBar(description string, maxValue int) *progressbar.ProgressBar {
	if maxValue <= 0 {
		maxValue = -1
	}
	return progressbar.NewOptions(maxValue,
		progressbar.OptionSetWriter(pm.writer),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
