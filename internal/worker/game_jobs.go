package worker

import "context"

// Ticker advances the game simulation by one tick
type Ticker interface {
	Tick(ctx context.Context)
}

// Autosaver requests a save of the current game state
type Autosaver interface {
	Autosave(ctx context.Context)
}

// TickJob drives the periodic simulation tick
type TickJob struct {
	ticker Ticker
}

// NewTickJob creates a tick job
func NewTickJob(ticker Ticker) *TickJob {
	return &TickJob{ticker: ticker}
}

// Process runs one tick
func (j *TickJob) Process(ctx context.Context) error {
	j.ticker.Tick(ctx)
	return nil
}

// AutosaveJob periodically snapshots the game
type AutosaveJob struct {
	saver Autosaver
}

// NewAutosaveJob creates an autosave job
func NewAutosaveJob(saver Autosaver) *AutosaveJob {
	return &AutosaveJob{saver: saver}
}

// Process requests a save
func (j *AutosaveJob) Process(ctx context.Context) error {
	j.saver.Autosave(ctx)
	return nil
}
