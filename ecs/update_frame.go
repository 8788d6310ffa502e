package ecs

import "time"

// UpdateFrame is handed to every system during one scheduler pass.
type UpdateFrame struct {
	// Number is the 1-based index of this pass.
	Number    uint64
	DeltaTime time.Duration
	Commands  *Commands
	Storage   *Storage
}

// Seconds returns the frame delta in seconds, the unit velocities are expressed in.
func (f *UpdateFrame) Seconds() float64 {
	return f.DeltaTime.Seconds()
}

func newUpdateFrame(number uint64, dt time.Duration, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		Number:    number,
		DeltaTime: dt,
		Commands:  newCommands(),
		Storage:   storage,
	}
}
