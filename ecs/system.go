package ecs

// System is one step of a frame. Systems may declare Query and Singleton
// fields; the Scheduler wires them to its storage on Register. Any other
// fields persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
