// Package debugui renders Dear ImGui windows from ECS entities. Windows are
// ImguiItem components; ImguiSystem defers their render functions to the end
// of the frame so they draw after every gameplay system has run.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/carryloop/ecs"
)

// ImguiItem holds a Dear ImGui render function, called once per frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState mirrors whether ImGui wants the mouse or keyboard this frame.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates ImguiInputState and defers every ImguiItem render.
// It must run between the backend's BeginFrame and EndFrame.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	state := i.InputState.Get()
	state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for item := range i.Items.Values() {
		frame.Commands.Defer(item.ImguiItem.Render)
	}
}

// Install registers the debug components with the scheduler's storage and
// appends ImguiSystem to the run order.
func Install(scheduler *ecs.Scheduler) {
	storage := scheduler.Storage()
	ecs.RegisterComponent[ImguiItem](storage.Registry())
	ecs.NewSingleton[ImguiInputState](storage)
	scheduler.Register(&ImguiSystem{})
}

// KeyboardCaptured reports whether ImGui currently owns the keyboard.
func KeyboardCaptured(storage *ecs.Storage) bool {
	var state *ImguiInputState
	return storage.ReadSingleton(&state) && state.WantCaptureKeyboard
}
