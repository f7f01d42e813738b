package cli

import (
	"fmt"

	"github.com/evkit/evkit/input"
)

// EventView is the JSON shape of a decoded event, shared by watch --json and
// the websocket stream.
type EventView struct {
	Time  float64 `json:"time"`
	Type  string  `json:"type"`
	Code  string  `json:"code,omitempty"`
	Value int32   `json:"value,omitempty"`
}

// NewEventView flattens an event into its JSON shape.
func NewEventView(ev input.Event) EventView {
	view := EventView{Time: ev.Time.Seconds()}
	switch body := ev.Body.(type) {
	case input.KeyPress:
		view.Type = "key-press"
		view.Code = body.Key.String()
	case input.KeyRelease:
		view.Type = "key-release"
		view.Code = body.Key.String()
	case input.RelativeMove:
		view.Type = "relative-move"
		view.Code = body.Axis.String()
		view.Value = body.Delta
	case input.AbsoluteMove:
		view.Type = "absolute-move"
		view.Code = body.Axis.String()
		view.Value = body.Position
	case input.Flush:
		view.Type = "flush"
	case input.Dropped:
		view.Type = "dropped"
	case input.Other:
		view.Type = "other"
		view.Code = fmt.Sprintf("%s/%d", body.Kind, body.Code)
		view.Value = body.Value
	}
	return view
}

// formatBody renders an event body in the classic evtest style.
func formatBody(body input.EventBody) string {
	switch body := body.(type) {
	case input.KeyPress:
		return fmt.Sprintf("key press   %s", body.Key)
	case input.KeyRelease:
		return fmt.Sprintf("key release %s", body.Key)
	case input.RelativeMove:
		return fmt.Sprintf("rel %-10s %+d", body.Axis, body.Delta)
	case input.AbsoluteMove:
		return fmt.Sprintf("abs %-10s %d", body.Axis, body.Position)
	case input.Flush:
		return "-------------- flush --------------"
	case input.Dropped:
		return "------------- dropped -------------"
	case input.Other:
		return fmt.Sprintf("%s code %d value %d", body.Kind, body.Code, body.Value)
	default:
		return fmt.Sprintf("%v", body)
	}
}
