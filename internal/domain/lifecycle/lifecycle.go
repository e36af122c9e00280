// Package lifecycle holds the request and work-order state machines.
//
// The machines are only used to answer "which source states allow this event";
// the answer becomes the condition of the store write, so the store stays the
// single arbiter when technicians act concurrently.
package lifecycle

import (
	"fmt"

	"fieldservice/internal/domain/entities"

	"github.com/looplab/fsm"
)

const (
	RequestEventStartInspection = "start_inspection"
	RequestEventComplete        = "complete"
	RequestEventRequireParts    = "require_parts"
	RequestEventOrder           = "order"
)

const (
	WorkOrderEventInspect     = "inspect"
	WorkOrderEventMarkGood    = "mark_good"
	WorkOrderEventMarkReplace = "mark_replace"
)

// Requests may still be CRT when a technician submits a result without
// inspecting first, so the completion events accept it too.
var openRequestStates = []string{
	string(entities.RequestStatusCreated),
	string(entities.RequestStatusPending),
	string(entities.RequestStatusInProgress),
}

var requestEvents = fsm.Events{
	{Name: RequestEventStartInspection, Src: openRequestStates, Dst: string(entities.RequestStatusInProgress)},
	{Name: RequestEventComplete, Src: openRequestStates, Dst: string(entities.RequestStatusCompleted)},
	{Name: RequestEventRequireParts, Src: openRequestStates, Dst: string(entities.RequestStatusInspectionCompleted)},
	{Name: RequestEventOrder, Src: []string{string(entities.RequestStatusInspectionCompleted)}, Dst: string(entities.RequestStatusOrdered)},
}

var openWorkOrderStates = []string{
	string(entities.WorkOrderStatusPending),
	string(entities.WorkOrderStatusInProgress),
}

var workOrderEvents = fsm.Events{
	{Name: WorkOrderEventInspect, Src: openWorkOrderStates, Dst: string(entities.WorkOrderStatusInProgress)},
	{Name: WorkOrderEventMarkGood, Src: openWorkOrderStates, Dst: string(entities.WorkOrderStatusGood)},
	{Name: WorkOrderEventMarkReplace, Src: openWorkOrderStates, Dst: string(entities.WorkOrderStatusReplace)},
}

// NewRequestMachine returns a request state machine positioned at current.
func NewRequestMachine(current entities.RequestStatus) *fsm.FSM {
	return fsm.NewFSM(string(current), requestEvents, fsm.Callbacks{})
}

// NewWorkOrderMachine returns a work-order state machine positioned at current.
func NewWorkOrderMachine(current entities.WorkOrderStatus) *fsm.FSM {
	return fsm.NewFSM(string(current), workOrderEvents, fsm.Callbacks{})
}

// CanRequest reports whether event is allowed from the given request status.
func CanRequest(current entities.RequestStatus, event string) bool {
	return NewRequestMachine(current).Can(event)
}

// RequestTransitionFor builds the conditional write for a request event.
func RequestTransitionFor(event string) (entities.RequestTransition, error) {
	desc, err := find(requestEvents, event)
	if err != nil {
		return entities.RequestTransition{}, err
	}
	from := make([]entities.RequestStatus, 0, len(desc.Src))
	for _, s := range desc.Src {
		from = append(from, entities.RequestStatus(s))
	}
	return entities.RequestTransition{From: from, To: entities.RequestStatus(desc.Dst)}, nil
}

// WorkOrderEventFor maps a target work-order status to the event that produces it.
func WorkOrderEventFor(status entities.WorkOrderStatus) (string, bool) {
	for _, e := range workOrderEvents {
		if e.Dst == string(status) {
			return e.Name, true
		}
	}
	return "", false
}

// WorkOrderSources lists the statuses a work order may move to status from.
func WorkOrderSources(status entities.WorkOrderStatus) []entities.WorkOrderStatus {
	event, ok := WorkOrderEventFor(status)
	if !ok {
		return nil
	}
	desc, _ := find(workOrderEvents, event)
	out := make([]entities.WorkOrderStatus, 0, len(desc.Src))
	for _, s := range desc.Src {
		out = append(out, entities.WorkOrderStatus(s))
	}
	return out
}

// CanWorkOrder reports whether a work order at current may move to target.
func CanWorkOrder(current, target entities.WorkOrderStatus) bool {
	event, ok := WorkOrderEventFor(target)
	if !ok {
		return false
	}
	return NewWorkOrderMachine(current).Can(event)
}

func find(events fsm.Events, name string) (fsm.EventDesc, error) {
	for _, e := range events {
		if e.Name == name {
			return e, nil
		}
	}
	return fsm.EventDesc{}, fmt.Errorf("unknown lifecycle event %q", name)
}
