package usecases

import (
	"context"
	"fmt"

	"fixtrack/internal/domain/notification"
	"fixtrack/internal/domain/repair"
	"fixtrack/internal/domain/shared/events"
	"fixtrack/internal/shared/logger"
)

// RepairEventSubscriber bridges repair domain events into the
// notification fanout. Handlers run on the dispatcher worker after the
// originating request has committed.
type RepairEventSubscriber struct {
	fanout *FanoutService
	logger logger.Interface
}

func NewRepairEventSubscriber(fanout *FanoutService, logger logger.Interface) *RepairEventSubscriber {
	return &RepairEventSubscriber{fanout: fanout, logger: logger}
}

func (s *RepairEventSubscriber) Register(dispatcher events.EventDispatcher) error {
	if err := dispatcher.Subscribe(repair.EventRepairCreated, events.HandlerFunc(s.onCreated)); err != nil {
		return err
	}
	if err := dispatcher.Subscribe(repair.EventRepairUpdated, events.HandlerFunc(s.onUpdated)); err != nil {
		return err
	}
	return dispatcher.Subscribe(repair.EventRepairDeleted, events.HandlerFunc(s.onDeleted))
}

func (s *RepairEventSubscriber) onCreated(event events.DomainEvent) error {
	e, ok := event.(repair.RepairCreatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	msg := FanoutMessage{
		Kind:         notification.KindGeneral,
		Message:      fmt.Sprintf("New repair #%d received", e.RepairNumber),
		RepairID:     e.RepairID,
		RepairNumber: e.RepairNumber,
		TechnicianID: e.TechnicianID,
	}
	if e.TechnicianID != nil {
		msg.Kind = notification.KindAssignment
		msg.Message = fmt.Sprintf("Repair #%d assigned to you", e.RepairNumber)
	}
	return s.fanout.Fanout(context.Background(), msg)
}

func (s *RepairEventSubscriber) onUpdated(event events.DomainEvent) error {
	e, ok := event.(repair.RepairUpdatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	msg := FanoutMessage{
		Kind:         notification.KindGeneral,
		Message:      fmt.Sprintf("Repair #%d was updated", e.RepairNumber),
		RepairID:     e.RepairID,
		RepairNumber: e.RepairNumber,
		TechnicianID: e.TechnicianID,
	}
	if e.StatusChange {
		msg.Kind = notification.KindStatusChange
		msg.Message = fmt.Sprintf("Repair #%d moved from %s to %s", e.RepairNumber, e.OldStatus, e.NewStatus)
	}
	return s.fanout.Fanout(context.Background(), msg)
}

func (s *RepairEventSubscriber) onDeleted(event events.DomainEvent) error {
	e, ok := event.(repair.RepairDeletedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	return s.fanout.Fanout(context.Background(), FanoutMessage{
		Kind:         notification.KindGeneral,
		Message:      fmt.Sprintf("Repair #%d was deleted", e.RepairNumber),
		RepairID:     e.RepairID,
		RepairNumber: e.RepairNumber,
	})
}
