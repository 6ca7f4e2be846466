package leave

import (
	"context"
	"fmt"
	"time"

	"go-hrms/internal/domain"
	"go-hrms/internal/employee"
	"go-hrms/internal/notification"

	"gorm.io/gorm"
)

const entityLeaveRequest = "leave_request"

func describe(l *LeaveRequest) string {
	if l.StartDate.Equal(l.EndDate) {
		return fmt.Sprintf("%s on %s (%s day)", l.LeaveType, l.StartDate.Format(time.DateOnly), l.DaysCount)
	}
	return fmt.Sprintf("%s from %s to %s (%s days)",
		l.LeaveType,
		l.StartDate.Format(time.DateOnly),
		l.EndDate.Format(time.DateOnly),
		l.DaysCount,
	)
}

func leaveMeta(l *LeaveRequest) map[string]any {
	return map[string]any{
		"leave_type": l.LeaveType,
		"status":     string(l.Status),
		"days_count": l.DaysCount.String(),
	}
}

// notifyApplied tells HR and the direct manager about a self application,
// or the employee about one HR filed on their behalf.
func (s *service) notifyApplied(ctx context.Context, tx *gorm.DB, empl employee.Employee, l *LeaveRequest, onBehalf bool) error {
	if onBehalf {
		return s.notifier.Notify(ctx, tx, notification.Message{
			EmployeeID: empl.ID.String(),
			Type:       notification.TypeLeaveApproved,
			Title:      "Leave recorded by HR",
			Body:       describe(l) + " was recorded and approved for you.",
			EntityType: entityLeaveRequest,
			EntityID:   l.ID.String(),
			Meta:       leaveMeta(l),
		})
	}

	body := fmt.Sprintf("%s applied for %s.", empl.FullName(), describe(l))
	msgs := []notification.Message{{
		Role:       string(domain.RoleHR),
		Type:       notification.TypeLeaveApplied,
		Title:      "New leave request",
		Body:       body,
		EntityType: entityLeaveRequest,
		EntityID:   l.ID.String(),
		Meta:       leaveMeta(l),
	}}
	if managerID := empl.ManagerIDString(); managerID != "" {
		msgs = append(msgs, notification.Message{
			EmployeeID: managerID,
			Type:       notification.TypeLeaveApplied,
			Title:      "Leave request from your team",
			Body:       body,
			EntityType: entityLeaveRequest,
			EntityID:   l.ID.String(),
			Meta:       leaveMeta(l),
		})
	}
	return s.notifier.Notify(ctx, tx, msgs...)
}

func (s *service) notifyDecided(ctx context.Context, tx *gorm.DB, l *LeaveRequest) error {
	typ, title := notification.TypeLeaveApproved, "Leave approved"
	if l.Status == StatusRejected {
		typ, title = notification.TypeLeaveRejected, "Leave rejected"
	}
	body := describe(l) + " was " + string(l.Status) + "."
	if l.DecisionNote != "" {
		body += " Note: " + l.DecisionNote
	}
	return s.notifier.Notify(ctx, tx, notification.Message{
		EmployeeID: l.EmployeeID.String(),
		Type:       typ,
		Title:      title,
		Body:       body,
		EntityType: entityLeaveRequest,
		EntityID:   l.ID.String(),
		Meta:       leaveMeta(l),
	})
}

func (s *service) notifyCancelled(ctx context.Context, tx *gorm.DB, empl employee.Employee, l *LeaveRequest) error {
	managerID := empl.ManagerIDString()
	if managerID == "" {
		return nil
	}
	return s.notifier.Notify(ctx, tx, notification.Message{
		EmployeeID: managerID,
		Type:       notification.TypeLeaveCancelled,
		Title:      "Leave request cancelled",
		Body:       fmt.Sprintf("%s cancelled %s.", empl.FullName(), describe(l)),
		EntityType: entityLeaveRequest,
		EntityID:   l.ID.String(),
		Meta:       leaveMeta(l),
	})
}
