package regularization

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-hrms/internal/domain"
	"go-hrms/internal/employee"
	"go-hrms/internal/notification"

	"gorm.io/gorm"
)

const entityRegularization = "regularization"

func describe(r *Regularization) string {
	day := r.Date.Format(time.DateOnly)
	if r.Category == CategoryAttendance {
		return "attendance correction for " + day
	}
	if r.CountAsPresent {
		return "present marking for " + day
	}
	return fmt.Sprintf("%s leave for %s", r.RequestedLeaveType, day)
}

func regularizationMeta(r *Regularization) map[string]any {
	return map[string]any{
		"category": string(r.Category),
		"date":     r.Date.Format(time.DateOnly),
		"status":   string(r.Status),
	}
}

func (s *service) notifyApplied(ctx context.Context, tx *gorm.DB, empl employee.Employee, r *Regularization) error {
	body := fmt.Sprintf("%s requested %s.", empl.FullName(), describe(r))
	msgs := []notification.Message{{
		Role:       string(domain.RoleHR),
		Type:       notification.TypeRegularizationApplied,
		Title:      "New regularization request",
		Body:       body,
		EntityType: entityRegularization,
		EntityID:   r.ID.String(),
		Meta:       regularizationMeta(r),
	}}
	if managerID := empl.ManagerIDString(); managerID != "" {
		msgs = append(msgs, notification.Message{
			EmployeeID: managerID,
			Type:       notification.TypeRegularizationApplied,
			Title:      "Regularization request from your team",
			Body:       body,
			EntityType: entityRegularization,
			EntityID:   r.ID.String(),
			Meta:       regularizationMeta(r),
		})
	}
	return s.notifier.Notify(ctx, tx, msgs...)
}

func (s *service) notifyDecided(ctx context.Context, tx *gorm.DB, r *Regularization) error {
	body := "Your " + describe(r) + " was " + strings.ToLower(string(r.Status)) + "."
	if r.DecisionNote != "" {
		body += " Note: " + r.DecisionNote
	}
	return s.notifier.Notify(ctx, tx, notification.Message{
		EmployeeID: r.EmployeeID.String(),
		Type:       notification.TypeRegularizationDecided,
		Title:      "Regularization " + strings.ToLower(string(r.Status)),
		Body:       body,
		EntityType: entityRegularization,
		EntityID:   r.ID.String(),
		Meta:       regularizationMeta(r),
	})
}
