package employee

import (
	employeeerrors "go-hrms/internal/employee/errors"
)

// ManagerSnapshot maps employee id to manager id ("" for none).
type ManagerSnapshot map[string]string

// ValidateManager rejects self management and any assignment whose walk up
// the manager chain from managerID reaches employeeID.
func ValidateManager(snapshot ManagerSnapshot, employeeID, managerID string) error {
	if managerID == "" {
		return nil
	}
	if managerID == employeeID {
		return employeeerrors.ErrSelfManager
	}

	visited := make(map[string]struct{}, len(snapshot))
	for cur := managerID; cur != ""; cur = snapshot[cur] {
		if cur == employeeID {
			return employeeerrors.ErrManagerCycle
		}
		if _, seen := visited[cur]; seen {
			// pre-existing loop above us that does not include employeeID
			return nil
		}
		visited[cur] = struct{}{}
	}
	return nil
}
