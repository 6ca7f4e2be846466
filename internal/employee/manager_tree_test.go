package employee

import (
	"testing"

	employeeerrors "go-hrms/internal/employee/errors"

	"github.com/stretchr/testify/assert"
)

func TestValidateManager(t *testing.T) {
	// ceo <- vp <- lead <- dev
	snapshot := ManagerSnapshot{
		"ceo":  "",
		"vp":   "ceo",
		"lead": "vp",
		"dev":  "lead",
	}

	t.Run("no manager", func(t *testing.T) {
		assert.NoError(t, ValidateManager(snapshot, "dev", ""))
	})

	t.Run("self", func(t *testing.T) {
		assert.ErrorIs(t, ValidateManager(snapshot, "dev", "dev"), employeeerrors.ErrSelfManager)
	})

	t.Run("valid move", func(t *testing.T) {
		assert.NoError(t, ValidateManager(snapshot, "dev", "vp"))
	})

	t.Run("manager under the employee", func(t *testing.T) {
		assert.ErrorIs(t, ValidateManager(snapshot, "vp", "dev"), employeeerrors.ErrManagerCycle)
	})

	t.Run("unrelated existing loop terminates", func(t *testing.T) {
		looped := ManagerSnapshot{"a": "b", "b": "a", "x": ""}
		assert.NoError(t, ValidateManager(looped, "x", "a"))
	})

	t.Run("unknown manager is a root", func(t *testing.T) {
		assert.NoError(t, ValidateManager(snapshot, "dev", "new-hire"))
	})
}
