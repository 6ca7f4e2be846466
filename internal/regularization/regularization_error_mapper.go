package regularization

import (
	"errors"

	regularizationerrors "go-hrms/internal/regularization/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return regularizationerrors.ErrRegularizationNotFound
	}
	return err
}
