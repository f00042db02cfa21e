package gormrepo

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"banking-ledger/internal/domain/apperr"
)

// translate maps store errors onto the ledger taxonomy. It relies on the
// dialector's error translation (gorm.Config.TranslateError).
func translate(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	what := fmt.Sprintf(format, args...)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound("%s not found", what)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Constraint("%s already exists", what)
	default:
		return apperr.Persistence(err, "%s", what)
	}
}

func exists(db *gorm.DB, model any, query string, args ...any) (bool, error) {
	var n int64
	if err := db.Model(model).Where(query, args...).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
