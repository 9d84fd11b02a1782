package impact

import (
	"errors"
	"testing"

	"Food2Plate-Backend/domain"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound), domain.ErrNotFound)
	assert.ErrorIs(t, translate(gorm.ErrDuplicatedKey), domain.ErrConflict)

	opaque := errors.New("connection reset")
	assert.Equal(t, opaque, translate(opaque))
}
