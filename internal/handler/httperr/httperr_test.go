//go:build unit

package httperr_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"careerlaunch/internal/handler/httperr"
	"careerlaunch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	base := errors.New("job not found")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.Mark(errs.Wrap(base, "lookup"), errs.ErrNotFound), http.StatusNotFound},
		{"validation", errs.Mark(base, errs.ErrValidation), http.StatusBadRequest},
		{"conflict", errs.Mark(base, errs.ErrConflict), http.StatusConflict},
		{"deadline", errs.Wrap(context.DeadlineExceeded, "load"), http.StatusGatewayTimeout},
		{"store failure", errs.Mark(base, errs.ErrStoreOperationFailed), http.StatusInternalServerError},
		{"plain", base, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusOf(tt.err))
		})
	}
}
