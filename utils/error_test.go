package utils

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestHttpStatus(t *testing.T) {
	Convey("TestHttpStatus", t, func() {
		So(HttpStatus(errors.Wrap(ErrParameter, "mode")), ShouldEqual, http.StatusBadRequest)
		So(HttpStatus(errors.Wrapf(ErrColumnNotExist, "column %s", "species")), ShouldEqual, http.StatusBadRequest)
		So(HttpStatus(ErrDatasetNotFound), ShouldEqual, http.StatusNotFound)
		So(HttpStatus(ErrRender), ShouldEqual, http.StatusInternalServerError)
		So(HttpStatus(fmt.Errorf("plain")), ShouldEqual, http.StatusInternalServerError)

		se, ok := AsServiceError(fmt.Errorf("wrapped: %w", ErrLoadDataset))
		So(ok, ShouldBeTrue)
		So(se.Code, ShouldEqual, 500001)
	})
}
