package user

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/errs"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

func newDeleteTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewDeleteUserHandler(op).Register(api)
	return api
}

func TestHTTP_DeleteUser_Success(t *testing.T) {
	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		del, ok := a.(*actions.DeleteUser)
		return ok && del.UserID == 7
	})).Return(nil)

	resp := newDeleteTestAPI(t, mockOp).Delete("/v1/users/7")

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_DeleteUser_NotFound(t *testing.T) {
	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(errs.NewNotFound("user", 7))

	resp := newDeleteTestAPI(t, mockOp).Delete("/v1/users/7")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockOp.AssertExpectations(t)
}
