package response

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOK(t *testing.T) {
	out := OK([]int{1, 2})

	assert.True(t, out.Body.Success)
	assert.Equal(t, []int{1, 2}, out.Body.Data)
	assert.Empty(t, out.Body.Message)

	out = OKWithMessage([]int{}, "supprimé")
	assert.Equal(t, "supprimé", out.Body.Message)
}

func TestNewError(t *testing.T) {
	t.Run("message kept", func(t *testing.T) {
		err := NewError(http.StatusNotFound, "citizen not found")

		assert.Equal(t, http.StatusNotFound, err.GetStatus())
		assert.Equal(t, "citizen not found", err.Error())
		assert.False(t, err.(*Error).Success)
	})

	t.Run("details joined when message empty", func(t *testing.T) {
		err := NewError(http.StatusUnprocessableEntity, "", errors.New("name required"), nil, errors.New("bad email"))

		e := err.(*Error)
		assert.Equal(t, "name required; bad email", e.Message)
		assert.Len(t, e.Errors, 2)
	})
}
