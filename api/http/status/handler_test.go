package status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deskrelay/bot-telegram/service/tickets"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Get(t *testing.T) {
	stor := tickets.NewStorageMock()
	require.Nil(t, stor.Create(context.TODO(), tickets.Ticket{
		Id:       "tkt0",
		UserId:   111,
		ThreadId: 1,
	}))
	//
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", NewHandler(stor).Get)
	//
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK","ticketsOpen":1}`, w.Body.String())
}
