package sidebar

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ghiac/adminshell/log"
	"github.com/ghiac/adminshell/store"
)

// Opener returns the storage to use for the current request. It lets the
// cookie backend bind to the request/response pair and the shared backends
// namespace keys per user.
type Opener func(c *gin.Context) (Storage, error)

// Middleware creates one initialized controller per request for scope and
// makes it available through FromContext on the request context.
func Middleware(scope Scope, open Opener) gin.HandlerFunc {
	key, ok := scope.Key()
	if !ok {
		panic("sidebar: unknown scope " + string(scope))
	}
	return func(c *gin.Context) {
		storage, err := open(c)
		if err != nil || storage == nil {
			log.Log.Warnf("[sidebar] no storage for %s, falling back to memory: %v", scope, err)
			storage = store.NewMemoryStore()
		}

		ctrl, err := New(key, storage)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		ctrl.Initialize(c.Request.Context())

		c.Request = c.Request.WithContext(WithController(c.Request.Context(), scope, ctrl))
		c.Next()
	}
}
