package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// BasePath is the server URL of the OpenAPI document.
const BasePath = "/api/v1"

// ServerInterface lists the operations of openapi.yaml. Path parameters are
// bound before the operation is called.
type ServerInterface interface {
	GetOrders(ctx echo.Context) error
	CreateOrder(ctx echo.Context) error
	GetOrder(ctx echo.Context, id int64) error
	AssignOrder(ctx echo.Context, id int64) error
	ProcessOrder(ctx echo.Context, id int64) error
	CancelOrder(ctx echo.Context, id int64) error
	CompleteOrder(ctx echo.Context, id int64) error
	GetWorkers(ctx echo.Context) error
	CreateWorker(ctx echo.Context) error
	GetWorkerOrders(ctx echo.Context, id int64) error
	GetClients(ctx echo.Context) error
	CreateQuote(ctx echo.Context) error
	GetTransitionStats(ctx echo.Context) error
}

func bindID(ctx echo.Context) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

func withID(op func(echo.Context, int64) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := bindID(ctx)
		if err != nil {
			return err
		}
		return op(ctx, id)
	}
}

// RegisterHandlers mounts every operation under BasePath.
func RegisterHandlers(e *echo.Echo, si ServerInterface) {
	g := e.Group(BasePath)

	g.GET("/orders", si.GetOrders)
	g.POST("/orders", si.CreateOrder)
	g.GET("/orders/:id", withID(si.GetOrder))
	g.POST("/orders/:id/assign", withID(si.AssignOrder))
	g.POST("/orders/:id/process", withID(si.ProcessOrder))
	g.POST("/orders/:id/cancel", withID(si.CancelOrder))
	g.POST("/orders/:id/complete", withID(si.CompleteOrder))
	g.GET("/workers", si.GetWorkers)
	g.POST("/workers", si.CreateWorker)
	g.GET("/workers/:id/orders", withID(si.GetWorkerOrders))
	g.GET("/clients", si.GetClients)
	g.POST("/quotes", si.CreateQuote)
	g.GET("/stats/transitions", si.GetTransitionStats)
}
