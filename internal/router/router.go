package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Quote(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	TransitionReservation(c *ginext.Context)
	SubmitFeedback(c *ginext.Context)
	RecalculateReservation(c *ginext.Context)
	RecordPayment(c *ginext.Context)
	ListPayments(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.POST("/quotes", h.Quote)

		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/:id/transitions", h.TransitionReservation)
		api.POST("/reservations/:id/feedback", h.SubmitFeedback)
		api.POST("/reservations/:id/recalculate", h.RecalculateReservation)

		// Payments
		api.POST("/reservations/:id/payments", h.RecordPayment)
		api.GET("/reservations/:id/payments", h.ListPayments)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
