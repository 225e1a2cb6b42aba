package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	BookClass(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	GetClass(c *ginext.Context)
	UpdateClass(c *ginext.Context)
	DeleteClass(c *ginext.Context)
	CalendarAuth(c *ginext.Context)
	DisconnectCalendar(c *ginext.Context)
	CalendarCallback(c *ginext.Context)
}

// InitRouter mounts the same routes for the web client (/api) and the
// mobile client (/api/mobile).
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	for _, prefix := range []string{"/api", "/api/mobile"} {
		api := router.Group(prefix)

		// The provider redirects the browser here without our session token.
		api.GET("/calendar/callback", h.CalendarCallback)

		secured := api.Group("", auth)
		{
			// Classes
			secured.GET("/classes/:id", h.GetClass)
			secured.PUT("/classes/:id", h.UpdateClass)
			secured.DELETE("/classes/:id", h.DeleteClass)

			// Bookings
			secured.POST("/classes/:id/book", h.BookClass)
			secured.GET("/bookings", h.ListBookings)
			secured.DELETE("/bookings/:id", h.CancelBooking)

			// Calendar
			secured.GET("/calendar/auth", h.CalendarAuth)
			secured.DELETE("/calendar/auth", h.DisconnectCalendar)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
