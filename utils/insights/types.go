package insights

import "github.com/gofiber/fiber/v2"

const (
	livenessPath  = "/livez"
	readinessPath = "/readyz"
)

type Probes interface {
	ListenAndServe()
	Shutdown()
}

type probes struct {
	app     *fiber.App
	port    int
	isReady func() bool
}
