package insights

import (
	"fmt"

	"tweet-fieldtype/models/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// NewProbes serves liveness and readiness on the configured probe port.
// isReady decides the readiness answer.
func NewProbes(isReady func() bool) Probes {
	return newProbes(viper.GetInt(constants.ProbePort), isReady)
}

func newProbes(port int, isReady func() bool) *probes {
	p := &probes{
		app:     fiber.New(fiber.Config{DisableStartupMessage: true}),
		port:    port,
		isReady: isReady,
	}

	p.app.Get(livenessPath, p.liveness)
	p.app.Get(readinessPath, p.readiness)

	return p
}

func (p *probes) liveness(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

func (p *probes) readiness(c *fiber.Ctx) error {
	if !p.isReady() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendStatus(fiber.StatusOK)
}

func (p *probes) ListenAndServe() {
	go func() {
		log.Info().Int("port", p.port).Msg("Probes listening")
		if err := p.app.Listen(fmt.Sprintf(":%d", p.port)); err != nil {
			log.Error().Err(err).Msg("Probes stopped listening")
		}
	}()
}

func (p *probes) Shutdown() {
	if err := p.app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Cannot shutdown probes, continuing...")
	}
}
