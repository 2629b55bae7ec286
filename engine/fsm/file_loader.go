package fsm

import (
	"log"
	"os"

	"github.com/pkg/errors"
)

// LoadConfigAuto loads the phase graph from customPath when set, otherwise the embedded fallback
func LoadConfigAuto[T any](m *Machine[T], customPath, embeddedFallback string) error {
	if customPath == "" {
		return m.LoadConfig([]byte(embeddedFallback))
	}

	data, err := os.ReadFile(customPath)
	if err != nil {
		return errors.Wrapf(err, "read FSM config %s", customPath)
	}
	if err := m.LoadConfig(data); err != nil {
		return errors.Wrapf(err, "FSM config %s", customPath)
	}
	log.Printf("[fsm] loaded phase graph from %s", customPath)
	return nil
}
