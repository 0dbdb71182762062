// Package payment assembles the static PIX payload served behind the auth
// gate. The values come from configuration; no per-user variation exists.
package payment

import (
	"fmt"

	"github.com/dmitrijs2005/pixgate/internal/server/config"
)

// Info is the PIX payload: the key identifier, the monetary value string,
// and the copy-and-paste code composed from both.
type Info struct {
	ChavePix        string `json:"chave_pix"`
	Valor           string `json:"valor"`
	CodigoCopiaCola string `json:"codigo_copia_cola"`
}

type Service struct {
	info Info
}

// NewService precomputes the payload once; the config is immutable after
// startup so there is nothing to rebuild per request.
func NewService(cfg *config.Config) *Service {
	return &Service{
		info: Info{
			ChavePix:        cfg.PixKey,
			Valor:           cfg.PixValue,
			CodigoCopiaCola: fmt.Sprintf("Simulado PIX: Chave %s | Valor R$%s", cfg.PixKey, cfg.PixValue),
		},
	}
}

// Get returns the PIX payload.
func (s *Service) Get() Info {
	return s.info
}
