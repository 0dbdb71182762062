package payment

import (
	"testing"

	"github.com/dmitrijs2005/pixgate/internal/server/config"
)

func TestService_Get(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{PixKey: "chave@pix.br", PixValue: "25.50"}
	svc := NewService(cfg)

	info := svc.Get()
	if info.ChavePix != "chave@pix.br" {
		t.Fatalf("unexpected key: %q", info.ChavePix)
	}
	if info.Valor != "25.50" {
		t.Fatalf("unexpected value: %q", info.Valor)
	}
	want := "Simulado PIX: Chave chave@pix.br | Valor R$25.50"
	if info.CodigoCopiaCola != want {
		t.Fatalf("unexpected code: got %q want %q", info.CodigoCopiaCola, want)
	}
}
