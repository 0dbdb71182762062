package server

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/pixgate/internal/server/auth"
	"github.com/dmitrijs2005/pixgate/internal/server/config"
	"github.com/dmitrijs2005/pixgate/internal/server/users"
)

func TestNewTokenCodec_SchemeSelection(t *testing.T) {
	t.Parallel()

	plain := NewTokenCodec(&config.Config{TokenScheme: config.PlainScheme})
	if _, ok := plain.(*auth.PlainCodec); !ok {
		t.Fatalf("expected *auth.PlainCodec, got %T", plain)
	}

	signed := NewTokenCodec(&config.Config{
		TokenScheme:                 config.SignedScheme,
		SecretKey:                   "k",
		AccessTokenValidityDuration: time.Hour,
	})
	if _, ok := signed.(*auth.SignedCodec); !ok {
		t.Fatalf("expected *auth.SignedCodec, got %T", signed)
	}

	// Unknown schemes fall back to plain, preserving the original behavior.
	fallback := NewTokenCodec(&config.Config{TokenScheme: "mystery"})
	if _, ok := fallback.(*auth.PlainCodec); !ok {
		t.Fatalf("expected *auth.PlainCodec fallback, got %T", fallback)
	}
}

func TestNewRepository_MemoryWhenNoDSN(t *testing.T) {
	t.Parallel()

	repo, err := newRepository(&config.Config{DatabaseDSN: ""})
	if err != nil {
		t.Fatalf("newRepository error: %v", err)
	}
	if _, ok := repo.(*users.MemoryRepository); !ok {
		t.Fatalf("expected *users.MemoryRepository, got %T", repo)
	}
}
