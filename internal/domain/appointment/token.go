package appointment

import (
	"strings"

	"github.com/google/uuid"
)

// NewCancellationToken gera o token de cancelamento: 256 bits de aleatoriedade
// em 64 caracteres hex. Posse do token autoriza o cancelamento, sem outra
// prova de identidade.
func NewCancellationToken() string {
	a := strings.ReplaceAll(uuid.NewString(), "-", "")
	b := strings.ReplaceAll(uuid.NewString(), "-", "")
	return a + b
}
