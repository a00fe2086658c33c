package trancodomain

import "errors"

var (
	// ErrUpstreamUnavailable cobre falhas de rede, timeout, status diferente de 200 e circuito aberto
	ErrUpstreamUnavailable = errors.New("tranco upstream unavailable")
	// ErrMalformedPayload indica resposta sem o formato esperado
	ErrMalformedPayload = errors.New("tranco payload malformed")
	// ErrInvalidDomain indica domínio que não forma um segmento de caminho válido
	ErrInvalidDomain = errors.New("tranco domain invalid for request path")
)

// RankEntry é um ponto (data, posição) como retornado pela API do Tranco
type RankEntry struct {
	Date string `json:"date"`
	Rank int    `json:"rank"`
}
