package ranking

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de rankings
var (
	// Erros de validação
	ErrInvalidDomain  = errors.New("invalid domain")
	ErrTooManyDomains = errors.New("too many domains in request")

	// Erros do provedor
	ErrProviderUnavailable       = errors.New("ranking provider unavailable")
	ErrProviderMalformedResponse = errors.New("ranking provider returned a malformed response")

	// Cancelamento ou prazo do chamador
	ErrRequestCanceled = errors.New("ranking request canceled")

	// Erros de banco de dados
	ErrStoreUnavailable = errors.New("ranking store unavailable")
)

// RankingError é um erro com contexto adicional para a resolução de um domínio
type RankingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Domain  string // Domínio envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *RankingError) Error() string {
	msg := e.Err.Error()
	if e.Domain != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.Domain)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

// Unwrap retorna o erro subjacente
func (e *RankingError) Unwrap() error {
	return e.Err
}

// NewRankingError cria um novo RankingError
func NewRankingError(err error, code string, details string) *RankingError {
	return &RankingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewRankingErrorWithDomain cria um novo RankingError associado a um domínio
func NewRankingErrorWithDomain(err error, code string, domainName string, details string) *RankingError {
	return &RankingError{
		Err:     err,
		Code:    code,
		Domain:  domainName,
		Details: details,
	}
}
