package trancoclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	trancodomain "github.com/vfg2006/domain-ranking-api/infrastructure/integrator/tranco/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxResponseBytes = 1 << 20

type RanksParams struct {
	Domain string
}

// RanksResponse é o corpo de GET {base}/{domain}; Ranks nulo indica payload incompleto
type RanksResponse struct {
	Domain string                    `json:"domain"`
	Ranks  *[]trancodomain.RankEntry `json:"ranks"`
}

func (c *TrancoClient) GetRanks(ctx context.Context, params RanksParams) (RanksResponse, error) {
	if err := ctx.Err(); err != nil {
		return RanksResponse{}, err
	}
	if !validPathSegment(params.Domain) {
		return RanksResponse{}, errors.Wrapf(trancodomain.ErrInvalidDomain, "domínio %q não pode compor a URL", params.Domain)
	}

	endpoint, err := url.Parse(c.config.Tranco.BaseURL)
	if err != nil {
		return RanksResponse{}, errors.Wrap(trancodomain.ErrUpstreamUnavailable, "erro ao analisar a URL base: "+err.Error())
	}
	base := strings.TrimSuffix(endpoint.EscapedPath(), "/")
	endpoint.Path = strings.TrimSuffix(endpoint.Path, "/") + "/" + params.Domain
	endpoint.RawPath = base + "/" + url.PathEscape(params.Domain)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return RanksResponse{}, errors.Wrap(trancodomain.ErrUpstreamUnavailable, "erro ao criar a requisição: "+err.Error())
	}
	req.Header.Set("Accept", "application/json")

	return c.execute(func() (RanksResponse, error) {
		return c.do(req)
	})
}

func (c *TrancoClient) do(req *http.Request) (RanksResponse, error) {
	var response RanksResponse

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return response, ctxErr
		}
		return response, errors.Wrapf(trancodomain.ErrUpstreamUnavailable, "erro ao executar a requisição: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response, errors.Wrapf(trancodomain.ErrUpstreamUnavailable, "requisição falhou com status: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return response, ctxErr
		}
		return response, errors.Wrapf(trancodomain.ErrUpstreamUnavailable, "erro ao ler a resposta: %v", err)
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return response, errors.Wrapf(trancodomain.ErrMalformedPayload, "erro ao decodificar a resposta: %v", err)
	}

	if response.Ranks == nil {
		return response, errors.Wrap(trancodomain.ErrMalformedPayload, "campo ranks ausente na resposta")
	}

	return response, nil
}

// validPathSegment recusa valores que o servidor resolveria como outro caminho
func validPathSegment(domain string) bool {
	if strings.Trim(domain, ".") == "" {
		return false
	}
	return !strings.ContainsAny(domain, "/\\?#")
}
