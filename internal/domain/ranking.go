// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"fmt"
	"strings"
	"time"
)

// Source indica de onde veio a série de rankings de um domínio
type Source string

const (
	SourceCache    Source = "cache"
	SourceProvider Source = "provider"
)

// Date é uma data de calendário sem componente de hora, serializada como YYYY-MM-DD
type Date struct {
	time.Time
}

// NewDate descarta hora e fuso, mantendo apenas ano, mês e dia
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(value))
	if err != nil {
		return Date{}, err
	}
	return NewDate(t), nil
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(raw)
	if err != nil {
		return fmt.Errorf("data inválida %q: %w", raw, err)
	}
	*d = parsed
	return nil
}

// RankPoint é a posição de um domínio em uma data
type RankPoint struct {
	Date Date `json:"date"`
	Rank int  `json:"rank"`
}

// RankingRecord representa uma linha da tabela rankings
type RankingRecord struct {
	ID        int       `json:"id"`
	Domain    string    `json:"domain"`
	Date      Date      `json:"date"`
	Rank      int       `json:"rank"`
	FetchedAt time.Time `json:"fetched_at"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRankingRecords gera um registro por ponto, todos com o mesmo fetchedAt
func NewRankingRecords(domainName string, points []RankPoint, fetchedAt time.Time) []RankingRecord {
	records := make([]RankingRecord, 0, len(points))
	for _, p := range points {
		records = append(records, RankingRecord{
			Domain:    domainName,
			Date:      p.Date,
			Rank:      p.Rank,
			FetchedAt: fetchedAt,
		})
	}
	return records
}

// DomainError é o marcador de falha de um domínio dentro de um lote
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type DomainResult struct {
	Domain string       `json:"domain"`
	Ranks  []RankPoint  `json:"ranks"`
	Source Source       `json:"source,omitempty"`
	Error  *DomainError `json:"error,omitempty"`
}

// Failed indica se a resolução do domínio terminou em erro
func (r DomainResult) Failed() bool {
	return r.Error != nil
}

type BatchResponse struct {
	Domains []DomainResult `json:"domains"`
}
