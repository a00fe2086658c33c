package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsFresh(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		fetchedAt time.Time
		ttl       float64
		want      bool
	}{
		{name: "acabou de ser buscado", fetchedAt: now, ttl: 24, want: true},
		{name: "uma hora atrás", fetchedAt: now.Add(-time.Hour), ttl: 24, want: true},
		{name: "um segundo antes do limite", fetchedAt: now.Add(-24*time.Hour + time.Second), ttl: 24, want: true},
		{name: "exatamente no limite é vencido", fetchedAt: now.Add(-24 * time.Hour), ttl: 24, want: false},
		{name: "além do limite", fetchedAt: now.Add(-25 * time.Hour), ttl: 24, want: false},
		{name: "ttl fracionário", fetchedAt: now.Add(-20 * time.Minute), ttl: 0.5, want: true},
		{name: "ttl fracionário vencido", fetchedAt: now.Add(-40 * time.Minute), ttl: 0.5, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFresh(tt.fetchedAt, now, tt.ttl))
		})
	}
}
