package ranking

import "time"

// IsFresh indica se um dado buscado em fetchedAt ainda vale em now.
// Exatamente ttlHours de idade já é considerado vencido.
func IsFresh(fetchedAt, now time.Time, ttlHours float64) bool {
	return now.Sub(fetchedAt).Hours() < ttlHours
}
