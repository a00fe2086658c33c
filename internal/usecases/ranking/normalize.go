package ranking

import "strings"

var schemePrefixes = []string{"https://", "http://"}

// NormalizeDomain reduz a entrada do usuário à chave canônica do domínio.
// Retorna "" quando não sobra nada; o chamador descarta esses valores.
func NormalizeDomain(input string) string {
	value := input
	for {
		next := normalizeOnce(value)
		if next == value {
			return next
		}
		value = next
	}
}

func normalizeOnce(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))

	for hasScheme(value) {
		for _, prefix := range schemePrefixes {
			value = strings.TrimPrefix(value, prefix)
		}
	}

	if i := strings.Index(value, "/"); i >= 0 {
		value = value[:i]
	}

	for strings.HasPrefix(value, "www.") {
		value = strings.TrimPrefix(value, "www.")
	}

	return value
}

func hasScheme(value string) bool {
	for _, prefix := range schemePrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}

// ParseDomainList separa a lista por vírgulas, normaliza cada item e remove
// vazios, só-pontos e repetidos mantendo a ordem da primeira ocorrência
func ParseDomainList(raw string) []string {
	parts := strings.Split(raw, ",")
	domains := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, part := range parts {
		name := NormalizeDomain(part)
		if strings.Trim(name, ".") == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		domains = append(domains, name)
	}

	return domains
}
