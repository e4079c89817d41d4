package catalog

import (
	"strings"

	"github.com/elC0mpa/aws-finlens/model"
)

// NewService builds the lookup maps and alias sets once; the catalog is
// read-only afterwards.
func NewService() *service {
	s := &service{
		nameToID:    make(map[string]string, len(serviceNameTable)),
		billingToID: make(map[string]string, len(billingNameTable)),
	}

	seen := make(map[string]int)
	for _, pair := range serviceNameTable {
		s.nameToID[pair.Name] = pair.ID

		idx, ok := seen[pair.ID]
		if !ok {
			s.aliases = append(s.aliases, aliasSet{id: pair.ID})
			idx = len(s.aliases) - 1
			seen[pair.ID] = idx
		}
		s.aliases[idx].add(NormalizeKey(pair.Name))
		s.aliases[idx].add(NormalizeKey(pair.ID))
	}

	for _, pair := range billingNameTable {
		s.billingToID[pair.Name] = pair.ID
	}

	return s
}

// MapBillingName resolves a billing-system display name to an internal
// service id. Returns false when the name cannot be attributed.
func (s *service) MapBillingName(name string) (string, bool) {
	if id, ok := s.billingToID[name]; ok {
		return id, true
	}

	target := NormalizeKey(name)
	if target == "" {
		return "", false
	}

	// Cost Explorer emits several EC2 variants (EC2 - Other, EC2 - Instances)
	if strings.Contains(target, "elasticcomputecloud") || strings.HasPrefix(target, "ec2") {
		return "ec2", true
	}

	compact := NormalizeKey(trimProviderPrefix(name))

	for _, set := range s.aliases {
		for _, alias := range set.aliases {
			if alias == "" {
				continue
			}
			if strings.Contains(target, alias) || strings.Contains(alias, target) {
				return set.id, true
			}
			// compact can normalize to empty when the name is only a
			// provider prefix; an empty needle would match every alias
			if compact != "" && (strings.Contains(compact, alias) || strings.Contains(alias, compact)) {
				return set.id, true
			}
		}
	}

	for _, pair := range billingNameTable {
		known := NormalizeKey(pair.Name)
		if strings.Contains(target, known) || strings.Contains(known, target) {
			return pair.ID, true
		}
	}

	return "", false
}

// DisplayNameForStem maps a CSV filename stem (e.g. "API_Gateway") back to a
// canonical service display name, falling back to the cleaned stem itself.
func (s *service) DisplayNameForStem(stem string) string {
	normalized := strings.TrimSpace(strings.ReplaceAll(stem, "_", " "))

	for _, pair := range serviceNameTable {
		if strings.EqualFold(normalized, pair.Name) {
			return pair.Name
		}
	}

	lower := strings.ToLower(normalized)
	for _, pair := range serviceNameTable {
		name := strings.ToLower(pair.Name)
		if strings.Contains(name, lower) || strings.Contains(lower, name) {
			return pair.Name
		}
	}

	return normalized
}

// ServiceIDForStem resolves a CSV filename stem to a service id
func (s *service) ServiceIDForStem(stem string) string {
	if id, ok := s.nameToID[s.DisplayNameForStem(stem)]; ok {
		return id
	}
	return strings.ReplaceAll(strings.ToLower(stem), "_", "-")
}

// Category returns the UI category for a canonical display name
func (s *service) Category(displayName string) string {
	if category, ok := serviceCategories[displayName]; ok {
		return category
	}
	return "general"
}

// Services lists every catalogued service
func (s *service) Services() []model.ServiceInfo {
	services := make([]model.ServiceInfo, 0, len(serviceNameTable))
	for _, pair := range serviceNameTable {
		services = append(services, model.ServiceInfo{
			ID:       pair.ID,
			Name:     pair.Name,
			Category: s.Category(pair.Name),
		})
	}
	return services
}

func (a *aliasSet) add(alias string) {
	for _, existing := range a.aliases {
		if existing == alias {
			return
		}
	}
	a.aliases = append(a.aliases, alias)
}

// NormalizeKey lowercases and strips everything outside [a-z0-9]
func NormalizeKey(value string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(value) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// trimProviderPrefix drops a leading "Amazon"/"AWS" word so short aliases
// like "s3" can still match the full billing name
func trimProviderPrefix(name string) string {
	trimmed := strings.TrimSpace(name)
	for _, prefix := range []string{"amazon ", "aws "} {
		if len(trimmed) > len(prefix) && strings.EqualFold(trimmed[:len(prefix)], prefix) {
			return trimmed[len(prefix):]
		}
	}
	return trimmed
}
