package sanitizer

// NormalizeStringSlice applies normalizer to each item and drops the ones
// that end up empty. Order and repeats are kept.
func NormalizeStringSlice(items []string, normalizer Strategy) []string {
	if len(items) == 0 {
		return nil
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		if normalized := normalizer(item); normalized != "" {
			result = append(result, normalized)
		}
	}

	return result
}

func NormalizeSteps(steps []string) []string {
	return NormalizeStringSlice(steps, NormalizeStepName)
}
