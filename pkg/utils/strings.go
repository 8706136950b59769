package utils

import "strings"

// CleanList trims whitespace from every element and drops the ones left empty.
func CleanList(slice []string) []string {
	var result []string

	for _, s := range slice {
		if s = strings.TrimSpace(s); s != "" {
			result = append(result, s)
		}
	}

	return result
}
