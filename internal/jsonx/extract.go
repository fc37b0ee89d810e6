// Package jsonx extracts structured JSON from reasoning-service responses,
// which routinely arrive wrapped in markdown fences or surrounded by prose.
package jsonx

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	// Matches a fenced code block, with or without a language tag.
	fencedBlockRegex = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

	// Matches the first bare object or array in free text. Greedy so the
	// outermost closing brace/bracket wins.
	bareObjectRegex = regexp.MustCompile(`(?s)\{.*\}`)
	bareArrayRegex  = regexp.MustCompile(`(?s)\[.*\]`)
)

// Extract unmarshals the first JSON value found in response into T.
// Extraction order: direct parse, fenced-block extraction, bare
// object/array regex scan. It fails only when all three strategies fail.
func Extract[T any](response string) (T, error) {
	var result T
	trimmed := strings.TrimSpace(response)
	if trimmed == "" {
		return result, fmt.Errorf("empty response")
	}

	// 1. Direct parse
	if err := json.Unmarshal([]byte(trimmed), &result); err == nil {
		return result, nil
	}

	// 2. Fenced code block
	if m := fencedBlockRegex.FindStringSubmatch(trimmed); len(m) == 2 {
		candidate := strings.TrimSpace(m[1])
		if err := json.Unmarshal([]byte(candidate), &result); err == nil {
			return result, nil
		}
	}

	// 3. Bare structure scan. Objects first: an object response embedding
	// arrays must not be truncated to its first array field.
	if m := bareObjectRegex.FindString(trimmed); m != "" {
		if err := decodeFirst(m, &result); err == nil {
			return result, nil
		}
	}
	if m := bareArrayRegex.FindString(trimmed); m != "" {
		if err := decodeFirst(m, &result); err == nil {
			return result, nil
		}
	}

	return result, fmt.Errorf("no parseable JSON found in response (%d bytes)", len(response))
}

// decodeFirst decodes a single JSON value from s, tolerating trailing text.
func decodeFirst(s string, out any) error {
	dec := json.NewDecoder(strings.NewReader(s))
	return dec.Decode(out)
}
