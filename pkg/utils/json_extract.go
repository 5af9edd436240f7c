package utils

import "strings"

// ExtractJSONBlock strips markdown fencing from a raw model reply and
// returns the candidate JSON text. It prefers a ```json fence, falls back to
// a bare ``` fence, and returns the input unchanged when no fence markers
// are present. It never fails; downstream parsing rejects garbage.
func ExtractJSONBlock(raw string) string {
	if i := strings.Index(raw, "```json"); i != -1 {
		rest := raw[i+len("```json"):]
		if j := strings.Index(rest, "```"); j != -1 {
			rest = rest[:j]
		}
		return strings.TrimSpace(rest)
	}
	if i := strings.Index(raw, "```"); i != -1 {
		rest := raw[i+len("```"):]
		if j := strings.Index(rest, "```"); j != -1 {
			rest = rest[:j]
		}
		return strings.TrimSpace(rest)
	}
	return raw
}
