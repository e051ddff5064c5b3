package utils

import "strings"

// SplitText splits a long string into chunks of approximately 'chunkSize' characters.
// It includes an 'overlap' to preserve context at boundaries.
func SplitText(text string, chunkSize int, overlap int) []string {
	if len(text) <= chunkSize {
		return []string{text}
	}

	var chunks []string
	runes := []rune(text)
	totalLen := len(runes)

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize // fallback if overlap >= chunkSize
	}

	for i := 0; i < totalLen; i += step {
		end := i + chunkSize
		if end > totalLen {
			end = totalLen
		}

		chunks = append(chunks, string(runes[i:end]))

		if end == totalLen {
			break
		}
	}

	return chunks
}

// SplitParagraphs cuts a knowledge document on blank lines. Paragraphs that
// still exceed maxChunkSize fall back to character splitting so a single
// giant rule block cannot blow up the embedding payload.
func SplitParagraphs(text string, maxChunkSize int) []string {
	var chunks []string
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if maxChunkSize > 0 && len(para) > maxChunkSize {
			chunks = append(chunks, SplitText(para, maxChunkSize, maxChunkSize/10)...)
			continue
		}
		chunks = append(chunks, para)
	}
	return chunks
}
