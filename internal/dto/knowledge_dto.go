package dto

type IngestKnowledgeRequest struct {
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"required"`
	Source   string `json:"source" validate:"required"`
}

type IngestKnowledgeResponse struct {
	Chunks int `json:"chunks"`
}

// KnowledgeStatsResponse counts the whole corpus, or one document category
// when the stats query filters on it.
type KnowledgeStatsResponse struct {
	TotalChunks int64  `json:"total_chunks"`
	Category    string `json:"category,omitempty"`
}

// PublishEmbedChunkMessage travels over the in-process bus from the ingest
// endpoint to the embedding consumer.
type PublishEmbedChunkMessage struct {
	Content  string `json:"content"`
	Category string `json:"category"`
	Source   string `json:"source"`
}
