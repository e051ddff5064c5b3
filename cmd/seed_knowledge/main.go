package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"smart-warehouse-be/internal/config"
	"smart-warehouse-be/internal/entity"
	"smart-warehouse-be/internal/repository/unitofwork"
	"smart-warehouse-be/pkg/database"
	"smart-warehouse-be/pkg/embedding"
	"smart-warehouse-be/pkg/utils"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

const maxChunkSize = 2000

// Loads the warehouse rulebook into the pgvector knowledge store. Markdown
// files under the data directory are chunked per paragraph and embedded one
// by one; re-running replaces each file's previous chunks.
func main() {
	cfg := config.Load()

	dataDir := os.Getenv("KNOWLEDGE_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	embedder := embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel)

	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)
	chunkRepo := uow.KnowledgeChunkRepository()

	files, err := filepath.Glob(filepath.Join(dataDir, "*", "*.md"))
	if err != nil {
		log.Fatal("Error: bad data dir pattern:", err)
	}
	rootFiles, _ := filepath.Glob(filepath.Join(dataDir, "*.md"))
	files = append(files, rootFiles...)

	if len(files) == 0 {
		log.Fatalf("Error: no markdown files found under %s", dataDir)
	}

	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Error reading %s: %v", path, err)
			continue
		}

		category := filepath.Base(filepath.Dir(path))
		source := filepath.Base(path)

		if err := chunkRepo.DeleteBySource(ctx, source); err != nil {
			log.Printf("Error clearing previous chunks of %s: %v", source, err)
			continue
		}

		chunks := utils.SplitParagraphs(string(content), maxChunkSize)
		stored := 0
		for _, chunk := range chunks {
			resp, err := embedder.Generate(ctx, chunk)
			if err != nil {
				log.Printf("Error embedding chunk from %s: %v", source, err)
				continue
			}
			err = chunkRepo.Create(ctx, &entity.KnowledgeChunk{
				Id:        uuid.New(),
				Content:   chunk,
				Category:  category,
				Source:    source,
				Embedding: resp.Embedding.Values,
				CreatedAt: time.Now(),
			})
			if err != nil {
				log.Printf("Error storing chunk from %s: %v", source, err)
				continue
			}
			stored++
		}
		color.Green("✔ Loaded %d chunks from %s (%s)", stored, source, category)
	}

	total, err := chunkRepo.Count(ctx)
	if err == nil {
		color.Cyan("Knowledge base ready: %d chunks total", total)
	}
}
