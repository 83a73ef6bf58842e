package presenter

import (
	"github.com/lifelogkit/lifelog-exporter/internal/adapter/dto/export"
	"github.com/lifelogkit/lifelog-exporter/internal/domain/entities"
)

// ToOptimizeResponse converts an OptimizeResult entity to its DTO
func ToOptimizeResponse(res *entities.OptimizeResult) *export.OptimizeResponse {
	if res == nil {
		return nil
	}

	response := &export.OptimizeResponse{
		Strategy: res.Strategy,
		Metadata: toMetadataResponse(res.Metadata),
	}

	if res.Chunks == nil {
		response.Content = res.Content
		response.TokenCount = res.TokenCount
		return response
	}

	response.OriginalTokens = res.OriginalTokens
	response.OptimizedTokens = res.OptimizedTokens
	response.CompressionRatio = res.CompressionRatio
	response.Chunks = make([]export.ChunkResponse, len(res.Chunks))
	for i, ch := range res.Chunks {
		response.Chunks[i] = export.ChunkResponse{
			Index:      ch.Index,
			Content:    ch.Content,
			TokenCount: ch.TokenCount,
			Strategy:   ch.Strategy,
			Topics:     ch.Topics,
		}
	}
	return response
}

// ToConsolidatedResponse converts a ConsolidatedExport entity to its DTO
func ToConsolidatedResponse(exp *entities.ConsolidatedExport) *export.ConsolidatedResponse {
	if exp == nil {
		return nil
	}
	return &export.ConsolidatedResponse{
		Content:         exp.Content,
		TokenCount:      exp.TokenCount,
		Strategy:        exp.Strategy,
		Topics:          exp.Topics,
		OriginalEntries: exp.OriginalEntries,
	}
}

// ToBatchResponse converts batch day results to the wire shape with
// success accounting.
func ToBatchResponse(results []entities.DayResult) *export.BatchResponse {
	response := &export.BatchResponse{
		Results: make([]export.BatchItemResponse, len(results)),
	}
	for i, r := range results {
		item := export.BatchItemResponse{
			JobID: r.JobID.String(),
			Date:  r.Date,
			Error: r.Err,
		}
		if r.Result != nil {
			item.Result = ToOptimizeResponse(r.Result)
			response.Succeeded++
		} else {
			response.Failed++
		}
		response.Results[i] = item
	}
	return response
}

func toMetadataResponse(m entities.ExtractionMetadata) export.MetadataResponse {
	return export.MetadataResponse{
		EntryCount:      m.EntryCount,
		DateRange:       m.DateRange,
		Speakers:        m.Speakers,
		Topics:          m.Topics,
		StarredCount:    m.StarredCount,
		DurationMinutes: m.DurationMinutes,
	}
}
