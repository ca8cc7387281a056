package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"postal-distance-service/internal/api/dto"
	"postal-distance-service/internal/domain"
	"postal-distance-service/internal/ports"
	"postal-distance-service/internal/services"
)

// MaxBatchSources caps how many source postal codes one submission may carry.
const MaxBatchSources = 4

// BatchHandler exposes the batch distance computation as a JSON endpoint.
type BatchHandler struct {
	Querier ports.DistanceQuerier
}

// Compute runs one batch of sequential distance queries and returns the
// per-source records in input order.
func (h *BatchHandler) Compute(c *gin.Context) {
	var req dto.BatchRequest

	dec := json.NewDecoder(c.Request.Body)
	defer c.Request.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must contain only one JSON object"})
		return
	}

	if strings.TrimSpace(req.Destination) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "destination is required"})
		return
	}

	if len(req.Sources) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one source is required"})
		return
	}
	if len(req.Sources) > MaxBatchSources {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at most 4 sources are allowed"})
		return
	}

	records := services.ComputeBatch(c.Request.Context(), req.Sources, req.Destination, h.Querier)
	c.JSON(http.StatusOK, toBatchResponse(req.Destination, records))
}

func toBatchResponse(destination string, records []domain.OutcomeRecord) dto.BatchResponse {
	res := dto.BatchResponse{
		Destination: destination,
		Records:     make([]dto.RecordResponse, 0, len(records)),
	}

	for _, rec := range records {
		out := dto.RecordResponse{
			Source: rec.Source,
			Error:  rec.Err,
			IsMin:  rec.IsMin,
		}
		if rec.Result != nil {
			km := rec.Result.DistanceKm
			miles := rec.Result.DistanceMiles
			mins := rec.Result.DurationMins
			out.DistanceKm = &km
			out.DistanceMiles = &miles
			out.DurationMins = &mins
		}

		res.Records = append(res.Records, out)
	}

	return res
}
