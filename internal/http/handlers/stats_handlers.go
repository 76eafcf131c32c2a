package handlers

import (
	"net/http"
)

// GetCatalogStatsHandler godoc
// @Summary Catalog stats for the admin dashboard
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} repo.CatalogStats
// @Failure 500 {object} ErrorResponse
// @Router /api/stats [get]
func GetCatalogStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := statsRepo.GetCatalogStats()
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "failed to fetch stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
