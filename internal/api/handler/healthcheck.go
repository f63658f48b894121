package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
	Uptime string `json:"uptime"`
}

// HealthcheckHandler responde com o horário atual e há quanto tempo o processo está de pé
func HealthcheckHandler(started time.Time) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC()
		writeJSON(w, http.StatusOK, HealthResponse{
			Status: "ok",
			Time:   now.Format(time.RFC3339),
			Uptime: strings.TrimSpace(humanize.RelTime(started, now, "", "")),
		})
	})
}
