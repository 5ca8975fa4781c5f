package tunjangan

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/tunjangan-pas/internal/transport"
	"github.com/frahmantamala/tunjangan-pas/pkg/logger"
	"github.com/frahmantamala/tunjangan-pas/pkg/rupiah"
)

type Handler struct {
	*transport.BaseHandler
	Rekap RekapAPI
}

func NewHandler(rekap RekapAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Rekap:       rekap,
	}
}

type RekapItem struct {
	Periode      string `json:"periode"`
	Tahun        int    `json:"tahun"`
	Bulan        int    `json:"bulan"`
	Jumlah       int    `json:"jumlah"`
	Total        int64  `json:"total"`
	TotalDisplay string `json:"total_display"`
}

// GetRekap serves GET /tunjangan/rekap.
func (h *Handler) GetRekap(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Rekap.Rekap(r.Context())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	items := make([]RekapItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, RekapItem{
			Periode:      Tunjangan{Tahun: row.Tahun, Bulan: row.Bulan}.Periode(),
			Tahun:        row.Tahun,
			Bulan:        row.Bulan,
			Jumlah:       row.Jumlah,
			Total:        row.Total,
			TotalDisplay: rupiah.FormatRp(row.Total),
		})
	}
	h.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}
