package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/tunjangan-pas/internal/core/record"
	"github.com/frahmantamala/tunjangan-pas/internal/notifikasi"
	"github.com/frahmantamala/tunjangan-pas/internal/pegawai"
	"github.com/frahmantamala/tunjangan-pas/internal/transport"
	"github.com/frahmantamala/tunjangan-pas/internal/tunjangan"
	"github.com/frahmantamala/tunjangan-pas/pkg/logger"
	"github.com/frahmantamala/tunjangan-pas/pkg/rupiah"
	"golang.org/x/sync/errgroup"
)

type Summary struct {
	TotalPegawai        int    `json:"total_pegawai"`
	PegawaiAktif        int    `json:"pegawai_aktif"`
	TotalDibayar        int64  `json:"total_dibayar"`
	TotalDibayarDisplay string `json:"total_dibayar_display"`
	NotifikasiBelumBaca int    `json:"notifikasi_belum_dibaca"`
}

type ServiceAPI interface {
	Summary(ctx context.Context) (Summary, error)
}

type Service struct {
	pegawai   record.Repository[pegawai.Pegawai]
	tunjangan record.Repository[tunjangan.Tunjangan]
	feed      notifikasi.FeedAPI
}

func NewService(p record.Repository[pegawai.Pegawai], t record.Repository[tunjangan.Tunjangan], feed notifikasi.FeedAPI) *Service {
	return &Service{pegawai: p, tunjangan: t, feed: feed}
}

// Summary loads the three sources concurrently.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	var (
		out     Summary
		staff   []pegawai.Pegawai
		ledger  []tunjangan.Tunjangan
		unread  int
		g, gctx = errgroup.WithContext(ctx)
	)

	g.Go(func() error {
		var err error
		staff, err = s.pegawai.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		ledger, err = s.tunjangan.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		unread, err = s.feed.UnreadCount(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	out.TotalPegawai = len(staff)
	for _, p := range staff {
		if p.IsAktif() {
			out.PegawaiAktif++
		}
	}
	out.TotalDibayar = tunjangan.TotalDibayar(ledger)
	out.TotalDibayarDisplay = rupiah.FormatRp(out.TotalDibayar)
	out.NotifikasiBelumBaca = unread
	return out, nil
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Summary(r.Context())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, summary)
}
