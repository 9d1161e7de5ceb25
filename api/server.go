package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"moverz/core/attribution"
	"moverz/core/baseline"
	"moverz/core/fee"
	"moverz/core/geo"
	"moverz/core/move"
	"moverz/core/pricing"
	"moverz/core/routing"
	"moverz/internal/errors"
	"moverz/internal/logging"
	"moverz/internal/metrics"
	"moverz/internal/store"
)

// Server is the HTTP funnel API.
type Server struct {
	engine   *pricing.Engine
	resolver routing.Resolver
	geocoder geo.Geocoder
	store    *store.Store
	metrics  *metrics.Registry
	version  string
}

// NewServer assembles the API server. resolver, geocoder, store and metrics
// may be nil; the corresponding endpoints then answer 503.
func NewServer(engine *pricing.Engine, resolver routing.Resolver, geocoder geo.Geocoder, st *store.Store, reg *metrics.Registry, version string) *Server {
	return &Server{
		engine:   engine,
		resolver: resolver,
		geocoder: geocoder,
		store:    st,
		metrics:  reg,
		version:  version,
	}
}

// Routes returns a chi.Router with every endpoint mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/api/quote", s.handleQuote)
	r.Post("/api/baseline", s.handleBaseline)
	r.Post("/api/snapshot", s.handleSnapshot)
	r.Post("/api/distance", s.handleDistance)
	r.Get("/api/address", s.handleAddressSearch)
	r.Post("/api/leads", s.handleSaveLead)
	r.Get("/api/leads/{id}", s.handleGetLead)

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	return r
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var wire QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	req, err := wire.ToMove(s.engine.Tariff())
	if err != nil {
		s.writeError(w, "INVALID_INPUT", err.Error(), http.StatusBadRequest)
		return
	}

	result := s.engine.Compute(req)
	if result == nil {
		if s.metrics != nil {
			s.metrics.QuotesNotPriceable.Inc()
		}
		s.writeError(w, "NOT_PRICEABLE", "insufficient information to price this move", http.StatusUnprocessableEntity)
		return
	}

	resp := QuoteResponse{
		VolumeM3:      result.VolumeM3,
		PriceMin:      result.PriceMin,
		PriceFinal:    result.PriceFinal,
		PriceMax:      result.PriceMax,
		ServicesTotal: result.ServicesTotal,
		FeeEur:        fee.Provision(pricing.DisplayedCenter(result), s.engine.Tariff()),
		TariffVersion: s.engine.Tariff().Version,
	}
	for _, tier := range move.AllTiers() {
		tierReq := req
		tierReq.Tier = tier
		tierRes := s.engine.Compute(tierReq)
		if tierRes == nil {
			continue
		}
		resp.PerTier = append(resp.PerTier, TierQuoteDTO{
			Tier:   tier.String(),
			Min:    tierRes.PriceMin,
			Final:  tierRes.PriceFinal,
			Max:    tierRes.PriceMax,
			FeeEur: fee.Provision(pricing.DisplayedCenter(tierRes), s.engine.Tariff()),
		})
	}

	if s.metrics != nil {
		s.metrics.QuotesComputed.Inc()
		s.metrics.ComputeSeconds.Observe(time.Since(start).Seconds())
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBaseline(w http.ResponseWriter, r *http.Request) {
	var wire BaselineRequest
	if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	housing, ok := move.NormalizeHousing(wire.Housing)
	if !ok {
		s.writeError(w, "INVALID_INPUT", "unknown housing type", http.StatusBadRequest)
		return
	}
	tier := move.TierStandard
	if wire.Tier != "" {
		if normalized, ok := move.NormalizeTier(wire.Tier); ok {
			tier = normalized
		}
	}

	frozen := baseline.Estimate(s.engine, wire.SurfaceM2, wire.CityDistanceKm, housing, tier)
	if frozen == nil {
		s.writeError(w, "NOT_PRICEABLE", "surface out of range", http.StatusUnprocessableEntity)
		return
	}
	s.writeJSON(w, http.StatusOK, frozen)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	var wire SnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if wire.Baseline == nil {
		s.writeError(w, "INVALID_INPUT", "a frozen baseline is required", http.StatusBadRequest)
		return
	}

	req, err := wire.Quote.ToMove(s.engine.Tariff())
	if err != nil {
		s.writeError(w, "INVALID_INPUT", err.Error(), http.StatusBadRequest)
		return
	}

	in := attribution.Input{
		Request:            req,
		BaselineDistanceKm: wire.Baseline.DistanceKm,
		Confirmed:          wire.Confirmations(),
	}
	snap, err := attribution.BuildSnapshot(s.engine, in, wire.Baseline)
	if err != nil {
		if errors.IsType(err, errors.TypeNotPriceable) {
			s.writeError(w, "NOT_PRICEABLE", err.Error(), http.StatusUnprocessableEntity)
			return
		}
		s.writeError(w, "INVALID_INPUT", err.Error(), http.StatusBadRequest)
		return
	}

	if s.metrics != nil {
		s.metrics.SnapshotsBuilt.Inc()
	}
	s.writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleDistance(w http.ResponseWriter, r *http.Request) {
	if s.resolver == nil {
		s.writeError(w, "UNAVAILABLE", "routing is not configured", http.StatusServiceUnavailable)
		return
	}

	var wire DistanceRequest
	if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	resolved, err := s.resolver.ResolveDistance(r.Context(), wire.Origin, wire.Destination)
	if err != nil {
		logging.Warn("distance resolution failed", zap.Error(err))
		s.writeError(w, "ROUTING_ERROR", "could not resolve distance", http.StatusBadGateway)
		return
	}
	s.writeJSON(w, http.StatusOK, resolved)
}

// handleAddressSearch resolves a free-text address to candidate
// coordinates, which the funnel then feeds to /api/distance.
func (s *Server) handleAddressSearch(w http.ResponseWriter, r *http.Request) {
	if s.geocoder == nil {
		s.writeError(w, "UNAVAILABLE", "geocoding is not configured", http.StatusServiceUnavailable)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		s.writeError(w, "INVALID_INPUT", "query parameter q is required", http.StatusBadRequest)
		return
	}

	addresses, err := s.geocoder.Search(r.Context(), query)
	if err != nil {
		logging.Warn("address search failed", zap.Error(err))
		s.writeError(w, "GEOCODING_ERROR", "could not search addresses", http.StatusBadGateway)
		return
	}
	s.writeJSON(w, http.StatusOK, addresses)
}

func (s *Server) handleSaveLead(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, "UNAVAILABLE", "lead store is not configured", http.StatusServiceUnavailable)
		return
	}

	var wire LeadRequest
	if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if len(wire.Snapshot) == 0 {
		s.writeError(w, "INVALID_INPUT", "a snapshot payload is required", http.StatusBadRequest)
		return
	}

	id, err := s.store.SaveLead(r.Context(), wire.ContactEmail, wire.Snapshot)
	if err != nil {
		logging.Error("save lead failed", zap.Error(err))
		s.writeError(w, "STORAGE_ERROR", "could not save lead", http.StatusInternalServerError)
		return
	}

	if s.metrics != nil {
		s.metrics.LeadsSaved.Inc()
	}
	s.writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (s *Server) handleGetLead(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, "UNAVAILABLE", "lead store is not configured", http.StatusServiceUnavailable)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.writeError(w, "INVALID_INPUT", "invalid lead id", http.StatusBadRequest)
		return
	}

	lead, err := s.store.GetLead(r.Context(), id)
	if err != nil {
		if errors.IsType(err, errors.TypeNotFound) {
			s.writeError(w, "NOT_FOUND", "lead not found", http.StatusNotFound)
			return
		}
		logging.Error("get lead failed", zap.Error(err))
		s.writeError(w, "STORAGE_ERROR", "could not read lead", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, lead)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"version": s.version,
		"tariff":  s.engine.Tariff().Version,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("encode response failed", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, status, errorResponse{Code: code, Message: message})
}
