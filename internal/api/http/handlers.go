package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tdr-menu-api/internal/domain"
	"tdr-menu-api/internal/service"

	"github.com/gorilla/mux"
)

const apiVersion = "1.0.0"

type Handler struct {
	Menus   service.MenuServiceInterface
	Catalog service.CatalogServiceInterface
	Stats   service.StatsServiceInterface
}

func NewHandler(menuSvc service.MenuServiceInterface, catalogSvc service.CatalogServiceInterface, statsSvc service.StatsServiceInterface) *Handler {
	return &Handler{
		Menus:   menuSvc,
		Catalog: catalogSvc,
		Stats:   statsSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.root).Methods("GET")
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menus", h.listMenus).Methods("GET")
	r.HandleFunc("/api/menus/{id}", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menus/{id}/qrcode", h.getMenuQRCode).Methods("GET")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/tags", h.getTags).Methods("GET")
	r.HandleFunc("/api/tags/grouped", h.getGroupedTags).Methods("GET")
	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/stats", h.getStats).Methods("GET")
}

type dataResponse struct {
	Success bool            `json:"success"`
	Data    interface{}     `json:"data"`
	Meta    *domain.ListMeta `json:"meta,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Error: message})
}

// writeServiceError maps service errors to statuses without leaking
// internals: validation errors are the caller's fault, everything else is
// a generic 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		writeError(w, http.StatusBadRequest, vErr.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Tokyo Disney Resort Menu API",
		"version": apiVersion,
		"endpoints": map[string]string{
			"menus":        "/api/menus",
			"menu_by_id":   "/api/menus/{id}",
			"menu_qrcode":  "/api/menus/{id}/qrcode",
			"restaurants":  "/api/restaurants",
			"tags":         "/api/tags",
			"tags_grouped": "/api/tags/grouped",
			"categories":   "/api/categories",
			"stats":        "/api/stats",
		},
	})
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "menu-api",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) listMenus(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	result, err := h.Menus.List(params)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	items := result.Items
	if items == nil {
		items = []domain.MenuItem{}
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: items, Meta: &result.Meta})
}

// parseListParams converts the raw query string into engine parameters,
// rejecting anything non-numeric where a number is required. Range checks
// live in ListParams.Validate.
func parseListParams(r *http.Request) (service.ListParams, error) {
	query := r.URL.Query()

	params := service.ListParams{
		Query:      query.Get("q"),
		Tags:       splitCSV(query.Get("tags")),
		Categories: splitCSV(query.Get("categories")),
		Park:       query.Get("park"),
		Area:       query.Get("area"),
		Character:  query.Get("character"),
		Sort:       query.Get("sort"),
		Order:      query.Get("order"),
		Page:       1,
		Limit:      50,
	}

	var err error
	if params.MinPrice, err = optionalInt(query.Get("min_price"), "min_price"); err != nil {
		return params, err
	}
	if params.MaxPrice, err = optionalInt(query.Get("max_price"), "max_price"); err != nil {
		return params, err
	}

	if raw := query.Get("page"); raw != "" {
		if params.Page, err = strconv.Atoi(raw); err != nil {
			return params, &service.ValidationError{Msg: "page must be an integer"}
		}
	}
	if raw := query.Get("limit"); raw != "" {
		if params.Limit, err = strconv.Atoi(raw); err != nil {
			return params, &service.ValidationError{Msg: "limit must be an integer"}
		}
	}
	if raw := query.Get("only_available"); raw != "" {
		if params.OnlyAvailable, err = strconv.ParseBool(raw); err != nil {
			return params, &service.ValidationError{Msg: "only_available must be a boolean"}
		}
	}

	return params, nil
}

func optionalInt(raw, name string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &service.ValidationError{Msg: name + " must be an integer"}
	}
	return &value, nil
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	item, err := h.Menus.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrMenuNotFound) {
			writeError(w, http.StatusNotFound, "Menu not found")
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: item})
}

func (h *Handler) getMenuQRCode(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	png, err := h.Menus.QRCode(id)
	if err != nil {
		if errors.Is(err, service.ErrMenuNotFound) || errors.Is(err, service.ErrNoSourceURL) {
			writeError(w, http.StatusNotFound, "Menu not found")
			return
		}
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.Restaurants(r.URL.Query().Get("park"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if restaurants == nil {
		restaurants = []domain.Restaurant{}
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: restaurants})
}

func (h *Handler) getTags(w http.ResponseWriter, r *http.Request) {
	tags := h.Catalog.Tags()
	if tags == nil {
		tags = []string{}
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: tags})
}

func (h *Handler) getGroupedTags(w http.ResponseWriter, r *http.Request) {
	grouped := h.Catalog.GroupedTags(r.URL.Query().Get("park"))
	writeJSON(w, http.StatusOK, grouped)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: h.Catalog.Categories()})
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: h.Stats.Stats()})
}
