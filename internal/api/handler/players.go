package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/mcoot/puppybowl-roster/internal/api/apierr"
	"github.com/mcoot/puppybowl-roster/internal/api/request"
	"github.com/mcoot/puppybowl-roster/internal/api/response"
	"github.com/mcoot/puppybowl-roster/internal/dependencies/clock"
	"github.com/mcoot/puppybowl-roster/internal/model"
	"github.com/mcoot/puppybowl-roster/internal/storage"
)

// PlayerHandler handles the players collection of a cohort
type PlayerHandler struct {
	storage  storage.Storage
	clock    clock.Clock
	validate *validator.Validate
	logger   *slog.Logger
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(store storage.Storage, clk clock.Clock, logger *slog.Logger) *PlayerHandler {
	return &PlayerHandler{
		storage:  store,
		clock:    clk,
		validate: newValidator(),
		logger:   logger,
	}
}

// List handles GET /api/{cohort}/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	cohort := mux.Vars(r)["cohort"]

	players, err := h.storage.ListPlayers(r.Context(), cohort)
	if err != nil {
		h.logger.Error("failed to list players", slog.String("cohort", cohort), slog.Any("error", err))
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersDataFromModel(players))
}

// Get handles GET /api/{cohort}/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cohort := vars["cohort"]
	id := model.PlayerID(vars["id"])

	player, err := h.storage.GetPlayer(r.Context(), cohort, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			WriteError(w, apierr.NewPlayerNotFoundError(id))
			return
		}
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerData{Player: response.PlayerFromModel(player)})
}

// Create handles POST /api/{cohort}/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	cohort := mux.Vars(r)["cohort"]

	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		WriteError(w, apierr.NewValidationError(validationMessage(err)))
		return
	}

	player := req.ToModel()
	now := h.clock.Now()
	player.CreatedAt = now
	player.UpdatedAt = now

	if err := h.storage.CreatePlayer(r.Context(), cohort, player); err != nil {
		h.logger.Error("failed to create player", slog.String("cohort", cohort), slog.Any("error", err))
		WriteError(w, err)
		return
	}

	h.logger.Info("player created",
		slog.String("cohort", cohort),
		slog.String("player_id", string(player.ID)))
	response.JSON(w, http.StatusCreated, response.NewPlayerData{NewPlayer: response.PlayerFromModel(player)})
}

// Delete handles DELETE /api/{cohort}/players/{id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cohort := vars["cohort"]
	id := model.PlayerID(vars["id"])

	if err := h.storage.DeletePlayer(r.Context(), cohort, id); err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			WriteError(w, apierr.NewPlayerNotFoundError(id))
			return
		}
		WriteError(w, err)
		return
	}

	h.logger.Info("player deleted",
		slog.String("cohort", cohort),
		slog.String("player_id", string(id)))
	response.JSON(w, http.StatusOK, nil)
}

// newValidator reports fields by their JSON names
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationMessage turns validator errors into "field is required" style text
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "url":
			msgs = append(msgs, field+" must be a URL")
		case "oneof":
			msgs = append(msgs, field+" must be one of: "+fe.Param())
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}
