package player

import (
	"encoding/json"
	"errors"
	"net/http"

	"atlas-players/rest"

	"github.com/Chronicle20/atlas-rest/server"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jtumidanski/api2go/jsonapi"
	"github.com/sirupsen/logrus"
)

// InitializeRoutes initializes player REST routes
func InitializeRoutes(pp ProcessorProvider) func(serverInfo jsonapi.ServerInformation) func(router *mux.Router, logger logrus.FieldLogger) {
	return func(serverInfo jsonapi.ServerInformation) func(router *mux.Router, logger logrus.FieldLogger) {
		return func(router *mux.Router, logger logrus.FieldLogger) {
			register := rest.RegisterHandler(logger)(serverInfo)
			registerInput := rest.RegisterInputHandler[RestModel](logger)(serverInfo)

			// count must be registered ahead of the {playerId} routes
			router.HandleFunc("/players/count", register("count_players", countPlayersHandler(pp))).Methods(http.MethodGet)

			router.HandleFunc("/players", register("get_players", getPlayersHandler(pp))).Methods(http.MethodGet)
			router.HandleFunc("/players", registerInput("create_player", createPlayerHandler(pp))).Methods(http.MethodPost)
			router.HandleFunc("/players/{playerId}", register("get_player", getPlayerHandler(pp))).Methods(http.MethodGet)
			router.HandleFunc("/players/{playerId}", registerInput("update_player", updatePlayerHandler(pp))).Methods(http.MethodPost, http.MethodPatch)
			router.HandleFunc("/players/{playerId}", register("delete_player", deletePlayerHandler(pp))).Methods(http.MethodDelete)
		}
	}
}

// getPlayersHandler returns one page of the players matching the query
func getPlayersHandler(pp ProcessorProvider) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()

			criteria, err := ParseCriteria(query)
			if err != nil {
				rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
				return
			}
			order, err := ParseOrderParam(query)
			if err != nil {
				rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
				return
			}
			page, err := ParsePage(query)
			if err != nil {
				rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
				return
			}

			ps, err := pp(d.Logger(), d.Context()).GetAll(criteria, order, page)()
			if err != nil {
				writeProcessorError(d.Logger(), w, err)
				return
			}

			res, err := TransformAll(ps)
			if err != nil {
				rest.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to transform player data")
				return
			}

			queryParams := jsonapi.ParseQueryFields(&query)
			server.MarshalResponse[[]RestModel](d.Logger())(w)(c.ServerInformation())(queryParams)(res)
		}
	}
}

// countPlayersHandler returns the number of players matching the query as a bare integer
func countPlayersHandler(pp ProcessorProvider) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			criteria, err := ParseCriteria(r.URL.Query())
			if err != nil {
				rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
				return
			}

			count, err := pp(d.Logger(), d.Context()).Count(criteria)()
			if err != nil {
				writeProcessorError(d.Logger(), w, err)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(count)
		}
	}
}

func getPlayerHandler(pp ProcessorProvider) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParsePlayerId(d.Logger(), func(playerId uint32) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				p, err := pp(d.Logger(), d.Context()).GetById(playerId)()
				if err != nil {
					writeProcessorError(d.Logger(), w, err)
					return
				}
				writePlayer(d, c, w, r, p)
			}
		})
	}
}

func createPlayerHandler(pp ProcessorProvider) rest.InputHandler[RestModel] {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext, input RestModel) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			p, err := pp(d.Logger(), d.Context()).CreateAndEmit(uuid.New(), Extract(input))
			if err != nil {
				writeProcessorError(d.Logger(), w, err)
				return
			}
			writePlayer(d, c, w, r, p)
		}
	}
}

func updatePlayerHandler(pp ProcessorProvider) rest.InputHandler[RestModel] {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext, input RestModel) http.HandlerFunc {
		return rest.ParsePlayerId(d.Logger(), func(playerId uint32) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				p, err := pp(d.Logger(), d.Context()).UpdateAndEmit(uuid.New(), playerId, Extract(input))
				if err != nil {
					writeProcessorError(d.Logger(), w, err)
					return
				}
				writePlayer(d, c, w, r, p)
			}
		})
	}
}

func deletePlayerHandler(pp ProcessorProvider) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParsePlayerId(d.Logger(), func(playerId uint32) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				err := pp(d.Logger(), d.Context()).DeleteAndEmit(uuid.New(), playerId)
				if err != nil {
					writeProcessorError(d.Logger(), w, err)
					return
				}
				w.WriteHeader(http.StatusOK)
			}
		})
	}
}

func writePlayer(d *rest.HandlerDependency, c *rest.HandlerContext, w http.ResponseWriter, r *http.Request, p Player) {
	res, err := Transform(p)
	if err != nil {
		rest.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to transform player data")
		return
	}

	query := r.URL.Query()
	queryParams := jsonapi.ParseQueryFields(&query)
	server.MarshalResponse[RestModel](d.Logger())(w)(c.ServerInformation())(queryParams)(res)
}

// writeProcessorError maps an error kind to its response status.
func writeProcessorError(l logrus.FieldLogger, w http.ResponseWriter, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		l.WithError(err).Errorf("Unable to process player request.")
	}
	rest.WriteErrorResponse(w, status, err.Error())
}

// StatusFor returns the HTTP status for a processor error.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidRecord), errors.Is(err, ErrInvalidIdentifier):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
