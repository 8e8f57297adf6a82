package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"atlas-players/tracing"

	"github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jtumidanski/api2go/jsonapi"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/sirupsen/logrus"
)

const (
	TenantIdHeader     = "TENANT_ID"
	RegionHeader       = "REGION"
	MajorVersionHeader = "MAJOR_VERSION"
	MinorVersionHeader = "MINOR_VERSION"
)

type HandlerDependency struct {
	l   logrus.FieldLogger
	ctx context.Context
}

func (h HandlerDependency) Logger() logrus.FieldLogger {
	return h.l
}

func (h HandlerDependency) Context() context.Context {
	return h.ctx
}

type HandlerContext struct {
	si jsonapi.ServerInformation
}

func (h HandlerContext) ServerInformation() jsonapi.ServerInformation {
	return h.si
}

type GetHandler func(d *HandlerDependency, c *HandlerContext) http.HandlerFunc

type InputHandler[M any] func(d *HandlerDependency, c *HandlerContext, model M) http.HandlerFunc

// ParseInput decodes a JSON:API document from the request body into M.
func ParseInput[M any](d *HandlerDependency, c *HandlerContext, next InputHandler[M]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var model M

		body, err := io.ReadAll(r.Body)
		if err != nil {
			d.Logger().WithError(err).Errorf("Unable to read request body.")
			WriteErrorResponse(w, http.StatusBadRequest, "unable to read request body")
			return
		}
		defer r.Body.Close()

		err = jsonapi.Unmarshal(body, &model)
		if err != nil {
			d.Logger().WithError(err).Errorf("Unable to unmarshal request body.")
			WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		next(d, c, model)(w, r)
	}
}

// RegisterHandler wraps a handler in a server span and resolves the request tenant.
func RegisterHandler(l logrus.FieldLogger) func(si jsonapi.ServerInformation) func(handlerName string, handler GetHandler) http.HandlerFunc {
	return func(si jsonapi.ServerInformation) func(handlerName string, handler GetHandler) http.HandlerFunc {
		return func(handlerName string, handler GetHandler) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				wireCtx, _ := opentracing.GlobalTracer().Extract(opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(r.Header))
				sl, span := tracing.StartSpan(l, handlerName, ext.RPCServerOption(wireCtx))
				defer span.Finish()

				t, err := ParseTenant(r.Header)
				if err != nil {
					sl.WithError(err).Errorf("Unable to resolve tenant for request.")
					WriteErrorResponse(w, http.StatusBadRequest, err.Error())
					return
				}

				ctx := tenant.WithContext(opentracing.ContextWithSpan(r.Context(), span), t)
				fl := sl.WithField("tenant", t.Id().String())

				handler(&HandlerDependency{l: fl, ctx: ctx}, &HandlerContext{si: si})(w, r)
			}
		}
	}
}

func RegisterInputHandler[M any](l logrus.FieldLogger) func(si jsonapi.ServerInformation) func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
	return func(si jsonapi.ServerInformation) func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
		return func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
			return RegisterHandler(l)(si)(handlerName, func(d *HandlerDependency, c *HandlerContext) http.HandlerFunc {
				return ParseInput[M](d, c, handler)
			})
		}
	}
}

// ParseTenant builds the tenant from the request headers.
func ParseTenant(h http.Header) (tenant.Model, error) {
	id, err := uuid.Parse(h.Get(TenantIdHeader))
	if err != nil {
		return tenant.Model{}, errors.New("invalid or missing " + TenantIdHeader + " header")
	}
	region := h.Get(RegionHeader)
	if region == "" {
		return tenant.Model{}, errors.New("missing " + RegionHeader + " header")
	}
	major, err := strconv.ParseUint(h.Get(MajorVersionHeader), 10, 16)
	if err != nil {
		return tenant.Model{}, errors.New("invalid or missing " + MajorVersionHeader + " header")
	}
	minor, err := strconv.ParseUint(h.Get(MinorVersionHeader), 10, 16)
	if err != nil {
		return tenant.Model{}, errors.New("invalid or missing " + MinorVersionHeader + " header")
	}
	return tenant.Create(id, region, uint16(major), uint16(minor))
}

type PlayerIdHandler func(playerId uint32) http.HandlerFunc

// ParsePlayerId extracts a positive player identifier from the route.
func ParsePlayerId(l logrus.FieldLogger, next PlayerIdHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value, err := strconv.ParseUint(mux.Vars(r)["playerId"], 10, 32)
		if err != nil || value == 0 {
			l.WithField("playerId", mux.Vars(r)["playerId"]).Errorf("Unable to properly parse playerId from path.")
			WriteErrorResponse(w, http.StatusBadRequest, "invalid player identifier")
			return
		}
		next(uint32(value))(w, r)
	}
}

// WriteErrorResponse writes a JSON error response
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := map[string]interface{}{
		"error": map[string]interface{}{
			"status": statusCode,
			"title":  http.StatusText(statusCode),
			"detail": message,
		},
	}

	_ = json.NewEncoder(w).Encode(errorResponse)
}
