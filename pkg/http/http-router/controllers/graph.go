package controllers

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"github.com/lintang-b-s/intersection-graph/pkg/datastructure"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"

	helper "github.com/lintang-b-s/intersection-graph/pkg/http/http-router/router-helper"

	"go.uber.org/zap"
)

type graphAPI struct {
	graphService GraphService
	log          *zap.Logger
}

func New(graphService GraphService, log *zap.Logger) *graphAPI {
	return &graphAPI{
		graphService: graphService,
		log:          log,
	}
}

func (api *graphAPI) Routes(group *helper.RouteGroup) {
	group.GET("/nearest", api.nearest)
	group.GET("/route", api.route)
	group.GET("/streets", api.streets)
	group.GET("/intersections/:id", api.describe)
	group.POST("/export", api.exportWebGraph)
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// intersectionResponse is the wire shape of one intersection.
type intersectionResponse struct {
	ID          string   `json:"id"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Streets     []string `json:"streets"`
	Type        string   `json:"type"`
	Connections []string `json:"connections"`
}

func toIntersectionResponse(node datastructure.IntersectionNode) intersectionResponse {
	return intersectionResponse{
		ID:          node.ID,
		Lat:         node.Lat,
		Lng:         node.Lng,
		Streets:     node.StreetNames,
		Type:        node.IntersectionType,
		Connections: node.Connections,
	}
}

// nearestRequest model info
//
//	@Description	request body for nearest-intersection lookup.
type nearestRequest struct {
	// pointers so that 0 (the equator, the prime meridian) passes required
	Lat *float64 `json:"lat" validate:"required,min=-90,max=90"`   // probe latitude, WGS84 decimal degrees.
	Lng *float64 `json:"lng" validate:"required,min=-180,max=180"` // probe longitude, WGS84 decimal degrees.
}

// nearest godoc
// @Summary		nearest operation returns the street intersection closest to the given coordinate.
// @Description	nearest operation returns the street intersection closest to the given coordinate.
// @Tags			graph
// @ID nearest
// @Param			body	body	nearestRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/nearest [get]
// @Success		200	{object}	intersectionResponse
// @Failure		400	{object}	errorResponse
// @Failure		404	{object}	errorResponse
func (api *graphAPI) nearest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request nearestRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", translateError(err)))
		return
	}

	nearest, ok := api.graphService.NearestIntersection(*request.Lat, *request.Lng)
	if !ok {
		api.NotFoundResponse(w, r, "the intersection graph is empty")
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": toIntersectionResponse(nearest)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// routeRequest model info
//
//	@Description	request body for shortest-path computation between two intersections.
type routeRequest struct {
	From string `json:"from" validate:"required"` // start intersection id.
	To   string `json:"to" validate:"required"`   // destination intersection id.
}

type routeResponse struct {
	Found          bool     `json:"found"`
	Path           []string `json:"path"`
	DistanceMeters *float64 `json:"distance_meters"` // null when no route exists.
}

// route godoc
// @Summary		route operation computes the minimum-distance path between two intersections.
// @Description	route operation computes the minimum-distance path between two intersections. An unknown endpoint or a disconnected pair is answered with found=false, not an error.
// @Tags			graph
// @ID route
// @Param			body	body	routeRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/route [get]
// @Success		200	{object}	routeResponse
// @Failure		400	{object}	errorResponse
func (api *graphAPI) route(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request routeRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", translateError(err)))
		return
	}

	path, dist := api.graphService.ShortestRoute(request.From, request.To)

	response := routeResponse{Path: path}
	if !math.IsInf(dist, 1) {
		response.Found = true
		response.DistanceMeters = &dist
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": response}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// streetRequest model info
//
//	@Description	request body for street-name search. An empty name matches every named intersection.
type streetRequest struct {
	Name string `json:"name"` // street name substring, matched case-insensitively.
}

// streets godoc
// @Summary		streets operation lists every intersection whose street names contain the query.
// @Description	streets operation lists every intersection whose street names contain the query, case-insensitively.
// @Tags			graph
// @ID streets
// @Param			body	body	streetRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/streets [get]
// @Success		200	{object}	intersectionResponse
// @Failure		400	{object}	errorResponse
func (api *graphAPI) streets(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request streetRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	results := api.graphService.SearchStreet(request.Name)

	data := make([]intersectionResponse, 0, len(results))
	for _, node := range results {
		data = append(data, toIntersectionResponse(node))
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": data}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// describe godoc
// @Summary		describe operation summarizes one intersection and its reachable neighbors.
// @Description	describe operation summarizes one intersection with the distance to each reachable neighbor.
// @Tags			graph
// @ID describe
// @Produce		application/json
// @Router			/api/intersections/{id} [get]
// @Success		200	{object}	graph.IntersectionInfo
// @Failure		404	{object}	errorResponse
func (api *graphAPI) describe(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	id := params.ByName("id")

	info, ok := api.graphService.DescribeIntersection(id)
	if !ok {
		api.NotFoundResponse(w, r, fmt.Sprintf("intersection %q not found", id))
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": info}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// exportRequest model info
//
//	@Description	request body for the web-app graph export.
type exportRequest struct {
	Output string `json:"output" validate:"required"` // output file path; a .gz suffix compresses the file.
}

// exportWebGraph godoc
// @Summary		export operation writes the web-app graph document and returns its metadata.
// @Description	export operation writes nodes, deduplicated undirected edges and bounds metadata to the given path.
// @Tags			graph
// @ID export
// @Param			body	body	exportRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/export [post]
// @Success		200	{object}	export.Metadata
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *graphAPI) exportWebGraph(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request exportRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", translateError(err)))
		return
	}

	metadata, err := api.graphService.ExportWebGraph(request.Output)
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": metadata}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func translateError(err error) []string {
	if err == nil {
		return nil
	}

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validator.New(), trans)

	validatorErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	errs := make([]string, 0, len(validatorErrs))
	for _, e := range validatorErrs {
		errs = append(errs, e.Translate(trans))
	}
	return errs
}
