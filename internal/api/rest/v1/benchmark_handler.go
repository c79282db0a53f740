package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MGTheTrain/rsa-lab/internal/domain/benchmarks"

	"github.com/gin-gonic/gin"
)

// BenchmarkHandler defines the interface for handling benchmark runs and their history
type BenchmarkHandler interface {
	Run(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// benchmarkHandler struct holds the services
type benchmarkHandler struct {
	runService      benchmarks.RunService
	metadataService benchmarks.MetadataService
}

// NewBenchmarkHandler creates a new BenchmarkHandler
func NewBenchmarkHandler(runService benchmarks.RunService, metadataService benchmarks.MetadataService) BenchmarkHandler {
	return &benchmarkHandler{
		runService:      runService,
		metadataService: metadataService,
	}
}

// Run handles the POST request to time one operation
// @Summary Run a benchmark
// @Description Time an RSA operation for a number of iterations and store the statistics.
// @Tags Benchmark
// @Accept json
// @Produce json
// @Param requestBody body RunBenchmarkRequest true "Benchmark parameters"
// @Success 201 {object} BenchmarkResultResponse
// @Failure 400 {object} ErrorResponse
// @Router /benchmarks [post]
func (handler *benchmarkHandler) Run(ctx *gin.Context) {
	var request RunBenchmarkRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid benchmark request: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	result, err := handler.runService.RunOperation(ctx.Request.Context(), request.toDomain())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("error running benchmark: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, newBenchmarkResultResponse(result))
}

// List handles the GET request to list stored results with optional query parameters
// @Summary List benchmark results based on query parameters
// @Description Fetch stored results filtered by implementation, operation or name, with pagination and sorting options.
// @Tags Benchmark
// @Accept json
// @Produce json
// @Param implementation query string false "textbook or library"
// @Param operation query string false "key_generation, encryption or decryption"
// @Param name query string false "Benchmark name"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} BenchmarkResultResponse
// @Failure 400 {object} ErrorResponse
// @Router /benchmarks [get]
func (handler *benchmarkHandler) List(ctx *gin.Context) {
	query := benchmarks.NewQuery()

	if implementation := ctx.Query("implementation"); len(implementation) > 0 {
		query.Implementation = implementation
	}

	if operation := ctx.Query("operation"); len(operation) > 0 {
		query.Operation = operation
	}

	if name := ctx.Query("name"); len(name) > 0 {
		query.Name = name
	}

	for param, target := range map[string]*int{"limit": &query.Limit, "offset": &query.Offset} {
		value := ctx.Query(param)
		if len(value) == 0 {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %s must be an integer", param)})
			return
		}
		*target = n
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	results, err := handler.metadataService.List(ctx.Request.Context(), query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err.Error())})
		return
	}

	listResponse := []BenchmarkResultResponse{}
	for _, result := range results {
		listResponse = append(listResponse, newBenchmarkResultResponse(result))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a stored result by ID
// @Summary Retrieve a benchmark result by ID
// @Tags Benchmark
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} BenchmarkResultResponse
// @Failure 404 {object} ErrorResponse
// @Router /benchmarks/{id} [get]
func (handler *benchmarkHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	result, err := handler.metadataService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		writeLookupError(ctx, id, err)
		return
	}

	ctx.JSON(http.StatusOK, newBenchmarkResultResponse(result))
}

// DeleteByID handles the DELETE request to remove a stored result by ID
// @Summary Delete a benchmark result by ID
// @Tags Benchmark
// @Produce json
// @Param id path string true "Result ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /benchmarks/{id} [delete]
func (handler *benchmarkHandler) DeleteByID(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := handler.metadataService.DeleteByID(ctx.Request.Context(), id); err != nil {
		writeLookupError(ctx, id, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func writeLookupError(ctx *gin.Context, id string, err error) {
	if errors.Is(err, benchmarks.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("benchmark result with id %s not found", id)})
		return
	}
	ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
}
