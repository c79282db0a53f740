package v1

import (
	"github.com/MGTheTrain/rsa-lab/internal/domain/benchmarks"
	"github.com/MGTheTrain/rsa-lab/internal/domain/crypto"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	textbookService crypto.TextbookService,
	benchmarkRunService benchmarks.RunService,
	benchmarkMetadataService benchmarks.MetadataService) {

	v1 := r.Group(BasePath)

	// Textbook RSA Routes
	rsaHandler := NewRSAHandler(textbookService)
	v1.POST("/keys", rsaHandler.GenerateKeys)
	v1.POST("/encrypt", rsaHandler.Encrypt)
	v1.POST("/decrypt", rsaHandler.Decrypt)

	// Benchmark Routes
	benchmarkHandler := NewBenchmarkHandler(benchmarkRunService, benchmarkMetadataService)
	v1.POST("/benchmarks", benchmarkHandler.Run)
	v1.GET("/benchmarks", benchmarkHandler.List)
	v1.GET("/benchmarks/:id", benchmarkHandler.GetByID)
	v1.DELETE("/benchmarks/:id", benchmarkHandler.DeleteByID)
}
