package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/rsa-lab/internal/domain/crypto"

	"github.com/gin-gonic/gin"
)

// RSAHandler defines the interface for handling textbook RSA operations
type RSAHandler interface {
	GenerateKeys(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

// rsaHandler struct holds the services
type rsaHandler struct {
	textbookService crypto.TextbookService
}

// NewRSAHandler creates a new RSAHandler
func NewRSAHandler(textbookService crypto.TextbookService) RSAHandler {
	return &rsaHandler{
		textbookService: textbookService,
	}
}

// GenerateKeys handles the POST request to generate a textbook RSA key
// @Summary Generate a textbook RSA key
// @Description Generate a key pair with e = 65537 and return it with its primes and totient.
// @Tags RSA
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyRequest true "Key size in bits"
// @Success 201 {object} KeyResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *rsaHandler) GenerateKeys(ctx *gin.Context) {
	var request GenerateKeyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid key request: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	material, err := handler.textbookService.GenerateKeys(ctx.Request.Context(), request.KeySize)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("error generating key: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, KeyResponse{
		N:   material.Key.N.String(),
		E:   material.Key.E.String(),
		D:   material.Key.D.String(),
		P:   material.P.String(),
		Q:   material.Q.String(),
		Phi: material.Phi.String(),
	})
}

// Encrypt handles the POST request to encrypt an integer message
// @Summary Encrypt an integer with a textbook public key
// @Description Compute message^e mod n. The message must satisfy 0 <= message < n.
// @Tags RSA
// @Accept json
// @Produce json
// @Param requestBody body EncryptRequest true "Public key and message"
// @Success 200 {object} EncryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /encrypt [post]
func (handler *rsaHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid encrypt request: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	values, err := parseInts(map[string]string{"n": request.N, "e": request.E, "message": request.Message})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	ciphertext, err := handler.textbookService.Encrypt(ctx.Request.Context(), values["message"], crypto.PublicKey{N: values["n"], E: values["e"]})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error encrypting message: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, EncryptResponse{Ciphertext: ciphertext.String()})
}

// Decrypt handles the POST request to decrypt an integer ciphertext
// @Summary Decrypt an integer with a textbook private key
// @Description Compute ciphertext^d mod n. The ciphertext must satisfy 0 <= ciphertext < n.
// @Tags RSA
// @Accept json
// @Produce json
// @Param requestBody body DecryptRequest true "Private key and ciphertext"
// @Success 200 {object} DecryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /decrypt [post]
func (handler *rsaHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid decrypt request: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	values, err := parseInts(map[string]string{"n": request.N, "d": request.D, "ciphertext": request.Ciphertext})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	message, err := handler.textbookService.Decrypt(ctx.Request.Context(), values["ciphertext"], crypto.PrivateKey{N: values["n"], D: values["d"]})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error decrypting ciphertext: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{Message: message.String()})
}
