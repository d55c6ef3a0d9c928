package handler

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"ground_manager/constants"
	"ground_manager/helper"
	"ground_manager/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var (
	cldOnce sync.Once
	cld     *cloudinary.Cloudinary
)

func getCloudinary() *cloudinary.Cloudinary {
	cldOnce.Do(func() {
		cld = helper.InitCloudinary()
	})
	return cld
}

// GenerateSignature signs a direct-to-cloudinary upload so payment proofs
// never pass through this server.
func GenerateSignature(c *fiber.Ctx) error {
	_, authorized := helper.GetInfoAccountFromToken(c)
	if !authorized {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	type SigParams struct {
		Folder       string `json:"folder"`
		PublicID     string `json:"public_id"`
		ResourceType string `json:"resource_type"` // parsed but never signed
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	timestamp := time.Now().Unix()
	if params.PublicID == "" {
		params.PublicID = "proof_" + uuid.NewString()
	}

	paramMap := map[string]string{
		"timestamp": fmt.Sprintf("%d", timestamp),
		"public_id": params.PublicID,
	}
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Cloudinary signs the raw key=value pairs joined by & with the secret
	// appended, no URL encoding.
	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(os.Getenv("CLOUDINARY_API_SECRET"))

	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"publicId":  params.PublicID,
		"apiKey":    os.Getenv("CLOUDINARY_API_KEY"),
		"cloudName": os.Getenv("CLOUDINARY_CLOUD_NAME"),
	})
}

// GetProofAsset resolves a stored proof reference to its hosted URL so the
// admin screens can preview advance and payment proofs.
func GetProofAsset(c *fiber.Ctx) error {
	_, authorized := helper.GetInfoAccountFromToken(c)
	if !authorized {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}
	publicID := c.Query("publicId")
	if publicID == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("publicId is required"))
	}

	asset, err := getCloudinary().Admin.Asset(context.Background(), admin.AssetParams{PublicID: publicID})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if asset.Error.Message != "" {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New(asset.Error.Message))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"publicId":  asset.PublicID,
		"secureUrl": asset.SecureURL,
		"format":    asset.Format,
		"bytes":     asset.Bytes,
		"createdAt": asset.CreatedAt,
	})
}
