package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perform(t *testing.T, h fiber.Handler) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Get("/", h)

	res, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	return res.StatusCode, out
}

func TestJsonOK(t *testing.T) {
	status, out := perform(t, func(c *fiber.Ctx) error {
		return JsonOK(c, "", fiber.Map{"registrationId": "SG123456"})
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "ok", out["message"])
	data := out["data"].(map[string]any)
	assert.Equal(t, "SG123456", data["registrationId"])
}

func TestJsonError(t *testing.T) {
	status, out := perform(t, func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusNotFound, "Registration not found")
	})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "Registration not found", out["message"])
	assert.Equal(t, "NOT_FOUND", out["error_code"])
	_, hasData := out["data"]
	assert.False(t, hasData)
}

func TestJsonErrorWithData(t *testing.T) {
	status, out := perform(t, func(c *fiber.Ctx) error {
		return JsonErrorWithData(c, fiber.StatusBadRequest, "Transaction ID already exists", fiber.Map{
			"fullName": "राम पाटील",
			"phone":    "9000000001",
		})
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	data := out["data"].(map[string]any)
	assert.Equal(t, "राम पाटील", data["fullName"])
	assert.Equal(t, "9000000001", data["phone"])
}

func TestValidationError(t *testing.T) {
	type payload struct {
		Phone string `validate:"required"`
	}
	v := validator.New()

	status, out := perform(t, func(c *fiber.Ctx) error {
		return ValidationError(c, v.Struct(payload{}))
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	errs := out["errors"].(map[string]any)
	assert.Equal(t, "required", errs["Phone"])
}
