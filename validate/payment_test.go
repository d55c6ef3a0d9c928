package validate

import (
	"net/http/httptest"
	"strings"
	"testing"

	"ground_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentApp() *fiber.App {
	app := fiber.New()
	app.Post("/pay", CompletePayment(), func(c *fiber.Ctx) error {
		input := c.Locals("input").(model.CompletePaymentInput)
		return c.JSON(input)
	})
	return app
}

func postPayment(t *testing.T, app *fiber.App, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/pay", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestCompletePaymentInputAllowsZeroAmount(t *testing.T) {
	app := paymentApp()

	// a full discount makes the expected payment 0; the middleware must let
	// it through to the reconciliation engine
	status := postPayment(t, app,
		`{"paymentMethod":"cash","amount":0,"discountAmount":700}`)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestCompletePaymentInputRejections(t *testing.T) {
	app := paymentApp()

	cases := []struct {
		name string
		body string
	}{
		{"negative amount", `{"paymentMethod":"cash","amount":-1}`},
		{"missing method", `{"amount":100}`},
		{"unknown method", `{"paymentMethod":"barter","amount":100}`},
		{"unknown online sub-method", `{"paymentMethod":"online","amount":100,"onlineMethod":"cheque"}`},
		{"negative extra charge", `{"paymentMethod":"cash","amount":100,"extraCharges":[{"category":"floodlights","amount":-5}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, fiber.StatusBadRequest, postPayment(t, app, tc.body))
		})
	}
}
