package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOpenAPIContract validates the published API description and checks
// that it still declares the operations and status codes the server
// implements. A drift between the two is a release blocker, not a runtime
// concern, so it lives in a test.
func TestOpenAPIContract(t *testing.T) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("../../../../api/openapi.yml")
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))

	orders := doc.Paths.Find("/orders")
	require.NotNil(t, orders)
	require.NotNil(t, orders.Post)
	require.NotNil(t, orders.Get)

	orderByID := doc.Paths.Find("/orders/{orderId}")
	require.NotNil(t, orderByID)
	require.NotNil(t, orderByID.Get)
	require.NotNil(t, orderByID.Delete)

	assert.NotNil(t, orders.Post.Responses.Status(http.StatusCreated))
	assert.NotNil(t, orders.Post.Responses.Status(http.StatusUnprocessableEntity))
	assert.NotNil(t, orderByID.Get.Responses.Status(http.StatusNotFound))
	assert.NotNil(t, orderByID.Delete.Responses.Status(http.StatusNoContent))
	assert.NotNil(t, orderByID.Delete.Responses.Status(http.StatusBadRequest))

	statusSchema := doc.Components.Schemas["Order"].Value.Properties["orderStatus"]
	require.NotNil(t, statusSchema)
	assert.ElementsMatch(t,
		[]any{"pending", "executed", "canceled"},
		statusSchema.Value.Enum,
	)
}
