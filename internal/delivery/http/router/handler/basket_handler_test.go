package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazaar/internal/delivery/http/validator"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBasketUsecase records the arguments the handler forwards.
type stubBasketUsecase struct {
	removedIDs []uuid.UUID
	deleted    int64
}

func (s *stubBasketUsecase) Get(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	return &entity.Order{ID: uuid.New(), UserID: userID, State: entity.OrderStateBasket}, nil
}

func (s *stubBasketUsecase) AddItems(ctx context.Context, userID uuid.UUID, items []usecase.BasketItemInput) (int, error) {
	return len(items), nil
}

func (s *stubBasketUsecase) RemoveItems(ctx context.Context, userID uuid.UUID, itemIDs []uuid.UUID) (int64, error) {
	s.removedIDs = itemIDs
	return s.deleted, nil
}

func (s *stubBasketUsecase) UpdateQuantities(ctx context.Context, userID uuid.UUID, updates []usecase.BasketQuantityInput) (int, error) {
	return len(updates), nil
}

func newBasketTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/basket", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.Set("userID", uuid.New())

	return c, rec
}

func newTestBasketHandler(stub *stubBasketUsecase) *BasketHandler {
	return NewBasketHandler(BasketHandlerParams{
		BasketUC: stub,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestBasketHandler_RemoveItems_SkipsUnparseableIDs(t *testing.T) {
	valid := uuid.New()
	stub := &stubBasketUsecase{deleted: 1}
	h := newTestBasketHandler(stub)

	body := fmt.Sprintf(`{"items": [%q, "not-an-id", "123"]}`, valid)
	c, rec := newBasketTestContext(t, body)

	require.NoError(t, h.RemoveItems(c))

	// The junk ids are dropped, not rejected; only the parseable one
	// reaches the service.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []uuid.UUID{valid}, stub.removedIDs)

	var envelope struct {
		Data map[string]int64 `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, int64(1), envelope.Data["deleted"])
}

func TestBasketHandler_RemoveItems_AllUnparseableDeletesNothing(t *testing.T) {
	stub := &stubBasketUsecase{deleted: 99}
	h := newTestBasketHandler(stub)

	c, rec := newBasketTestContext(t, `{"items": ["nope", "also-nope"]}`)

	require.NoError(t, h.RemoveItems(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, stub.removedIDs)

	var envelope struct {
		Data map[string]int64 `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, int64(0), envelope.Data["deleted"])
}
