package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pushHandlerFixtures holds all test dependencies for push handler tests.
type pushHandlerFixtures struct {
	handler  *PushHandler
	userRepo *mockRepo.MockUserRepository
	mailer   *mockSvc.MockMailer
}

func createTestPushHandler(t *testing.T) pushHandlerFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	mailer := mockSvc.NewMockMailer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewPushHandler(PushHandlerParams{
		Config:   &config.Config{},
		Logger:   logger,
		ImportUC: nil,
		UserRepo: userRepo,
		Mailer:   mailer,
	})

	return pushHandlerFixtures{
		handler:  handler,
		userRepo: userRepo,
		mailer:   mailer,
	}
}

// pushRequest wraps an event in the Pub/Sub push envelope.
func pushRequest(t *testing.T, event *service.Event) (echo.Context, *httptest.ResponseRecorder) {
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/test/subscriptions/worker"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_UserRegistered_SendsConfirmationMail(t *testing.T) {
	fx := createTestPushHandler(t)

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "buyer@example.com"}

	fx.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(user, nil)
	fx.userRepo.EXPECT().
		CreateConfirmToken(mock.Anything, mock.MatchedBy(func(token *entity.ConfirmEmailToken) bool {
			return token.UserID == userID && token.Key != ""
		})).
		Return(nil)
	fx.mailer.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(mail *service.Mail) bool {
			return len(mail.Recipients) == 1 && mail.Recipients[0] == user.Email
		})).
		Return(nil)

	c, rec := pushRequest(t, &service.Event{
		Name:   service.EventUserRegistered,
		UserID: userID.String(),
	})

	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

// A vanished account is a permanent failure; acknowledging stops redelivery.
func TestPushHandler_UserRegistered_UserGoneIsAcked(t *testing.T) {
	fx := createTestPushHandler(t)

	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(nil, repository.ErrUserNotFound)

	c, rec := pushRequest(t, &service.Event{
		Name:   service.EventUserRegistered,
		UserID: userID.String(),
	})

	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

// A failing mail relay is transient; a 503 asks Pub/Sub to redeliver.
func TestPushHandler_OrderPlaced_MailFailureIsRetried(t *testing.T) {
	fx := createTestPushHandler(t)

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "buyer@example.com"}

	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)
	fx.mailer.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.Mail")).
		Return(errors.New("relay unavailable"))

	c, rec := pushRequest(t, &service.Event{
		Name:    service.EventOrderPlaced,
		UserID:  userID.String(),
		OrderID: uuid.New().String(),
	})

	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_UnknownEventIsDropped(t *testing.T) {
	fx := createTestPushHandler(t)

	c, rec := pushRequest(t, &service.Event{
		Name:   "unknown.event",
		UserID: uuid.New().String(),
	})

	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedBody(t *testing.T) {
	fx := createTestPushHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader([]byte(`{"message":{"data":"not-base64!!"}}`)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, fx.handler.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{name: "upstream fetch failure", err: domainerrors.ErrUpstreamFetch, retryable: true},
		{name: "malformed feed", err: domainerrors.ErrFeedInvalid, retryable: false},
		{name: "shop ownership violation", err: domainerrors.ErrShopOwnershipViolation, retryable: false},
		{name: "wrapped transient failure", err: errors.Wrap(domainerrors.ErrTransactionFailed, "import"), retryable: true},
		{name: "plain error", err: errors.New("boom"), retryable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, isRetryableError(classifyError(tt.err)))
		})
	}
}

func TestExtractRequestID_Priority(t *testing.T) {
	fx := createTestPushHandler(t)

	ctx := context.Background()

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attributes"}
	event := &service.Event{RequestID: "from-event"}

	assert.Equal(t, "from-attributes", fx.handler.extractRequestID(ctx, &msg, event))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", fx.handler.extractRequestID(ctx, &msg, event))

	event.RequestID = ""
	generated := fx.handler.extractRequestID(ctx, &msg, event)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
}
