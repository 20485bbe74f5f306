// Package handler processes Pub/Sub push deliveries for the worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages for background processing
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	importUC       usecase.ImportUsecase
	userRepo       repository.UserRepository
	mailer         service.Mailer
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	ImportUC usecase.ImportUsecase
	UserRepo repository.UserRepository
	Mailer   service.Mailer
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		importUC:       params.ImportUC,
		userRepo:       params.UserRepo,
		mailer:         params.Mailer,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse domain event
	var event service.Event
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing event",
		slog.String("event", event.Name),
		slog.String("user_id", event.UserID),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process event",
			slog.String("event", event.Name),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Event processed successfully", slog.String("event", event.Name))

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.Event) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processEvent dispatches one event to its handler by name
func (h *PushHandler) processEvent(ctx context.Context, event *service.Event) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.Wrap(err, "parse user id")
	}

	switch event.Name {
	case service.EventImportRequested:
		return h.handleImportRequested(ctx, userID, event)
	case service.EventUserRegistered:
		return h.handleUserRegistered(ctx, userID)
	case service.EventOrderPlaced:
		return h.handleOrderPlaced(ctx, userID, event)
	case service.EventOrderStateChanged:
		return h.handleOrderStateChanged(ctx, userID, event)
	default:
		h.logger.Warn("[Worker] Unknown event dropped", slog.String("event", event.Name))

		return nil
	}
}

// handleImportRequested runs the feed import pipeline. Upstream and
// database failures are retried since the feed may succeed later;
// a malformed feed is dropped for good.
func (h *PushHandler) handleImportRequested(ctx context.Context, userID uuid.UUID, event *service.Event) error {
	if err := h.importUC.Run(ctx, userID, event.FeedURL); err != nil {
		return classifyError(err)
	}

	return nil
}

// handleUserRegistered issues a confirmation key and mails it to the account.
func (h *PushHandler) handleUserRegistered(ctx context.Context, userID uuid.UUID) error {
	user, err := h.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// The account disappeared before the mail went out.
			return errors.WithStack(err)
		}

		return newRetryableError(errors.WithStack(err))
	}

	token := &entity.ConfirmEmailToken{
		ID:     uuid.New(),
		UserID: user.ID,
		Key:    uuid.New().String(),
	}
	if err := h.userRepo.CreateConfirmToken(ctx, token); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	mail := &service.Mail{
		Subject:    fmt.Sprintf("Email confirmation for %s", user.Email),
		Body:       fmt.Sprintf("Your confirmation token: %s", token.Key),
		Recipients: []string{user.Email},
	}
	if err := h.mailer.Send(ctx, mail); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	return nil
}

// handleOrderPlaced mails an order confirmation to the buyer.
func (h *PushHandler) handleOrderPlaced(ctx context.Context, userID uuid.UUID, event *service.Event) error {
	user, err := h.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.WithStack(err)
		}

		return newRetryableError(errors.WithStack(err))
	}

	mail := &service.Mail{
		Subject:    "Order state update",
		Body:       fmt.Sprintf("Order %s has been placed and is being processed.", event.OrderID),
		Recipients: []string{user.Email},
	}
	if err := h.mailer.Send(ctx, mail); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	return nil
}

// handleOrderStateChanged mails the buyer about fulfilment progress.
func (h *PushHandler) handleOrderStateChanged(ctx context.Context, userID uuid.UUID, event *service.Event) error {
	user, err := h.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.WithStack(err)
		}

		return newRetryableError(errors.WithStack(err))
	}

	mail := &service.Mail{
		Subject:    "Order state update",
		Body:       fmt.Sprintf("Order %s moved to state %q.", event.OrderID, event.OrderState),
		Recipients: []string{user.Email},
	}
	if err := h.mailer.Send(ctx, mail); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	return nil
}

// classifyError marks transient failures retryable and leaves client-level
// failures permanent so Pub/Sub does not redeliver them forever.
func classifyError(err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			return newRetryableError(err)
		}

		return err
	}

	// Unexpected errors are worth another attempt.
	return newRetryableError(err)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
