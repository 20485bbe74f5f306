package impl

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"net/url"
	"slices"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// importService implements the ImportUsecase interface. Queue runs in the
// API process, Run in the worker. Both sides share the shop authorization
// rules.
type importService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	fetcher   service.FeedFetcher
	publisher service.EventPublisher
	logger    *slog.Logger
}

// ImportServiceParams holds dependencies for importService, injected by Fx.
type ImportServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Fetcher   service.FeedFetcher
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewImportService is the constructor for importService.
func NewImportService(params ImportServiceParams) usecase.ImportUsecase {
	return &importService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		fetcher:   params.Fetcher,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *importService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireShopAccount loads the user and rejects non-shop accounts.
func (srv *importService) requireShopAccount(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if user.Kind != entity.UserKindShop {
		return nil, domainerrors.ErrShopsOnly
	}

	return user, nil
}

// Queue validates the caller and publishes an import request.
func (srv *importService) Queue(ctx context.Context, userID uuid.UUID, feedURL string) error {
	parsed, err := url.ParseRequestURI(feedURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return domainerrors.ErrValidationFailed.WithDetails("url must be a valid http(s) address")
	}

	if _, err := srv.requireShopAccount(ctx, userID); err != nil {
		return err
	}

	event := &service.Event{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Name:      service.EventImportRequested,
		UserID:    userID.String(),
		FeedURL:   feedURL,
	}
	if err := srv.publisher.Publish(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish import request")
	}

	srv.log(ctx).Info("Import queued", slog.String("user_id", userID.String()), slog.String("url", feedURL))

	return nil
}

// Run downloads the feed and atomically replaces the shop catalog with its
// contents. The whole replacement is one transaction, so readers never see
// a half-imported shop and a failed import leaves the previous catalog
// intact.
func (srv *importService) Run(ctx context.Context, userID uuid.UUID, feedURL string) error {
	user, err := srv.requireShopAccount(ctx, userID)
	if err != nil {
		return err
	}

	feed, err := srv.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return err
	}

	var listings int
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.NewShopRepository()
		catalogRepo := repoFactory.NewCatalogRepository()

		shop, err := srv.claimShop(ctx, shopRepo, feed.Shop, feedURL, user.ID)
		if err != nil {
			return err
		}

		categories := make([]entity.Category, 0, len(feed.Categories))
		categoryIDs := make([]int64, 0, len(feed.Categories))
		declared := make(map[int64]struct{}, len(feed.Categories))
		for _, c := range feed.Categories {
			categories = append(categories, entity.Category{ID: c.ID, Name: c.Name})
			categoryIDs = append(categoryIDs, c.ID)
			declared[c.ID] = struct{}{}
		}
		if err := catalogRepo.UpsertCategories(ctx, categories); err != nil {
			return errors.Wrap(err, "failed to upsert categories")
		}
		if err := shopRepo.LinkCategories(ctx, shop.ID, categoryIDs); err != nil {
			return errors.Wrap(err, "failed to link shop categories")
		}

		if err := catalogRepo.DeleteShopListings(ctx, shop.ID); err != nil {
			return errors.Wrap(err, "failed to clear previous listings")
		}

		for _, good := range feed.Goods {
			if _, ok := declared[good.Category]; !ok {
				return domainerrors.ErrFeedInvalid.WithDetails(
					fmt.Sprintf("good %d references undeclared category %d", good.ID, good.Category))
			}
			if err := srv.importGood(ctx, catalogRepo, shop.ID, good); err != nil {
				return err
			}
			listings++
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Import finished",
		slog.String("shop", feed.Shop),
		slog.Int("categories", len(feed.Categories)),
		slog.Int("listings", listings))

	return nil
}

// claimShop resolves the feed's shop record, creating it on first import
// and refusing feeds whose shop name belongs to another account.
func (srv *importService) claimShop(
	ctx context.Context,
	shopRepo repository.ShopRepository,
	name, feedURL string,
	userID uuid.UUID,
) (*entity.Shop, error) {
	shop, err := shopRepo.FindByName(ctx, name)
	if errors.Is(err, repository.ErrShopNotFound) {
		shop = &entity.Shop{
			ID:        uuid.New(),
			Name:      name,
			URL:       feedURL,
			UserID:    &userID,
			Accepting: true,
		}
		if err := shopRepo.Create(ctx, shop); err != nil {
			return nil, errors.Wrap(err, "failed to create shop")
		}

		return shop, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop")
	}

	if shop.UserID != nil && *shop.UserID != userID {
		return nil, domainerrors.ErrShopOwnershipViolation
	}

	shop.UserID = &userID
	shop.URL = feedURL
	if err := shopRepo.Update(ctx, shop); err != nil {
		return nil, errors.Wrap(err, "failed to update shop")
	}

	return shop, nil
}

// importGood persists one feed good as an abstract product, a listing and
// its parameter values. Parameters are inserted in name order to keep
// imports deterministic. A feed carrying the same good twice overwrites
// the earlier occurrence, parameters included.
func (srv *importService) importGood(
	ctx context.Context,
	catalogRepo repository.CatalogRepository,
	shopID uuid.UUID,
	good service.FeedGood,
) error {
	product, err := catalogRepo.FindOrCreateProduct(ctx, good.Name, good.Category)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve product for good %d", good.ID)
	}

	info := &entity.ProductInfo{
		ID:         uuid.New(),
		ProductID:  product.ID,
		ShopID:     shopID,
		ExternalID: good.ID,
		Model:      good.Model,
		Quantity:   good.Quantity,
		Price:      decimal.NewFromFloat(good.Price),
		PriceRRC:   decimal.NewFromFloat(good.PriceRRC),
	}
	replaced, err := catalogRepo.UpsertListing(ctx, info)
	if err != nil {
		return errors.Wrapf(err, "failed to store listing for good %d", good.ID)
	}
	if replaced {
		if err := catalogRepo.DeleteListingParameters(ctx, info.ID); err != nil {
			return errors.Wrapf(err, "failed to clear parameters of good %d", good.ID)
		}
	}

	for _, name := range slices.Sorted(maps.Keys(good.Parameters)) {
		parameter, err := catalogRepo.FindOrCreateParameter(ctx, name)
		if err != nil {
			return errors.Wrapf(err, "failed to resolve parameter %q", name)
		}
		param := &entity.ProductParameter{
			ID:            uuid.New(),
			ProductInfoID: info.ID,
			ParameterID:   parameter.ID,
			Value:         good.Parameters[name],
		}
		if err := catalogRepo.CreateListingParameter(ctx, param); err != nil {
			return errors.Wrapf(err, "failed to store parameter %q", name)
		}
	}

	return nil
}
